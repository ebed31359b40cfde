package department

import (
	"net/http"

	"hr-console/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		"DEPARTMENT_NOT_FOUND",
		"Department not found",
		http.StatusNotFound,
	)
	ErrNameTaken = apperror.New(
		"DEPARTMENT_NAME_TAKEN",
		"A department with this name already exists",
		http.StatusConflict,
	)
	ErrDepartmentInUse = apperror.New(
		"DEPARTMENT_IN_USE",
		"Department still has employees assigned",
		http.StatusConflict,
	)
)
