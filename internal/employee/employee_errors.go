package employee

import (
	"net/http"

	"hr-console/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department not found",
		http.StatusBadRequest,
	)

	ErrBirthDateNotPast = apperror.New(
		apperror.CodeInvalidInput,
		"Date of birth must be in the past",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrUserAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"This user account is already linked to an employee",
		http.StatusConflict,
	)
)
