package task

import (
	"net/http"

	"hr-console/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		"TASK_NOT_FOUND",
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTime = apperror.New(
		"TASK_INVALID_TIME",
		"Start and end must be valid timestamps",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		"TASK_END_BEFORE_START",
		"End must not precede start",
		http.StatusBadRequest,
	)
)
