package auth

import (
	"net/http"

	"hr-console/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"An account with this email already exists",
		http.StatusConflict,
	)

	ErrAccountInactive = apperror.New(
		apperror.CodeForbidden,
		"This account has been deactivated",
		http.StatusForbidden,
	)
)
