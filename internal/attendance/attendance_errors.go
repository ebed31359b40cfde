package attendance

import (
	"net/http"

	"hr-console/internal/shared/apperror"
)

var (
	ErrNotLinked = apperror.New(
		"ATTENDANCE_NOT_LINKED",
		"No employee record is linked to this account",
		http.StatusNotFound,
	)
	ErrAlreadyClockedIn = apperror.New(
		"ATTENDANCE_ALREADY_CLOCKED_IN",
		"Already clocked in for today",
		http.StatusConflict,
	)
	ErrNoClockInToday = apperror.New(
		"ATTENDANCE_NO_CLOCK_IN",
		"No clock in found for today",
		http.StatusNotFound,
	)
	ErrAlreadyClockedOut = apperror.New(
		"ATTENDANCE_ALREADY_CLOCKED_OUT",
		"Already clocked out for today",
		http.StatusConflict,
	)
)
