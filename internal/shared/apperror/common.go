package apperror

import "net/http"

// Sentinel lintas modul; error spesifik resource tinggal di
// package errors milik masing-masing modul.
var (
	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Not authorized",
		http.StatusUnauthorized,
	)
)
