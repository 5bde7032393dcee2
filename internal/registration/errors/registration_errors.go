package registrationerrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	// ErrEmailTaken dikembalikan oleh pre-check uniqueness saat validasi.
	ErrEmailTaken = apperror.New(
		apperror.CodeInvalidInput,
		"Email already exists",
		http.StatusUnprocessableEntity,
	)
	// ErrEmailConflict dikembalikan saat unique constraint store yang menang:
	// dua registrasi beradu pada email yang sama dan yang kalah mendarat di sini.
	ErrEmailConflict = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)
	ErrUnknownReference = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown department or division",
		http.StatusUnprocessableEntity,
	)
)
