package employeeerrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrUnknownReference = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown department or division",
		http.StatusUnprocessableEntity,
	)
)
