package divisionerrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	ErrDivisionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Division not found",
		http.StatusNotFound,
	)
	ErrDivisionInUse = apperror.New(
		apperror.CodeConflict,
		"Division is still referenced by employees",
		http.StatusConflict,
	)
)
