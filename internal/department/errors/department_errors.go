package departmenterrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department is still referenced by employees",
		http.StatusConflict,
	)
)
