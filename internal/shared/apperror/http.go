package apperror

import "errors"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP menerjemahkan error dari service ke representasi HTTP.
// Error yang bukan *AppError dianggap kegagalan internal dan tidak
// membocorkan pesan aslinya ke client.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
