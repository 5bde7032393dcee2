package registration

import (
	"errors"

	registrationerrors "hradmin/internal/registration/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation pada email
			return registrationerrors.ErrEmailConflict
		case "23503": // foreign_key_violation pada department/division
			return registrationerrors.ErrUnknownReference
		}
	}

	return err
}
