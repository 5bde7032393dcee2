package employee

import (
	"errors"

	employeeerrors "hradmin/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// foreign_key_violation: department/division id tidak resolve
		if pgErr.Code == "23503" {
			return employeeerrors.ErrUnknownReference
		}
	}

	return err
}
