package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// classifyWrite turns a write-path database error into a taxonomy error.
// Foreign-key violations become Referenced so deletion paths can report
// "in use" distinctly; duplicate keys become Conflict; anything else is a
// storage fault.
func classifyWrite(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return apperr.Wrap(apperr.KindReferenced, "record is referenced by other records", err)
		case pgUniqueViolation:
			return apperr.Wrap(apperr.KindConflict, "record already exists", err)
		}
	}
	return apperr.Storage(op, err)
}
