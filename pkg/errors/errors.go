package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUniqueViolation = "23505"
	CodeUndefinedTable  = "42P01"
	CodeConnFailure     = "08006"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return Is(err, CodeUniqueViolation)
}

// IsUndefinedTable reports a query against a relation that does not exist,
// usually the schema was never created on this database.
func IsUndefinedTable(err error) bool {
	return Is(err, CodeUndefinedTable)
}

func IsConnFailure(err error) bool {
	return Is(err, CodeConnFailure)
}

func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
