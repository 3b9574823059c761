package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError reports client-fixable bad input, detected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InsufficientStockError reports a mutation that would drive stock negative.
type InsufficientStockError struct {
	MedicineID   uint
	MedicineName string
	Current      int
	Requested    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for medicine %q (id=%d): current %d, requested %d",
		e.MedicineName, e.MedicineID, e.Current, e.Requested)
}

// ErrOrderNumberConflict signals a duplicate order number. The suffix is
// time-derived, so callers may simply retry the request.
var ErrOrderNumberConflict = errors.New("order number already exists")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
