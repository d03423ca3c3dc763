package database

import (
	"context"
	"errors"

	"quickbite/internal/models"
)

// TranslateError maps a low-level storage failure to the core error
// taxonomy. Deadline overruns surface as TimeoutError so callers can make
// their own retry decision; everything else is a PersistenceError.
// pgx.ErrNoRows is entity-specific and handled by the repositories.
func TranslateError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.TimeoutError{Op: op}
	}
	return models.PersistenceError{Op: op, Err: err}
}
