package tablet

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrRetryable tells the caller that the operation could not produce a
// definite answer right now and should be retried, e.g. a status query whose
// cached knowledge is older than the requested read time.
type ErrRetryable string

func (e ErrRetryable) Error() string {
	return fmt.Sprintf("retryable: %s", string(e))
}

// IsRetryable reports whether err indicates a retry rather than a permanent
// or transport failure.
func IsRetryable(err error) bool {
	_, ok := err.(ErrRetryable)
	return ok
}

// ErrTxnNotFound is returned when an operation references a transaction id
// known neither in memory nor in storage.
type ErrTxnNotFound struct {
	ID uuid.UUID
}

func (e ErrTxnNotFound) Error() string {
	return fmt.Sprintf("unknown transaction: %s", e.ID)
}
