package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateStatement reports an upload whose checksum matches an
// already-completed statement for the same business. Callers may retry
// with force to replace the prior import.
var ErrDuplicateStatement = errors.New("statement already processed")

// ErrImportedTransaction reports an attempt to delete a transaction that
// came from a statement. A completed statement's transaction set is
// fixed; imported rows leave the ledger only through the statement's
// cascading delete.
var ErrImportedTransaction = errors.New("transaction belongs to a statement")

// InvariantViolationError means the recomputed financial position does
// not satisfy the accounting identity. This is a bug in the recompute,
// not a user error; the surrounding transaction must abort rather than
// persist an inconsistent position.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return "financial position invariant violated: " + e.Detail
}

// isTransient reports whether a store error is worth one retry.
// SQLite surfaces write contention as busy/locked errors; anything else
// is treated as permanent.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "busy") ||
		strings.Contains(msg, "serialization")
}

// transitionError reports a disallowed statement status transition.
func transitionError(current, target string) error {
	return fmt.Errorf("statement transition from %q to %q is not allowed", current, target)
}
