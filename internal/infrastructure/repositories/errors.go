package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isUniqueViolation reports whether err is a unique-constraint violation from
// postgres or the sqlite driver used in tests
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
