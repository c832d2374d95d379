// Package vendorid implements the VEN-prefixed sequential vendor identifier
// scheme: VEN followed by a zero-padded six digit integer (VEN000001, ...).
package vendorid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Prefix is the vendor identifier prefix
	Prefix = "VEN"
	// Digits is the zero-padded width of the numeric part
	Digits = 6
)

// Format renders a sequence number as a vendor identifier
func Format(n int64) string {
	return fmt.Sprintf("%s%0*d", Prefix, Digits, n)
}

// Parse extracts the numeric part of a vendor identifier.
// Returns false for identifiers that do not follow the VEN scheme
// (legacy random IDs are skipped, not treated as errors).
func Parse(id string) (int64, bool) {
	if !strings.HasPrefix(id, Prefix) {
		return 0, false
	}
	suffix := strings.TrimPrefix(id, Prefix)
	if suffix == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MaxSequence scans a set of existing identifiers and returns the highest
// numeric part found, 0 if none match the scheme.
func MaxSequence(ids []string) int64 {
	var max int64
	for _, id := range ids {
		if n, ok := Parse(id); ok && n > max {
			max = n
		}
	}
	return max
}

// Next returns the identifier following the highest one in the given set.
// First ever allocation yields VEN000001. This is the scan-based allocation
// contract; callers needing uniqueness under concurrency must combine it
// with an exclusive counter increment in the same transaction.
func Next(existing []string) string {
	return Format(MaxSequence(existing) + 1)
}
