package repositories

import "context"

// SequenceRepository hands out monotonically increasing vendor sequence
// numbers. NextVendorSequence must perform an exclusive increment so that two
// concurrent callers never observe the same value; it is expected to run
// inside the registration transaction.
type SequenceRepository interface {
	NextVendorSequence(ctx context.Context) (int64, error)
}
