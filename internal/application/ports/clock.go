package ports

import "time"

// Clock abstracts the system clock so signature timestamps and the
// fingerprint instant are testable.
type Clock interface {
	Now() time.Time
}
