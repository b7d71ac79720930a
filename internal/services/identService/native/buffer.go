package native

import "errors"

// maxGrowAttempts bounds the size negotiation loop. A well-behaved call
// converges in two rounds; more than a few retries means the OS keeps
// changing its answer and we give up rather than spin.
const maxGrowAttempts = 4

var (
	// ErrEmpty is returned when the native call reports that no data exists
	// for the query.
	ErrEmpty = errors.New("native: call reported no data")

	// ErrRetryLimit is returned when the required-size negotiation does not
	// converge within maxGrowAttempts rounds.
	ErrRetryLimit = errors.New("native: buffer size negotiation did not converge")
)

// Fill is one invocation of a size-negotiated native call. It writes up to
// len(buf) units into buf and returns the count written. When buf is too
// small it returns need, the required capacity, with need > len(buf).
// A hard failure is reported through err.
type Fill[T byte | uint16] func(buf []T) (n, need int, err error)

// Grow drives a "query size, then fill" native call to completion: probe
// with an empty buffer, allocate the reported size, fill, and trim to the
// actual length. The fill may legitimately report fewer units than the probe
// did (the value changed between the two calls); the shorter result is
// returned without reading past it. A probe that reports zero required units
// maps to ErrEmpty.
func Grow[T byte | uint16](fill Fill[T]) ([]T, error) {
	size := 0

	for attempt := 0; attempt < maxGrowAttempts; attempt++ {
		buf := make([]T, size)

		n, need, err := fill(buf)
		if err != nil {
			return nil, err
		}

		if need > len(buf) {
			// Too small; retry with the reported requirement.
			size = need
			continue
		}

		if n == 0 {
			return nil, ErrEmpty
		}

		// The OS never wrote past the buffer, but guard the slice anyway.
		if n > len(buf) {
			n = len(buf)
		}

		return buf[:n], nil
	}

	return nil, ErrRetryLimit
}
