package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the underlying store cannot be read or
// written (disk full, locked database, closed connection). Callers keep
// their in-memory state authoritative for the session and surface the
// failure instead of crashing.
var ErrUnavailable = errors.New("storage unavailable")

// mapUnavailable tags a read/write failure from the driver so callers can
// detect it with errors.Is(err, ErrUnavailable). Input validation happens
// before any statement runs, so a failure here is an I/O-level problem, not
// bad data.
func mapUnavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
