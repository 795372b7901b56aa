package bloom

import "errors"

const (
	// DefaultSize is the capacity used by New.
	DefaultSize = 256

	// HashCount is the number of hashes applied per element.
	HashCount = 3
)

var (
	ErrBadCapacity = errors.New("bloom: capacity must be positive")
)
