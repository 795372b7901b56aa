package bloom

import "fmt"

// CheckCapacity validates m for use as a set capacity.
func CheckCapacity(m int) error {
	if m <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCapacity, m)
	}
	return nil
}

// FlagBytes returns ceil(m/8), the packed storage needed for m flags.
func FlagBytes(m uint64) uint64 {
	return (m + 7) / 8
}
