package bloom

import (
	"github.com/bits-and-blooms/bitset"
)

// Set is a fixed capacity membership set for uint8 elements.
//
// Sets must be created with New or WithSize. The zero value has no flags and
// every method other than Len panics with ErrBadCapacity.
type Set struct {
	m        uint64
	bits     *bitset.BitSet
	inserted uint32
}

// New returns an empty set with DefaultSize flags.
func New() *Set {
	return newSet(DefaultSize)
}

// WithSize returns an empty set with m flags.
//
// Returns ErrBadCapacity if m is not positive.
func WithSize(m int) (*Set, error) {
	if err := CheckCapacity(m); err != nil {
		return nil, err
	}
	return newSet(uint64(m)), nil
}

func newSet(m uint64) *Set {
	return &Set{m: m, bits: bitset.New(uint(m))}
}

func (s *Set) mustInit() {
	if s.bits == nil {
		panic(ErrBadCapacity)
	}
}

// Add sets the flag at each hash index of element.
func (s *Set) Add(element uint8) {
	s.mustInit()
	for _, h := range hashes {
		s.bits.Set(uint(h.Index(element, s.m)))
	}

	// Best-effort, repeated adds of the same element are counted.
	s.inserted++
}

// Query reports whether element may be in the set.
//
// Returns false if the set says "definitely not added".
// Returns true if the set says "maybe added".
func (s *Set) Query(element uint8) bool {
	s.mustInit()
	for _, h := range hashes {
		if !s.bits.Test(uint(h.Index(element, s.m))) {
			return false
		}
	}
	return true
}

// Indices returns the slots for element, in H1, H2, H3 order.
func (s *Set) Indices(element uint8) [HashCount]uint64 {
	s.mustInit()
	var idx [HashCount]uint64
	for i, h := range hashes {
		idx[i] = h.Index(element, s.m)
	}
	return idx
}

// Len returns the capacity M.
func (s *Set) Len() int { return int(s.m) }

// Count returns the number of flags currently set.
func (s *Set) Count() int {
	s.mustInit()
	return int(s.bits.Count())
}

// Inserted returns the number of Add calls made on the set.
func (s *Set) Inserted() uint32 { return s.inserted }
