package bloom

import "strings"

// Flags returns a copy of the flags, one byte (0 or 1) per slot.
func (s *Set) Flags() []byte {
	s.mustInit()
	flags := make([]byte, s.m)
	for i := range flags {
		if s.bits.Test(uint(i)) {
			flags[i] = 1
		}
	}
	return flags
}

// String renders the flags as space separated 0/1 tokens in index order.
func (s *Set) String() string {
	s.mustInit()
	var sb strings.Builder
	sb.Grow(int(2*s.m - 1))
	for i := uint64(0); i < s.m; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
