package bloom

import (
	"fmt"
	"strings"
)

// Hash selects one of the fixed index formulas.
type Hash uint8

const (
	H1 Hash = iota
	H2
	H3
)

var hashes = [HashCount]Hash{H1, H2, H3}

// Hashes returns the formulas in the order the set applies them.
func Hashes() [HashCount]Hash {
	return hashes
}

func (h Hash) Valid() bool {
	return h <= H3
}

// Index maps element to a slot in [0, m).
//
// The caller must ensure m > 0. Index panics if h is not one of H1, H2, H3.
func (h Hash) Index(element uint8, m uint64) uint64 {
	x := uint64(element)
	switch h {
	case H1:
		return x % m
	case H2:
		return (2*x + 3) % m
	case H3:
		return (8 * x) % m
	}
	panic(fmt.Sprintf("bloom: unknown hash %d", uint8(h)))
}

func (h Hash) String() string {
	switch h {
	case H1:
		return "H1(x mod M)"
	case H2:
		return "H2(2x + 3 mod M)"
	case H3:
		return "H3(8x mod M)"
	}
	return fmt.Sprintf("Hash(%d)", uint8(h))
}

// Formulas returns the display form of every hash, in application order.
func Formulas() string {
	forms := make([]string, 0, len(hashes))
	for _, h := range hashes {
		forms = append(forms, h.String())
	}
	return strings.Join(forms, ", ")
}
