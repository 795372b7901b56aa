package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIndex(t *testing.T) {
	tests := []struct {
		name    string
		element uint8
		m       uint64
		want    [HashCount]uint64
	}{
		{"x=2,M=256", 2, 256, [HashCount]uint64{2, 7, 16}},
		{"x=5,M=10", 5, 10, [HashCount]uint64{5, 3, 0}},
		{"x=7,M=10", 7, 10, [HashCount]uint64{7, 7, 6}},
		{"x=3,M=4", 3, 4, [HashCount]uint64{3, 1, 0}},
		// 2x+3 and 8x exceed the uint8 range.
		{"x=255,M=256", 255, 256, [HashCount]uint64{255, 1, 248}},
		{"x=200,M=1000", 200, 1000, [HashCount]uint64{200, 403, 600}},
		{"x=0,M=1", 0, 1, [HashCount]uint64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, h := range Hashes() {
				require.Equal(t, tt.want[i], h.Index(tt.element, tt.m), h.String())
			}
		})
	}
}

func TestHashIndexInRange(t *testing.T) {
	for _, m := range []uint64{1, 2, 3, 7, 10, 64, 255, 256, 257, 4096} {
		for x := 0; x <= 255; x++ {
			for _, h := range Hashes() {
				i := h.Index(uint8(x), m)
				require.Less(t, i, m)
				require.Equal(t, i, h.Index(uint8(x), m))
			}
		}
	}
}

func TestHashString(t *testing.T) {
	require.Equal(t, "H1(x mod M)", H1.String())
	require.Equal(t, "H2(2x + 3 mod M)", H2.String())
	require.Equal(t, "H3(8x mod M)", H3.String())
	require.Equal(t, "Hash(9)", Hash(9).String())

	require.Equal(t, "H1(x mod M), H2(2x + 3 mod M), H3(8x mod M)", Formulas())
}

func TestHashValid(t *testing.T) {
	for _, h := range Hashes() {
		require.True(t, h.Valid())
	}
	require.False(t, Hash(3).Valid())
	require.Panics(t, func() { Hash(3).Index(1, 10) })
}

func TestHashesReturnsCopy(t *testing.T) {
	hs := Hashes()
	require.Equal(t, [HashCount]Hash{H1, H2, H3}, hs)

	s, err := WithSize(10)
	require.NoError(t, err)

	hs[0], hs[1], hs[2] = H1, H1, Hash(9)
	require.Equal(t, [HashCount]Hash{H1, H2, H3}, Hashes())

	s.Add(7)
	require.Equal(t, "0 0 0 0 0 0 1 1 0 0", s.String())
	require.True(t, s.Query(7))
}
