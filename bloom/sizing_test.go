package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCapacity(t *testing.T) {
	require.NoError(t, CheckCapacity(1))
	require.NoError(t, CheckCapacity(DefaultSize))
	require.ErrorIs(t, CheckCapacity(0), ErrBadCapacity)
	require.ErrorIs(t, CheckCapacity(-1), ErrBadCapacity)
}

func TestFlagBytes(t *testing.T) {
	require.Equal(t, uint64(0), FlagBytes(0))
	require.Equal(t, uint64(1), FlagBytes(1))
	require.Equal(t, uint64(1), FlagBytes(8))
	require.Equal(t, uint64(2), FlagBytes(10))
	require.Equal(t, uint64(32), FlagBytes(DefaultSize))
}
