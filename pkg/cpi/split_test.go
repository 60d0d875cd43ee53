package cpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitEvenWeights(t *testing.T) {
	first, second, err := Split(1_000_000, [2]uint16{5000, 5000})
	require.NoError(t, err)
	require.Equal(t, uint64(500_000), first)
	require.Equal(t, uint64(500_000), second)
}

func TestSplitFloorsFirstShare(t *testing.T) {
	first, second, err := Split(10, [2]uint16{3333, 6667})
	require.NoError(t, err)
	require.Equal(t, uint64(3), first)
	require.Equal(t, uint64(7), second)
}

func TestSplitOneSided(t *testing.T) {
	first, second, err := Split(12345, [2]uint16{10000, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(12345), first)
	require.Equal(t, uint64(0), second)

	first, second, err = Split(12345, [2]uint16{0, 10000})
	require.NoError(t, err)
	require.Equal(t, uint64(0), first)
	require.Equal(t, uint64(12345), second)
}

func TestSplitMaxTotalDoesNotOverflow(t *testing.T) {
	total := uint64(math.MaxUint64)
	first, second, err := Split(total, [2]uint16{9999, 1})
	require.NoError(t, err)
	require.Equal(t, total, first+second)
}

func TestSplitBadWeights(t *testing.T) {
	for _, weights := range [][2]uint16{
		{5000, 4999},
		{5000, 5001},
		{0, 0},
		{10000, 10000},
	} {
		_, _, err := Split(100, weights)
		require.ErrorIs(t, err, ErrBadAllocation, "weights %v", weights)
	}
}

func TestSplitSharesAlwaysSumToTotal(t *testing.T) {
	totals := []uint64{0, 1, 7, 999, 1_000_000_007, math.MaxUint64}
	weights := [][2]uint16{{1, 9999}, {2500, 7500}, {3333, 6667}, {9999, 1}}
	for _, total := range totals {
		for _, w := range weights {
			first, second, err := Split(total, w)
			require.NoError(t, err)
			require.Equal(t, total, first+second, "total %d weights %v", total, w)
		}
	}
}
