package cpi

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Split divides total between two recipients by basis point weights. The
// first share is floored, the second takes the remainder, so both shares
// always add up to total exactly. Weights must sum to 10_000.
func Split(total uint64, weights [2]uint16) (uint64, uint64, error) {
	totalBps := uint32(weights[0]) + uint32(weights[1])
	if totalBps != BasisPointMax {
		return 0, 0, fmt.Errorf("%w: got %d", ErrBadAllocation, totalBps)
	}

	first := uint128.From64(total).
		Mul64(uint64(weights[0])).
		Div64(BasisPointMax)
	if first.Hi != 0 {
		return 0, 0, ErrAmountOverflow
	}

	return first.Lo, total - first.Lo, nil
}
