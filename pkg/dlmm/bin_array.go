package dlmm

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// MaxBinPerArray is the number of bins a bin array account holds
const MaxBinPerArray = 70

// BinIDToBinArrayIndex converts a bin ID to its corresponding bin array index
func BinIDToBinArrayIndex(binID int32) int64 {
	quotient := binID / MaxBinPerArray
	remainder := binID % MaxBinPerArray

	// Negative bin IDs round toward negative infinity
	if binID < 0 && remainder != 0 {
		quotient--
	}

	return int64(quotient)
}

// BinArraysAroundActiveBin derives the bin array accounts surrounding the
// active bin, countPerSide arrays in each direction plus the active one. The
// result is ordered from the lowest index upward, ready to append as swap
// remaining accounts.
func BinArraysAroundActiveBin(lbPair solana.PublicKey, activeID int32, countPerSide int) ([]solana.PublicKey, error) {
	activeIndex := BinIDToBinArrayIndex(activeID)

	arrays := make([]solana.PublicKey, 0, 2*countPerSide+1)
	for index := activeIndex - int64(countPerSide); index <= activeIndex+int64(countPerSide); index++ {
		addr, err := DeriveBinArrayAddress(lbPair, index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive bin array %d: %w", index, err)
		}
		arrays = append(arrays, addr)
	}
	return arrays, nil
}
