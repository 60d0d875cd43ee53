package dlmm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// minMaxKey orders two keys the way the on-chain derivation does
func minMaxKey(a, b solana.PublicKey) (minKey, maxKey solana.PublicKey) {
	if bytes.Compare(a.Bytes(), b.Bytes()) < 0 {
		return a, b
	}
	return b, a
}

// DeriveLbPairAddress derives the lb pair account for a token pair with the given
// bin step and base factor
func DeriveLbPairAddress(tokenXMint, tokenYMint solana.PublicKey, binStep, baseFactor uint16) (solana.PublicKey, uint8, error) {
	minKey, maxKey := minMaxKey(tokenXMint, tokenYMint)

	binStepBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(binStepBytes, binStep)
	baseFactorBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(baseFactorBytes, baseFactor)

	pair, bump, err := solana.FindProgramAddress(
		[][]byte{
			minKey.Bytes(),
			maxKey.Bytes(),
			binStepBytes,
			baseFactorBytes,
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive lb pair address: %w", err)
	}
	return pair, bump, nil
}

// DeriveCustomizableLbPairAddress derives the ILM customizable permissionless lb pair
func DeriveCustomizableLbPairAddress(tokenXMint, tokenYMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	minKey, maxKey := minMaxKey(tokenXMint, tokenYMint)
	pair, bump, err := solana.FindProgramAddress(
		[][]byte{
			IlmBaseKey.Bytes(),
			minKey.Bytes(),
			maxKey.Bytes(),
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive customizable lb pair address: %w", err)
	}
	return pair, bump, nil
}

// DeriveOracleAddress derives the oracle account of an lb pair
func DeriveOracleAddress(lbPair solana.PublicKey) (solana.PublicKey, error) {
	oracle, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(OracleSeed),
			lbPair.Bytes(),
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive oracle address: %w", err)
	}
	return oracle, nil
}

// DeriveReserveAddress derives the reserve token account of an lb pair for a mint
func DeriveReserveAddress(tokenMint, lbPair solana.PublicKey) (solana.PublicKey, error) {
	reserve, _, err := solana.FindProgramAddress(
		[][]byte{
			lbPair.Bytes(),
			tokenMint.Bytes(),
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive reserve address: %w", err)
	}
	return reserve, nil
}

// DeriveBinArrayAddress derives the bin array account for the given index
func DeriveBinArrayAddress(lbPair solana.PublicKey, binArrayIndex int64) (solana.PublicKey, error) {
	indexBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(indexBytes, uint64(binArrayIndex))

	binArray, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(BinArraySeed),
			lbPair.Bytes(),
			indexBytes,
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive bin array address: %w", err)
	}
	return binArray, nil
}

// DeriveBinArrayBitmapExtension derives the bitmap extension account of an lb pair
func DeriveBinArrayBitmapExtension(lbPair solana.PublicKey) (solana.PublicKey, error) {
	bitmap, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(BitmapSeed),
			lbPair.Bytes(),
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive bin array bitmap extension: %w", err)
	}
	return bitmap, nil
}

// DeriveEventAuthority derives the event authority used for event CPI
func DeriveEventAuthority() (solana.PublicKey, error) {
	authority, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(EventAuthoritySeed),
		},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive event authority: %w", err)
	}
	return authority, nil
}
