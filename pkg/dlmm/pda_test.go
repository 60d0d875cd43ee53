package dlmm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestDeriveLbPairAddressOrderInvariant(t *testing.T) {
	tokenX := solana.NewWallet().PublicKey()
	tokenY := solana.NewWallet().PublicKey()

	forward, bump, err := DeriveLbPairAddress(tokenX, tokenY, 25, 10_000)
	require.NoError(t, err)
	reversed, bumpReversed, err := DeriveLbPairAddress(tokenY, tokenX, 25, 10_000)
	require.NoError(t, err)

	require.Equal(t, forward, reversed)
	require.Equal(t, bump, bumpReversed)

	// A different bin step yields a different pair
	other, _, err := DeriveLbPairAddress(tokenX, tokenY, 100, 10_000)
	require.NoError(t, err)
	require.NotEqual(t, forward, other)
}

func TestDeriveCustomizableLbPairAddressOrderInvariant(t *testing.T) {
	tokenX := solana.NewWallet().PublicKey()
	tokenY := solana.NewWallet().PublicKey()

	forward, _, err := DeriveCustomizableLbPairAddress(tokenX, tokenY)
	require.NoError(t, err)
	reversed, _, err := DeriveCustomizableLbPairAddress(tokenY, tokenX)
	require.NoError(t, err)

	require.Equal(t, forward, reversed)
}

func TestDerivePairAccounts(t *testing.T) {
	lbPair := solana.NewWallet().PublicKey()
	tokenX := solana.NewWallet().PublicKey()
	tokenY := solana.NewWallet().PublicKey()

	oracle, err := DeriveOracleAddress(lbPair)
	require.NoError(t, err)
	require.False(t, oracle.IsZero())

	reserveX, err := DeriveReserveAddress(tokenX, lbPair)
	require.NoError(t, err)
	reserveY, err := DeriveReserveAddress(tokenY, lbPair)
	require.NoError(t, err)
	require.NotEqual(t, reserveX, reserveY)

	bitmap, err := DeriveBinArrayBitmapExtension(lbPair)
	require.NoError(t, err)
	require.NotEqual(t, oracle, bitmap)
}

func TestDeriveEventAuthorityStable(t *testing.T) {
	first, err := DeriveEventAuthority()
	require.NoError(t, err)
	second, err := DeriveEventAuthority()
	require.NoError(t, err)
	require.Equal(t, first, second)
}
