package dynamicamm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestDeriveCustomizablePoolAddressOrderInvariant(t *testing.T) {
	tokenA := solana.NewWallet().PublicKey()
	tokenB := solana.NewWallet().PublicKey()

	forward, err := DeriveCustomizablePoolAddress(tokenA, tokenB)
	require.NoError(t, err)
	reversed, err := DeriveCustomizablePoolAddress(tokenB, tokenA)
	require.NoError(t, err)

	require.Equal(t, forward, reversed)
	require.False(t, forward.IsZero())
}

func TestDerivePoolWithConfigAddressOrderInvariant(t *testing.T) {
	tokenA := solana.NewWallet().PublicKey()
	tokenB := solana.NewWallet().PublicKey()
	config := solana.NewWallet().PublicKey()

	forward, err := DerivePoolWithConfigAddress(tokenA, tokenB, config)
	require.NoError(t, err)
	reversed, err := DerivePoolWithConfigAddress(tokenB, tokenA, config)
	require.NoError(t, err)

	require.Equal(t, forward, reversed)

	// A different config yields a different pool for the same pair
	other, err := DerivePoolWithConfigAddress(tokenA, tokenB, solana.NewWallet().PublicKey())
	require.NoError(t, err)
	require.NotEqual(t, forward, other)
}

func TestDerivePermissionlessPoolAddress(t *testing.T) {
	tokenA := solana.NewWallet().PublicKey()
	tokenB := solana.NewWallet().PublicKey()

	forward, err := DerivePermissionlessPoolAddress(CurveKindConstantProduct, tokenA, tokenB)
	require.NoError(t, err)
	reversed, err := DerivePermissionlessPoolAddress(CurveKindConstantProduct, tokenB, tokenA)
	require.NoError(t, err)
	require.Equal(t, forward, reversed)

	// The curve kind byte leads the seeds, so each curve gets its own pool
	stable, err := DerivePermissionlessPoolAddress(CurveKindStable, tokenA, tokenB)
	require.NoError(t, err)
	require.NotEqual(t, forward, stable)

	// The legacy derivation is distinct from the customizable one
	customizable, err := DeriveCustomizablePoolAddress(tokenA, tokenB)
	require.NoError(t, err)
	require.NotEqual(t, forward, customizable)

	// Seed layout: curve byte, then the pair ordered larger key first
	expected, _, err := solana.FindProgramAddress(
		[][]byte{
			{byte(CurveKindConstantProduct)},
			firstKey(tokenA, tokenB).Bytes(),
			secondKey(tokenA, tokenB).Bytes(),
		},
		DynamicAmmProgramID,
	)
	require.NoError(t, err)
	require.Equal(t, expected, forward)
}

func TestDeriveLockEscrowAddressDeterministic(t *testing.T) {
	pool := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()

	escrow, bump, err := DeriveLockEscrowAddress(pool, owner)
	require.NoError(t, err)
	again, bumpAgain, err := DeriveLockEscrowAddress(pool, owner)
	require.NoError(t, err)

	require.Equal(t, escrow, again)
	require.Equal(t, bump, bumpAgain)

	// Distinct owners on the same pool get distinct escrows
	otherEscrow, _, err := DeriveLockEscrowAddress(pool, solana.NewWallet().PublicKey())
	require.NoError(t, err)
	require.NotEqual(t, escrow, otherEscrow)
}

func TestDeriveKnownPoolAddresses(t *testing.T) {
	// SOL-USDC customizable pool on mainnet
	sol := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	usdc := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	pool, err := DeriveCustomizablePoolAddress(sol, usdc)
	require.NoError(t, err)

	lpMint, err := DeriveLpMintAddress(pool)
	require.NoError(t, err)
	require.NotEqual(t, pool, lpMint)

	feeA, err := DeriveProtocolFeeAddress(sol, pool)
	require.NoError(t, err)
	feeB, err := DeriveProtocolFeeAddress(usdc, pool)
	require.NoError(t, err)
	require.NotEqual(t, feeA, feeB)
}
