package dynamicamm

import (
	"bytes"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// firstKey returns the larger of two keys, secondKey the smaller. Pool
// derivation orders the pair this way on chain.
func firstKey(a, b solana.PublicKey) solana.PublicKey {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		return a
	}
	return b
}

func secondKey(a, b solana.PublicKey) solana.PublicKey {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		return b
	}
	return a
}

// DeriveCustomizablePoolAddress derives the customizable permissionless
// constant product pool for a token pair
func DeriveCustomizablePoolAddress(tokenAMint, tokenBMint solana.PublicKey) (solana.PublicKey, error) {
	pool, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(PoolSeed),
			firstKey(tokenAMint, tokenBMint).Bytes(),
			secondKey(tokenAMint, tokenBMint).Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive customizable pool address: %w", err)
	}
	return pool, nil
}

// DerivePoolWithConfigAddress derives the config based permissionless pool for
// a token pair and a fee config account
func DerivePoolWithConfigAddress(tokenAMint, tokenBMint, config solana.PublicKey) (solana.PublicKey, error) {
	pool, _, err := solana.FindProgramAddress(
		[][]byte{
			firstKey(tokenAMint, tokenBMint).Bytes(),
			secondKey(tokenAMint, tokenBMint).Bytes(),
			config.Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive pool with config address: %w", err)
	}
	return pool, nil
}

// DerivePermissionlessPoolAddress derives the legacy permissionless pool for a
// curve kind and token pair
func DerivePermissionlessPoolAddress(curve CurveKind, tokenAMint, tokenBMint solana.PublicKey) (solana.PublicKey, error) {
	pool, _, err := solana.FindProgramAddress(
		[][]byte{
			{byte(curve)},
			firstKey(tokenAMint, tokenBMint).Bytes(),
			secondKey(tokenAMint, tokenBMint).Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive permissionless pool address: %w", err)
	}
	return pool, nil
}

// DeriveLpMintAddress derives the pool LP mint
func DeriveLpMintAddress(pool solana.PublicKey) (solana.PublicKey, error) {
	lpMint, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(LpMintSeed),
			pool.Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive lp mint address: %w", err)
	}
	return lpMint, nil
}

// DeriveProtocolFeeAddress derives the protocol fee token account of a pool
// for one of its mints
func DeriveProtocolFeeAddress(tokenMint, pool solana.PublicKey) (solana.PublicKey, error) {
	fee, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(ProtocolFeeSeed),
			tokenMint.Bytes(),
			pool.Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive protocol fee address: %w", err)
	}
	return fee, nil
}

// DeriveVaultLpAddress derives the pool's LP token account of a dynamic vault
func DeriveVaultLpAddress(vault, pool solana.PublicKey) (solana.PublicKey, error) {
	vaultLp, _, err := solana.FindProgramAddress(
		[][]byte{
			vault.Bytes(),
			pool.Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive vault lp address: %w", err)
	}
	return vaultLp, nil
}

// DeriveLockEscrowAddress derives the lock escrow of an owner on a pool
func DeriveLockEscrowAddress(pool, owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	escrow, bump, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(LockEscrowSeed),
			pool.Bytes(),
			owner.Bytes(),
		},
		DynamicAmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive lock escrow address: %w", err)
	}
	return escrow, bump, nil
}

// DeriveMetadataAddress derives the Metaplex metadata record of the pool LP mint
func DeriveMetadataAddress(lpMint solana.PublicKey) (solana.PublicKey, error) {
	metadata, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(MetadataSeed),
			MetaplexProgramID.Bytes(),
			lpMint.Bytes(),
		},
		MetaplexProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive metadata address: %w", err)
	}
	return metadata, nil
}
