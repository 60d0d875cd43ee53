package dynamicvault

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DeriveVaultAddress derives the vault account for a token mint under the
// permissionless vault base key
func DeriveVaultAddress(tokenMint solana.PublicKey) (solana.PublicKey, error) {
	vault, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("vault"),
			tokenMint.Bytes(),
			VaultBaseAddress.Bytes(),
		},
		DynamicVaultProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive vault address: %w", err)
	}
	return vault, nil
}

// DeriveTokenVaultAddress derives the token account holding the vault's liquidity
func DeriveTokenVaultAddress(vault solana.PublicKey) (solana.PublicKey, error) {
	tokenVault, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("token_vault"),
			vault.Bytes(),
		},
		DynamicVaultProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive token vault address: %w", err)
	}
	return tokenVault, nil
}

// DeriveLpMintAddress derives the vault's LP mint
func DeriveLpMintAddress(vault solana.PublicKey) (solana.PublicKey, error) {
	lpMint, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("lp_mint"),
			vault.Bytes(),
		},
		DynamicVaultProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive vault lp mint address: %w", err)
	}
	return lpMint, nil
}
