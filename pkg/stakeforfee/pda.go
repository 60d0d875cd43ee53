package stakeforfee

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// DeriveVaultAddress derives the stake-for-fee vault address of a pool
func DeriveVaultAddress(pool solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(VaultSeed), pool.Bytes()},
		StakeForFeeProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive vault address: %w", err)
	}
	return addr, nil
}

// DeriveTopStakerListAddress derives the top staker list address of a vault
func DeriveTopStakerListAddress(vault solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(TopStakerListSeed), vault.Bytes()},
		StakeForFeeProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive top staker list address: %w", err)
	}
	return addr, nil
}

// DeriveFullBalanceListAddress derives the full balance list address of a vault
func DeriveFullBalanceListAddress(vault solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(FullBalanceListSeed), vault.Bytes()},
		StakeForFeeProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive full balance list address: %w", err)
	}
	return addr, nil
}

// DeriveEventAuthority derives the event authority of the stake-for-fee program
func DeriveEventAuthority() (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(EventAuthoritySeed)},
		StakeForFeeProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive event authority: %w", err)
	}
	return addr, nil
}
