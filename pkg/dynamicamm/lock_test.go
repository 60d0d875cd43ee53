package dynamicamm

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestCreateLockEscrowInstruction(t *testing.T) {
	accounts := CreateLockEscrowAccounts{
		Pool:          solana.NewWallet().PublicKey(),
		LockEscrow:    solana.NewWallet().PublicKey(),
		Owner:         solana.NewWallet().PublicKey(),
		LpMint:        solana.NewWallet().PublicKey(),
		Payer:         solana.NewWallet().PublicKey(),
		SystemProgram: solana.SystemProgramID,
	}

	inst := NewCreateLockEscrowInstruction(accounts)
	require.Equal(t, DynamicAmmProgramID, inst.ProgramID())

	metas := inst.Accounts()
	require.Len(t, metas, 6)
	require.Equal(t, accounts.Pool, metas[0].PublicKey)
	require.True(t, metas[0].IsWritable)
	require.Equal(t, accounts.Owner, metas[2].PublicKey)
	require.False(t, metas[2].IsSigner)
	require.Equal(t, accounts.Payer, metas[4].PublicKey)
	require.True(t, metas[4].IsSigner)
	require.True(t, metas[4].IsWritable)

	data, err := inst.Data()
	require.NoError(t, err)
	require.Equal(t, CreateLockEscrowIxDiscm[:], data)
}

func TestLockInstruction(t *testing.T) {
	accounts := LockAccounts{
		Pool:         solana.NewWallet().PublicKey(),
		LpMint:       solana.NewWallet().PublicKey(),
		LockEscrow:   solana.NewWallet().PublicKey(),
		Owner:        solana.NewWallet().PublicKey(),
		SourceTokens: solana.NewWallet().PublicKey(),
		EscrowVault:  solana.NewWallet().PublicKey(),
		TokenProgram: solana.TokenProgramID,
		AVault:       solana.NewWallet().PublicKey(),
		BVault:       solana.NewWallet().PublicKey(),
		AVaultLp:     solana.NewWallet().PublicKey(),
		BVaultLp:     solana.NewWallet().PublicKey(),
		AVaultLpMint: solana.NewWallet().PublicKey(),
		BVaultLpMint: solana.NewWallet().PublicKey(),
	}

	inst := NewLockInstruction(accounts, 42_000)

	metas := inst.Accounts()
	require.Len(t, metas, 13)
	require.Equal(t, accounts.Owner, metas[3].PublicKey)
	require.True(t, metas[3].IsSigner)
	require.Equal(t, accounts.SourceTokens, metas[4].PublicKey)
	require.True(t, metas[4].IsWritable)
	require.Equal(t, solana.TokenProgramID, metas[6].PublicKey)
	for _, meta := range metas[7:] {
		require.False(t, meta.IsWritable)
	}

	data, err := inst.Data()
	require.NoError(t, err)
	require.Len(t, data, 16)
	require.Equal(t, LockIxDiscm[:], data[:8])
	require.Equal(t, uint64(42_000), binary.LittleEndian.Uint64(data[8:]))
}

func TestClaimFeeInstruction(t *testing.T) {
	escrowVault := solana.NewWallet().PublicKey()
	accounts := ClaimFeeAccounts{
		Pool:         solana.NewWallet().PublicKey(),
		LpMint:       solana.NewWallet().PublicKey(),
		LockEscrow:   solana.NewWallet().PublicKey(),
		Owner:        solana.NewWallet().PublicKey(),
		SourceTokens: escrowVault,
		EscrowVault:  escrowVault,
		TokenProgram: solana.TokenProgramID,
		ATokenVault:  solana.NewWallet().PublicKey(),
		BTokenVault:  solana.NewWallet().PublicKey(),
		AVault:       solana.NewWallet().PublicKey(),
		BVault:       solana.NewWallet().PublicKey(),
		AVaultLp:     solana.NewWallet().PublicKey(),
		BVaultLp:     solana.NewWallet().PublicKey(),
		AVaultLpMint: solana.NewWallet().PublicKey(),
		BVaultLpMint: solana.NewWallet().PublicKey(),
		UserAToken:   solana.NewWallet().PublicKey(),
		UserBToken:   solana.NewWallet().PublicKey(),
		VaultProgram: solana.NewWallet().PublicKey(),
	}

	inst := NewClaimFeeInstruction(accounts, MaxClaimAmount)

	metas := inst.Accounts()
	require.Len(t, metas, 18)
	require.Equal(t, accounts.Owner, metas[3].PublicKey)
	require.True(t, metas[3].IsSigner)
	// The unused source slot carries the escrow vault
	require.Equal(t, escrowVault, metas[4].PublicKey)
	require.Equal(t, escrowVault, metas[5].PublicKey)
	require.Equal(t, accounts.VaultProgram, metas[17].PublicKey)
	require.False(t, metas[17].IsWritable)

	data, err := inst.Data()
	require.NoError(t, err)
	require.Len(t, data, 16)
	require.Equal(t, ClaimFeeIxDiscm[:], data[:8])
	require.Equal(t, MaxClaimAmount, binary.LittleEndian.Uint64(data[8:]))
}
