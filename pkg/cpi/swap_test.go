package cpi

import (
	"encoding/binary"
	"testing"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/MeteoraAg/cpi-examples/pkg/dlmm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicvault"
)

func testDlmmSwapAccounts() dlmm.SwapAccounts {
	return dlmm.SwapAccounts{
		LbPair:       solana.NewWallet().PublicKey(),
		ReserveX:     solana.NewWallet().PublicKey(),
		ReserveY:     solana.NewWallet().PublicKey(),
		UserTokenIn:  solana.NewWallet().PublicKey(),
		UserTokenOut: solana.NewWallet().PublicKey(),
		TokenXMint:   solana.NewWallet().PublicKey(),
		TokenYMint:   solana.NewWallet().PublicKey(),
		Oracle:       solana.NewWallet().PublicKey(),
		User:         solana.NewWallet().PublicKey(),
	}
}

func TestDlmmSwapAmountsPassThrough(t *testing.T) {
	composer := NewComposer(nil, nil)

	binArrays := []solana.PublicKey{
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
	}
	seq, err := composer.DlmmSwap(DlmmSwapParams{
		Accounts:     testDlmmSwapAccounts(),
		BinArrays:    binArrays,
		AmountIn:     cosmath.NewInt(123_456_789),
		MinAmountOut: cosmath.NewInt(42),
	})
	require.NoError(t, err)
	require.Len(t, seq.Instructions, 1)
	require.Empty(t, seq.PdaSigners)

	inst := seq.Instructions[0]
	require.Equal(t, dlmm.DlmmProgramID, inst.ProgramID())

	data, err := inst.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+8+8)
	require.Equal(t, dlmm.SwapIxDiscm[:], data[:8])
	require.Equal(t, uint64(123_456_789), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, uint64(42), binary.LittleEndian.Uint64(data[16:24]))

	// Bin arrays ride along as trailing writable accounts
	metas := inst.Accounts()
	require.Len(t, metas, 15+len(binArrays))
	for i, binArray := range binArrays {
		meta := metas[15+i]
		require.Equal(t, binArray, meta.PublicKey)
		require.True(t, meta.IsWritable)
	}
}

func TestDlmmSwapOmittedOptionalAccounts(t *testing.T) {
	composer := NewComposer(nil, nil)

	seq, err := composer.DlmmSwap(DlmmSwapParams{
		Accounts:     testDlmmSwapAccounts(),
		AmountIn:     cosmath.NewInt(1),
		MinAmountOut: cosmath.NewInt(0),
	})
	require.NoError(t, err)

	metas := seq.Instructions[0].Accounts()
	// Bitmap extension and host fee slots fall back to the program ID
	require.Equal(t, dlmm.DlmmProgramID, metas[1].PublicKey)
	require.Equal(t, dlmm.DlmmProgramID, metas[9].PublicKey)
	// Token program slots default when unset
	require.Equal(t, solana.TokenProgramID, metas[11].PublicKey)
	require.Equal(t, solana.TokenProgramID, metas[12].PublicKey)
}

func TestDlmmSwapRequiresUser(t *testing.T) {
	composer := NewComposer(nil, nil)

	accounts := testDlmmSwapAccounts()
	accounts.User = solana.PublicKey{}
	_, err := composer.DlmmSwap(DlmmSwapParams{
		Accounts:     accounts,
		AmountIn:     cosmath.NewInt(1),
		MinAmountOut: cosmath.NewInt(0),
	})
	require.ErrorIs(t, err, ErrMissingSigner)
}

func TestDlmmSwapRejectsOversizedAmount(t *testing.T) {
	composer := NewComposer(nil, nil)

	tooBig, ok := cosmath.NewIntFromString("18446744073709551616")
	require.True(t, ok)

	_, err := composer.DlmmSwap(DlmmSwapParams{
		Accounts:     testDlmmSwapAccounts(),
		AmountIn:     tooBig,
		MinAmountOut: cosmath.NewInt(0),
	})
	require.ErrorIs(t, err, ErrAmountOverflow)

	_, err = composer.DlmmSwap(DlmmSwapParams{
		Accounts:     testDlmmSwapAccounts(),
		AmountIn:     cosmath.NewInt(-1),
		MinAmountOut: cosmath.NewInt(0),
	})
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func testDynamicAmmSwapAccounts() dynamicamm.SwapAccounts {
	return dynamicamm.SwapAccounts{
		Pool:                 solana.NewWallet().PublicKey(),
		UserSourceToken:      solana.NewWallet().PublicKey(),
		UserDestinationToken: solana.NewWallet().PublicKey(),
		AVault:               solana.NewWallet().PublicKey(),
		BVault:               solana.NewWallet().PublicKey(),
		ATokenVault:          solana.NewWallet().PublicKey(),
		BTokenVault:          solana.NewWallet().PublicKey(),
		AVaultLpMint:         solana.NewWallet().PublicKey(),
		BVaultLpMint:         solana.NewWallet().PublicKey(),
		AVaultLp:             solana.NewWallet().PublicKey(),
		BVaultLp:             solana.NewWallet().PublicKey(),
		ProtocolTokenFee:     solana.NewWallet().PublicKey(),
		User:                 solana.NewWallet().PublicKey(),
	}
}

func TestDynamicAmmSwapAmountsPassThrough(t *testing.T) {
	composer := NewComposer(nil, nil)

	seq, err := composer.DynamicAmmSwap(DynamicAmmSwapParams{
		Accounts:     testDynamicAmmSwapAccounts(),
		AmountIn:     cosmath.NewInt(987_654_321),
		MinAmountOut: cosmath.NewInt(7),
	})
	require.NoError(t, err)
	require.Len(t, seq.Instructions, 1)

	inst := seq.Instructions[0]
	require.Equal(t, dynamicamm.DynamicAmmProgramID, inst.ProgramID())

	data, err := inst.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+8+8)
	require.Equal(t, dynamicamm.SwapIxDiscm[:], data[:8])
	require.Equal(t, uint64(987_654_321), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, uint64(7), binary.LittleEndian.Uint64(data[16:24]))

	metas := inst.Accounts()
	require.Len(t, metas, 15)
	// User signs, vault program slot resolves to the pinned ID
	require.True(t, metas[12].IsSigner)
	require.Equal(t, dynamicvault.DynamicVaultProgramID, metas[13].PublicKey)
}

func TestDynamicAmmSwapRejectsForeignVaultProgram(t *testing.T) {
	composer := NewComposer(nil, nil)

	accounts := testDynamicAmmSwapAccounts()
	accounts.VaultProgram = solana.NewWallet().PublicKey()
	_, err := composer.DynamicAmmSwap(DynamicAmmSwapParams{
		Accounts:     accounts,
		AmountIn:     cosmath.NewInt(1),
		MinAmountOut: cosmath.NewInt(0),
	})
	require.ErrorIs(t, err, ErrProgramMismatch)
}
