package cpi

import (
	"encoding/binary"
	"testing"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
)

func TestDeriveInitPoolKeysDeterministic(t *testing.T) {
	tokenA := solana.NewWallet().PublicKey()
	tokenB := solana.NewWallet().PublicKey()

	pool, err := dynamicamm.DeriveCustomizablePoolAddress(tokenA, tokenB)
	require.NoError(t, err)

	first, err := DeriveInitPoolKeys(pool, tokenA, tokenB)
	require.NoError(t, err)
	second, err := DeriveInitPoolKeys(pool, tokenA, tokenB)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Every derived slot is distinct and populated
	seen := map[solana.PublicKey]bool{}
	for _, key := range []solana.PublicKey{
		first.Pool, first.LpMint,
		first.AVault, first.BVault,
		first.ATokenVault, first.BTokenVault,
		first.AVaultLpMint, first.BVaultLpMint,
		first.AVaultLp, first.BVaultLp,
		first.ProtocolTokenAFee, first.ProtocolTokenBFee,
		first.MintMetadata,
	} {
		require.False(t, key.IsZero())
		require.False(t, seen[key])
		seen[key] = true
	}
}

func TestInitializeCustomizablePoolComposesSingleCall(t *testing.T) {
	composer := NewComposer(nil, nil)

	payer := solana.NewWallet().PublicKey()
	params := InitPoolParams{
		TokenAMint:   solana.NewWallet().PublicKey(),
		TokenBMint:   solana.NewWallet().PublicKey(),
		Payer:        payer,
		TokenAAmount: cosmath.NewInt(1_000_000),
		TokenBAmount: cosmath.NewInt(2_000_000),
		PoolParams: dynamicamm.CustomizableParams{
			TradeFeeNumerator: 2500,
			ActivationType:    1,
		},
	}

	seq, err := composer.InitializeCustomizablePool(params)
	require.NoError(t, err)
	require.Len(t, seq.Instructions, 1)
	require.Empty(t, seq.PdaSigners)

	inst := seq.Instructions[0]
	require.Equal(t, dynamicamm.DynamicAmmProgramID, inst.ProgramID())

	metas := inst.Accounts()
	require.Len(t, metas, 25)

	// The payer is the only signer
	signers := 0
	for _, meta := range metas {
		if meta.IsSigner {
			signers++
			require.Equal(t, payer, meta.PublicKey)
		}
	}
	require.Equal(t, 1, signers)

	data, err := inst.Data()
	require.NoError(t, err)
	// discriminator, two u64 amounts, params without activation point
	require.Len(t, data, 8+8+8+4+1+1+1+90)
	require.Equal(t, dynamicamm.InitCustomizablePoolIxDiscm[:], data[:8])
	require.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[8:16]))
	require.Equal(t, uint64(2_000_000), binary.LittleEndian.Uint64(data[16:24]))
	require.Equal(t, uint32(2500), binary.LittleEndian.Uint32(data[24:28]))
	// Absent activation point encodes as a single zero tag
	require.Equal(t, byte(0), data[28])
}

func TestInitializePoolWithConfigIncludesConfigAccount(t *testing.T) {
	composer := NewComposer(nil, nil)

	config := solana.NewWallet().PublicKey()
	activation := uint64(1_750_000_000)
	params := InitPoolParams{
		TokenAMint:      solana.NewWallet().PublicKey(),
		TokenBMint:      solana.NewWallet().PublicKey(),
		Config:          config,
		Payer:           solana.NewWallet().PublicKey(),
		TokenAAmount:    cosmath.NewInt(5),
		TokenBAmount:    cosmath.NewInt(10),
		ActivationPoint: &activation,
	}

	seq, err := composer.InitializePoolWithConfig(params)
	require.NoError(t, err)
	require.Len(t, seq.Instructions, 1)

	inst := seq.Instructions[0]
	metas := inst.Accounts()
	require.Len(t, metas, 26)
	require.Equal(t, config, metas[1].PublicKey)

	data, err := inst.Data()
	require.NoError(t, err)
	// discriminator, two u64 amounts, activation point option
	require.Len(t, data, 8+8+8+1+8)
	require.Equal(t, dynamicamm.InitPoolWithConfig2IxDiscm[:], data[:8])
	require.Equal(t, byte(1), data[24])
	require.Equal(t, activation, binary.LittleEndian.Uint64(data[25:33]))
}

func TestInitPoolRequiresPayer(t *testing.T) {
	composer := NewComposer(nil, nil)

	_, err := composer.InitializeCustomizablePool(InitPoolParams{
		TokenAMint:   solana.NewWallet().PublicKey(),
		TokenBMint:   solana.NewWallet().PublicKey(),
		TokenAAmount: cosmath.NewInt(1),
		TokenBAmount: cosmath.NewInt(1),
	})
	require.ErrorIs(t, err, ErrMissingSigner)
}
