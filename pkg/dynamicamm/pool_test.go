package dynamicamm

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func putKey(data []byte, offset int, key solana.PublicKey) {
	copy(data[offset:offset+32], key.Bytes())
}

func TestPoolDecode(t *testing.T) {
	lpMint := solana.NewWallet().PublicKey()
	tokenAMint := solana.NewWallet().PublicKey()
	tokenBMint := solana.NewWallet().PublicKey()
	aVault := solana.NewWallet().PublicKey()
	bVault := solana.NewWallet().PublicKey()
	aVaultLp := solana.NewWallet().PublicKey()
	bVaultLp := solana.NewWallet().PublicKey()
	protocolAFee := solana.NewWallet().PublicKey()
	protocolBFee := solana.NewWallet().PublicKey()
	stake := solana.NewWallet().PublicKey()

	data := make([]byte, PoolSize)
	copy(data[:8], PoolAccountDiscm[:])

	body := data[8:]
	putKey(body, 0, lpMint)
	putKey(body, 32, tokenAMint)
	putKey(body, 64, tokenBMint)
	putKey(body, 96, aVault)
	putKey(body, 128, bVault)
	putKey(body, 160, aVaultLp)
	putKey(body, 192, bVaultLp)
	body[224] = 254 // a_vault_lp_bump
	body[225] = 1   // enabled
	putKey(body, 226, protocolAFee)
	putKey(body, 258, protocolBFee)
	binary.LittleEndian.PutUint64(body[290:298], 1_700_000_000)
	// 24 bytes of padding at 298
	binary.LittleEndian.PutUint64(body[322:330], 250)     // trade fee numerator
	binary.LittleEndian.PutUint64(body[330:338], 100_000) // trade fee denominator
	binary.LittleEndian.PutUint64(body[338:346], 20)      // protocol fee numerator
	binary.LittleEndian.PutUint64(body[346:354], 100)     // protocol fee denominator
	body[354] = 1 // pool type
	putKey(body, 355, stake)
	binary.LittleEndian.PutUint64(body[387:395], 123_456_789)

	var pool Pool
	require.NoError(t, pool.Decode(data))

	require.Equal(t, lpMint, pool.LpMint)
	require.Equal(t, tokenAMint, pool.TokenAMint)
	require.Equal(t, tokenBMint, pool.TokenBMint)
	require.Equal(t, aVault, pool.AVault)
	require.Equal(t, bVault, pool.BVault)
	require.Equal(t, aVaultLp, pool.AVaultLp)
	require.Equal(t, bVaultLp, pool.BVaultLp)
	require.Equal(t, uint8(254), pool.AVaultLpBump)
	require.True(t, pool.Enabled)
	require.Equal(t, protocolAFee, pool.ProtocolTokenAFee)
	require.Equal(t, protocolBFee, pool.ProtocolTokenBFee)
	require.Equal(t, uint64(1_700_000_000), pool.FeeLastUpdatedAt)
	require.Equal(t, uint64(250), pool.Fees.TradeFeeNumerator)
	require.Equal(t, uint64(100_000), pool.Fees.TradeFeeDenominator)
	require.Equal(t, uint64(20), pool.Fees.ProtocolTradeFeeNumerator)
	require.Equal(t, uint64(100), pool.Fees.ProtocolTradeFeeDenominator)
	require.Equal(t, uint8(1), pool.PoolType)
	require.Equal(t, stake, pool.Stake)
	require.Equal(t, uint64(123_456_789), pool.TotalLockedLp)

	require.True(t, pool.HasLpMint(lpMint))
	require.False(t, pool.HasLpMint(tokenAMint))
}

func TestPoolDecodeRejectsBadDiscriminator(t *testing.T) {
	data := make([]byte, PoolSize)
	copy(data[:8], []byte{1, 2, 3, 4, 5, 6, 7, 8})

	var pool Pool
	require.Error(t, pool.Decode(data))
}

func TestPoolDecodeRejectsShortData(t *testing.T) {
	var pool Pool
	require.Error(t, pool.Decode(make([]byte, 100)))
	require.Error(t, pool.Decode(nil))
}
