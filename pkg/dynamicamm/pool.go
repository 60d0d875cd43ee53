package dynamicamm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// PoolFees is the fee configuration stored on the pool account
type PoolFees struct {
	TradeFeeNumerator           uint64
	TradeFeeDenominator         uint64
	ProtocolTradeFeeNumerator   uint64
	ProtocolTradeFeeDenominator uint64
}

// Pool is the dynamic AMM pool state. Only the leading fields needed to build
// outgoing calls are decoded; trailing curve and bootstrap state is skipped.
type Pool struct {
	LpMint            solana.PublicKey
	TokenAMint        solana.PublicKey
	TokenBMint        solana.PublicKey
	AVault            solana.PublicKey
	BVault            solana.PublicKey
	AVaultLp          solana.PublicKey
	BVaultLp          solana.PublicKey
	AVaultLpBump      uint8
	Enabled           bool
	ProtocolTokenAFee solana.PublicKey
	ProtocolTokenBFee solana.PublicKey
	FeeLastUpdatedAt  uint64
	Fees              PoolFees
	PoolType          uint8
	Stake             solana.PublicKey
	TotalLockedLp     uint64

	PoolID solana.PublicKey
}

// Decode parses the pool account data, verifying the account discriminator
func (p *Pool) Decode(data []byte) error {
	if len(data) < PoolSize {
		return fmt.Errorf("pool account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:8], PoolAccountDiscm[:]) {
		return fmt.Errorf("not a pool account: bad discriminator")
	}
	data = data[8:]

	offset := 0

	p.LpMint = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.TokenAMint = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.TokenBMint = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.AVault = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.BVault = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.AVaultLp = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.BVaultLp = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.AVaultLpBump = data[offset]
	offset += 1

	p.Enabled = data[offset] != 0
	offset += 1

	p.ProtocolTokenAFee = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.ProtocolTokenBFee = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.FeeLastUpdatedAt = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	// Skip padding0
	offset += 24

	p.Fees.TradeFeeNumerator = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8
	p.Fees.TradeFeeDenominator = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8
	p.Fees.ProtocolTradeFeeNumerator = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8
	p.Fees.ProtocolTradeFeeDenominator = binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	p.PoolType = data[offset]
	offset += 1

	p.Stake = solana.PublicKeyFromBytes(data[offset : offset+32])
	offset += 32

	p.TotalLockedLp = binary.LittleEndian.Uint64(data[offset : offset+8])

	// Remaining bootstrap, partner and curve state is not needed to shape calls
	return nil
}

// HasLpMint reports whether the supplied mint matches the pool's recorded LP mint
func (p *Pool) HasLpMint(lpMint solana.PublicKey) bool {
	return p.LpMint.Equals(lpMint)
}
