package sol

import "github.com/gagliardetto/solana-go"

var (
	// WSOL is the wrapped SOL mint
	WSOL = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	// NativeSOL marks native lamport balances
	NativeSOL = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
)

// TokenAccountSize is the size of an SPL token account
const TokenAccountSize = uint64(165)
