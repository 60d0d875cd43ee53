package dlmm

import "github.com/gagliardetto/solana-go"

// Program IDs and system constants
var (
	// DlmmProgramID is the Meteora DLMM program ID
	DlmmProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

	// IlmBaseKey is the base key for customizable permissionless lb pair derivation
	IlmBaseKey = solana.MustPublicKeyFromBase58("MFGQxwAmB91SwuYX36okv2Qmdc9aMuHTwWGUrp4AtB1")

	// SwapIxDiscm is the instruction discriminator for the swap instruction
	SwapIxDiscm = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
)

// Seeds used for program derived addresses
const (
	BinArraySeed       = "bin_array"
	OracleSeed         = "oracle"
	BitmapSeed         = "bitmap"
	EventAuthoritySeed = "__event_authority"
)
