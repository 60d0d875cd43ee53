package dynamicamm

import "github.com/gagliardetto/solana-go"

// Pool account size, 8 bytes discriminator included
const PoolSize = 8 + 944

// Basis point constants
const (
	BasisPointMax = 10000
)

// CurveKind is the numeric tag of the pool curve (matches contract enum)
type CurveKind uint8

const (
	CurveKindConstantProduct CurveKind = iota
	CurveKindStable
)

// Program IDs and system constants
var (
	// DynamicAmmProgramID is the Meteora dynamic AMM (constant product) program ID
	DynamicAmmProgramID = solana.MustPublicKeyFromBase58("Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB")

	// MetaplexProgramID is the token metadata program ID
	MetaplexProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

	// PoolAccountDiscm is the account discriminator of the pool state account
	PoolAccountDiscm = [8]byte{241, 154, 109, 4, 17, 177, 109, 188}

	// Instruction discriminators
	SwapIxDiscm                 = [8]byte{248, 198, 158, 145, 225, 117, 135, 200}
	CreateLockEscrowIxDiscm     = [8]byte{54, 87, 165, 19, 69, 227, 218, 224}
	LockIxDiscm                 = [8]byte{21, 19, 208, 43, 237, 62, 255, 87}
	ClaimFeeIxDiscm             = [8]byte{169, 32, 79, 137, 136, 232, 70, 137}
	InitCustomizablePoolIxDiscm = [8]byte{145, 24, 172, 194, 219, 125, 3, 190}
	InitPoolWithConfig2IxDiscm  = [8]byte{48, 149, 220, 130, 61, 11, 9, 178}
)

// PDA seeds
const (
	PoolSeed        = "pool"
	LpMintSeed      = "lp_mint"
	ProtocolFeeSeed = "fee"
	LockEscrowSeed  = "lock_escrow"
	MetadataSeed    = "metadata"
)
