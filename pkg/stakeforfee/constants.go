package stakeforfee

import "github.com/gagliardetto/solana-go"

var (
	// StakeForFeeProgramID is the M3M3 stake-for-fee program
	StakeForFeeProgramID = solana.MustPublicKeyFromBase58("FEESngU3neckdwib9X3KWqdL7Mjmqk9XNp3uh5JbP4KP")
)

var (
	// InitializeVaultIxDiscm is the anchor discriminator of initialize_vault
	InitializeVaultIxDiscm = [8]byte{48, 191, 163, 44, 71, 129, 63, 164}
)

const (
	VaultSeed           = "vault"
	TopStakerListSeed   = "list"
	FullBalanceListSeed = "balance"
	EventAuthoritySeed  = "__event_authority"
)
