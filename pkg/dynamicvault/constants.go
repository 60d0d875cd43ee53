package dynamicvault

import "github.com/gagliardetto/solana-go"

// Program IDs and system constants
var (
	// DynamicVaultProgramID is the Meteora dynamic vault program ID
	DynamicVaultProgramID = solana.MustPublicKeyFromBase58("24Uqj9JCLxUeoC3hGfh5W3s9FM9uCHDS2SG3LYwBpyTi")

	// VaultBaseAddress is the base key used for permissionless vault derivation
	VaultBaseAddress = solana.MustPublicKeyFromBase58("HWzXGcGHy4tcpYfaRDCyLNzXqBTv3E6BttpCH2vJxArv")
)
