package cpi

import "github.com/gagliardetto/solana-go"

var (
	// AdapterProgramID is the on-chain identity the creator authority is
	// derived under
	AdapterProgramID = solana.MustPublicKeyFromBase58("4JTNRRQpgLusbEhGnzTuE9kgPgMLXQX1wqBzU52GduqH")
)

const (
	// CreatorAuthoritySeed is the constant seed of the creator authority
	CreatorAuthoritySeed = "creator"

	// BasisPointMax is the denominator of allocation weights
	BasisPointMax = 10_000

	// MintAccountSize is the size of an SPL token mint account
	MintAccountSize = 82

	// MetadataAccountSize is the size of a Metaplex metadata record
	MetadataAccountSize = 679

	// MetaplexFeeLamports is the flat fee charged on metadata creation
	MetaplexFeeLamports = 10_000_000
)
