package cpi

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
)

// PdaSigner is the seed material proving authority over a program derived
// address. The seeds include the bump as the trailing element, in the order
// the owning program verifies them.
type PdaSigner struct {
	Address solana.PublicKey
	Bump    uint8
	Seeds   [][]byte
}

// DeriveCreatorAuthority derives the creator authority signer from the
// constant seed
func DeriveCreatorAuthority() (PdaSigner, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(CreatorAuthoritySeed)},
		AdapterProgramID,
	)
	if err != nil {
		return PdaSigner{}, fmt.Errorf("failed to derive creator authority: %w", err)
	}
	return PdaSigner{
		Address: addr,
		Bump:    bump,
		Seeds:   [][]byte{[]byte(CreatorAuthoritySeed), {bump}},
	}, nil
}

// DeriveLockEscrowSigner derives the lock escrow signer of an owner on a pool
func DeriveLockEscrowSigner(pool, owner solana.PublicKey) (PdaSigner, error) {
	addr, bump, err := dynamicamm.DeriveLockEscrowAddress(pool, owner)
	if err != nil {
		return PdaSigner{}, err
	}
	return PdaSigner{
		Address: addr,
		Bump:    bump,
		Seeds: [][]byte{
			[]byte(dynamicamm.LockEscrowSeed),
			pool.Bytes(),
			owner.Bytes(),
			{bump},
		},
	}, nil
}
