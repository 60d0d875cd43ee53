package cpi

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// requireSigner fails when a slot that must sign is unset
func requireSigner(name string, key solana.PublicKey) error {
	if key.IsZero() {
		return fmt.Errorf("%w: %s", ErrMissingSigner, name)
	}
	return nil
}

// requireProgram fails when a fixed program slot carries a different program.
// An unset slot resolves to the pinned ID, so callers may leave it zero.
func requireProgram(name string, got, want solana.PublicKey) (solana.PublicKey, error) {
	if got.IsZero() {
		return want, nil
	}
	if !got.Equals(want) {
		return solana.PublicKey{}, fmt.Errorf("%w: %s is %s, expected %s", ErrProgramMismatch, name, got, want)
	}
	return want, nil
}
