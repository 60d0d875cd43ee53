package cpi

import (
	"fmt"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"github.com/MeteoraAg/cpi-examples/pkg/dlmm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicvault"
)

// DlmmSwapParams are the inputs of a DLMM swap. Accounts are forwarded to the
// bin exchange program unchanged, bin arrays included.
type DlmmSwapParams struct {
	Accounts     dlmm.SwapAccounts
	BinArrays    []solana.PublicKey
	AmountIn     cosmath.Int
	MinAmountOut cosmath.Int
}

// DlmmSwap composes a swap against a DLMM pair. Amounts pass through to the
// callee without interpretation.
func (c *Composer) DlmmSwap(params DlmmSwapParams) (*Sequence, error) {
	if err := requireSigner("user", params.Accounts.User); err != nil {
		return nil, err
	}
	amountIn, err := amountToU64(params.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("amount in: %w", err)
	}
	minAmountOut, err := amountToU64(params.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("min amount out: %w", err)
	}

	accounts := params.Accounts
	if accounts.TokenXProgram.IsZero() {
		accounts.TokenXProgram = solana.TokenProgramID
	}
	if accounts.TokenYProgram.IsZero() {
		accounts.TokenYProgram = solana.TokenProgramID
	}
	if accounts.EventAuthority.IsZero() {
		accounts.EventAuthority, err = dlmm.DeriveEventAuthority()
		if err != nil {
			return nil, err
		}
	}

	return &Sequence{
		Instructions: []solana.Instruction{
			dlmm.NewSwapInstruction(accounts, amountIn, minAmountOut, params.BinArrays),
		},
	}, nil
}

// DynamicAmmSwapParams are the inputs of a constant product pool swap
type DynamicAmmSwapParams struct {
	Accounts     dynamicamm.SwapAccounts
	AmountIn     cosmath.Int
	MinAmountOut cosmath.Int
}

// DynamicAmmSwap composes a swap against a dynamic AMM pool
func (c *Composer) DynamicAmmSwap(params DynamicAmmSwapParams) (*Sequence, error) {
	if err := requireSigner("user", params.Accounts.User); err != nil {
		return nil, err
	}
	amountIn, err := amountToU64(params.AmountIn)
	if err != nil {
		return nil, fmt.Errorf("amount in: %w", err)
	}
	minAmountOut, err := amountToU64(params.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("min amount out: %w", err)
	}

	accounts := params.Accounts
	accounts.VaultProgram, err = requireProgram("vault program", accounts.VaultProgram, dynamicvault.DynamicVaultProgramID)
	if err != nil {
		return nil, err
	}
	if accounts.TokenProgram.IsZero() {
		accounts.TokenProgram = solana.TokenProgramID
	}

	return &Sequence{
		Instructions: []solana.Instruction{
			dynamicamm.NewSwapInstruction(accounts, amountIn, minAmountOut),
		},
	}, nil
}
