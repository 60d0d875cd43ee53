package cpi

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	solpkg "github.com/MeteoraAg/cpi-examples/pkg/sol"
)

// fundingState is the chain state the funding helper needs: current creator
// token balances and the rent schedule figures of every account the pool
// initialization creates.
type fundingState struct {
	creatorTokenABalance uint64
	creatorTokenBBalance uint64
	poolRent             uint64
	mintRent             uint64
	tokenAccountRent     uint64
	metadataRent         uint64
}

// fetchFundingState reads balances and the live rent schedule
func (c *Composer) fetchFundingState(ctx context.Context, creatorTokenA, creatorTokenB solana.PublicKey) (fundingState, error) {
	var state fundingState
	var err error

	if state.creatorTokenABalance, err = c.tokenBalance(ctx, creatorTokenA); err != nil {
		return state, err
	}
	if state.creatorTokenBBalance, err = c.tokenBalance(ctx, creatorTokenB); err != nil {
		return state, err
	}
	if state.poolRent, err = c.rentExemption(ctx, dynamicamm.PoolSize); err != nil {
		return state, err
	}
	if state.mintRent, err = c.rentExemption(ctx, MintAccountSize); err != nil {
		return state, err
	}
	if state.tokenAccountRent, err = c.rentExemption(ctx, solpkg.TokenAccountSize); err != nil {
		return state, err
	}
	if state.metadataRent, err = c.rentExemption(ctx, MetadataAccountSize); err != nil {
		return state, err
	}
	return state, nil
}

// creatorFundingLamports totals the rent of every account initialize pool
// creates on behalf of the creator authority: the pool, its LP mint, five
// token accounts (two vault LPs, the creator LP ATA, two protocol fee
// accounts), the LP mint metadata record and the Metaplex flat fee.
func creatorFundingLamports(state fundingState) uint64 {
	lamports := state.poolRent
	lamports += state.mintRent
	lamports += state.tokenAccountRent * 5
	lamports += state.metadataRent
	lamports += MetaplexFeeLamports
	return lamports
}

// fundCreatorAuthorityInstructions tops the creator authority up so it can
// act as the pool creator: token shortfalls move from the payer ATAs, rent
// lamports from the payer wallet.
func fundCreatorAuthorityInstructions(
	tokenAAmount, tokenBAmount uint64,
	payerTokenA, payerTokenB solana.PublicKey,
	creatorTokenA, creatorTokenB solana.PublicKey,
	payer, creatorAuthority solana.PublicKey,
	state fundingState,
) ([]solana.Instruction, error) {
	instructions := make([]solana.Instruction, 0, 3)

	if tokenAAmount > state.creatorTokenABalance {
		inst, err := token.NewTransferInstruction(
			tokenAAmount-state.creatorTokenABalance,
			payerTokenA,
			creatorTokenA,
			payer,
			nil,
		).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("failed to build token a funding transfer: %w", err)
		}
		instructions = append(instructions, inst)
	}

	if tokenBAmount > state.creatorTokenBBalance {
		inst, err := token.NewTransferInstruction(
			tokenBAmount-state.creatorTokenBBalance,
			payerTokenB,
			creatorTokenB,
			payer,
			nil,
		).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("failed to build token b funding transfer: %w", err)
		}
		instructions = append(instructions, inst)
	}

	inst, err := system.NewTransferInstruction(
		creatorFundingLamports(state),
		payer,
		creatorAuthority,
	).ValidateAndBuild()
	if err != nil {
		return nil, fmt.Errorf("failed to build lamport funding transfer: %w", err)
	}
	instructions = append(instructions, inst)

	return instructions, nil
}
