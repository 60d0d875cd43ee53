package cpi

import (
	"context"
	"fmt"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/stakeforfee"
)

// InitializeStakeVaultParams are the inputs of the stake-for-fee vault
// bootstrap. StakeMint defaults to the pool's token A mint; the quote side is
// always the other pool mint. SourceLpTokens defaults to the payer's LP
// associated token account.
type InitializeStakeVaultParams struct {
	Pool           solana.PublicKey
	Payer          solana.PublicKey
	StakeMint      solana.PublicKey
	SourceLpTokens solana.PublicKey
	MaxAmount      cosmath.Int
	VaultParams    stakeforfee.InitializeVaultParams
}

// InitializeStakeVault composes the stake-for-fee vault bootstrap: a lock
// escrow owned by the vault, the payer's LP locked into it up to MaxAmount,
// and the vault initialization itself, all in one transaction.
func (c *Composer) InitializeStakeVault(ctx context.Context, params InitializeStakeVaultParams) (*Sequence, error) {
	if err := requireSigner("payer", params.Payer); err != nil {
		return nil, err
	}
	maxAmount, err := amountToU64(params.MaxAmount)
	if err != nil {
		return nil, fmt.Errorf("max amount: %w", err)
	}

	pool, err := c.FetchPool(ctx, params.Pool)
	if err != nil {
		return nil, err
	}

	stakeMint := params.StakeMint
	if stakeMint.IsZero() {
		stakeMint = pool.TokenAMint
	}
	var quoteMint solana.PublicKey
	switch {
	case stakeMint.Equals(pool.TokenAMint):
		quoteMint = pool.TokenBMint
	case stakeMint.Equals(pool.TokenBMint):
		quoteMint = pool.TokenAMint
	default:
		return nil, fmt.Errorf("%w: stake mint %s is not a pool mint", ErrTokenAccountMismatch, stakeMint)
	}

	vault, err := stakeforfee.DeriveVaultAddress(params.Pool)
	if err != nil {
		return nil, err
	}
	topStakerList, err := stakeforfee.DeriveTopStakerListAddress(vault)
	if err != nil {
		return nil, err
	}
	fullBalanceList, err := stakeforfee.DeriveFullBalanceListAddress(vault)
	if err != nil {
		return nil, err
	}
	eventAuthority, err := stakeforfee.DeriveEventAuthority()
	if err != nil {
		return nil, err
	}
	stakeTokenVault, _, err := solana.FindAssociatedTokenAddress(vault, stakeMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive stake token vault: %w", err)
	}
	quoteTokenVault, _, err := solana.FindAssociatedTokenAddress(vault, quoteMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive quote token vault: %w", err)
	}

	sourceLpTokens := params.SourceLpTokens
	if sourceLpTokens.IsZero() {
		if sourceLpTokens, _, err = solana.FindAssociatedTokenAddress(params.Payer, pool.LpMint); err != nil {
			return nil, fmt.Errorf("failed to derive source lp account: %w", err)
		}
	}

	lockEscrow, _, err := dynamicamm.DeriveLockEscrowAddress(params.Pool, vault)
	if err != nil {
		return nil, err
	}
	escrowVault, _, err := solana.FindAssociatedTokenAddress(lockEscrow, pool.LpMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow vault: %w", err)
	}

	instructions, err := c.composeLockSequence(ctx, pool, params.Payer, sourceLpTokens, params.Payer, []lockTarget{{
		amount:      maxAmount,
		owner:       vault,
		lockEscrow:  lockEscrow,
		escrowVault: escrowVault,
	}})
	if err != nil {
		return nil, err
	}

	instructions = append(instructions, stakeforfee.NewInitializeVaultInstruction(stakeforfee.InitializeVaultAccounts{
		Vault:                  vault,
		StakeTokenVault:        stakeTokenVault,
		QuoteTokenVault:        quoteTokenVault,
		TopStakerList:          topStakerList,
		FullBalanceList:        fullBalanceList,
		StakeMint:              stakeMint,
		QuoteMint:              quoteMint,
		Pool:                   params.Pool,
		LockEscrow:             lockEscrow,
		Payer:                  params.Payer,
		SystemProgram:          solana.SystemProgramID,
		TokenProgram:           solana.TokenProgramID,
		AssociatedTokenProgram: solana.SPLAssociatedTokenAccountProgramID,
		EventAuthority:         eventAuthority,
	}, params.VaultParams))

	return &Sequence{Instructions: instructions}, nil
}
