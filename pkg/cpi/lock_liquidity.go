package cpi

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicvault"
)

// lockTarget is one recipient of a liquidity lock
type lockTarget struct {
	amount      uint64
	owner       solana.PublicKey
	lockEscrow  solana.PublicKey
	escrowVault solana.PublicKey
}

// composeLockSequence appends, per target, the escrow-vault creation when it
// is missing, the lock-escrow creation when it is missing, and the lock.
// Locks are authorized by lockOwner, which may differ from the recipient.
func (c *Composer) composeLockSequence(
	ctx context.Context,
	pool *dynamicamm.Pool,
	payer, sourceLpTokens, lockOwner solana.PublicKey,
	targets []lockTarget,
) ([]solana.Instruction, error) {
	aVaultLpMint, err := dynamicvault.DeriveLpMintAddress(pool.AVault)
	if err != nil {
		return nil, err
	}
	bVaultLpMint, err := dynamicvault.DeriveLpMintAddress(pool.BVault)
	if err != nil {
		return nil, err
	}

	instructions := make([]solana.Instruction, 0, 3*len(targets))
	for _, target := range targets {
		exists, err := c.accountExists(ctx, target.escrowVault)
		if err != nil {
			return nil, err
		}
		if !exists {
			inst, err := associatedtokenaccount.NewCreateInstruction(payer, target.lockEscrow, pool.LpMint).ValidateAndBuild()
			if err != nil {
				return nil, fmt.Errorf("failed to build escrow vault create: %w", err)
			}
			instructions = append(instructions, inst)
		}

		exists, err = c.accountExists(ctx, target.lockEscrow)
		if err != nil {
			return nil, err
		}
		if !exists {
			instructions = append(instructions, dynamicamm.NewCreateLockEscrowInstruction(dynamicamm.CreateLockEscrowAccounts{
				Pool:          pool.PoolID,
				LockEscrow:    target.lockEscrow,
				Owner:         target.owner,
				LpMint:        pool.LpMint,
				Payer:         payer,
				SystemProgram: solana.SystemProgramID,
			}))
		}

		instructions = append(instructions, dynamicamm.NewLockInstruction(dynamicamm.LockAccounts{
			Pool:         pool.PoolID,
			LpMint:       pool.LpMint,
			LockEscrow:   target.lockEscrow,
			Owner:        lockOwner,
			SourceTokens: sourceLpTokens,
			EscrowVault:  target.escrowVault,
			TokenProgram: solana.TokenProgramID,
			AVault:       pool.AVault,
			BVault:       pool.BVault,
			AVaultLp:     pool.AVaultLp,
			BVaultLp:     pool.BVaultLp,
			AVaultLpMint: aVaultLpMint,
			BVaultLpMint: bVaultLpMint,
		}, target.amount))
	}
	return instructions, nil
}

// LockLiquidityParams are the inputs of the two-recipient liquidity lock.
// SourceLpTokens defaults to the payer's LP associated token account.
type LockLiquidityParams struct {
	Pool           solana.PublicKey
	Payer          solana.PublicKey
	SourceLpTokens solana.PublicKey
	Recipients     [2]solana.PublicKey
	Allocations    [2]uint16
}

// LockLiquidity composes the lock of the payer's whole LP position to two
// recipients by basis point allocation. Each recipient gets a lock escrow and
// a locked share; shares always add up to the full source balance.
func (c *Composer) LockLiquidity(ctx context.Context, params LockLiquidityParams) (*Sequence, error) {
	if err := requireSigner("payer", params.Payer); err != nil {
		return nil, err
	}

	pool, err := c.FetchPool(ctx, params.Pool)
	if err != nil {
		return nil, err
	}

	sourceLpTokens := params.SourceLpTokens
	if sourceLpTokens.IsZero() {
		if sourceLpTokens, _, err = solana.FindAssociatedTokenAddress(params.Payer, pool.LpMint); err != nil {
			return nil, fmt.Errorf("failed to derive source lp account: %w", err)
		}
	}
	balance, err := c.tokenBalance(ctx, sourceLpTokens)
	if err != nil {
		return nil, err
	}
	firstAmount, secondAmount, err := Split(balance, params.Allocations)
	if err != nil {
		return nil, err
	}

	amounts := [2]uint64{firstAmount, secondAmount}
	targets := make([]lockTarget, 0, 2)
	for i, recipient := range params.Recipients {
		lockEscrow, _, err := dynamicamm.DeriveLockEscrowAddress(params.Pool, recipient)
		if err != nil {
			return nil, err
		}
		escrowVault, _, err := solana.FindAssociatedTokenAddress(lockEscrow, pool.LpMint)
		if err != nil {
			return nil, fmt.Errorf("failed to derive escrow vault: %w", err)
		}
		targets = append(targets, lockTarget{
			amount:      amounts[i],
			owner:       recipient,
			lockEscrow:  lockEscrow,
			escrowVault: escrowVault,
		})
	}

	instructions, err := c.composeLockSequence(ctx, pool, params.Payer, sourceLpTokens, params.Payer, targets)
	if err != nil {
		return nil, err
	}
	return &Sequence{Instructions: instructions}, nil
}

// LockLiquidityPdaCreatorParams are the inputs of the creator-authority lock.
// The creator authority holds the LP position; Recipient is the human side.
type LockLiquidityPdaCreatorParams struct {
	Pool        solana.PublicKey
	Payer       solana.PublicKey
	Recipient   solana.PublicKey
	Allocations [2]uint16
}

// LockLiquidityPdaCreator composes the lock of the creator authority's LP
// position, the first allocation to the authority's own escrow and the second
// to the recipient's. Both locks are authorized through the authority seeds.
func (c *Composer) LockLiquidityPdaCreator(ctx context.Context, params LockLiquidityPdaCreatorParams) (*Sequence, error) {
	if err := requireSigner("payer", params.Payer); err != nil {
		return nil, err
	}
	creator, err := DeriveCreatorAuthority()
	if err != nil {
		return nil, err
	}

	pool, err := c.FetchPool(ctx, params.Pool)
	if err != nil {
		return nil, err
	}

	sourceLpTokens, _, err := solana.FindAssociatedTokenAddress(creator.Address, pool.LpMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive creator lp account: %w", err)
	}
	balance, err := c.tokenBalance(ctx, sourceLpTokens)
	if err != nil {
		return nil, err
	}
	creatorAmount, recipientAmount, err := Split(balance, params.Allocations)
	if err != nil {
		return nil, err
	}

	owners := [2]solana.PublicKey{creator.Address, params.Recipient}
	amounts := [2]uint64{creatorAmount, recipientAmount}
	targets := make([]lockTarget, 0, 2)
	for i, owner := range owners {
		lockEscrow, _, err := dynamicamm.DeriveLockEscrowAddress(params.Pool, owner)
		if err != nil {
			return nil, err
		}
		escrowVault, _, err := solana.FindAssociatedTokenAddress(lockEscrow, pool.LpMint)
		if err != nil {
			return nil, fmt.Errorf("failed to derive escrow vault: %w", err)
		}
		targets = append(targets, lockTarget{
			amount:      amounts[i],
			owner:       owner,
			lockEscrow:  lockEscrow,
			escrowVault: escrowVault,
		})
	}

	instructions, err := c.composeLockSequence(ctx, pool, params.Payer, sourceLpTokens, creator.Address, targets)
	if err != nil {
		return nil, err
	}
	return &Sequence{
		Instructions: instructions,
		PdaSigners:   []PdaSigner{creator},
	}, nil
}
