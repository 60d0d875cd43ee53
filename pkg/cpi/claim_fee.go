package cpi

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicvault"
)

// claimFeeAccounts assembles the claim account set shared by both variants
func claimFeeAccounts(pool *dynamicamm.Pool, owner solana.PublicKey, userAToken, userBToken solana.PublicKey) (dynamicamm.ClaimFeeAccounts, error) {
	var accounts dynamicamm.ClaimFeeAccounts

	lockEscrow, _, err := dynamicamm.DeriveLockEscrowAddress(pool.PoolID, owner)
	if err != nil {
		return accounts, err
	}
	escrowVault, _, err := solana.FindAssociatedTokenAddress(lockEscrow, pool.LpMint)
	if err != nil {
		return accounts, fmt.Errorf("failed to derive escrow vault: %w", err)
	}
	aTokenVault, err := dynamicvault.DeriveTokenVaultAddress(pool.AVault)
	if err != nil {
		return accounts, err
	}
	bTokenVault, err := dynamicvault.DeriveTokenVaultAddress(pool.BVault)
	if err != nil {
		return accounts, err
	}
	aVaultLpMint, err := dynamicvault.DeriveLpMintAddress(pool.AVault)
	if err != nil {
		return accounts, err
	}
	bVaultLpMint, err := dynamicvault.DeriveLpMintAddress(pool.BVault)
	if err != nil {
		return accounts, err
	}

	return dynamicamm.ClaimFeeAccounts{
		Pool:         pool.PoolID,
		LpMint:       pool.LpMint,
		LockEscrow:   lockEscrow,
		Owner:        owner,
		SourceTokens: escrowVault,
		EscrowVault:  escrowVault,
		TokenProgram: solana.TokenProgramID,
		ATokenVault:  aTokenVault,
		BTokenVault:  bTokenVault,
		AVault:       pool.AVault,
		BVault:       pool.BVault,
		AVaultLp:     pool.AVaultLp,
		BVaultLp:     pool.BVaultLp,
		AVaultLpMint: aVaultLpMint,
		BVaultLpMint: bVaultLpMint,
		UserAToken:   userAToken,
		UserBToken:   userBToken,
		VaultProgram: dynamicvault.DynamicVaultProgramID,
	}, nil
}

// creatorReceivingAccounts recomputes the creator authority's associated
// token accounts for the pool mints and checks any supplied accounts against
// them. Supplied accounts left zero resolve to the recomputed addresses.
func creatorReceivingAccounts(creator solana.PublicKey, pool *dynamicamm.Pool, suppliedA, suppliedB solana.PublicKey) (solana.PublicKey, solana.PublicKey, error) {
	creatorAToken, _, err := solana.FindAssociatedTokenAddress(creator, pool.TokenAMint)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("failed to derive creator token a: %w", err)
	}
	creatorBToken, _, err := solana.FindAssociatedTokenAddress(creator, pool.TokenBMint)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("failed to derive creator token b: %w", err)
	}
	if !suppliedA.IsZero() && !suppliedA.Equals(creatorAToken) {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("%w: creator token a is %s, expected %s", ErrTokenAccountMismatch, suppliedA, creatorAToken)
	}
	if !suppliedB.IsZero() && !suppliedB.Equals(creatorBToken) {
		return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("%w: creator token b is %s, expected %s", ErrTokenAccountMismatch, suppliedB, creatorBToken)
	}
	return creatorAToken, creatorBToken, nil
}

// ClaimFeeParams are the inputs of the direct fee claim. Fee receiving token
// accounts default to the owner's associated token accounts.
type ClaimFeeParams struct {
	Pool       solana.PublicKey
	Owner      solana.PublicKey
	UserAToken solana.PublicKey
	UserBToken solana.PublicKey
}

// ClaimFee composes the claim of all accumulated fees on the owner's lock
// escrow. The claim amount is the u64 maximum, the callee's everything
// sentinel.
func (c *Composer) ClaimFee(ctx context.Context, params ClaimFeeParams) (*Sequence, error) {
	if err := requireSigner("owner", params.Owner); err != nil {
		return nil, err
	}

	pool, err := c.FetchPool(ctx, params.Pool)
	if err != nil {
		return nil, err
	}

	userAToken := params.UserAToken
	if userAToken.IsZero() {
		if userAToken, _, err = solana.FindAssociatedTokenAddress(params.Owner, pool.TokenAMint); err != nil {
			return nil, fmt.Errorf("failed to derive user token a: %w", err)
		}
	}
	userBToken := params.UserBToken
	if userBToken.IsZero() {
		if userBToken, _, err = solana.FindAssociatedTokenAddress(params.Owner, pool.TokenBMint); err != nil {
			return nil, fmt.Errorf("failed to derive user token b: %w", err)
		}
	}

	accounts, err := claimFeeAccounts(pool, params.Owner, userAToken, userBToken)
	if err != nil {
		return nil, err
	}
	return &Sequence{
		Instructions: []solana.Instruction{
			dynamicamm.NewClaimFeeInstruction(accounts, dynamicamm.MaxClaimAmount),
		},
	}, nil
}

// ClaimFeePdaCreatorParams are the inputs of the creator-authority fee claim.
// Admin authorizes the operation; the claimed fees stay with the authority.
type ClaimFeePdaCreatorParams struct {
	Pool          solana.PublicKey
	Admin         solana.PublicKey
	CreatorAToken solana.PublicKey
	CreatorBToken solana.PublicKey
}

// ClaimFeePdaCreator composes the fee claim on the creator authority's lock
// escrow. The supplied receiving accounts must be the authority's associated
// token accounts for the pool mints; any mismatch fails before anything is
// composed.
func (c *Composer) ClaimFeePdaCreator(ctx context.Context, params ClaimFeePdaCreatorParams) (*Sequence, error) {
	if err := requireSigner("admin", params.Admin); err != nil {
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

	creatorAToken, creatorBToken, err := creatorReceivingAccounts(creator.Address, pool, params.CreatorAToken, params.CreatorBToken)
	if err != nil {
		return nil, err
	}

	accounts, err := claimFeeAccounts(pool, creator.Address, creatorAToken, creatorBToken)
	if err != nil {
		return nil, err
	}
	return &Sequence{
		Instructions: []solana.Instruction{
			dynamicamm.NewClaimFeeInstruction(accounts, dynamicamm.MaxClaimAmount),
		},
		PdaSigners: []PdaSigner{creator},
	}, nil
}
