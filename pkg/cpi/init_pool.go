package cpi

import (
	"context"
	"fmt"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicvault"
)

// InitPoolKeys is every derived address a pool initialization call touches.
// All of them are recomputed from the token pair, never taken from the caller.
type InitPoolKeys struct {
	Pool              solana.PublicKey
	LpMint            solana.PublicKey
	AVault            solana.PublicKey
	BVault            solana.PublicKey
	ATokenVault       solana.PublicKey
	BTokenVault       solana.PublicKey
	AVaultLpMint      solana.PublicKey
	BVaultLpMint      solana.PublicKey
	AVaultLp          solana.PublicKey
	BVaultLp          solana.PublicKey
	ProtocolTokenAFee solana.PublicKey
	ProtocolTokenBFee solana.PublicKey
	MintMetadata      solana.PublicKey
}

// DeriveInitPoolKeys resolves the full key bundle for a pool account
func DeriveInitPoolKeys(pool, tokenAMint, tokenBMint solana.PublicKey) (InitPoolKeys, error) {
	keys := InitPoolKeys{Pool: pool}
	var err error

	if keys.LpMint, err = dynamicamm.DeriveLpMintAddress(pool); err != nil {
		return keys, err
	}
	if keys.AVault, err = dynamicvault.DeriveVaultAddress(tokenAMint); err != nil {
		return keys, err
	}
	if keys.BVault, err = dynamicvault.DeriveVaultAddress(tokenBMint); err != nil {
		return keys, err
	}
	if keys.ATokenVault, err = dynamicvault.DeriveTokenVaultAddress(keys.AVault); err != nil {
		return keys, err
	}
	if keys.BTokenVault, err = dynamicvault.DeriveTokenVaultAddress(keys.BVault); err != nil {
		return keys, err
	}
	if keys.AVaultLpMint, err = dynamicvault.DeriveLpMintAddress(keys.AVault); err != nil {
		return keys, err
	}
	if keys.BVaultLpMint, err = dynamicvault.DeriveLpMintAddress(keys.BVault); err != nil {
		return keys, err
	}
	if keys.AVaultLp, err = dynamicamm.DeriveVaultLpAddress(keys.AVault, pool); err != nil {
		return keys, err
	}
	if keys.BVaultLp, err = dynamicamm.DeriveVaultLpAddress(keys.BVault, pool); err != nil {
		return keys, err
	}
	if keys.ProtocolTokenAFee, err = dynamicamm.DeriveProtocolFeeAddress(tokenAMint, pool); err != nil {
		return keys, err
	}
	if keys.ProtocolTokenBFee, err = dynamicamm.DeriveProtocolFeeAddress(tokenBMint, pool); err != nil {
		return keys, err
	}
	if keys.MintMetadata, err = dynamicamm.DeriveMetadataAddress(keys.LpMint); err != nil {
		return keys, err
	}
	return keys, nil
}

func (keys InitPoolKeys) accounts(config solana.PublicKey) dynamicamm.InitPoolAccounts {
	return dynamicamm.InitPoolAccounts{
		Pool:                   keys.Pool,
		Config:                 config,
		LpMint:                 keys.LpMint,
		AVault:                 keys.AVault,
		BVault:                 keys.BVault,
		ATokenVault:            keys.ATokenVault,
		BTokenVault:            keys.BTokenVault,
		AVaultLpMint:           keys.AVaultLpMint,
		BVaultLpMint:           keys.BVaultLpMint,
		AVaultLp:               keys.AVaultLp,
		BVaultLp:               keys.BVaultLp,
		ProtocolTokenAFee:      keys.ProtocolTokenAFee,
		ProtocolTokenBFee:      keys.ProtocolTokenBFee,
		MintMetadata:           keys.MintMetadata,
		Rent:                   solana.SysVarRentPubkey,
		MetadataProgram:        dynamicamm.MetaplexProgramID,
		VaultProgram:           dynamicvault.DynamicVaultProgramID,
		TokenProgram:           solana.TokenProgramID,
		AssociatedTokenProgram: solana.SPLAssociatedTokenAccountProgramID,
		SystemProgram:          solana.SystemProgramID,
	}
}

// InitPoolParams are the shared inputs of the pool initialization operations.
// Config is only consulted by the config based variants. Leaving a payer
// token account unset resolves it to the payer's associated token account.
type InitPoolParams struct {
	TokenAMint   solana.PublicKey
	TokenBMint   solana.PublicKey
	Config       solana.PublicKey
	Payer        solana.PublicKey
	PayerTokenA  solana.PublicKey
	PayerTokenB  solana.PublicKey
	TokenAAmount cosmath.Int
	TokenBAmount cosmath.Int

	// PoolParams applies to the customizable variants
	PoolParams dynamicamm.CustomizableParams

	// ActivationPoint applies to the config based variants
	ActivationPoint *uint64
}

func (p *InitPoolParams) resolve() (uint64, uint64, error) {
	if err := requireSigner("payer", p.Payer); err != nil {
		return 0, 0, err
	}
	tokenAAmount, err := amountToU64(p.TokenAAmount)
	if err != nil {
		return 0, 0, fmt.Errorf("token a amount: %w", err)
	}
	tokenBAmount, err := amountToU64(p.TokenBAmount)
	if err != nil {
		return 0, 0, fmt.Errorf("token b amount: %w", err)
	}
	if p.PayerTokenA.IsZero() {
		if p.PayerTokenA, _, err = solana.FindAssociatedTokenAddress(p.Payer, p.TokenAMint); err != nil {
			return 0, 0, fmt.Errorf("failed to derive payer token a: %w", err)
		}
	}
	if p.PayerTokenB.IsZero() {
		if p.PayerTokenB, _, err = solana.FindAssociatedTokenAddress(p.Payer, p.TokenBMint); err != nil {
			return 0, 0, fmt.Errorf("failed to derive payer token b: %w", err)
		}
	}
	return tokenAAmount, tokenBAmount, nil
}

// InitializeCustomizablePool composes the customizable permissionless pool
// initialization paid by the caller directly
func (c *Composer) InitializeCustomizablePool(params InitPoolParams) (*Sequence, error) {
	tokenAAmount, tokenBAmount, err := params.resolve()
	if err != nil {
		return nil, err
	}
	pool, err := dynamicamm.DeriveCustomizablePoolAddress(params.TokenAMint, params.TokenBMint)
	if err != nil {
		return nil, err
	}
	keys, err := DeriveInitPoolKeys(pool, params.TokenAMint, params.TokenBMint)
	if err != nil {
		return nil, err
	}
	payerPoolLp, _, err := solana.FindAssociatedTokenAddress(params.Payer, keys.LpMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive payer pool lp: %w", err)
	}

	accounts := keys.accounts(solana.PublicKey{})
	accounts.TokenAMint = params.TokenAMint
	accounts.TokenBMint = params.TokenBMint
	accounts.PayerTokenA = params.PayerTokenA
	accounts.PayerTokenB = params.PayerTokenB
	accounts.PayerPoolLp = payerPoolLp
	accounts.Payer = params.Payer

	return &Sequence{
		Instructions: []solana.Instruction{
			dynamicamm.NewInitCustomizablePoolInstruction(accounts, tokenAAmount, tokenBAmount, params.PoolParams),
		},
	}, nil
}

// InitializeCustomizablePoolWithPdaCreator composes the customizable pool
// initialization with the creator authority acting as the pool creator. The
// sequence funds the authority first, then initializes the pool with the
// authority as payer, signed through its seeds.
func (c *Composer) InitializeCustomizablePoolWithPdaCreator(ctx context.Context, params InitPoolParams) (*Sequence, error) {
	pool, err := dynamicamm.DeriveCustomizablePoolAddress(params.TokenAMint, params.TokenBMint)
	if err != nil {
		return nil, err
	}
	return c.initPoolWithPdaCreator(ctx, params, pool, false)
}

// InitializePoolWithConfig composes the config based pool initialization paid
// by the caller directly
func (c *Composer) InitializePoolWithConfig(params InitPoolParams) (*Sequence, error) {
	tokenAAmount, tokenBAmount, err := params.resolve()
	if err != nil {
		return nil, err
	}
	pool, err := dynamicamm.DerivePoolWithConfigAddress(params.TokenAMint, params.TokenBMint, params.Config)
	if err != nil {
		return nil, err
	}
	keys, err := DeriveInitPoolKeys(pool, params.TokenAMint, params.TokenBMint)
	if err != nil {
		return nil, err
	}
	payerPoolLp, _, err := solana.FindAssociatedTokenAddress(params.Payer, keys.LpMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive payer pool lp: %w", err)
	}

	accounts := keys.accounts(params.Config)
	accounts.TokenAMint = params.TokenAMint
	accounts.TokenBMint = params.TokenBMint
	accounts.PayerTokenA = params.PayerTokenA
	accounts.PayerTokenB = params.PayerTokenB
	accounts.PayerPoolLp = payerPoolLp
	accounts.Payer = params.Payer

	return &Sequence{
		Instructions: []solana.Instruction{
			dynamicamm.NewInitPoolWithConfigInstruction(accounts, tokenAAmount, tokenBAmount, params.ActivationPoint),
		},
	}, nil
}

// InitializePoolWithConfigPdaCreator composes the config based pool
// initialization with the creator authority as the pool creator
func (c *Composer) InitializePoolWithConfigPdaCreator(ctx context.Context, params InitPoolParams) (*Sequence, error) {
	pool, err := dynamicamm.DerivePoolWithConfigAddress(params.TokenAMint, params.TokenBMint, params.Config)
	if err != nil {
		return nil, err
	}
	return c.initPoolWithPdaCreator(ctx, params, pool, true)
}

func (c *Composer) initPoolWithPdaCreator(ctx context.Context, params InitPoolParams, pool solana.PublicKey, withConfig bool) (*Sequence, error) {
	tokenAAmount, tokenBAmount, err := params.resolve()
	if err != nil {
		return nil, err
	}
	creator, err := DeriveCreatorAuthority()
	if err != nil {
		return nil, err
	}
	keys, err := DeriveInitPoolKeys(pool, params.TokenAMint, params.TokenBMint)
	if err != nil {
		return nil, err
	}

	creatorTokenA, _, err := solana.FindAssociatedTokenAddress(creator.Address, params.TokenAMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive creator token a: %w", err)
	}
	creatorTokenB, _, err := solana.FindAssociatedTokenAddress(creator.Address, params.TokenBMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive creator token b: %w", err)
	}
	creatorPoolLp, _, err := solana.FindAssociatedTokenAddress(creator.Address, keys.LpMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive creator pool lp: %w", err)
	}

	instructions := make([]solana.Instruction, 0, 8)

	for _, ata := range []struct {
		account solana.PublicKey
		mint    solana.PublicKey
	}{
		{creatorTokenA, params.TokenAMint},
		{creatorTokenB, params.TokenBMint},
	} {
		exists, err := c.accountExists(ctx, ata.account)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		inst, err := associatedtokenaccount.NewCreateInstruction(params.Payer, creator.Address, ata.mint).ValidateAndBuild()
		if err != nil {
			return nil, fmt.Errorf("failed to build creator ata create: %w", err)
		}
		instructions = append(instructions, inst)
	}

	state, err := c.fetchFundingState(ctx, creatorTokenA, creatorTokenB)
	if err != nil {
		return nil, err
	}
	funding, err := fundCreatorAuthorityInstructions(
		tokenAAmount, tokenBAmount,
		params.PayerTokenA, params.PayerTokenB,
		creatorTokenA, creatorTokenB,
		params.Payer, creator.Address,
		state,
	)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, funding...)

	config := solana.PublicKey{}
	if withConfig {
		config = params.Config
	}
	accounts := keys.accounts(config)
	accounts.TokenAMint = params.TokenAMint
	accounts.TokenBMint = params.TokenBMint
	accounts.PayerTokenA = creatorTokenA
	accounts.PayerTokenB = creatorTokenB
	accounts.PayerPoolLp = creatorPoolLp
	accounts.Payer = creator.Address

	if withConfig {
		instructions = append(instructions,
			dynamicamm.NewInitPoolWithConfigInstruction(accounts, tokenAAmount, tokenBAmount, params.ActivationPoint))
	} else {
		instructions = append(instructions,
			dynamicamm.NewInitCustomizablePoolInstruction(accounts, tokenAAmount, tokenBAmount, params.PoolParams))
	}

	return &Sequence{
		Instructions: instructions,
		PdaSigners:   []PdaSigner{creator},
	}, nil
}
