package cpi

import (
	"context"
	"fmt"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/sol"
)

// Sequence is a composed instruction list that executes atomically in one
// transaction, together with the derived-address signers that authorize it.
type Sequence struct {
	Instructions []solana.Instruction
	PdaSigners   []PdaSigner
}

// chainReader is the read-side RPC surface the composer consumes, satisfied
// by rpc.Client
type chainReader interface {
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
	GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error)
}

// Composer builds the instruction sequences of every adapter operation. It
// only reads chain state; sending is left to Execute.
type Composer struct {
	client *sol.Client
	chain  chainReader
	logger *zap.Logger
}

// NewComposer creates a composer on top of an RPC client
func NewComposer(client *sol.Client, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Composer{
		client: client,
		logger: logger,
	}
	if client != nil {
		c.chain = client.RpcClient
	}
	return c
}

// Execute signs and sends a composed sequence as a single transaction. When
// simulate is set the transaction is simulated instead of sent.
func (c *Composer) Execute(ctx context.Context, seq *Sequence, signers []solana.PrivateKey, simulate bool) (solana.Signature, error) {
	latest, err := c.client.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	c.logger.Info("executing composed sequence",
		zap.Int("instructions", len(seq.Instructions)),
		zap.Int("pda_signers", len(seq.PdaSigners)),
		zap.Bool("simulate", simulate),
	)
	return c.client.SendTx(ctx, latest.Value.Blockhash, signers, seq.Instructions, simulate)
}

// FetchPool reads and decodes a dynamic AMM pool account
func (c *Composer) FetchPool(ctx context.Context, pool solana.PublicKey) (*dynamicamm.Pool, error) {
	res, err := c.chain.GetAccountInfo(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to get pool account %s: %w", pool, err)
	}
	state := &dynamicamm.Pool{PoolID: pool}
	if err := state.Decode(res.Value.Data.GetBinary()); err != nil {
		return nil, fmt.Errorf("failed to decode pool %s: %w", pool, err)
	}
	return state, nil
}

// tokenBalance reads the current amount of a token account. A missing account
// reads as zero; every other failure propagates.
func (c *Composer) tokenBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	exists, err := c.accountExists(ctx, account)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}
	res, err := c.chain.GetTokenAccountBalance(ctx, account, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get token balance of %s: %w", account, err)
	}
	amount, ok := cosmath.NewIntFromString(res.Value.Amount)
	if !ok {
		return 0, fmt.Errorf("invalid token amount %q for %s", res.Value.Amount, account)
	}
	if !amount.IsUint64() {
		return 0, ErrAmountOverflow
	}
	return amount.Uint64(), nil
}

// accountExists reports whether an account is present on chain
func (c *Composer) accountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	res, err := c.chain.GetAccountInfo(ctx, account)
	if err != nil {
		if err == rpc.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to get account %s: %w", account, err)
	}
	return res.Value != nil, nil
}

// rentExemption reads the rent exemption minimum for an account of the given size
func (c *Composer) rentExemption(ctx context.Context, size uint64) (uint64, error) {
	lamports, err := c.chain.GetMinimumBalanceForRentExemption(ctx, size, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get rent exemption for size %d: %w", size, err)
	}
	return lamports, nil
}

// amountToU64 narrows an API-boundary amount into the wire representation
func amountToU64(amount cosmath.Int) (uint64, error) {
	if amount.IsNegative() || !amount.IsUint64() {
		return 0, fmt.Errorf("%w: %s does not fit u64", ErrAmountOverflow, amount)
	}
	return amount.Uint64(), nil
}
