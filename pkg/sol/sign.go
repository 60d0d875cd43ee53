package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// signTransaction assembles and signs a transaction. The first signer pays
// the transaction fee.
func signTransaction(blockhash solana.Hash, signers []solana.PrivateKey, insts []solana.Instruction) (*solana.Transaction, error) {
	if len(signers) == 0 {
		return nil, fmt.Errorf("at least one signer is required")
	}

	tx, err := solana.NewTransaction(
		insts,
		blockhash,
		solana.TransactionPayer(signers[0].PublicKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if _, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return tx, nil
}

// SendTx signs and submits the instructions as one transaction. With
// isSimulate set the transaction is simulated and the returned signature is
// empty.
func (c *Client) SendTx(ctx context.Context, blockhash solana.Hash, signers []solana.PrivateKey, insts []solana.Instruction, isSimulate bool) (solana.Signature, error) {
	tx, err := signTransaction(blockhash, signers, insts)
	if err != nil {
		return solana.Signature{}, err
	}

	if isSimulate {
		res, err := c.RpcClient.SimulateTransaction(ctx, tx)
		if err != nil {
			return solana.Signature{}, fmt.Errorf("failed to simulate transaction: %w", err)
		}
		if res.Value != nil && res.Value.Err != nil {
			return solana.Signature{}, fmt.Errorf("transaction simulation failed: %v", res.Value.Err)
		}
		c.logger.Info("transaction simulated",
			zap.Int("instructions", len(insts)),
		)
		return solana.Signature{}, nil
	}

	// Preflight is skipped; callers simulate explicitly when they want a dry run
	sig, err := c.RpcClient.SendTransactionWithOpts(
		ctx, tx,
		rpc.TransactionOpts{
			SkipPreflight:       true,
			PreflightCommitment: rpc.CommitmentProcessed,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	c.logger.Info("transaction sent", zap.Stringer("signature", sig))
	return sig, nil
}
