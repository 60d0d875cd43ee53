package sol

import (
	"context"
	"strconv"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// GetUserTokenBalance returns the summed balance a wallet holds for a mint
// across its token accounts
func (t *Client) GetUserTokenBalance(ctx context.Context, user, tokenMint solana.PublicKey) (uint64, error) {
	acc, err := t.RpcClient.GetTokenAccountsByOwner(ctx, user,
		&rpc.GetTokenAccountsConfig{Mint: tokenMint.ToPointer()},
		&rpc.GetTokenAccountsOpts{
			Encoding:   "jsonParsed",
			Commitment: rpc.CommitmentConfirmed,
		},
	)
	if err != nil {
		t.logger.Warn("GetTokenAccountsByOwner failed", zap.Error(err))
		return 0, err
	}

	var total uint64
	for _, value := range acc.Value {
		balance, err := t.RpcClient.GetTokenAccountBalance(ctx, value.Pubkey, rpc.CommitmentConfirmed)
		if err != nil {
			continue
		}
		amount, err := strconv.ParseUint(balance.Value.Amount, 10, 64)
		if err != nil {
			continue
		}
		total += amount
	}
	return total, nil
}

func (t *Client) SelectOrCreateSPLTokenAccount(ctx context.Context, privateKey solana.PrivateKey, tokenMint solana.PublicKey) (solana.PublicKey, error) {
	user := privateKey.PublicKey()
	acc, err := t.RpcClient.GetTokenAccountsByOwner(ctx, user,
		&rpc.GetTokenAccountsConfig{Mint: tokenMint.ToPointer()},
		&rpc.GetTokenAccountsOpts{
			Encoding: "jsonParsed",
		},
	)
	if err != nil {
		t.logger.Warn("GetTokenAccountsByOwner failed", zap.Error(err))
		return solana.PublicKey{}, err
	}
	if len(acc.Value) > 0 {
		return acc.Value[0].Pubkey, nil
	}

	// Find ATA address (this will always return a valid PDA)
	ataAddress, _, err := solana.FindAssociatedTokenAddress(user, tokenMint)
	if err != nil {
		t.logger.Warn("FindAssociatedTokenAddress failed", zap.Error(err))
		return solana.PublicKey{}, err
	}
	createAtaInst, err := associatedtokenaccount.NewCreateInstruction(
		user,
		user,
		tokenMint,
	).ValidateAndBuild()
	if err != nil {
		return solana.PublicKey{}, err
	}

	latestBlockhash, err := t.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		t.logger.Warn("failed to get latest blockhash", zap.Error(err))
		return solana.PublicKey{}, err
	}
	signers := []solana.PrivateKey{privateKey}
	_, err = t.SendTx(ctx, latestBlockhash.Value.Blockhash, signers, []solana.Instruction{createAtaInst}, false)
	if err != nil {
		t.logger.Warn("failed to send transaction", zap.Error(err))
		return solana.PublicKey{}, err
	}
	return ataAddress, nil
}
