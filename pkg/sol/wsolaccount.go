package sol

import (
	"context"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// CoverWsol wraps lamports into the user's WSOL associated token account,
// creating the account when it does not exist yet
func (t *Client) CoverWsol(ctx context.Context, privateKey solana.PrivateKey, amount uint64) error {
	signers := []solana.PrivateKey{privateKey}

	allInstrs := make([]solana.Instruction, 0)
	user := privateKey.PublicKey()

	acc, err := t.RpcClient.GetTokenAccountsByOwner(ctx, user,
		&rpc.GetTokenAccountsConfig{Mint: WSOL.ToPointer()},
		&rpc.GetTokenAccountsOpts{
			Encoding: "jsonParsed",
		},
	)
	if err != nil {
		t.logger.Warn("GetTokenAccountsByOwner failed", zap.Error(err))
		return err
	}
	if len(acc.Value) == 0 {
		createAtaInst, err := associatedtokenaccount.NewCreateInstruction(
			user,
			user,
			WSOL,
		).ValidateAndBuild()
		if err != nil {
			return err
		}
		allInstrs = append(allInstrs, createAtaInst)
	}

	wsolAccount, _, err := solana.FindAssociatedTokenAddress(user, WSOL)
	if err != nil {
		t.logger.Warn("FindAssociatedTokenAddress failed", zap.Error(err))
		return err
	}

	transferInst, err := system.NewTransferInstruction(
		amount,
		user,
		wsolAccount,
	).ValidateAndBuild()
	if err != nil {
		t.logger.Warn("NewTransferInstruction failed", zap.Error(err))
		return err
	}
	allInstrs = append(allInstrs, transferInst)

	// Add SyncNative instruction for WSOL
	syncNativeInst, err := token.NewSyncNativeInstruction(
		wsolAccount,
	).ValidateAndBuild()
	if err != nil {
		return err
	}
	allInstrs = append(allInstrs, syncNativeInst)

	recent, err := t.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		t.logger.Warn("failed to get latest blockhash", zap.Error(err))
		return err
	}
	_, err = t.SendTx(ctx, recent.Value.Blockhash, signers, allInstrs, false)
	if err != nil {
		t.logger.Warn("failed to send transaction", zap.Error(err))
		return err
	}
	return nil
}

// CloseWsol closes the user's WSOL associated token account, unwrapping the
// remaining lamports back to the wallet
func (t *Client) CloseWsol(ctx context.Context, privateKey solana.PrivateKey) error {
	signers := []solana.PrivateKey{privateKey}
	user := privateKey.PublicKey()
	insts := make([]solana.Instruction, 0)

	wsolAccount, _, err := solana.FindAssociatedTokenAddress(user, WSOL)
	if err != nil {
		t.logger.Warn("FindAssociatedTokenAddress failed", zap.Error(err))
		return err
	}
	closeInst, err := token.NewCloseAccountInstruction(
		wsolAccount,
		user,
		user,
		[]solana.PublicKey{},
	).ValidateAndBuild()
	if err != nil {
		t.logger.Warn("CloseAccountInstruction failed", zap.Error(err))
		return err
	}
	insts = append(insts, closeInst)

	recent, err := t.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		t.logger.Warn("failed to get latest blockhash", zap.Error(err))
		return err
	}
	_, err = t.SendTx(ctx, recent.Value.Blockhash, signers, insts, false)
	if err != nil {
		t.logger.Warn("failed to send transaction", zap.Error(err))
		return err
	}
	return nil
}
