package main

import (
	"context"
	"os"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/MeteoraAg/cpi-examples/pkg/cpi"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicamm"
	"github.com/MeteoraAg/cpi-examples/pkg/dynamicvault"
	"github.com/MeteoraAg/cpi-examples/pkg/sol"
	"github.com/MeteoraAg/cpi-examples/utils"
)

const (
	// Swap parameters
	defaultAmountIn = 10000000 // 0.01 sol (9 decimals)
)

func main() {
	// Load .env if present
	utils.LoadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	privateKeyStr := os.Getenv("SOLANA_PRIVATE_KEY")
	if privateKeyStr == "" {
		logger.Fatal("SOLANA_PRIVATE_KEY is required")
	}
	privateKey := solana.MustPrivateKeyFromBase58(privateKeyStr)
	logger.Info("loaded wallet", zap.Stringer("public_key", privateKey.PublicKey()))

	poolAddrStr := os.Getenv("DYNAMIC_AMM_POOL")
	if poolAddrStr == "" {
		logger.Fatal("DYNAMIC_AMM_POOL is required")
	}
	poolAddr := solana.MustPublicKeyFromBase58(poolAddrStr)

	ctx := context.Background()
	mainnetRPC := os.Getenv("SOLANA_RPC_URL")
	if mainnetRPC == "" {
		mainnetRPC = "https://api.mainnet-beta.solana.com"
	}
	mainnetWSRPC := os.Getenv("SOLANA_WS_RPC_URL")
	if mainnetWSRPC == "" {
		mainnetWSRPC = "wss://api.mainnet-beta.solana.com"
	}

	solClient, err := sol.NewClient(ctx, mainnetRPC, mainnetWSRPC, logger)
	if err != nil {
		logger.Fatal("failed to create solana client", zap.Error(err))
	}
	defer solClient.Close()

	composer := cpi.NewComposer(solClient, logger)

	pool, err := composer.FetchPool(ctx, poolAddr)
	if err != nil {
		logger.Fatal("failed to fetch pool", zap.Error(err))
	}
	logger.Info("fetched pool",
		zap.Stringer("pool", poolAddr),
		zap.Stringer("token_a_mint", pool.TokenAMint),
		zap.Stringer("token_b_mint", pool.TokenBMint),
	)

	// Swap token A into token B
	user := privateKey.PublicKey()
	sourceMint, destMint := pool.TokenAMint, pool.TokenBMint
	protocolFee := pool.ProtocolTokenAFee

	if sourceMint.Equals(sol.WSOL) {
		balance, err := solClient.GetUserTokenBalance(ctx, user, sol.WSOL)
		if err != nil {
			logger.Fatal("failed to get wsol balance", zap.Error(err))
		}
		if balance < defaultAmountIn {
			if err := solClient.CoverWsol(ctx, privateKey, defaultAmountIn-balance); err != nil {
				logger.Fatal("failed to cover wsol", zap.Error(err))
			}
		}
	}

	userSource, err := solClient.SelectOrCreateSPLTokenAccount(ctx, privateKey, sourceMint)
	if err != nil {
		logger.Fatal("failed to prepare source token account", zap.Error(err))
	}
	userDest, err := solClient.SelectOrCreateSPLTokenAccount(ctx, privateKey, destMint)
	if err != nil {
		logger.Fatal("failed to prepare destination token account", zap.Error(err))
	}

	aTokenVault, err := dynamicvault.DeriveTokenVaultAddress(pool.AVault)
	if err != nil {
		logger.Fatal("failed to derive token vault", zap.Error(err))
	}
	bTokenVault, err := dynamicvault.DeriveTokenVaultAddress(pool.BVault)
	if err != nil {
		logger.Fatal("failed to derive token vault", zap.Error(err))
	}
	aVaultLpMint, err := dynamicvault.DeriveLpMintAddress(pool.AVault)
	if err != nil {
		logger.Fatal("failed to derive vault lp mint", zap.Error(err))
	}
	bVaultLpMint, err := dynamicvault.DeriveLpMintAddress(pool.BVault)
	if err != nil {
		logger.Fatal("failed to derive vault lp mint", zap.Error(err))
	}

	seq, err := composer.DynamicAmmSwap(cpi.DynamicAmmSwapParams{
		Accounts: dynamicamm.SwapAccounts{
			Pool:                 poolAddr,
			UserSourceToken:      userSource,
			UserDestinationToken: userDest,
			AVault:               pool.AVault,
			BVault:               pool.BVault,
			ATokenVault:          aTokenVault,
			BTokenVault:          bTokenVault,
			AVaultLpMint:         aVaultLpMint,
			BVaultLpMint:         bVaultLpMint,
			AVaultLp:             pool.AVaultLp,
			BVaultLp:             pool.BVaultLp,
			ProtocolTokenFee:     protocolFee,
			User:                 user,
		},
		AmountIn:     math.NewInt(defaultAmountIn),
		MinAmountOut: math.ZeroInt(),
	})
	if err != nil {
		logger.Fatal("failed to compose swap", zap.Error(err))
	}

	// Simulate only
	sig, err := composer.Execute(ctx, seq, []solana.PrivateKey{privateKey}, true)
	if err != nil {
		logger.Fatal("failed to execute swap", zap.Error(err))
	}
	logger.Info("swap simulated", zap.Stringer("signature", sig))
}
