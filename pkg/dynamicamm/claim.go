package dynamicamm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// MaxClaimAmount is the sentinel passed to claim everything available
const MaxClaimAmount = uint64(math.MaxUint64)

// ClaimFeeAccounts is the fixed account set of the claim fee instruction.
// SourceTokens is unused by the program nowadays but still part of the account
// list; passing the escrow vault for it saves one account.
type ClaimFeeAccounts struct {
	Pool         solana.PublicKey
	LpMint       solana.PublicKey
	LockEscrow   solana.PublicKey
	Owner        solana.PublicKey
	SourceTokens solana.PublicKey
	EscrowVault  solana.PublicKey
	TokenProgram solana.PublicKey
	ATokenVault  solana.PublicKey
	BTokenVault  solana.PublicKey
	AVault       solana.PublicKey
	BVault       solana.PublicKey
	AVaultLp     solana.PublicKey
	BVaultLp     solana.PublicKey
	AVaultLpMint solana.PublicKey
	BVaultLpMint solana.PublicKey
	UserAToken   solana.PublicKey
	UserBToken   solana.PublicKey
	VaultProgram solana.PublicKey
}

// ClaimFeeInstruction represents the claim fee instruction of the dynamic AMM
// program
type ClaimFeeInstruction struct {
	bin.BaseVariant
	MaxAmount               uint64
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewClaimFeeInstruction builds the claim fee instruction with the account
// list in the exact order the dynamic AMM program expects
func NewClaimFeeInstruction(accounts ClaimFeeAccounts, maxAmount uint64) *ClaimFeeInstruction {
	inst := &ClaimFeeInstruction{
		MaxAmount:        maxAmount,
		AccountMetaSlice: make(solana.AccountMetaSlice, 0, 18),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}

	inst.AccountMetaSlice = append(inst.AccountMetaSlice,
		solana.NewAccountMeta(accounts.Pool, true, false),
		solana.NewAccountMeta(accounts.LpMint, true, false),
		solana.NewAccountMeta(accounts.LockEscrow, true, false),
		solana.NewAccountMeta(accounts.Owner, true, true),
		solana.NewAccountMeta(accounts.SourceTokens, true, false),
		solana.NewAccountMeta(accounts.EscrowVault, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
		solana.NewAccountMeta(accounts.ATokenVault, true, false),
		solana.NewAccountMeta(accounts.BTokenVault, true, false),
		solana.NewAccountMeta(accounts.AVault, true, false),
		solana.NewAccountMeta(accounts.BVault, true, false),
		solana.NewAccountMeta(accounts.AVaultLp, true, false),
		solana.NewAccountMeta(accounts.BVaultLp, true, false),
		solana.NewAccountMeta(accounts.AVaultLpMint, true, false),
		solana.NewAccountMeta(accounts.BVaultLpMint, true, false),
		solana.NewAccountMeta(accounts.UserAToken, true, false),
		solana.NewAccountMeta(accounts.UserBToken, true, false),
		solana.NewAccountMeta(accounts.VaultProgram, false, false),
	)

	return inst
}

// ProgramID returns the program ID for the dynamic AMM program
func (inst *ClaimFeeInstruction) ProgramID() solana.PublicKey {
	return DynamicAmmProgramID
}

// Accounts returns the account metas for the instruction
func (inst *ClaimFeeInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *ClaimFeeInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)

	if _, err := buf.Write(ClaimFeeIxDiscm[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}

	if err := bin.NewBorshEncoder(buf).WriteUint64(inst.MaxAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode max amount: %w", err)
	}

	return buf.Bytes(), nil
}
