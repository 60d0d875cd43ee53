package dynamicamm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// CreateLockEscrowAccounts is the fixed account set of the create lock escrow
// instruction
type CreateLockEscrowAccounts struct {
	Pool          solana.PublicKey
	LockEscrow    solana.PublicKey
	Owner         solana.PublicKey
	LpMint        solana.PublicKey
	Payer         solana.PublicKey
	SystemProgram solana.PublicKey
}

// CreateLockEscrowInstruction represents the create lock escrow instruction of
// the dynamic AMM program. The instruction carries no arguments.
type CreateLockEscrowInstruction struct {
	bin.BaseVariant
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewCreateLockEscrowInstruction builds the create lock escrow instruction
func NewCreateLockEscrowInstruction(accounts CreateLockEscrowAccounts) *CreateLockEscrowInstruction {
	inst := &CreateLockEscrowInstruction{
		AccountMetaSlice: make(solana.AccountMetaSlice, 0, 6),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}

	inst.AccountMetaSlice = append(inst.AccountMetaSlice,
		solana.NewAccountMeta(accounts.Pool, true, false),
		solana.NewAccountMeta(accounts.LockEscrow, true, false),
		solana.NewAccountMeta(accounts.Owner, false, false),
		solana.NewAccountMeta(accounts.LpMint, false, false),
		solana.NewAccountMeta(accounts.Payer, true, true),
		solana.NewAccountMeta(accounts.SystemProgram, false, false),
	)

	return inst
}

// ProgramID returns the program ID for the dynamic AMM program
func (inst *CreateLockEscrowInstruction) ProgramID() solana.PublicKey {
	return DynamicAmmProgramID
}

// Accounts returns the account metas for the instruction
func (inst *CreateLockEscrowInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *CreateLockEscrowInstruction) Data() ([]byte, error) {
	return CreateLockEscrowIxDiscm[:], nil
}

// LockAccounts is the fixed account set of the lock instruction. Owner is the
// holder of the source LP tokens and must sign.
type LockAccounts struct {
	Pool         solana.PublicKey
	LpMint       solana.PublicKey
	LockEscrow   solana.PublicKey
	Owner        solana.PublicKey
	SourceTokens solana.PublicKey
	EscrowVault  solana.PublicKey
	TokenProgram solana.PublicKey
	AVault       solana.PublicKey
	BVault       solana.PublicKey
	AVaultLp     solana.PublicKey
	BVaultLp     solana.PublicKey
	AVaultLpMint solana.PublicKey
	BVaultLpMint solana.PublicKey
}

// LockInstruction represents the lock instruction of the dynamic AMM program
type LockInstruction struct {
	bin.BaseVariant
	MaxAmount               uint64
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewLockInstruction builds the lock instruction with the account list in the
// exact order the dynamic AMM program expects
func NewLockInstruction(accounts LockAccounts, maxAmount uint64) *LockInstruction {
	inst := &LockInstruction{
		MaxAmount:        maxAmount,
		AccountMetaSlice: make(solana.AccountMetaSlice, 0, 13),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}

	inst.AccountMetaSlice = append(inst.AccountMetaSlice,
		solana.NewAccountMeta(accounts.Pool, true, false),
		solana.NewAccountMeta(accounts.LpMint, false, false),
		solana.NewAccountMeta(accounts.LockEscrow, true, false),
		solana.NewAccountMeta(accounts.Owner, true, true),
		solana.NewAccountMeta(accounts.SourceTokens, true, false),
		solana.NewAccountMeta(accounts.EscrowVault, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
		solana.NewAccountMeta(accounts.AVault, false, false),
		solana.NewAccountMeta(accounts.BVault, false, false),
		solana.NewAccountMeta(accounts.AVaultLp, false, false),
		solana.NewAccountMeta(accounts.BVaultLp, false, false),
		solana.NewAccountMeta(accounts.AVaultLpMint, false, false),
		solana.NewAccountMeta(accounts.BVaultLpMint, false, false),
	)

	return inst
}

// ProgramID returns the program ID for the dynamic AMM program
func (inst *LockInstruction) ProgramID() solana.PublicKey {
	return DynamicAmmProgramID
}

// Accounts returns the account metas for the instruction
func (inst *LockInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *LockInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)

	if _, err := buf.Write(LockIxDiscm[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}

	if err := bin.NewBorshEncoder(buf).WriteUint64(inst.MaxAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode max amount: %w", err)
	}

	return buf.Bytes(), nil
}
