package dynamicamm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// SwapAccounts is the fixed account set of the dynamic AMM swap instruction
type SwapAccounts struct {
	Pool                 solana.PublicKey
	UserSourceToken      solana.PublicKey
	UserDestinationToken solana.PublicKey
	AVault               solana.PublicKey
	BVault               solana.PublicKey
	ATokenVault          solana.PublicKey
	BTokenVault          solana.PublicKey
	AVaultLpMint         solana.PublicKey
	BVaultLpMint         solana.PublicKey
	AVaultLp             solana.PublicKey
	BVaultLp             solana.PublicKey
	ProtocolTokenFee     solana.PublicKey
	User                 solana.PublicKey
	VaultProgram         solana.PublicKey
	TokenProgram         solana.PublicKey
}

// SwapInstruction represents the swap instruction of the dynamic AMM program
type SwapInstruction struct {
	bin.BaseVariant
	InAmount                uint64
	MinimumOutAmount        uint64
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewSwapInstruction builds the swap instruction with the account list in the
// exact order the dynamic AMM program expects
func NewSwapInstruction(accounts SwapAccounts, inAmount, minimumOutAmount uint64) *SwapInstruction {
	inst := &SwapInstruction{
		InAmount:         inAmount,
		MinimumOutAmount: minimumOutAmount,
		AccountMetaSlice: make(solana.AccountMetaSlice, 0, 15),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}

	inst.AccountMetaSlice = append(inst.AccountMetaSlice,
		solana.NewAccountMeta(accounts.Pool, true, false),
		solana.NewAccountMeta(accounts.UserSourceToken, true, false),
		solana.NewAccountMeta(accounts.UserDestinationToken, true, false),
		solana.NewAccountMeta(accounts.AVault, true, false),
		solana.NewAccountMeta(accounts.BVault, true, false),
		solana.NewAccountMeta(accounts.ATokenVault, true, false),
		solana.NewAccountMeta(accounts.BTokenVault, true, false),
		solana.NewAccountMeta(accounts.AVaultLpMint, true, false),
		solana.NewAccountMeta(accounts.BVaultLpMint, true, false),
		solana.NewAccountMeta(accounts.AVaultLp, true, false),
		solana.NewAccountMeta(accounts.BVaultLp, true, false),
		solana.NewAccountMeta(accounts.ProtocolTokenFee, true, false),
		solana.NewAccountMeta(accounts.User, false, true),
		solana.NewAccountMeta(accounts.VaultProgram, false, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
	)

	return inst
}

// ProgramID returns the program ID for the dynamic AMM program
func (inst *SwapInstruction) ProgramID() solana.PublicKey {
	return DynamicAmmProgramID
}

// Accounts returns the account metas for the instruction
func (inst *SwapInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *SwapInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)

	if _, err := buf.Write(SwapIxDiscm[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}

	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteUint64(inst.InAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode in amount: %w", err)
	}
	if err := enc.WriteUint64(inst.MinimumOutAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode minimum out amount: %w", err)
	}

	return buf.Bytes(), nil
}
