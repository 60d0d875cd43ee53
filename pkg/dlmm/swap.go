package dlmm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// SwapAccounts is the fixed account set of the DLMM swap instruction. Optional
// accounts left as the zero value are passed as the DLMM program ID, the
// convention for omitted optional accounts.
type SwapAccounts struct {
	LbPair                  solana.PublicKey
	BinArrayBitmapExtension solana.PublicKey
	ReserveX                solana.PublicKey
	ReserveY                solana.PublicKey
	UserTokenIn             solana.PublicKey
	UserTokenOut            solana.PublicKey
	TokenXMint              solana.PublicKey
	TokenYMint              solana.PublicKey
	Oracle                  solana.PublicKey
	HostFeeIn               solana.PublicKey
	User                    solana.PublicKey
	TokenXProgram           solana.PublicKey
	TokenYProgram           solana.PublicKey
	EventAuthority          solana.PublicKey
}

// SwapInstruction represents the swap instruction of the DLMM program.
// Bin arrays to traverse are appended as remaining accounts.
type SwapInstruction struct {
	bin.BaseVariant
	AmountIn                uint64
	MinAmountOut            uint64
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewSwapInstruction builds the swap instruction with the account list in the
// exact order the DLMM program expects
func NewSwapInstruction(
	accounts SwapAccounts,
	amountIn uint64,
	minAmountOut uint64,
	binArrays []solana.PublicKey,
) *SwapInstruction {
	orNone := func(key solana.PublicKey) solana.PublicKey {
		if key.IsZero() {
			return DlmmProgramID
		}
		return key
	}

	inst := &SwapInstruction{
		AmountIn:         amountIn,
		MinAmountOut:     minAmountOut,
		AccountMetaSlice: make(solana.AccountMetaSlice, 0, 15+len(binArrays)),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}

	inst.AccountMetaSlice = append(inst.AccountMetaSlice,
		solana.NewAccountMeta(accounts.LbPair, true, false),
		solana.NewAccountMeta(orNone(accounts.BinArrayBitmapExtension), false, false),
		solana.NewAccountMeta(accounts.ReserveX, true, false),
		solana.NewAccountMeta(accounts.ReserveY, true, false),
		solana.NewAccountMeta(accounts.UserTokenIn, true, false),
		solana.NewAccountMeta(accounts.UserTokenOut, true, false),
		solana.NewAccountMeta(accounts.TokenXMint, false, false),
		solana.NewAccountMeta(accounts.TokenYMint, false, false),
		solana.NewAccountMeta(accounts.Oracle, true, false),
		solana.NewAccountMeta(orNone(accounts.HostFeeIn), true, false),
		solana.NewAccountMeta(accounts.User, false, true),
		solana.NewAccountMeta(accounts.TokenXProgram, false, false),
		solana.NewAccountMeta(accounts.TokenYProgram, false, false),
		solana.NewAccountMeta(accounts.EventAuthority, false, false),
		solana.NewAccountMeta(DlmmProgramID, false, false),
	)

	for _, binArray := range binArrays {
		inst.AccountMetaSlice = append(inst.AccountMetaSlice, solana.NewAccountMeta(binArray, true, false))
	}

	return inst
}

// ProgramID returns the program ID for the DLMM program
func (inst *SwapInstruction) ProgramID() solana.PublicKey {
	return DlmmProgramID
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
	if err := enc.WriteUint64(inst.AmountIn, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode amount in: %w", err)
	}
	if err := enc.WriteUint64(inst.MinAmountOut, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode min amount out: %w", err)
	}

	return buf.Bytes(), nil
}
