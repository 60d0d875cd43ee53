package dynamicamm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// CustomizableParams are the pool parameters of the customizable
// permissionless pool
type CustomizableParams struct {
	TradeFeeNumerator uint32
	ActivationPoint   *int64
	HasAlphaVault     bool
	ActivationType    uint8
	Padding           [90]uint8
}

func (p *CustomizableParams) encode(enc *bin.Encoder) error {
	if err := enc.WriteUint32(p.TradeFeeNumerator, binary.LittleEndian); err != nil {
		return fmt.Errorf("failed to encode trade fee numerator: %w", err)
	}
	if err := encodeOptionalInt64(enc, p.ActivationPoint); err != nil {
		return fmt.Errorf("failed to encode activation point: %w", err)
	}
	if err := enc.WriteBool(p.HasAlphaVault); err != nil {
		return fmt.Errorf("failed to encode has alpha vault: %w", err)
	}
	if err := enc.WriteUint8(p.ActivationType); err != nil {
		return fmt.Errorf("failed to encode activation type: %w", err)
	}
	if err := enc.WriteBytes(p.Padding[:], false); err != nil {
		return fmt.Errorf("failed to encode padding: %w", err)
	}
	return nil
}

func encodeOptionalInt64(enc *bin.Encoder, v *int64) error {
	if v == nil {
		return enc.WriteBool(false)
	}
	if err := enc.WriteBool(true); err != nil {
		return err
	}
	return enc.WriteInt64(*v, binary.LittleEndian)
}

func encodeOptionalUint64(enc *bin.Encoder, v *uint64) error {
	if v == nil {
		return enc.WriteBool(false)
	}
	if err := enc.WriteBool(true); err != nil {
		return err
	}
	return enc.WriteUint64(*v, binary.LittleEndian)
}

// InitPoolAccounts is the account set shared by the pool initialization
// instructions. Config is only used by the config based variant.
type InitPoolAccounts struct {
	Pool                   solana.PublicKey
	Config                 solana.PublicKey
	LpMint                 solana.PublicKey
	TokenAMint             solana.PublicKey
	TokenBMint             solana.PublicKey
	AVault                 solana.PublicKey
	BVault                 solana.PublicKey
	ATokenVault            solana.PublicKey
	BTokenVault            solana.PublicKey
	AVaultLpMint           solana.PublicKey
	BVaultLpMint           solana.PublicKey
	AVaultLp               solana.PublicKey
	BVaultLp               solana.PublicKey
	PayerTokenA            solana.PublicKey
	PayerTokenB            solana.PublicKey
	PayerPoolLp            solana.PublicKey
	ProtocolTokenAFee      solana.PublicKey
	ProtocolTokenBFee      solana.PublicKey
	Payer                  solana.PublicKey
	Rent                   solana.PublicKey
	MintMetadata           solana.PublicKey
	MetadataProgram        solana.PublicKey
	VaultProgram           solana.PublicKey
	TokenProgram           solana.PublicKey
	AssociatedTokenProgram solana.PublicKey
	SystemProgram          solana.PublicKey
}

func (a InitPoolAccounts) metas(withConfig bool) solana.AccountMetaSlice {
	metas := make(solana.AccountMetaSlice, 0, 26)
	metas = append(metas, solana.NewAccountMeta(a.Pool, true, false))
	if withConfig {
		metas = append(metas, solana.NewAccountMeta(a.Config, false, false))
	}
	metas = append(metas,
		solana.NewAccountMeta(a.LpMint, true, false),
		solana.NewAccountMeta(a.TokenAMint, false, false),
		solana.NewAccountMeta(a.TokenBMint, false, false),
		solana.NewAccountMeta(a.AVault, true, false),
		solana.NewAccountMeta(a.BVault, true, false),
		solana.NewAccountMeta(a.ATokenVault, true, false),
		solana.NewAccountMeta(a.BTokenVault, true, false),
		solana.NewAccountMeta(a.AVaultLpMint, true, false),
		solana.NewAccountMeta(a.BVaultLpMint, true, false),
		solana.NewAccountMeta(a.AVaultLp, true, false),
		solana.NewAccountMeta(a.BVaultLp, true, false),
		solana.NewAccountMeta(a.PayerTokenA, true, false),
		solana.NewAccountMeta(a.PayerTokenB, true, false),
		solana.NewAccountMeta(a.PayerPoolLp, true, false),
		solana.NewAccountMeta(a.ProtocolTokenAFee, true, false),
		solana.NewAccountMeta(a.ProtocolTokenBFee, true, false),
		solana.NewAccountMeta(a.Payer, true, true),
		solana.NewAccountMeta(a.Rent, false, false),
		solana.NewAccountMeta(a.MintMetadata, true, false),
		solana.NewAccountMeta(a.MetadataProgram, false, false),
		solana.NewAccountMeta(a.VaultProgram, false, false),
		solana.NewAccountMeta(a.TokenProgram, false, false),
		solana.NewAccountMeta(a.AssociatedTokenProgram, false, false),
		solana.NewAccountMeta(a.SystemProgram, false, false),
	)
	return metas
}

// InitCustomizablePoolInstruction represents the initialize customizable
// permissionless constant product pool instruction
type InitCustomizablePoolInstruction struct {
	bin.BaseVariant
	TokenAAmount            uint64
	TokenBAmount            uint64
	Params                  CustomizableParams
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitCustomizablePoolInstruction builds the customizable pool
// initialization instruction
func NewInitCustomizablePoolInstruction(
	accounts InitPoolAccounts,
	tokenAAmount, tokenBAmount uint64,
	params CustomizableParams,
) *InitCustomizablePoolInstruction {
	inst := &InitCustomizablePoolInstruction{
		TokenAAmount:     tokenAAmount,
		TokenBAmount:     tokenBAmount,
		Params:           params,
		AccountMetaSlice: accounts.metas(false),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}
	return inst
}

// ProgramID returns the program ID for the dynamic AMM program
func (inst *InitCustomizablePoolInstruction) ProgramID() solana.PublicKey {
	return DynamicAmmProgramID
}

// Accounts returns the account metas for the instruction
func (inst *InitCustomizablePoolInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *InitCustomizablePoolInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)

	if _, err := buf.Write(InitCustomizablePoolIxDiscm[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}

	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteUint64(inst.TokenAAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode token a amount: %w", err)
	}
	if err := enc.WriteUint64(inst.TokenBAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode token b amount: %w", err)
	}
	if err := inst.Params.encode(enc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// InitPoolWithConfigInstruction represents the initialize permissionless
// constant product pool with config (v2) instruction
type InitPoolWithConfigInstruction struct {
	bin.BaseVariant
	TokenAAmount            uint64
	TokenBAmount            uint64
	ActivationPoint         *uint64
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitPoolWithConfigInstruction builds the config based pool
// initialization instruction
func NewInitPoolWithConfigInstruction(
	accounts InitPoolAccounts,
	tokenAAmount, tokenBAmount uint64,
	activationPoint *uint64,
) *InitPoolWithConfigInstruction {
	inst := &InitPoolWithConfigInstruction{
		TokenAAmount:     tokenAAmount,
		TokenBAmount:     tokenBAmount,
		ActivationPoint:  activationPoint,
		AccountMetaSlice: accounts.metas(true),
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}
	return inst
}

// ProgramID returns the program ID for the dynamic AMM program
func (inst *InitPoolWithConfigInstruction) ProgramID() solana.PublicKey {
	return DynamicAmmProgramID
}

// Accounts returns the account metas for the instruction
func (inst *InitPoolWithConfigInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *InitPoolWithConfigInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)

	if _, err := buf.Write(InitPoolWithConfig2IxDiscm[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}

	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteUint64(inst.TokenAAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode token a amount: %w", err)
	}
	if err := enc.WriteUint64(inst.TokenBAmount, binary.LittleEndian); err != nil {
		return nil, fmt.Errorf("failed to encode token b amount: %w", err)
	}
	if err := encodeOptionalUint64(enc, inst.ActivationPoint); err != nil {
		return nil, fmt.Errorf("failed to encode activation point: %w", err)
	}

	return buf.Bytes(), nil
}
