package stakeforfee

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// InitializeVaultParams are the configuration parameters of a new
// stake-for-fee vault
type InitializeVaultParams struct {
	TopListLength               uint16
	SecondsToFullUnlock         uint64
	UnstakeLockDuration         uint64
	StartFeeDistributeTimestamp *int64
	Padding                     [64]uint8
}

func (p *InitializeVaultParams) encode(enc *bin.Encoder) error {
	if err := enc.WriteUint16(p.TopListLength, binary.LittleEndian); err != nil {
		return fmt.Errorf("failed to encode top list length: %w", err)
	}
	if err := enc.WriteUint64(p.SecondsToFullUnlock, binary.LittleEndian); err != nil {
		return fmt.Errorf("failed to encode seconds to full unlock: %w", err)
	}
	if err := enc.WriteUint64(p.UnstakeLockDuration, binary.LittleEndian); err != nil {
		return fmt.Errorf("failed to encode unstake lock duration: %w", err)
	}
	if p.StartFeeDistributeTimestamp == nil {
		if err := enc.WriteBool(false); err != nil {
			return fmt.Errorf("failed to encode start fee distribute timestamp: %w", err)
		}
	} else {
		if err := enc.WriteBool(true); err != nil {
			return fmt.Errorf("failed to encode start fee distribute timestamp: %w", err)
		}
		if err := enc.WriteInt64(*p.StartFeeDistributeTimestamp, binary.LittleEndian); err != nil {
			return fmt.Errorf("failed to encode start fee distribute timestamp: %w", err)
		}
	}
	if err := enc.WriteBytes(p.Padding[:], false); err != nil {
		return fmt.Errorf("failed to encode padding: %w", err)
	}
	return nil
}

// InitializeVaultAccounts are the accounts of the initialize_vault instruction
type InitializeVaultAccounts struct {
	Vault                  solana.PublicKey
	StakeTokenVault        solana.PublicKey
	QuoteTokenVault        solana.PublicKey
	TopStakerList          solana.PublicKey
	FullBalanceList        solana.PublicKey
	StakeMint              solana.PublicKey
	QuoteMint              solana.PublicKey
	Pool                   solana.PublicKey
	LockEscrow             solana.PublicKey
	Payer                  solana.PublicKey
	SystemProgram          solana.PublicKey
	TokenProgram           solana.PublicKey
	AssociatedTokenProgram solana.PublicKey
	EventAuthority         solana.PublicKey
}

// InitializeVaultInstruction represents the stake-for-fee vault
// initialization instruction
type InitializeVaultInstruction struct {
	bin.BaseVariant
	Params                  InitializeVaultParams
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitializeVaultInstruction builds the initialize_vault instruction
func NewInitializeVaultInstruction(accounts InitializeVaultAccounts, params InitializeVaultParams) *InitializeVaultInstruction {
	inst := &InitializeVaultInstruction{
		Params: params,
		AccountMetaSlice: solana.AccountMetaSlice{
			solana.NewAccountMeta(accounts.Vault, true, false),
			solana.NewAccountMeta(accounts.StakeTokenVault, true, false),
			solana.NewAccountMeta(accounts.QuoteTokenVault, true, false),
			solana.NewAccountMeta(accounts.TopStakerList, true, false),
			solana.NewAccountMeta(accounts.FullBalanceList, true, false),
			solana.NewAccountMeta(accounts.StakeMint, false, false),
			solana.NewAccountMeta(accounts.QuoteMint, false, false),
			solana.NewAccountMeta(accounts.Pool, false, false),
			solana.NewAccountMeta(accounts.LockEscrow, false, false),
			solana.NewAccountMeta(accounts.Payer, true, true),
			solana.NewAccountMeta(accounts.SystemProgram, false, false),
			solana.NewAccountMeta(accounts.TokenProgram, false, false),
			solana.NewAccountMeta(accounts.AssociatedTokenProgram, false, false),
			solana.NewAccountMeta(accounts.EventAuthority, false, false),
			solana.NewAccountMeta(StakeForFeeProgramID, false, false),
		},
	}
	inst.BaseVariant = bin.BaseVariant{Impl: inst}
	return inst
}

// ProgramID returns the program ID for the stake-for-fee program
func (inst *InitializeVaultInstruction) ProgramID() solana.PublicKey {
	return StakeForFeeProgramID
}

// Accounts returns the account metas for the instruction
func (inst *InitializeVaultInstruction) Accounts() (out []*solana.AccountMeta) {
	return inst.AccountMetaSlice
}

// Data serializes the instruction data
func (inst *InitializeVaultInstruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)

	if _, err := buf.Write(InitializeVaultIxDiscm[:]); err != nil {
		return nil, fmt.Errorf("failed to write discriminator: %w", err)
	}

	enc := bin.NewBorshEncoder(buf)
	if err := inst.Params.encode(enc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
