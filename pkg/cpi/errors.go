package cpi

import "errors"

var (
	// ErrMissingSigner is returned when a slot that must sign carries the
	// zero address
	ErrMissingSigner = errors.New("required signer account is not set")

	// ErrProgramMismatch is returned when a fixed program slot does not
	// match the pinned program ID
	ErrProgramMismatch = errors.New("program account does not match expected program ID")

	// ErrBadAllocation is returned when lock allocations do not add up to
	// the full basis point range
	ErrBadAllocation = errors.New("allocations must sum to 10000 bps")

	// ErrTokenAccountMismatch is returned when a supplied token account is
	// not the associated token account the operation requires
	ErrTokenAccountMismatch = errors.New("token account does not match derived associated token account")

	// ErrAmountOverflow is returned when amount arithmetic overflows
	ErrAmountOverflow = errors.New("amount arithmetic overflow")
)
