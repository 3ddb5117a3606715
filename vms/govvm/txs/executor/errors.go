// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"errors"

	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
)

var (
	ErrAlreadyInitialized = errors.New("account is already initialized")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrProposalInactive   = errors.New("proposal is not active")
	ErrAlreadyVoted       = errors.New("voter already voted on proposal")
	ErrAlreadyExecuted    = errors.New("proposal already executed")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrQuorumNotReached   = errors.New("quorum not reached")
)

// codes are checked in order, so more specific errors come first.
var codes = []struct {
	err  error
	code string
}{
	{txs.ErrNilTx, "malformed_tx"},
	{txs.ErrMalformedTx, "malformed_tx"},
	{txs.ErrUnknownInstruction, "unknown_instruction"},
	{txs.ErrMalformedInstructionData, "malformed_instruction_data"},
	{txs.ErrMissingAccounts, "missing_accounts"},
	{state.ErrUninitialized, "uninitialized"},
	{state.ErrMalformedRecord, "malformed_record"},
	{ErrAlreadyInitialized, "already_initialized"},
	{ErrUnauthorized, "unauthorized"},
	{ErrProposalInactive, "proposal_inactive"},
	{ErrAlreadyVoted, "already_voted"},
	{ErrAlreadyExecuted, "already_executed"},
	{ErrArithmeticOverflow, "arithmetic_overflow"},
	{ErrInvalidAccount, "invalid_account"},
	{ErrQuorumNotReached, "quorum_not_reached"},
}

// ErrorCode returns a stable name for the failure [err] describes. Errors
// that do not wrap a known failure, such as storage errors, are "internal".
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}
