// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/luxfi/ids"
	"github.com/luxfi/govvm/vms/govvm/state"
)

var (
	ErrUnknownInstruction       = errors.New("unknown instruction")
	ErrMalformedInstructionData = errors.New("malformed instruction data")
	ErrMissingAccounts          = errors.New("not enough account references")
)

// Opcode is the first byte of an instruction's data.
type Opcode uint8

const (
	OpInitialize Opcode = iota
	OpCreateProposal
	OpVote
	OpExecute
)

func (o Opcode) String() string {
	switch o {
	case OpInitialize:
		return "initialize"
	case OpCreateProposal:
		return "create_proposal"
	case OpVote:
		return "vote"
	case OpExecute:
		return "execute"
	default:
		return fmt.Sprintf("opcode(%d)", uint8(o))
	}
}

// AccountMeta references an account an instruction reads or writes.
type AccountMeta struct {
	Key ids.ShortID `serialize:"true" json:"key"`
	// IsSigner claims that the owner of [Key] signed the transaction.
	IsSigner bool `serialize:"true" json:"isSigner"`
	// IsWritable permits the instruction to modify the account.
	IsWritable bool `serialize:"true" json:"isWritable"`
}

// Signer returns a writable account meta that must be signed for.
func Signer(key ids.ShortID) AccountMeta {
	return AccountMeta{Key: key, IsSigner: true, IsWritable: true}
}

// Writable returns a writable account meta that need not be signed for.
func Writable(key ids.ShortID) AccountMeta {
	return AccountMeta{Key: key, IsWritable: true}
}

// ReadOnly returns an account meta that may only be read.
func ReadOnly(key ids.ShortID) AccountMeta {
	return AccountMeta{Key: key}
}

// Instruction is a single request to the governance program. The meaning of
// each account reference is given by its position.
type Instruction struct {
	Accounts []AccountMeta `serialize:"true" json:"accounts"`
	Data     []byte        `serialize:"true" json:"data"`
}

// Operation is a decoded instruction with its accounts resolved to roles.
type Operation interface {
	Opcode() Opcode

	// Visit calls [visitor] with this operation's concrete type
	Visit(visitor Visitor) error
}

// ParseOperation decodes the opcode and payload of [ins] and resolves its
// account references. Trailing account references are ignored.
func ParseOperation(ins *Instruction) (Operation, error) {
	if len(ins.Data) == 0 {
		return nil, fmt.Errorf("%w: missing opcode", ErrMalformedInstructionData)
	}

	var (
		op      = Opcode(ins.Data[0])
		payload = ins.Data[1:]
	)
	switch op {
	case OpInitialize:
		accounts, err := resolve(op, ins, payload, 2)
		if err != nil {
			return nil, err
		}
		return &InitializeGovernance{
			Admin:      accounts[0],
			Governance: accounts[1],
		}, nil
	case OpCreateProposal:
		accounts, err := resolve(op, ins, payload, 3)
		if err != nil {
			return nil, err
		}
		return &CreateProposal{
			Creator:    accounts[0],
			Governance: accounts[1],
			Proposal:   accounts[2],
		}, nil
	case OpVote:
		if len(payload) != 1 {
			return nil, fmt.Errorf("%w: %s expects 1 payload byte, got %d", ErrMalformedInstructionData, op, len(payload))
		}
		choice := state.Choice(payload[0])
		if err := choice.Verify(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedInstructionData, err)
		}
		accounts, err := resolve(op, ins, nil, 3)
		if err != nil {
			return nil, err
		}
		return &CastVote{
			Voter:       accounts[0],
			Proposal:    accounts[1],
			VoteReceipt: accounts[2],
			Choice:      choice,
		}, nil
	case OpExecute:
		accounts, err := resolve(op, ins, payload, 3)
		if err != nil {
			return nil, err
		}
		return &ExecuteProposal{
			Admin:      accounts[0],
			Proposal:   accounts[1],
			Governance: accounts[2],
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstruction, uint8(op))
	}
}

func resolve(op Opcode, ins *Instruction, payload []byte, numAccounts int) ([]AccountMeta, error) {
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %s takes no payload, got %d bytes", ErrMalformedInstructionData, op, len(payload))
	}
	if len(ins.Accounts) < numAccounts {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrMissingAccounts, op, numAccounts, len(ins.Accounts))
	}
	return ins.Accounts[:numAccounts], nil
}
