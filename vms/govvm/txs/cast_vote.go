// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/luxfi/govvm/vms/govvm/state"

var _ Operation = (*CastVote)(nil)

// CastVote records [Voter]'s vote on [Proposal] in a new receipt stored at
// [VoteReceipt].
type CastVote struct {
	Voter       AccountMeta
	Proposal    AccountMeta
	VoteReceipt AccountMeta
	Choice      state.Choice
}

func (*CastVote) Opcode() Opcode {
	return OpVote
}

func (o *CastVote) Visit(visitor Visitor) error {
	return visitor.CastVote(o)
}

// Instruction encodes [o] as an instruction.
func (o *CastVote) Instruction() *Instruction {
	return &Instruction{
		Accounts: []AccountMeta{o.Voter, o.Proposal, o.VoteReceipt},
		Data:     []byte{byte(OpVote), byte(o.Choice)},
	}
}
