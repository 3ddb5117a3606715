// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

var _ Operation = (*ExecuteProposal)(nil)

// ExecuteProposal marks [Proposal] as executed. Only the admin of
// [Governance] may execute.
type ExecuteProposal struct {
	Admin      AccountMeta
	Proposal   AccountMeta
	Governance AccountMeta
}

func (*ExecuteProposal) Opcode() Opcode {
	return OpExecute
}

func (o *ExecuteProposal) Visit(visitor Visitor) error {
	return visitor.ExecuteProposal(o)
}

// Instruction encodes [o] as an instruction.
func (o *ExecuteProposal) Instruction() *Instruction {
	return &Instruction{
		Accounts: []AccountMeta{o.Admin, o.Proposal, o.Governance},
		Data:     []byte{byte(OpExecute)},
	}
}
