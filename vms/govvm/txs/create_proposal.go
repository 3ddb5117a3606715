// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

var _ Operation = (*CreateProposal)(nil)

// CreateProposal creates the next proposal of [Governance] at [Proposal].
type CreateProposal struct {
	Creator    AccountMeta
	Governance AccountMeta
	Proposal   AccountMeta
}

func (*CreateProposal) Opcode() Opcode {
	return OpCreateProposal
}

func (o *CreateProposal) Visit(visitor Visitor) error {
	return visitor.CreateProposal(o)
}

// Instruction encodes [o] as an instruction.
func (o *CreateProposal) Instruction() *Instruction {
	return &Instruction{
		Accounts: []AccountMeta{o.Creator, o.Governance, o.Proposal},
		Data:     []byte{byte(OpCreateProposal)},
	}
}
