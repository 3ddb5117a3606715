// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

var _ Operation = (*InitializeGovernance)(nil)

// InitializeGovernance creates the governance root at [Governance] with
// [Admin] as its admin.
type InitializeGovernance struct {
	Admin      AccountMeta
	Governance AccountMeta
}

func (*InitializeGovernance) Opcode() Opcode {
	return OpInitialize
}

func (o *InitializeGovernance) Visit(visitor Visitor) error {
	return visitor.InitializeGovernance(o)
}

// Instruction encodes [o] as an instruction.
func (o *InitializeGovernance) Instruction() *Instruction {
	return &Instruction{
		Accounts: []AccountMeta{o.Admin, o.Governance},
		Data:     []byte{byte(OpInitialize)},
	}
}
