// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/math/set"
	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
)

var _ txs.Visitor = (*executor)(nil)

// executor applies the operations of a single transaction to [State].
type executor struct {
	*Backend
	State   state.Chain
	TxID    ids.ID
	Signers set.Set[ids.ShortID]
}

// Execute applies every instruction of [tx] to [chain] in order and returns
// the decoded operations. Execution stops at the first failing instruction;
// the caller must then discard every write made to [chain].
func Execute(backend *Backend, chain state.Chain, tx *txs.Tx) ([]txs.Operation, error) {
	if err := tx.SyntacticVerify(); err != nil {
		return nil, err
	}
	signers, err := backend.Signers.Signers(tx)
	if err != nil {
		return nil, err
	}

	e := &executor{
		Backend: backend,
		State:   chain,
		TxID:    tx.ID(),
		Signers: signers,
	}
	ops := make([]txs.Operation, len(tx.Unsigned.Instructions))
	for i, ins := range tx.Unsigned.Instructions {
		op, err := txs.ParseOperation(ins)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		if err := op.Visit(e); err != nil {
			return nil, fmt.Errorf("instruction %d (%s): %w", i, op.Opcode(), err)
		}

		e.Log.Debug("executed instruction",
			log.Stringer("txID", e.TxID),
			log.Int("index", i),
			log.Stringer("opcode", op.Opcode()),
		)
		ops[i] = op
	}
	return ops, nil
}
