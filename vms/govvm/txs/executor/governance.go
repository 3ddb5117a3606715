// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"errors"
	"fmt"

	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
)

// InitializeGovernance must be countersigned by the governance account. A
// key without a private key, such as a derived proposal or receipt slot,
// can therefore never be claimed as a governance root.
func (e *executor) InitializeGovernance(op *txs.InitializeGovernance) error {
	if err := requireSigner(e.Signers, op.Admin); err != nil {
		return err
	}
	if err := requireWritable(op.Admin, op.Governance); err != nil {
		return err
	}
	if err := requireSigner(e.Signers, op.Governance); err != nil {
		return err
	}

	_, err := e.State.GetGovernance(op.Governance.Key)
	switch {
	case err == nil:
		return fmt.Errorf("%w: governance %s", ErrAlreadyInitialized, op.Governance.Key)
	case !errors.Is(err, state.ErrUninitialized):
		return err
	}

	return e.State.PutGovernance(op.Governance.Key, &state.Governance{
		Admin: op.Admin.Key,
	})
}
