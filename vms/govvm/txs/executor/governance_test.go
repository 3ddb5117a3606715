// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/crypto/secp256k1"
	"github.com/luxfi/govvm/vms/govvm/config"
	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
	"github.com/luxfi/govvm/vms/govvm/txs/txstest"
)

func TestInitializeGovernance(t *testing.T) {
	require := require.New(t)

	env := newEnvironment(t, config.Quorum{})
	env.initialize(t)

	gov, err := env.state.GetGovernance(env.governance)
	require.NoError(err)
	require.Equal(&state.Governance{
		Admin:         env.admin.Address(),
		ProposalCount: 0,
	}, gov)
}

func TestInitializeGovernanceFailures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*testing.T, *environment)
		signers     func(*environment) []*secp256k1.PrivateKey
		instruction func(*environment) *txs.Instruction
		expectedErr error
	}{
		{
			name: "already initialized",
			setup: func(t *testing.T, env *environment) {
				env.initialize(t)
			},
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.keys[0], env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				return txstest.Initialize(env.keys[0].Address(), env.governance)
			},
			expectedErr: ErrAlreadyInitialized,
		},
		{
			name: "malformed account",
			setup: func(t *testing.T, env *environment) {
				require.NoError(t, env.state.PutAccount(env.governance, []byte{1, 2, 3}))
				require.NoError(t, env.state.Commit())
			},
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.admin, env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				return txstest.Initialize(env.admin.Address(), env.governance)
			},
			expectedErr: state.ErrMalformedRecord,
		},
		{
			name: "admin did not sign",
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.keys[0], env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				return txstest.Initialize(env.admin.Address(), env.governance)
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name: "admin not flagged as signer",
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.admin, env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				op := &txs.InitializeGovernance{
					Admin:      txs.Writable(env.admin.Address()),
					Governance: txs.Signer(env.governance),
				}
				return op.Instruction()
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name: "admin not writable",
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.admin, env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				op := &txs.InitializeGovernance{
					Admin:      txs.AccountMeta{Key: env.admin.Address(), IsSigner: true},
					Governance: txs.Signer(env.governance),
				}
				return op.Instruction()
			},
			expectedErr: ErrInvalidAccount,
		},
		{
			name: "governance not writable",
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.admin, env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				op := &txs.InitializeGovernance{
					Admin:      txs.Signer(env.admin.Address()),
					Governance: txs.AccountMeta{Key: env.governance, IsSigner: true},
				}
				return op.Instruction()
			},
			expectedErr: ErrInvalidAccount,
		},
		{
			name: "governance did not sign",
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.admin}
			},
			instruction: func(env *environment) *txs.Instruction {
				return txstest.Initialize(env.admin.Address(), env.governance)
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name: "governance not flagged as signer",
			signers: func(env *environment) []*secp256k1.PrivateKey {
				return []*secp256k1.PrivateKey{env.admin, env.governanceKey}
			},
			instruction: func(env *environment) *txs.Instruction {
				op := &txs.InitializeGovernance{
					Admin:      txs.Signer(env.admin.Address()),
					Governance: txs.Writable(env.governance),
				}
				return op.Instruction()
			},
			expectedErr: ErrUnauthorized,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			env := newEnvironment(t, config.Quorum{})
			if test.setup != nil {
				test.setup(t, env)
			}
			before := env.snapshot(t, env.governance)

			err := env.execute(t, test.signers(env), test.instruction(env))
			require.ErrorIs(err, test.expectedErr)
			require.Equal(before, env.snapshot(t, env.governance))
		})
	}
}

// Derived slots have no private key, so they can never countersign an
// initialization. Claiming one must fail and leave the slot usable.
func TestInitializeGovernanceAtDerivedSlot(t *testing.T) {
	require := require.New(t)

	env := newEnvironment(t, config.Quorum{})
	env.initialize(t)
	attacker := env.keys[2]
	voter := env.keys[1]

	proposalSlot := state.ProposalAddress(env.governance, 0)
	err := env.execute(t,
		[]*secp256k1.PrivateKey{attacker},
		txstest.Initialize(attacker.Address(), proposalSlot),
	)
	require.ErrorIs(err, ErrUnauthorized)

	proposal := env.createProposal(t, env.keys[0])
	require.Equal(proposalSlot, proposal)

	receiptSlot := state.VoteReceiptAddress(proposal, voter.Address())
	err = env.execute(t,
		[]*secp256k1.PrivateKey{attacker},
		txstest.Initialize(attacker.Address(), receiptSlot),
	)
	require.ErrorIs(err, ErrUnauthorized)

	require.NoError(env.vote(t, voter, proposal, state.For))
	p, err := env.state.GetProposal(proposal)
	require.NoError(err)
	require.Equal(uint64(1), p.VotesFor)
}
