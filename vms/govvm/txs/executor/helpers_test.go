// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/crypto/secp256k1"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/govvm/vms/govvm/config"
	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/state/statetest"
	"github.com/luxfi/govvm/vms/govvm/txs"
	"github.com/luxfi/govvm/vms/govvm/txs/txstest"
)

type environment struct {
	backend *Backend
	state   state.State
	admin   *secp256k1.PrivateKey
	keys    []*secp256k1.PrivateKey

	// governanceKey countersigns the initialization of [governance].
	governanceKey *secp256k1.PrivateKey
	governance    ids.ShortID
	nonce         uint64
}

func newEnvironment(t *testing.T, quorum config.Quorum) *environment {
	keys := txstest.Keys(t, 5)
	return &environment{
		backend: &Backend{
			Quorum:  quorum,
			Signers: NewSignerRecoverer(16),
			Log:     log.NoLog{},
		},
		state:         statetest.New(t, statetest.Config{}),
		admin:         keys[0],
		keys:          keys[2:],
		governanceKey: keys[1],
		governance:    keys[1].Address(),
	}
}

// execute signs [instructions] with [signers] and commits them if they all
// succeed.
func (env *environment) execute(t *testing.T, signers []*secp256k1.PrivateKey, instructions ...*txs.Instruction) error {
	tx := txstest.NewTx(t, env.nonce, signers, instructions...)
	env.nonce++
	return env.executeTx(t, tx)
}

func (env *environment) executeTx(t *testing.T, tx *txs.Tx) error {
	if _, err := Execute(env.backend, env.state, tx); err != nil {
		env.state.Abort()
		return err
	}
	require.NoError(t, env.state.Commit())
	return nil
}

func (env *environment) initialize(t *testing.T) {
	require.NoError(t, env.execute(t,
		[]*secp256k1.PrivateKey{env.admin, env.governanceKey},
		txstest.Initialize(env.admin.Address(), env.governance),
	))
}

// createProposal creates the next proposal as [creator] and returns its key.
func (env *environment) createProposal(t *testing.T, creator *secp256k1.PrivateKey) ids.ShortID {
	gov, err := env.state.GetGovernance(env.governance)
	require.NoError(t, err)

	require.NoError(t, env.execute(t,
		[]*secp256k1.PrivateKey{creator},
		txstest.CreateProposal(creator.Address(), env.governance, gov.ProposalCount),
	))
	return state.ProposalAddress(env.governance, gov.ProposalCount)
}

func (env *environment) vote(t *testing.T, voter *secp256k1.PrivateKey, proposal ids.ShortID, choice state.Choice) error {
	return env.execute(t,
		[]*secp256k1.PrivateKey{voter},
		txstest.Vote(voter.Address(), proposal, choice),
	)
}

func (env *environment) executeProposal(t *testing.T, admin *secp256k1.PrivateKey, proposal ids.ShortID) error {
	return env.execute(t,
		[]*secp256k1.PrivateKey{admin},
		txstest.Execute(admin.Address(), proposal, env.governance),
	)
}

func (env *environment) putProposal(t *testing.T, key ids.ShortID, p *state.Proposal) {
	require.NoError(t, env.state.PutProposal(key, p))
	require.NoError(t, env.state.Commit())
}

func (env *environment) snapshot(t *testing.T, keys ...ids.ShortID) map[ids.ShortID][]byte {
	return statetest.Snapshot(t, env.state, keys...)
}
