// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/crypto/secp256k1"
	"github.com/luxfi/ids"
	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
)

// Initialize returns an instruction initializing [governance] with [admin].
// Both must sign the transaction.
func Initialize(admin, governance ids.ShortID) *txs.Instruction {
	op := &txs.InitializeGovernance{
		Admin:      txs.Signer(admin),
		Governance: txs.Signer(governance),
	}
	return op.Instruction()
}

// CreateProposal returns an instruction creating the proposal with ordinal
// [index] under [governance].
func CreateProposal(creator, governance ids.ShortID, index uint64) *txs.Instruction {
	op := &txs.CreateProposal{
		Creator:    txs.Signer(creator),
		Governance: txs.Writable(governance),
		Proposal:   txs.Writable(state.ProposalAddress(governance, index)),
	}
	return op.Instruction()
}

// Vote returns an instruction casting [voter]'s vote on [proposal] into the
// derived receipt slot.
func Vote(voter, proposal ids.ShortID, choice state.Choice) *txs.Instruction {
	op := &txs.CastVote{
		Voter:       txs.Signer(voter),
		Proposal:    txs.Writable(proposal),
		VoteReceipt: txs.Writable(state.VoteReceiptAddress(proposal, voter)),
		Choice:      choice,
	}
	return op.Instruction()
}

// Execute returns an instruction executing [proposal] as [admin].
func Execute(admin, proposal, governance ids.ShortID) *txs.Instruction {
	op := &txs.ExecuteProposal{
		Admin:      txs.Signer(admin),
		Proposal:   txs.Writable(proposal),
		Governance: txs.ReadOnly(governance),
	}
	return op.Instruction()
}

// NewTx returns [instructions] signed by [signers].
func NewTx(
	t testing.TB,
	nonce uint64,
	signers []*secp256k1.PrivateKey,
	instructions ...*txs.Instruction,
) *txs.Tx {
	tx := txs.NewTx(nonce, instructions...)
	require.NoError(t, tx.Sign(signers...))
	return tx
}

// Keys returns [n] fresh private keys.
func Keys(t testing.TB, n int) []*secp256k1.PrivateKey {
	keys := make([]*secp256k1.PrivateKey, n)
	for i := range keys {
		key, err := secp256k1.NewPrivateKey()
		require.NoError(t, err)
		keys[i] = key
	}
	return keys
}
