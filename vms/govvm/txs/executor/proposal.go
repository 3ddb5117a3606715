// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"errors"
	"fmt"

	"github.com/luxfi/govvm/vms/govvm/config"
	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
	safemath "github.com/luxfi/math"
)

func (e *executor) CreateProposal(op *txs.CreateProposal) error {
	if err := requireSigner(e.Signers, op.Creator); err != nil {
		return err
	}
	if err := requireWritable(op.Governance, op.Proposal); err != nil {
		return err
	}

	gov, err := e.State.GetGovernance(op.Governance.Key)
	if err != nil {
		return err
	}
	index := gov.ProposalCount
	gov.ProposalCount, err = safemath.Add(gov.ProposalCount, 1)
	if err != nil {
		return fmt.Errorf("%w: proposal count of %s: %w", ErrArithmeticOverflow, op.Governance.Key, err)
	}

	if err := requireKey(op.Proposal, state.ProposalAddress(op.Governance.Key, index)); err != nil {
		return err
	}
	if err := e.requireEmpty(op.Proposal); err != nil {
		return err
	}

	if err := e.State.PutProposal(op.Proposal.Key, state.NewProposal(op.Governance.Key, index, op.Creator.Key)); err != nil {
		return err
	}
	return e.State.PutGovernance(op.Governance.Key, gov)
}

func (e *executor) CastVote(op *txs.CastVote) error {
	if err := requireSigner(e.Signers, op.Voter); err != nil {
		return err
	}
	if err := requireWritable(op.Proposal, op.VoteReceipt); err != nil {
		return err
	}
	if err := requireKey(op.VoteReceipt, state.VoteReceiptAddress(op.Proposal.Key, op.Voter.Key)); err != nil {
		return err
	}

	proposal, err := e.State.GetProposal(op.Proposal.Key)
	if err != nil {
		return err
	}
	if !proposal.IsActive {
		return fmt.Errorf("%w: %s", ErrProposalInactive, op.Proposal.Key)
	}

	_, err = e.State.GetVoteReceipt(op.VoteReceipt.Key)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s on %s", ErrAlreadyVoted, op.Voter.Key, op.Proposal.Key)
	case !errors.Is(err, state.ErrUninitialized):
		return err
	}

	switch op.Choice {
	case state.For:
		proposal.VotesFor, err = safemath.Add(proposal.VotesFor, 1)
	default:
		proposal.VotesAgainst, err = safemath.Add(proposal.VotesAgainst, 1)
	}
	if err != nil {
		return fmt.Errorf("%w: %s votes on %s: %w", ErrArithmeticOverflow, op.Choice, op.Proposal.Key, err)
	}

	receipt := &state.VoteReceipt{
		Proposal: op.Proposal.Key,
		Voter:    op.Voter.Key,
		Choice:   op.Choice,
	}
	if err := e.State.PutVoteReceipt(op.VoteReceipt.Key, receipt); err != nil {
		return err
	}
	return e.State.PutProposal(op.Proposal.Key, proposal)
}

func (e *executor) ExecuteProposal(op *txs.ExecuteProposal) error {
	if err := requireSigner(e.Signers, op.Admin); err != nil {
		return err
	}
	gov, err := e.State.GetGovernance(op.Governance.Key)
	if err != nil {
		return err
	}
	if err := requireAdmin(e.Signers, op.Admin, gov.Admin); err != nil {
		return err
	}
	if err := requireWritable(op.Proposal); err != nil {
		return err
	}

	proposal, err := e.State.GetProposal(op.Proposal.Key)
	if err != nil {
		return err
	}
	if proposal.Governance != op.Governance.Key {
		return fmt.Errorf("%w: proposal %s belongs to %s", ErrInvalidAccount, op.Proposal.Key, proposal.Governance)
	}
	switch {
	case proposal.Executed:
		return fmt.Errorf("%w: %s", ErrAlreadyExecuted, op.Proposal.Key)
	case !proposal.IsActive:
		return fmt.Errorf("%w: %s", ErrProposalInactive, op.Proposal.Key)
	}
	if err := verifyQuorum(e.Quorum, proposal); err != nil {
		return fmt.Errorf("%w: %s", err, op.Proposal.Key)
	}

	proposal.IsActive = false
	proposal.Executed = true
	return e.State.PutProposal(op.Proposal.Key, proposal)
}

// requireEmpty verifies that [account] holds no record.
func (e *executor) requireEmpty(account txs.AccountMeta) error {
	b, err := e.State.GetAccount(account.Key)
	if err != nil {
		return err
	}
	if !state.Uninitialized(b) {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, account.Key)
	}
	return nil
}

func verifyQuorum(q config.Quorum, p *state.Proposal) error {
	total, err := safemath.Add(p.VotesFor, p.VotesAgainst)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArithmeticOverflow, err)
	}
	if total < q.MinVotes {
		return fmt.Errorf("%w: %d of %d votes", ErrQuorumNotReached, total, q.MinVotes)
	}
	if q.Policy == config.QuorumMajority && p.VotesFor <= p.VotesAgainst {
		return fmt.Errorf("%w: %d for, %d against", ErrQuorumNotReached, p.VotesFor, p.VotesAgainst)
	}
	return nil
}
