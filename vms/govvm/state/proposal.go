// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/ids"
)

// Proposal is created active and becomes inactive only by being executed.
type Proposal struct {
	Governance   ids.ShortID `serialize:"true" json:"governance"`
	Index        uint64      `serialize:"true" json:"index"`
	Creator      ids.ShortID `serialize:"true" json:"creator"`
	VotesFor     uint64      `serialize:"true" json:"votesFor"`
	VotesAgainst uint64      `serialize:"true" json:"votesAgainst"`
	IsActive     bool        `serialize:"true" json:"isActive"`
	Executed     bool        `serialize:"true" json:"executed"`
}

type proposalRecord struct {
	Kind     Kind `serialize:"true"`
	Proposal `serialize:"true"`
}

func (*proposalRecord) kind() Kind {
	return KindProposal
}

func (r *proposalRecord) verify() error {
	return r.Proposal.Verify()
}

// NewProposal returns the initial state of the [index]th proposal of
// [governance].
func NewProposal(governance ids.ShortID, index uint64, creator ids.ShortID) *Proposal {
	return &Proposal{
		Governance: governance,
		Index:      index,
		Creator:    creator,
		IsActive:   true,
	}
}

// Verify checks the invariants every initialized proposal record holds.
func (p *Proposal) Verify() error {
	switch {
	case p.Governance == ids.ShortEmpty:
		return fmt.Errorf("%w: governance", errEmptyIdentity)
	case p.Creator == ids.ShortEmpty:
		return fmt.Errorf("%w: creator", errEmptyIdentity)
	case p.IsActive == p.Executed:
		return errInvalidStatus
	default:
		return nil
	}
}

// Bytes returns the canonical encoding of [p].
func (p *Proposal) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, &proposalRecord{
		Kind:     KindProposal,
		Proposal: *p,
	})
}

// ParseProposal decodes a proposal record.
func ParseProposal(b []byte) (*Proposal, error) {
	r := &proposalRecord{}
	if err := parse(b, ProposalSize, r); err != nil {
		return nil, err
	}
	return &r.Proposal, nil
}
