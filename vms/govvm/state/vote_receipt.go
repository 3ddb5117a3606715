// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/ids"
)

// Choice is the side a vote was cast for.
type Choice uint8

const (
	Against Choice = 0
	For     Choice = 1
)

func (c Choice) String() string {
	switch c {
	case Against:
		return "against"
	case For:
		return "for"
	default:
		return fmt.Sprintf("choice(%d)", uint8(c))
	}
}

func (c Choice) Verify() error {
	switch c {
	case Against, For:
		return nil
	default:
		return fmt.Errorf("%w: %d", errInvalidChoice, uint8(c))
	}
}

// VoteReceipt records that [Voter] voted on [Proposal]. At most one exists
// per pair; its presence is what rejects a second vote.
type VoteReceipt struct {
	Proposal ids.ShortID `serialize:"true" json:"proposal"`
	Voter    ids.ShortID `serialize:"true" json:"voter"`
	Choice   Choice      `serialize:"true" json:"choice"`
}

type voteReceiptRecord struct {
	Kind        Kind `serialize:"true"`
	VoteReceipt `serialize:"true"`
}

func (*voteReceiptRecord) kind() Kind {
	return KindVoteReceipt
}

func (r *voteReceiptRecord) verify() error {
	return r.VoteReceipt.Verify()
}

func (r *VoteReceipt) Verify() error {
	switch {
	case r.Proposal == ids.ShortEmpty:
		return fmt.Errorf("%w: proposal", errEmptyIdentity)
	case r.Voter == ids.ShortEmpty:
		return fmt.Errorf("%w: voter", errEmptyIdentity)
	default:
		return r.Choice.Verify()
	}
}

// Bytes returns the canonical encoding of [r].
func (r *VoteReceipt) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, &voteReceiptRecord{
		Kind:        KindVoteReceipt,
		VoteReceipt: *r,
	})
}

// ParseVoteReceipt decodes a vote receipt record.
func ParseVoteReceipt(b []byte) (*VoteReceipt, error) {
	r := &voteReceiptRecord{}
	if err := parse(b, VoteReceiptSize, r); err != nil {
		return nil, err
	}
	return &r.VoteReceipt, nil
}
