// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"
)

func TestGovernanceLayout(t *testing.T) {
	require := require.New(t)

	admin := ids.ShortID{1, 2, 3}
	b, err := (&Governance{
		Admin:         admin,
		ProposalCount: 7,
	}).Bytes()
	require.NoError(err)
	require.Len(b, GovernanceSize)

	expected := []byte{0x00, 0x00, byte(KindGovernance)}
	expected = append(expected, admin[:]...)
	expected = append(expected, 0, 0, 0, 0, 0, 0, 0, 7)
	require.Equal(expected, b)

	g, err := ParseGovernance(b)
	require.NoError(err)
	require.Equal(admin, g.Admin)
	require.Equal(uint64(7), g.ProposalCount)
}

func TestRecordSizes(t *testing.T) {
	require := require.New(t)

	g, err := (&Governance{Admin: ids.GenerateTestShortID()}).Bytes()
	require.NoError(err)
	require.Len(g, GovernanceSize)

	p, err := NewProposal(ids.GenerateTestShortID(), 3, ids.GenerateTestShortID()).Bytes()
	require.NoError(err)
	require.Len(p, ProposalSize)

	r, err := (&VoteReceipt{
		Proposal: ids.GenerateTestShortID(),
		Voter:    ids.GenerateTestShortID(),
		Choice:   For,
	}).Bytes()
	require.NoError(err)
	require.Len(r, VoteReceiptSize)
}

func TestParseProposal(t *testing.T) {
	valid := &Proposal{
		Governance:   ids.GenerateTestShortID(),
		Index:        11,
		Creator:      ids.GenerateTestShortID(),
		VotesFor:     4,
		VotesAgainst: 2,
		IsActive:     false,
		Executed:     true,
	}
	validBytes, err := valid.Bytes()
	require.NoError(t, err)

	modified := func(offset int, value byte) []byte {
		b := append([]byte{}, validBytes...)
		b[offset] = value
		return b
	}

	active := NewProposal(ids.GenerateTestShortID(), 0, ids.GenerateTestShortID())
	activeBytes, err := active.Bytes()
	require.NoError(t, err)
	activeBytes[ProposalSize-2] = 0x02

	tests := []struct {
		name        string
		bytes       []byte
		expected    *Proposal
		expectedErr error
	}{
		{
			name:     "valid",
			bytes:    validBytes,
			expected: valid,
		},
		{
			name:        "empty",
			bytes:       nil,
			expectedErr: ErrUninitialized,
		},
		{
			name:        "zeroed allocation",
			bytes:       make([]byte, ProposalSize),
			expectedErr: ErrUninitialized,
		},
		{
			name:        "truncated",
			bytes:       validBytes[:ProposalSize-1],
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "trailing bytes",
			bytes:       append(append([]byte{}, validBytes...), 0x00),
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "unknown codec version",
			bytes:       modified(1, 0x07),
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "wrong kind",
			bytes:       modified(2, byte(KindVoteReceipt)),
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "invalid bool",
			bytes:       modified(ProposalSize-2, 0x02),
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "non-canonical active flag",
			bytes:       activeBytes,
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "active and executed",
			bytes:       modified(ProposalSize-2, 0x01),
			expectedErr: ErrMalformedRecord,
		},
		{
			name:        "governance record",
			bytes:       mustBytes(t, &Governance{Admin: ids.GenerateTestShortID()}),
			expectedErr: ErrMalformedRecord,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			p, err := ParseProposal(test.bytes)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, p)
		})
	}
}

func TestParseGovernanceWrongKind(t *testing.T) {
	require := require.New(t)

	b := mustBytes(t, &Governance{Admin: ids.GenerateTestShortID()})
	b[2] = byte(KindVoteReceipt)

	_, err := ParseGovernance(b)
	require.ErrorIs(err, ErrMalformedRecord)
	require.ErrorIs(err, errWrongKind)
}

func TestParseGovernanceEmptyAdmin(t *testing.T) {
	require := require.New(t)

	b := make([]byte, GovernanceSize)
	b[2] = byte(KindGovernance)
	b[GovernanceSize-1] = 1

	_, err := ParseGovernance(b)
	require.ErrorIs(err, ErrMalformedRecord)
	require.ErrorIs(err, errEmptyIdentity)
}

func TestParseVoteReceipt(t *testing.T) {
	require := require.New(t)

	receipt := &VoteReceipt{
		Proposal: ids.GenerateTestShortID(),
		Voter:    ids.GenerateTestShortID(),
		Choice:   Against,
	}
	b := mustBytes(t, receipt)

	parsed, err := ParseVoteReceipt(b)
	require.NoError(err)
	require.Equal(receipt, parsed)

	b[VoteReceiptSize-1] = 2
	_, err = ParseVoteReceipt(b)
	require.ErrorIs(err, ErrMalformedRecord)
	require.ErrorIs(err, errInvalidChoice)
}

func TestKindOf(t *testing.T) {
	require := require.New(t)

	kind, err := KindOf(nil)
	require.NoError(err)
	require.Equal(KindUninitialized, kind)

	kind, err = KindOf(mustBytes(t, NewProposal(ids.GenerateTestShortID(), 0, ids.GenerateTestShortID())))
	require.NoError(err)
	require.Equal(KindProposal, kind)

	_, err = KindOf([]byte{0x01})
	require.ErrorIs(err, ErrMalformedRecord)
}

func mustBytes(t testing.TB, r interface{ Bytes() ([]byte, error) }) []byte {
	b, err := r.Bytes()
	require.NoError(t, err)
	return b
}
