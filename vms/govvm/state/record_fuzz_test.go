// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/ids"
)

// A blob that parses must re-encode to exactly the same bytes.
func FuzzParseProposal(f *testing.F) {
	f.Add([]byte{})
	f.Add(make([]byte, ProposalSize))
	f.Add(mustBytes(f, NewProposal(ids.ShortID{1}, 1, ids.ShortID{2})))

	f.Fuzz(func(t *testing.T, b []byte) {
		p, err := ParseProposal(b)
		if err != nil {
			return
		}
		require.Equal(t, b, mustBytes(t, p))
	})
}

func FuzzParseGovernance(f *testing.F) {
	f.Add([]byte{})
	f.Add(mustBytes(f, &Governance{Admin: ids.ShortID{1}, ProposalCount: 2}))

	f.Fuzz(func(t *testing.T, b []byte) {
		g, err := ParseGovernance(b)
		if err != nil {
			return
		}
		require.Equal(t, b, mustBytes(t, g))
	})
}

func FuzzParseVoteReceipt(f *testing.F) {
	f.Add([]byte{})
	f.Add(mustBytes(f, &VoteReceipt{Proposal: ids.ShortID{1}, Voter: ids.ShortID{2}, Choice: For}))

	f.Fuzz(func(t *testing.T, b []byte) {
		r, err := ParseVoteReceipt(b)
		if err != nil {
			return
		}
		require.Equal(t, b, mustBytes(t, r))
	})
}
