// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/binary"

	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/ids"
)

var (
	proposalSeed    = []byte("govvm/proposal")
	voteReceiptSeed = []byte("govvm/receipt")
)

// ProposalAddress returns the account key of the [index]th proposal created
// under [governance].
func ProposalAddress(governance ids.ShortID, index uint64) ids.ShortID {
	b := make([]byte, 0, len(proposalSeed)+len(governance)+8)
	b = append(b, proposalSeed...)
	b = append(b, governance[:]...)
	b = binary.BigEndian.AppendUint64(b, index)
	return deriveAddress(b)
}

// VoteReceiptAddress returns the account key of the receipt recording that
// [voter] voted on the proposal stored at [proposal].
func VoteReceiptAddress(proposal ids.ShortID, voter ids.ShortID) ids.ShortID {
	b := make([]byte, 0, len(voteReceiptSeed)+len(proposal)+len(voter))
	b = append(b, voteReceiptSeed...)
	b = append(b, proposal[:]...)
	b = append(b, voter[:]...)
	return deriveAddress(b)
}

func deriveAddress(seed []byte) ids.ShortID {
	var addr ids.ShortID
	copy(addr[:], hash.ComputeHash256(seed))
	return addr
}
