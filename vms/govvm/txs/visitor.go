// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Allow vm to execute custom logic against the underlying operation types.
type Visitor interface {
	InitializeGovernance(*InitializeGovernance) error
	CreateProposal(*CreateProposal) error
	CastVote(*CastVote) error
	ExecuteProposal(*ExecuteProposal) error
}
