// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"fmt"

	"github.com/luxfi/ids"
)

// Governance is the root record of a governance instance.
type Governance struct {
	// Admin may execute proposals. It is set once by initialization.
	Admin ids.ShortID `serialize:"true" json:"admin"`
	// ProposalCount is the number of proposals created so far and the index
	// the next proposal will be assigned.
	ProposalCount uint64 `serialize:"true" json:"proposalCount"`
}

type governanceRecord struct {
	Kind       Kind `serialize:"true"`
	Governance `serialize:"true"`
}

func (*governanceRecord) kind() Kind {
	return KindGovernance
}

func (r *governanceRecord) verify() error {
	return r.Governance.Verify()
}

// Verify checks the invariants every initialized governance record holds.
func (g *Governance) Verify() error {
	if g.Admin == ids.ShortEmpty {
		return fmt.Errorf("%w: admin", errEmptyIdentity)
	}
	return nil
}

// Bytes returns the canonical encoding of [g].
func (g *Governance) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, &governanceRecord{
		Kind:       KindGovernance,
		Governance: *g,
	})
}

// ParseGovernance decodes a governance record.
func ParseGovernance(b []byte) (*Governance, error) {
	r := &governanceRecord{}
	if err := parse(b, GovernanceSize, r); err != nil {
		return nil, err
	}
	return &r.Governance, nil
}
