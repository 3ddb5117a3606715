// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package statetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/database"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"
	"github.com/luxfi/govvm/vms/govvm/state"
)

type Config struct {
	DB database.Database
	// Governance, when non-empty, is initialized with [Admin] and
	// [ProposalCount] and committed before the state is returned.
	Governance    ids.ShortID
	Admin         ids.ShortID
	ProposalCount uint64
}

func New(t testing.TB, c Config) state.State {
	if c.DB == nil {
		c.DB = memdb.New()
	}

	s := state.New(c.DB)
	if c.Governance == ids.ShortEmpty {
		return s
	}
	if c.Admin == ids.ShortEmpty {
		c.Admin = ids.GenerateTestShortID()
	}

	require := require.New(t)
	require.NoError(s.PutGovernance(c.Governance, &state.Governance{
		Admin:         c.Admin,
		ProposalCount: c.ProposalCount,
	}))
	require.NoError(s.Commit())
	return s
}

// Snapshot returns a copy of the raw account blobs stored under [keys].
func Snapshot(t testing.TB, s state.Accounts, keys ...ids.ShortID) map[ids.ShortID][]byte {
	snapshot := make(map[ids.ShortID][]byte, len(keys))
	for _, key := range keys {
		b, err := s.GetAccount(key)
		require.NoError(t, err)
		snapshot[key] = b
	}
	return snapshot
}
