// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/luxfi/ids"
)

const (
	GovernanceKey = "governance"
	IndexKey      = "index"
	CountKey      = "count"
	ProposalKey   = "proposal"
	VoterKey      = "voter"
)

var errNothingToDerive = errors.New("either --governance or both --proposal and --voter are required")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(GovernanceKey, "", "Governance account to derive proposal addresses under")
	flags.Uint64(IndexKey, 0, "Ordinal of the first proposal to derive")
	flags.Uint64(CountKey, 1, "Number of consecutive proposal addresses to derive")
	flags.String(ProposalKey, "", "Proposal account to derive a vote receipt address under")
	flags.String(VoterKey, "", "Voter to derive a vote receipt address for")
}

type Config struct {
	Governance ids.ShortID
	Index      uint64
	Count      uint64
	Proposal   ids.ShortID
	Voter      ids.ShortID
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	config := &Config{}
	var err error
	if config.Governance, err = getShortID(flags, GovernanceKey); err != nil {
		return nil, err
	}
	if config.Index, err = flags.GetUint64(IndexKey); err != nil {
		return nil, err
	}
	if config.Count, err = flags.GetUint64(CountKey); err != nil {
		return nil, err
	}
	if config.Proposal, err = getShortID(flags, ProposalKey); err != nil {
		return nil, err
	}
	if config.Voter, err = getShortID(flags, VoterKey); err != nil {
		return nil, err
	}

	hasReceipt := config.Proposal != ids.ShortEmpty && config.Voter != ids.ShortEmpty
	if config.Governance == ids.ShortEmpty && !hasReceipt {
		return nil, errNothingToDerive
	}
	return config, nil
}

func getShortID(flags *pflag.FlagSet, key string) (ids.ShortID, error) {
	s, err := flags.GetString(key)
	if err != nil || s == "" {
		return ids.ShortEmpty, err
	}
	return ids.ShortFromString(s)
}
