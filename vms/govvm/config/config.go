// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidQuorumPolicy = errors.New("invalid quorum policy")
	ErrInvalidDBBackend    = errors.New("invalid database backend")
	ErrInvalidLimit        = errors.New("invalid limit")
	ErrMissingDataDir      = errors.New("data directory is required")
)

// QuorumPolicy decides whether a proposal collected enough votes to be
// executed.
type QuorumPolicy string

const (
	// QuorumNone lets the admin execute any active proposal.
	QuorumNone QuorumPolicy = "none"
	// QuorumMajority requires strictly more votes for than against.
	QuorumMajority QuorumPolicy = "majority"
)

// DBBackend names the database the VM stores accounts in when the host does
// not provide one.
type DBBackend string

const (
	MemDB    DBBackend = "memdb"
	BadgerDB DBBackend = "badgerdb"
)

// Quorum is the rule applied when a proposal is executed.
type Quorum struct {
	Policy QuorumPolicy `json:"quorumPolicy"`
	// MinVotes is the minimum number of votes, for and against, a proposal
	// must have received.
	MinVotes uint64 `json:"minVotes"`
}

// Config holds configuration for the governance VM.
type Config struct {
	Quorum

	// SignerCacheSize is the number of recovered signature signers kept in
	// memory.
	SignerCacheSize int `json:"signerCacheSize"`

	// Transaction limits
	MaxInstructionsPerTx int `json:"maxInstructionsPerTx"`
	MaxTxSize            int `json:"maxTxSize"`

	// Storage configuration
	DBBackend DBBackend `json:"dbBackend"`
	DataDir   string    `json:"dataDir"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() Config {
	return Config{
		Quorum: Quorum{
			Policy: QuorumNone,
		},
		SignerCacheSize:      2048,
		MaxInstructionsPerTx: 64,
		MaxTxSize:            64 * 1024,
		DBBackend:            MemDB,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Policy {
	case QuorumNone, QuorumMajority:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidQuorumPolicy, c.Policy)
	}

	switch {
	case c.SignerCacheSize <= 0:
		return fmt.Errorf("%w: signerCacheSize %d", ErrInvalidLimit, c.SignerCacheSize)
	case c.MaxInstructionsPerTx <= 0:
		return fmt.Errorf("%w: maxInstructionsPerTx %d", ErrInvalidLimit, c.MaxInstructionsPerTx)
	case c.MaxTxSize <= 0:
		return fmt.Errorf("%w: maxTxSize %d", ErrInvalidLimit, c.MaxTxSize)
	}

	switch c.DBBackend {
	case MemDB:
	case BadgerDB:
		if c.DataDir == "" {
			return ErrMissingDataDir
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDBBackend, c.DBBackend)
	}
	return nil
}

// ParseConfig parses configuration from JSON bytes. Fields missing from
// [data] keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}
