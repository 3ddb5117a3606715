// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inspect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/luxfi/database/badgerdb"

	"github.com/luxfi/govvm/vms/govvm/state"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect",
		Short: "Decodes the record held by a governance account",
		RunE:  inspectFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func inspectFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	data := config.Data
	if config.DataDir != "" {
		data, err = readAccount(config)
		if err != nil {
			return err
		}
	}

	out, err := Decode(data)
	if err != nil {
		return err
	}
	return write(c.OutOrStdout(), out)
}

// readAccount reads the committed blob of the configured account. Nothing is
// ever committed back to the database.
func readAccount(config *Config) ([]byte, error) {
	db, err := badgerdb.New(config.DataDir, nil, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", config.DataDir, err)
	}
	defer db.Close()

	return state.New(db).GetAccount(config.Account)
}

// Record is a decoded account.
type Record struct {
	Kind        string             `json:"kind"`
	Governance  *state.Governance  `json:"governance,omitempty"`
	Proposal    *state.Proposal    `json:"proposal,omitempty"`
	VoteReceipt *state.VoteReceipt `json:"voteReceipt,omitempty"`
}

// Decode parses whichever record [b] holds.
func Decode(b []byte) (*Record, error) {
	kind, err := state.KindOf(b)
	if err != nil {
		return nil, err
	}

	r := &Record{Kind: kind.String()}
	switch kind {
	case state.KindUninitialized:
	case state.KindGovernance:
		r.Governance, err = state.ParseGovernance(b)
	case state.KindProposal:
		r.Proposal, err = state.ParseProposal(b)
	case state.KindVoteReceipt:
		r.VoteReceipt, err = state.ParseVoteReceipt(b)
	default:
		err = fmt.Errorf("%w: unknown kind %d", state.ErrMalformedRecord, kind)
	}
	return r, err
}

func write(w io.Writer, r *Record) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
