// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/ids"

	"github.com/luxfi/govvm/vms/govvm/state"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "address",
		Short: "Derives proposal and vote receipt account addresses",
		RunE:  addressFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func addressFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	if config.Governance != ids.ShortEmpty {
		for i := uint64(0); i < config.Count; i++ {
			index := config.Index + i
			addr := state.ProposalAddress(config.Governance, index)
			if _, err := fmt.Fprintf(out, "proposal %d: %s\n", index, addr); err != nil {
				return err
			}
		}
	}
	if config.Proposal != ids.ShortEmpty && config.Voter != ids.ShortEmpty {
		addr := state.VoteReceiptAddress(config.Proposal, config.Voter)
		if _, err := fmt.Fprintf(out, "receipt: %s\n", addr); err != nil {
			return err
		}
	}
	return nil
}
