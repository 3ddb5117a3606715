// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/govvm/vms/govvm/cmd/address"
	"github.com/luxfi/govvm/vms/govvm/cmd/inspect"
)

func main() {
	cmd := &cobra.Command{
		Use:   "govctl",
		Short: "Offline tooling for governance VM state",
	}
	cmd.AddCommand(
		address.Command(),
		inspect.Command(),
	)
	ctx := context.Background()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
