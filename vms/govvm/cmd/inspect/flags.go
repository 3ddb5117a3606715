// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inspect

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"github.com/luxfi/ids"
)

const (
	DataKey    = "data"
	DataDirKey = "data-dir"
	AccountKey = "account"
)

var (
	errNoSource       = errors.New("either --data or both --data-dir and --account are required")
	errTooManySources = errors.New("--data cannot be combined with --data-dir")
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(DataKey, "", "Hex encoded account blob to decode")
	flags.String(DataDirKey, "", "Badger data directory of a governance VM")
	flags.String(AccountKey, "", "Account to read from --data-dir")
}

type Config struct {
	// Data is set when decoding a blob given on the command line.
	Data []byte

	DataDir string
	Account ids.ShortID
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	dataStr, err := flags.GetString(DataKey)
	if err != nil {
		return nil, err
	}
	dataDir, err := flags.GetString(DataDirKey)
	if err != nil {
		return nil, err
	}
	accountStr, err := flags.GetString(AccountKey)
	if err != nil {
		return nil, err
	}

	config := &Config{DataDir: dataDir}
	switch {
	case dataStr != "" && dataDir != "":
		return nil, errTooManySources
	case dataStr != "":
		config.Data, err = hex.DecodeString(strings.TrimPrefix(dataStr, "0x"))
		return config, err
	case dataDir != "" && accountStr != "":
		config.Account, err = ids.ShortFromString(accountStr)
		return config, err
	default:
		return nil, errNoSource
	}
}
