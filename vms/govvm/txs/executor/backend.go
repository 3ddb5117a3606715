// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"github.com/luxfi/log"
	"github.com/luxfi/govvm/vms/govvm/config"
)

type Backend struct {
	Quorum  config.Quorum
	Signers *SignerRecoverer
	Log     log.Logger
}
