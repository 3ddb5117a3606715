// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package govvm

import (
	"github.com/luxfi/log"

	vm "github.com/luxfi/govvm"
	"github.com/luxfi/govvm/vms/govvm/config"
)

var _ vm.Factory = (*Factory)(nil)

// Factory creates governance VM instances.
type Factory struct {
	config.Config
}

func (f *Factory) New(logger log.Logger) (vm.VM, error) {
	if f.Config == (config.Config{}) {
		f.Config = config.DefaultConfig()
	}
	if err := f.Config.Validate(); err != nil {
		return nil, err
	}
	return &VM{
		Config: f.Config,
		log:    logger,
	}, nil
}

// NewFactory creates a factory for VMs using [cfg] unless they are
// initialized with their own configuration bytes.
func NewFactory(cfg config.Config) *Factory {
	return &Factory{Config: cfg}
}
