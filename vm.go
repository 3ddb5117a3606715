// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm defines the contracts between a host node and the virtual
// machines it runs.
package vm

import (
	"context"

	"github.com/luxfi/database"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
)

// VM defines the interface for a virtual machine
type VM interface {
	// Initialize initializes the VM with the given configuration
	Initialize(context.Context, *Config) error

	// Shutdown cleanly stops the VM
	Shutdown(context.Context) error

	// Version returns the VM version
	Version(context.Context) (string, error)

	// SetState transitions the VM to the specified state
	SetState(context.Context, State) error
}

// Factory builds a VM ready for Initialize. [log] is used until Initialize
// supplies a logger of its own.
type Factory interface {
	New(log log.Logger) (VM, error)
}

// Config is what the host hands a VM on Initialize.
type Config struct {
	ChainID ids.ID

	// DB is where the VM keeps its state. When nil the VM opens the database
	// named by its own configuration and closes it on Shutdown.
	DB database.Database

	Log        log.Logger
	Registerer metric.Registerer

	// ConfigBytes is the VM specific configuration.
	ConfigBytes []byte
}
