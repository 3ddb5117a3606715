// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
	"fmt"
)

var ErrUnknownState = errors.New("unknown vm state")

// State is the lifecycle phase the host has moved a VM into.
type State uint8

const (
	Unknown State = iota
	Syncing
	Bootstrapping
	NormalOp
)

var stateNames = [...]string{
	Unknown:       "Unknown",
	Syncing:       "Syncing",
	Bootstrapping: "Bootstrapping",
	NormalOp:      "NormalOp",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Verify returns an error unless [s] is a state a host may transition a VM
// into. Unknown is only ever the zero value.
func (s State) Verify() error {
	if s == Unknown || int(s) >= len(stateNames) {
		return fmt.Errorf("%w: %s", ErrUnknownState, s)
	}
	return nil
}
