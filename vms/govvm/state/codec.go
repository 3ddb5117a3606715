// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const (
	CodecVersion0Tag        = "v0"
	CodecVersion0    uint16 = 0

	// CodecVersion is the version new records are written with. Records of
	// any registered version remain readable.
	CodecVersion = CodecVersion0
)

// Codec serializes account records with a fixed width layout. Every record
// begins with the two byte codec version followed by a one byte [Kind].
var Codec codec.Manager

func init() {
	c0 := linearcodec.NewDefault()
	Codec = codec.NewManager(math.MaxInt32)

	err := errors.Join(
		Codec.RegisterCodec(CodecVersion0, c0),
	)
	if err != nil {
		panic(err)
	}
}
