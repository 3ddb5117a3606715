// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrUninitialized is returned when an account holds no record yet. An
	// empty or all-zero blob is uninitialized.
	ErrUninitialized = errors.New("account is uninitialized")
	// ErrMalformedRecord is returned when an account holds bytes that do not
	// match the expected layout of the requested record.
	ErrMalformedRecord = errors.New("malformed record")

	errWrongKind     = errors.New("wrong record kind")
	errWrongSize     = errors.New("wrong record size")
	errEmptyIdentity = errors.New("empty identity")
	errInvalidChoice = errors.New("invalid vote choice")
	errInvalidStatus = errors.New("active and executed flags disagree")
	errNonCanonical  = errors.New("non-canonical encoding")
)

// Kind discriminates the record stored in an account. The zero value is
// reserved so that a zeroed account never decodes as a record.
type Kind uint8

const (
	KindUninitialized Kind = iota
	KindGovernance
	KindProposal
	KindVoteReceipt
)

func (k Kind) String() string {
	switch k {
	case KindUninitialized:
		return "uninitialized"
	case KindGovernance:
		return "governance"
	case KindProposal:
		return "proposal"
	case KindVoteReceipt:
		return "vote_receipt"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Encoded record sizes, including the codec version and kind prefix.
const (
	prefixSize = 2 /*=codec version*/ + 1 /*=kind*/

	GovernanceSize  = prefixSize + 20 /*=admin*/ + 8 /*=proposal count*/
	ProposalSize    = prefixSize + 20 /*=governance*/ + 8 /*=index*/ + 20 /*=creator*/ + 8 /*=votes for*/ + 8 /*=votes against*/ + 1 /*=active*/ + 1 /*=executed*/
	VoteReceiptSize = prefixSize + 20 /*=proposal*/ + 20 /*=voter*/ + 1 /*=choice*/
)

type record interface {
	kind() Kind
	verify() error
}

// Uninitialized reports whether [b] holds no record.
func Uninitialized(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// KindOf returns the kind of the record stored in [b] without decoding it.
func KindOf(b []byte) (Kind, error) {
	if Uninitialized(b) {
		return KindUninitialized, nil
	}
	if len(b) < prefixSize {
		return KindUninitialized, fmt.Errorf("%w: %w: %d bytes", ErrMalformedRecord, errWrongSize, len(b))
	}
	return Kind(b[prefixSize-1]), nil
}

func parse(b []byte, size int, dst record) error {
	if Uninitialized(b) {
		return ErrUninitialized
	}
	want := dst.kind()
	if len(b) != size {
		return fmt.Errorf("%w: %w: %s record is %d bytes, expected %d",
			ErrMalformedRecord, errWrongSize, want, len(b), size,
		)
	}
	if _, err := Codec.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if got := Kind(b[prefixSize-1]); got != want {
		return fmt.Errorf("%w: %w: expected %s but found %s", ErrMalformedRecord, errWrongKind, want, got)
	}
	if err := dst.verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	// The codec reads any non-zero byte as true, so flags are only checked
	// by re-encoding.
	canonical, err := Codec.Marshal(CodecVersion, dst)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if !bytes.Equal(canonical, b) {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, errNonCanonical)
	}
	return nil
}
