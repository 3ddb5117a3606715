// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/crypto/secp256k1"
	"github.com/luxfi/ids"
)

var (
	ErrNilTx       = errors.New("tx is nil")
	ErrMalformedTx = errors.New("malformed tx")

	errNoInstructions = errors.New("tx has no instructions")
	errNonCanonical   = errors.New("non-canonical encoding")
)

// UnsignedTx is the part of a transaction its signers sign.
type UnsignedTx struct {
	// Nonce lets a signer issue otherwise identical transactions.
	Nonce        uint64         `serialize:"true" json:"nonce"`
	Instructions []*Instruction `serialize:"true" json:"instructions"`
}

// Tx is a signed list of instructions. Either every instruction is applied
// or none is.
type Tx struct {
	Unsigned UnsignedTx `serialize:"true" json:"unsignedTx"`
	// Creds are recoverable signatures over the hash of the unsigned bytes.
	Creds [][secp256k1.SignatureLen]byte `serialize:"true" json:"credentials"`

	id            ids.ID
	unsignedBytes []byte
	bytes         []byte
}

// NewTx returns an unsigned transaction carrying [instructions].
func NewTx(nonce uint64, instructions ...*Instruction) *Tx {
	return &Tx{
		Unsigned: UnsignedTx{
			Nonce:        nonce,
			Instructions: instructions,
		},
	}
}

// Parse decodes a signed transaction. Only the canonical encoding of a
// transaction is accepted.
func Parse(b []byte) (*Tx, error) {
	tx := &Tx{}
	if _, err := Codec.Unmarshal(b, tx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTx, err)
	}
	canonical, err := Codec.Marshal(CodecVersion, tx)
	if err != nil {
		return nil, fmt.Errorf("couldn't marshal tx: %w", err)
	}
	if !bytes.Equal(canonical, b) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTx, errNonCanonical)
	}
	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return nil, fmt.Errorf("couldn't marshal unsigned tx: %w", err)
	}
	tx.SetBytes(unsignedBytes, b)
	return tx, tx.SyntacticVerify()
}

// SetBytes caches the encodings of [tx] and derives its ID.
func (tx *Tx) SetBytes(unsignedBytes []byte, signedBytes []byte) {
	tx.unsignedBytes = unsignedBytes
	tx.bytes = signedBytes
	tx.id = ids.ID(hash.ComputeHash256Array(unsignedBytes))
}

// ID is the hash of the unsigned bytes, so it does not change if a signature
// is re-encoded.
func (tx *Tx) ID() ids.ID {
	return tx.id
}

// Bytes returns the signed encoding of [tx].
func (tx *Tx) Bytes() []byte {
	return tx.bytes
}

// UnsignedBytes returns the bytes the credentials sign.
func (tx *Tx) UnsignedBytes() []byte {
	return tx.unsignedBytes
}

// SyntacticVerify verifies that [tx] is well-formed without reading state.
func (tx *Tx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case len(tx.Unsigned.Instructions) == 0:
		return fmt.Errorf("%w: %w", ErrMalformedTx, errNoInstructions)
	}
	for i, ins := range tx.Unsigned.Instructions {
		if ins == nil {
			return fmt.Errorf("%w: instruction %d is nil", ErrMalformedTx, i)
		}
	}
	return nil
}

// Sign replaces the credentials of [tx] with signatures from [signers] and
// caches the resulting encoding.
func (tx *Tx) Sign(signers ...*secp256k1.PrivateKey) error {
	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return fmt.Errorf("couldn't marshal unsigned tx: %w", err)
	}

	unsignedHash := hash.ComputeHash256(unsignedBytes)
	tx.Creds = make([][secp256k1.SignatureLen]byte, len(signers))
	for i, signer := range signers {
		sig, err := signer.SignHash(unsignedHash)
		if err != nil {
			return fmt.Errorf("problem signing tx: %w", err)
		}
		copy(tx.Creds[i][:], sig)
	}

	signedBytes, err := Codec.Marshal(CodecVersion, tx)
	if err != nil {
		return fmt.Errorf("couldn't marshal tx: %w", err)
	}
	tx.SetBytes(unsignedBytes, signedBytes)
	return nil
}
