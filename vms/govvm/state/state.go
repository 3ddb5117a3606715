// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/ids"
)

var (
	_ State = (*state)(nil)

	accountPrefix = []byte("account")
	txPrefix      = []byte("tx")
)

// Accounts is a key addressed blob store. Reading a missing account returns
// an empty blob.
type Accounts interface {
	GetAccount(key ids.ShortID) ([]byte, error)
	PutAccount(key ids.ShortID, data []byte) error
}

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/chain.go -mock_names=Chain=Chain . Chain

// Chain is the view of state the instruction executor reads and writes.
type Chain interface {
	Accounts

	GetGovernance(key ids.ShortID) (*Governance, error)
	PutGovernance(key ids.ShortID, g *Governance) error

	GetProposal(key ids.ShortID) (*Proposal, error)
	PutProposal(key ids.ShortID, p *Proposal) error

	GetVoteReceipt(key ids.ShortID) (*VoteReceipt, error)
	PutVoteReceipt(key ids.ShortID, r *VoteReceipt) error
}

// State stages every write in memory until Commit. Abort discards the staged
// writes so that none of them become visible in the underlying database.
type State interface {
	Chain

	// HasTx reports whether a transaction with [txID] was committed.
	HasTx(txID ids.ID) (bool, error)
	// AddTx marks [txID] as committed along with the staged writes.
	AddTx(txID ids.ID, txBytes []byte) error

	// Commit writes all staged changes to the underlying database in one
	// batch.
	Commit() error
	// CommitBatch returns the batch Commit would write, without writing it.
	CommitBatch() (database.Batch, error)
	// Abort discards all staged changes.
	Abort()
}

type state struct {
	baseDB    *versiondb.Database
	accountDB database.Database
	txDB      database.Database
}

// New returns a State staging writes on top of [db].
func New(db database.Database) State {
	baseDB := versiondb.New(db)
	return &state{
		baseDB:    baseDB,
		accountDB: prefixdb.New(accountPrefix, baseDB),
		txDB:      prefixdb.New(txPrefix, baseDB),
	}
}

func (s *state) GetAccount(key ids.ShortID) ([]byte, error) {
	b, err := s.accountDB.Get(key[:])
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	return b, err
}

func (s *state) PutAccount(key ids.ShortID, data []byte) error {
	return s.accountDB.Put(key[:], data)
}

func (s *state) GetGovernance(key ids.ShortID) (*Governance, error) {
	b, err := s.GetAccount(key)
	if err != nil {
		return nil, err
	}
	g, err := ParseGovernance(b)
	if err != nil {
		return nil, fmt.Errorf("governance %s: %w", key, err)
	}
	return g, nil
}

func (s *state) PutGovernance(key ids.ShortID, g *Governance) error {
	b, err := g.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode governance %s: %w", key, err)
	}
	return s.PutAccount(key, b)
}

func (s *state) GetProposal(key ids.ShortID) (*Proposal, error) {
	b, err := s.GetAccount(key)
	if err != nil {
		return nil, err
	}
	p, err := ParseProposal(b)
	if err != nil {
		return nil, fmt.Errorf("proposal %s: %w", key, err)
	}
	return p, nil
}

func (s *state) PutProposal(key ids.ShortID, p *Proposal) error {
	b, err := p.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode proposal %s: %w", key, err)
	}
	return s.PutAccount(key, b)
}

func (s *state) GetVoteReceipt(key ids.ShortID) (*VoteReceipt, error) {
	b, err := s.GetAccount(key)
	if err != nil {
		return nil, err
	}
	r, err := ParseVoteReceipt(b)
	if err != nil {
		return nil, fmt.Errorf("vote receipt %s: %w", key, err)
	}
	return r, nil
}

func (s *state) PutVoteReceipt(key ids.ShortID, r *VoteReceipt) error {
	b, err := r.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode vote receipt %s: %w", key, err)
	}
	return s.PutAccount(key, b)
}

func (s *state) HasTx(txID ids.ID) (bool, error) {
	return s.txDB.Has(txID[:])
}

func (s *state) AddTx(txID ids.ID, txBytes []byte) error {
	return s.txDB.Put(txID[:], txBytes)
}

func (s *state) Commit() error {
	defer s.Abort()
	batch, err := s.CommitBatch()
	if err != nil {
		return err
	}
	return batch.Write()
}

func (s *state) CommitBatch() (database.Batch, error) {
	return s.baseDB.CommitBatch()
}

func (s *state) Abort() {
	s.baseDB.Abort()
}
