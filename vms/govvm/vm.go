// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package govvm implements a governance VM: an admin initializes a
// governance root, signers create proposals and cast at most one vote on
// each, and the admin executes proposals.
package govvm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/database"
	"github.com/luxfi/database/badgerdb"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"

	vm "github.com/luxfi/govvm"
	"github.com/luxfi/govvm/vms/govvm/config"
	"github.com/luxfi/govvm/vms/govvm/metrics"
	"github.com/luxfi/govvm/vms/govvm/state"
	"github.com/luxfi/govvm/vms/govvm/txs"
	"github.com/luxfi/govvm/vms/govvm/txs/executor"
)

// Version of the governance VM
const Version = "1.0.0"

var (
	_ vm.VM = (*VM)(nil)

	ErrTxTooLarge  = errors.New("tx too large")
	ErrDuplicateTx = errors.New("duplicate tx")

	errNotInitialized     = errors.New("vm is not initialized")
	errAlreadyInitialized = errors.New("vm is already initialized")
)

type VM struct {
	config.Config

	log     log.Logger
	chainID ids.ID

	// lock sequences transactions. Each transaction runs to completion
	// against [state] before the next one starts.
	lock sync.Mutex

	db     database.Database
	ownsDB bool
	state  state.State

	backend *executor.Backend
	metrics metrics.Metrics
	vmState vm.State
}

func (v *VM) Initialize(_ context.Context, cfg *vm.Config) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.state != nil {
		return errAlreadyInitialized
	}

	if cfg.Log != nil {
		v.log = cfg.Log
	}
	if v.log == nil {
		v.log = log.NoLog{}
	}
	v.chainID = cfg.ChainID

	switch {
	case len(cfg.ConfigBytes) != 0:
		c, err := config.ParseConfig(cfg.ConfigBytes)
		if err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
		v.Config = c
	case v.Config == (config.Config{}):
		v.Config = config.DefaultConfig()
	}
	if err := v.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	registerer := cfg.Registerer
	if registerer == nil {
		registerer = metric.NewRegistry()
	}
	m, err := metrics.New(registerer)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	v.metrics = m

	if err := v.openDB(cfg.DB); err != nil {
		return err
	}
	v.state = state.New(v.db)
	v.backend = &executor.Backend{
		Quorum:  v.Quorum,
		Signers: executor.NewSignerRecoverer(v.SignerCacheSize),
		Log:     v.log,
	}

	v.log.Info("governance VM initialized",
		log.String("version", Version),
		log.Stringer("chainID", v.chainID),
		log.String("quorumPolicy", string(v.Policy)),
		log.Uint64("minVotes", v.MinVotes),
		log.String("dbBackend", string(v.DBBackend)),
	)
	return nil
}

func (v *VM) openDB(db database.Database) error {
	if db != nil {
		v.db = db
		return nil
	}

	switch v.DBBackend {
	case config.BadgerDB:
		db, err := badgerdb.New(v.DataDir, nil, "", nil)
		if err != nil {
			return fmt.Errorf("failed to open database at %q: %w", v.DataDir, err)
		}
		v.db = db
	default:
		v.db = memdb.New()
	}
	v.ownsDB = true
	return nil
}

// Process executes the transaction encoded in [txBytes] and commits its
// effects. If any instruction fails, no effect of the transaction is
// committed. The ID of the transaction is returned whenever it could be
// decoded.
func (v *VM) Process(ctx context.Context, txBytes []byte) (ids.ID, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if err := ctx.Err(); err != nil {
		return ids.Empty, err
	}
	if v.state == nil {
		return ids.Empty, errNotInitialized
	}

	txID, ops, err := v.process(txBytes)
	if err != nil {
		code := errorCode(err)
		v.metrics.MarkTxRejected(code)
		v.log.Warn("rejected tx",
			log.Stringer("txID", txID),
			log.String("code", code),
			log.Err(err),
		)
		return txID, err
	}

	if err := v.metrics.MarkTxAccepted(ops); err != nil {
		v.log.Error("failed to mark tx accepted",
			log.Stringer("txID", txID),
			log.Err(err),
		)
	}
	v.log.Info("accepted tx",
		log.Stringer("txID", txID),
		log.Int("numInstructions", len(ops)),
	)
	return txID, nil
}

func (v *VM) process(txBytes []byte) (ids.ID, []txs.Operation, error) {
	if len(txBytes) > v.MaxTxSize {
		return ids.Empty, nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTxTooLarge, len(txBytes), v.MaxTxSize)
	}

	tx, err := txs.Parse(txBytes)
	if err != nil {
		if tx != nil {
			return tx.ID(), nil, err
		}
		return ids.Empty, nil, err
	}
	txID := tx.ID()
	if n := len(tx.Unsigned.Instructions); n > v.MaxInstructionsPerTx {
		return txID, nil, fmt.Errorf("%w: %d instructions exceeds %d", txs.ErrMalformedTx, n, v.MaxInstructionsPerTx)
	}

	committed, err := v.state.HasTx(txID)
	if err != nil {
		return txID, nil, err
	}
	if committed {
		return txID, nil, fmt.Errorf("%w: %s", ErrDuplicateTx, txID)
	}

	ops, err := executor.Execute(v.backend, v.state, tx)
	if err != nil {
		v.state.Abort()
		return txID, nil, err
	}
	if err := v.state.AddTx(txID, txBytes); err != nil {
		v.state.Abort()
		return txID, nil, err
	}
	return txID, ops, v.state.Commit()
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrTxTooLarge):
		return "tx_too_large"
	case errors.Is(err, ErrDuplicateTx):
		return "duplicate_tx"
	default:
		return executor.ErrorCode(err)
	}
}

// Governance returns the committed governance root stored at [key].
func (v *VM) Governance(key ids.ShortID) (*state.Governance, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.state == nil {
		return nil, errNotInitialized
	}
	return v.state.GetGovernance(key)
}

// Proposal returns the committed proposal stored at [key].
func (v *VM) Proposal(key ids.ShortID) (*state.Proposal, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.state == nil {
		return nil, errNotInitialized
	}
	return v.state.GetProposal(key)
}

// VoteReceipt returns the committed receipt of [voter]'s vote on [proposal].
func (v *VM) VoteReceipt(proposal, voter ids.ShortID) (*state.VoteReceipt, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.state == nil {
		return nil, errNotInitialized
	}
	return v.state.GetVoteReceipt(state.VoteReceiptAddress(proposal, voter))
}

func (v *VM) SetState(_ context.Context, s vm.State) error {
	if err := s.Verify(); err != nil {
		return err
	}

	v.lock.Lock()
	defer v.lock.Unlock()

	v.vmState = s
	v.log.Info("state transition", log.Stringer("state", s))
	return nil
}

func (*VM) Version(context.Context) (string, error) {
	return Version, nil
}

func (v *VM) Shutdown(context.Context) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.state == nil {
		return nil
	}
	v.state = nil
	if !v.ownsDB {
		return nil
	}
	v.log.Info("closing database")
	return v.db.Close()
}
