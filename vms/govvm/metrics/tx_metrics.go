// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/govvm/vms/govvm/txs"
)

const instructionLabel = "instruction"

var (
	_ txs.Visitor = (*txMetrics)(nil)

	instructionLabels = []string{instructionLabel}
)

// txMetrics counts the accepted instructions of each kind.
type txMetrics struct {
	numInstructions metric.CounterVec
}

func newTxMetrics(registerer metric.Registerer) (*txMetrics, error) {
	m := &txMetrics{
		numInstructions: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "instructions_executed",
				Help: "number of instructions executed in accepted transactions",
			},
			instructionLabels,
		),
	}
	return m, registerer.Register(metric.AsCollector(m.numInstructions))
}

func (m *txMetrics) inc(op txs.Operation) {
	m.numInstructions.With(metric.Labels{
		instructionLabel: op.Opcode().String(),
	}).Inc()
}

func (m *txMetrics) InitializeGovernance(op *txs.InitializeGovernance) error {
	m.inc(op)
	return nil
}

func (m *txMetrics) CreateProposal(op *txs.CreateProposal) error {
	m.inc(op)
	return nil
}

func (m *txMetrics) CastVote(op *txs.CastVote) error {
	m.inc(op)
	return nil
}

func (m *txMetrics) ExecuteProposal(op *txs.ExecuteProposal) error {
	m.inc(op)
	return nil
}
