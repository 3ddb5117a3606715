// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"errors"

	"github.com/luxfi/metric"

	"github.com/luxfi/govvm/vms/govvm/txs"
)

const codeLabel = "code"

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	// MarkTxAccepted counts an accepted transaction and each of its
	// operations.
	MarkTxAccepted(ops []txs.Operation) error
	// MarkTxRejected counts a rejected transaction under the failure [code].
	MarkTxRejected(code string)
}

type metrics struct {
	txMetrics *txMetrics

	numTxsAccepted metric.Counter
	numTxsRejected metric.CounterVec
}

func New(registerer metric.Registerer) (Metrics, error) {
	txMetrics, err := newTxMetrics(registerer)
	m := &metrics{
		txMetrics: txMetrics,
		numTxsAccepted: metric.NewCounter(metric.CounterOpts{
			Name: "txs_accepted",
			Help: "number of transactions accepted",
		}),
		numTxsRejected: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "txs_rejected",
				Help: "number of transactions rejected, by failure code",
			},
			[]string{codeLabel},
		),
	}
	err = errors.Join(
		err,
		registerer.Register(metric.AsCollector(m.numTxsAccepted)),
		registerer.Register(metric.AsCollector(m.numTxsRejected)),
	)
	return m, err
}

func (m *metrics) MarkTxAccepted(ops []txs.Operation) error {
	m.numTxsAccepted.Inc()
	for _, op := range ops {
		if err := op.Visit(m.txMetrics); err != nil {
			return err
		}
	}
	return nil
}

func (m *metrics) MarkTxRejected(code string) {
	m.numTxsRejected.With(metric.Labels{
		codeLabel: code,
	}).Inc()
}
