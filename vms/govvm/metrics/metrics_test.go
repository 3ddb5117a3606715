// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/metric"

	"github.com/luxfi/govvm/vms/govvm/metrics/metricstest"
	"github.com/luxfi/govvm/vms/govvm/txs"
)

func TestMarkTxAccepted(t *testing.T) {
	require := require.New(t)

	registry := metric.NewRegistry()
	m, err := New(registry)
	require.NoError(err)

	require.NoError(m.MarkTxAccepted([]txs.Operation{
		&txs.InitializeGovernance{},
		&txs.CreateProposal{},
		&txs.CastVote{},
		&txs.CastVote{},
	}))
	require.NoError(m.MarkTxAccepted([]txs.Operation{
		&txs.ExecuteProposal{},
	}))

	require.InDelta(2, metricstest.Value(t, registry, "txs_accepted", nil), 0)

	tests := []struct {
		instruction string
		expected    float64
	}{
		{"initialize", 1},
		{"create_proposal", 1},
		{"vote", 2},
		{"execute", 1},
	}
	for _, test := range tests {
		labels := metric.Labels{instructionLabel: test.instruction}
		require.InDelta(test.expected, metricstest.Value(t, registry, "instructions_executed", labels), 0, test.instruction)
	}
}

func TestMarkTxRejected(t *testing.T) {
	require := require.New(t)

	registry := metric.NewRegistry()
	m, err := New(registry)
	require.NoError(err)

	m.MarkTxRejected("already_voted")
	m.MarkTxRejected("already_voted")
	m.MarkTxRejected("unauthorized")

	require.InDelta(2, metricstest.Value(t, registry, "txs_rejected", metric.Labels{codeLabel: "already_voted"}), 0)
	require.InDelta(1, metricstest.Value(t, registry, "txs_rejected", metric.Labels{codeLabel: "unauthorized"}), 0)
	require.Equal(2, metricstest.Count(t, registry, "txs_rejected"))
}

func TestNewRegistersOnce(t *testing.T) {
	registry := metric.NewRegistry()

	_, err := New(registry)
	require.NoError(t, err)

	_, err = New(registry)
	require.Error(t, err) //nolint:forbidigo // the registry error is not exported
}
