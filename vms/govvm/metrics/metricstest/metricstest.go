// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metricstest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/metric"
)

// Value returns the gathered value of the [name] series carrying exactly
// [labels]. The test fails if no such series exists.
func Value(t testing.TB, g metric.Gatherer, name string, labels metric.Labels) float64 {
	t.Helper()

	for _, m := range series(t, g, name) {
		if matches(m.Labels, labels) {
			return m.Value.Value
		}
	}
	require.FailNow(t, "missing series", "%s%v", name, labels)
	return 0
}

// Count returns the number of series gathered under [name].
func Count(t testing.TB, g metric.Gatherer, name string) int {
	t.Helper()
	return len(series(t, g, name))
}

func series(t testing.TB, g metric.Gatherer, name string) []metric.Metric {
	families, err := g.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.Name == name {
			return family.Metrics
		}
	}
	return nil
}

func matches(pairs []metric.LabelPair, labels metric.Labels) bool {
	if len(pairs) != len(labels) {
		return false
	}
	for _, pair := range pairs {
		if v, ok := labels[pair.Name]; !ok || v != pair.Value {
			return false
		}
	}
	return true
}
