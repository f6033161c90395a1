// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter("metrics_test_plain_total")
	require.Equal(t, uint64(0), c.GetValueUint64())

	c.Inc()
	c.AddInt(2)
	require.Equal(t, uint64(3), c.GetValueUint64())
	require.Equal(t, float64(3), c.GetValue())
}

func TestCounterWithLabels(t *testing.T) {
	a := NewCounter(`metrics_test_labeled_total{verdict="accepted"}`)
	b := NewCounter(`metrics_test_labeled_total{verdict="rejected"}`)

	a.Inc()
	require.Equal(t, uint64(1), a.GetValueUint64())
	require.Equal(t, uint64(0), b.GetValueUint64())
}

func TestParseMetric(t *testing.T) {
	name, labels, err := parseMetric(`foo{bar="baz",aaa="b"}`)
	require.NoError(t, err)
	require.Equal(t, "foo", name)
	require.Equal(t, "baz", labels["bar"])
	require.Equal(t, "b", labels["aaa"])

	name, labels, err = parseMetric("plain")
	require.NoError(t, err)
	require.Equal(t, "plain", name)
	require.Nil(t, labels)

	_, _, err = parseMetric(`broken{bar="baz"`)
	require.Error(t, err)

	_, _, err = parseMetric(`broken{novalue}`)
	require.Error(t, err)
}

func TestParseMetricQuotedValues(t *testing.T) {
	name, labels, err := parseMetric(`foo{path="a,b",quoted="say \"hi\""}`)
	require.NoError(t, err)
	require.Equal(t, "foo", name)
	require.Len(t, labels, 2)
	require.Equal(t, "a,b", labels["path"])
	require.Equal(t, `say "hi"`, labels["quoted"])

	_, _, err = parseMetric(`foo{bar=baz}`)
	require.Error(t, err)

	_, _, err = parseMetric(`foo{bar="baz}`)
	require.Error(t, err)

	_, _, err = parseMetric(`foo{bar="a" junk="b"}`)
	require.Error(t, err)
}
