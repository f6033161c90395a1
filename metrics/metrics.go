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

// Package metrics is a thin wrapper over the Prometheus client that accepts
// metric names in the `name{label="value",...}` form.
package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Counter is a monotonically increasing metric whose current value can be
// read back, which keeps test assertions free of registry scraping.
type Counter interface {
	prometheus.Counter
	GetValue() float64
	GetValueUint64() uint64
	AddInt(v int)
}

type counter struct {
	prometheus.Counter
}

// GetValue returns the native float64 value stored by this counter.
func (c *counter) GetValue() float64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		panic(fmt.Errorf("calling GetValue with invalid metric: %w", err))
	}
	return m.GetCounter().GetValue()
}

// GetValueUint64 returns the counter value cast to uint64 for convenience.
func (c *counter) GetValueUint64() uint64 {
	return uint64(c.GetValue())
}

// AddInt adds an int value to the native float64 value stored by this
// counter. Safe for values up to 2^53.
func (c *counter) AddInt(v int) {
	c.Add(float64(v))
}

// NewCounter registers and returns a new counter with the given name.
//
// name must be a valid Prometheus-compatible metric with possible labels,
// for instance
//
//   - foo
//   - foo{bar="baz"}
//   - foo{bar="baz",aaa="b"}
//
// The returned counter is safe to use from concurrent goroutines.
// NewCounter panics on an unparsable name or a duplicate registration.
func NewCounter(name string) Counter {
	fqName, labels, err := parseMetric(name)
	if err != nil {
		panic(fmt.Errorf("could not create new counter: %w", err))
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: fqName, ConstLabels: labels})
	prometheus.MustRegister(c)
	return &counter{c}
}

// parseMetric splits `name{k="v",...}` into the bare name and its constant
// labels. Values are double-quoted and may contain commas and \" escapes.
func parseMetric(s string) (string, prometheus.Labels, error) {
	brace := strings.IndexByte(s, '{')
	if brace < 0 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, "}") {
		return "", nil, fmt.Errorf("metric %q: unbalanced label braces", s)
	}
	name := s[:brace]
	labels := prometheus.Labels{}
	rest := s[brace+1 : len(s)-1]
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			return "", nil, fmt.Errorf("metric %q: label %q has no value", s, rest)
		}
		key := strings.TrimSpace(rest[:eq])
		rest = rest[eq+1:]
		if !strings.HasPrefix(rest, `"`) {
			return "", nil, fmt.Errorf("metric %q: label %q value is not quoted", s, key)
		}
		value, n, err := scanQuoted(rest)
		if err != nil {
			return "", nil, fmt.Errorf("metric %q: label %q: %w", s, key, err)
		}
		labels[key] = value
		rest = strings.TrimSpace(rest[n:])
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return "", nil, fmt.Errorf("metric %q: expected ',' after label %q", s, key)
		}
		rest = strings.TrimSpace(rest[1:])
	}
	return name, labels, nil
}

// scanQuoted reads a double-quoted value from the start of s, honoring
// backslash escapes, and returns the unescaped value and the number of
// input bytes consumed.
func scanQuoted(s string) (string, int, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 == len(s) {
				return "", 0, fmt.Errorf("truncated escape in %q", s)
			}
			i++
			b.WriteByte(s[i])
		case '"':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", 0, fmt.Errorf("unterminated quote in %q", s)
}
