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

package types

const (
	// ReceiptStatusFailed is the status code of a transaction if execution failed.
	ReceiptStatusFailed = uint64(0)

	// ReceiptStatusSuccessful is the status code of a transaction if execution succeeded.
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt is the execution outcome of one transaction as this engine sees
// it: the status, cumulative gas, and the logs the transaction emitted, in
// emission order. Receipts are produced upstream by the execution pipeline
// and consumed here read-only.
type Receipt struct {
	Status            uint64 `json:"status"`
	CumulativeGasUsed uint64 `json:"cumulativeGasUsed"`
	Logs              []*Log `json:"logs"`
}

// Receipts holds the block's receipts in transaction-inclusion order.
type Receipts []*Receipt

// Logs flattens the per-receipt logs into one sequence, preserving the
// receipt order and the log order within each receipt.
func (rs Receipts) Logs() []*Log {
	var n int
	for _, r := range rs {
		n += len(r.Logs)
	}
	logs := make([]*Log, 0, n)
	for _, r := range rs {
		logs = append(logs, r.Logs...)
	}
	return logs
}
