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

package misc

import (
	"errors"
	"fmt"

	"github.com/ledgerwatch/log/v3"
	"golang.org/x/sync/errgroup"

	"github.com/erigontech/eip6110/core/types"
	"github.com/erigontech/eip6110/metrics"
	"github.com/erigontech/eip6110/params"
)

var (
	// ErrDepositsRootMismatch is returned when the depositsRoot claimed by
	// the header does not equal the root recomputed over the body list.
	ErrDepositsRootMismatch = errors.New("deposits root mismatch")

	// ErrDepositListMismatch is returned when the body deposit list differs
	// in order, count or field values from the list reconstructed from the
	// block's receipts.
	ErrDepositListMismatch = errors.New("deposit list mismatch")

	// ErrDepositsSchema is returned when the deposit header/body fields are
	// present before activation or absent at/after activation.
	ErrDepositsSchema = errors.New("deposit fields inconsistent with fork activation")

	// ErrDepositIndexGap is returned by VerifyDepositIndexes only; the index
	// contiguity check is a separate opt-in and not part of block validity.
	ErrDepositIndexGap = errors.New("deposit index not contiguous")
)

var (
	blocksAcceptedCounter = metrics.NewCounter(`eip6110_blocks{verdict="accepted"}`)
	blocksRejectedCounter = metrics.NewCounter(`eip6110_blocks{verdict="rejected"}`)
)

// VerifyDeposits checks a candidate block's validator deposits against its
// receipts: the header's depositsRoot must commit to the body's deposit
// list, and that list must equal, element for element and in order, the
// deposits extracted from the receipts. Before Prague both deposit fields
// must be absent; from Prague onward both must be present.
//
// Verification is a pure function of its inputs: re-running it on the same
// block always yields the same verdict, and independent blocks may be
// verified concurrently.
func VerifyDeposits(config *params.ChainConfig, block *types.Block, receipts types.Receipts, logger log.Logger) error {
	if err := verifyDeposits(config, block, receipts); err != nil {
		blocksRejectedCounter.Inc()
		logger.Debug("[eip6110] block rejected", "number", block.Number(), "hash", block.Hash(), "err", err)
		return err
	}
	blocksAcceptedCounter.Inc()
	logger.Trace("[eip6110] block deposits verified", "number", block.Number(), "deposits", len(block.Deposits()))
	return nil
}

func verifyDeposits(config *params.ChainConfig, block *types.Block, receipts types.Receipts) error {
	header := block.Header()

	if !config.IsPrague(header.Time) {
		if header.DepositsRoot != nil {
			return fmt.Errorf("%w: depositsRoot present before activation", ErrDepositsSchema)
		}
		if block.Deposits() != nil {
			return fmt.Errorf("%w: deposits present before activation", ErrDepositsSchema)
		}
		return nil
	}

	if header.DepositsRoot == nil {
		return fmt.Errorf("%w: missing depositsRoot", ErrDepositsSchema)
	}
	deposits := block.Deposits()
	if deposits == nil {
		return fmt.Errorf("%w: missing deposits in block body", ErrDepositsSchema)
	}

	// Extraction and the commitment over the claimed list are independent,
	// so run them in parallel.
	var (
		eg       errgroup.Group
		expected types.Deposits
	)
	eg.Go(func() error {
		var err error
		expected, err = types.ExtractDeposits(receipts, config.DepositContractAddress)
		return err
	})
	root := types.DeriveSha(deposits)
	if err := eg.Wait(); err != nil {
		return err
	}

	// Root first: a fixed-size comparison is the cheapest way to fail.
	if root != *header.DepositsRoot {
		return fmt.Errorf("%w: header has %x, computed %x", ErrDepositsRootMismatch, *header.DepositsRoot, root)
	}

	if len(deposits) != len(expected) {
		return fmt.Errorf("%w: %d deposits in body, %d in receipts", ErrDepositListMismatch, len(deposits), len(expected))
	}
	for i, d := range deposits {
		if !d.Equal(expected[i]) {
			return fmt.Errorf("%w: deposit %d differs from receipt log", ErrDepositListMismatch, i)
		}
	}
	return nil
}

// VerifyDepositIndexes checks that deposit indexes continue the contract's
// counter without gaps or duplicates: deposits[i].Index == prevCount+i.
// The deposit contract guarantees this upstream, so VerifyDeposits does not
// call it; callers wanting the stronger guarantee opt in explicitly.
func VerifyDepositIndexes(deposits types.Deposits, prevCount uint64) error {
	for i, d := range deposits {
		if want := prevCount + uint64(i); d.Index != want {
			return fmt.Errorf("%w: deposit %d has index %d, want %d", ErrDepositIndexGap, i, d.Index, want)
		}
	}
	return nil
}
