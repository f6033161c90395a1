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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

const (
	BLSPubKeyLen             = 48
	WithdrawalCredentialsLen = 32 // withdrawalCredentials size
	BLSSigLen                = 96 // signature size

	amountLen = 8 // gwei amount, little-endian
	indexLen  = 8 // deposit contract counter, little-endian
)

// ErrMalformedDepositLog means a log emitted at the deposit contract address
// did not decode into the fixed five-field DepositEvent shape. It is fatal
// for the containing block: a malformed log indicates either a decoding bug
// or a byte-level block-processing inconsistency, so it is always propagated
// and never skipped.
var ErrMalformedDepositLog = errors.New("malformed deposit log")

var (
	// DepositABI is an ABI instance of beacon chain deposit events.
	DepositABI   = abi.ABI{Events: map[string]abi.Event{"DepositEvent": depositEvent}}
	bytesT, _    = abi.NewType("bytes", "", nil)
	depositEvent = abi.NewEvent("DepositEvent", "DepositEvent", false, abi.Arguments{
		{Name: "pubkey", Type: bytesT, Indexed: false},
		{Name: "withdrawal_credentials", Type: bytesT, Indexed: false},
		{Name: "amount", Type: bytesT, Indexed: false},
		{Name: "signature", Type: bytesT, Indexed: false},
		{Name: "index", Type: bytesT, Indexed: false}},
	)
)

// Deposit is one validator deposit operation read back from a DepositEvent
// log. Index is the deposit contract's own counter at deposit time and is
// carried through verbatim, never re-derived.
type Deposit struct {
	Pubkey                [BLSPubKeyLen]byte `json:"pubkey"`                // public key of validator
	WithdrawalCredentials common.Hash        `json:"withdrawalCredentials"` // beneficiary of the validator
	Amount                uint64             `json:"amount"`                // deposit size in Gwei
	Signature             [BLSSigLen]byte    `json:"signature"`             // signature over deposit msg
	Index                 uint64             `json:"index"`                 // deposit count value
}

// Equal reports whether two deposits match field-for-field.
func (d *Deposit) Equal(other *Deposit) bool {
	return d.Pubkey == other.Pubkey &&
		d.WithdrawalCredentials == other.WithdrawalCredentials &&
		d.Amount == other.Amount &&
		d.Signature == other.Signature &&
		d.Index == other.Index
}

func (d *Deposit) Copy() *Deposit {
	cpy := *d
	return &cpy
}

// field type overrides for abi unpacking
type depositUnpacking struct {
	Pubkey                []byte
	WithdrawalCredentials []byte
	Amount                []byte
	Signature             []byte
	Index                 []byte
}

// unpackIntoDeposit unpacks a serialized DepositEvent. The five arguments
// are dynamic bytes on the wire, so their widths are checked explicitly
// after unpacking; any deviation is ErrMalformedDepositLog.
func unpackIntoDeposit(data []byte) (*Deposit, error) {
	var du depositUnpacking
	if err := DepositABI.UnpackIntoInterface(&du, "DepositEvent", data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDepositLog, err)
	}
	if len(du.Pubkey) != BLSPubKeyLen {
		return nil, fmt.Errorf("%w: pubkey is %d bytes, want %d", ErrMalformedDepositLog, len(du.Pubkey), BLSPubKeyLen)
	}
	if len(du.WithdrawalCredentials) != WithdrawalCredentialsLen {
		return nil, fmt.Errorf("%w: withdrawal credentials are %d bytes, want %d", ErrMalformedDepositLog, len(du.WithdrawalCredentials), WithdrawalCredentialsLen)
	}
	if len(du.Amount) != amountLen {
		return nil, fmt.Errorf("%w: amount is %d bytes, want %d", ErrMalformedDepositLog, len(du.Amount), amountLen)
	}
	if len(du.Signature) != BLSSigLen {
		return nil, fmt.Errorf("%w: signature is %d bytes, want %d", ErrMalformedDepositLog, len(du.Signature), BLSSigLen)
	}
	if len(du.Index) != indexLen {
		return nil, fmt.Errorf("%w: index is %d bytes, want %d", ErrMalformedDepositLog, len(du.Index), indexLen)
	}

	var d Deposit
	copy(d.Pubkey[:], du.Pubkey)
	copy(d.WithdrawalCredentials[:], du.WithdrawalCredentials)
	d.Amount = binary.LittleEndian.Uint64(du.Amount)
	copy(d.Signature[:], du.Signature)
	d.Index = binary.LittleEndian.Uint64(du.Index)

	return &d, nil
}

// DepositLogData is the inverse of unpackIntoDeposit: it ABI-encodes a
// deposit the way the deposit contract emits it. Block producers and tests
// use it to synthesize DepositEvent payloads.
func DepositLogData(d *Deposit) ([]byte, error) {
	var amount, index [8]byte
	binary.LittleEndian.PutUint64(amount[:], d.Amount)
	binary.LittleEndian.PutUint64(index[:], d.Index)
	return depositEvent.Inputs.Pack(
		d.Pubkey[:],
		d.WithdrawalCredentials.Bytes(),
		amount[:],
		d.Signature[:],
		index[:],
	)
}

// ParseDepositLogs extracts the EIP-6110 deposit values from logs emitted by
// BeaconDepositContract. Address equality is the only filter: the deposit
// contract emits no other event type. Logs are consumed in the order given,
// which must be the block's emission order.
func ParseDepositLogs(logs []*Log, depositContractAddress common.Address) (Deposits, error) {
	var deposits Deposits
	for _, log := range logs {
		if log.Address == depositContractAddress {
			d, err := unpackIntoDeposit(log.Data)
			if err != nil {
				return nil, fmt.Errorf("unable to parse deposit data: %w", err)
			}
			deposits = append(deposits, d)
		}
	}
	return deposits, nil
}

// ExtractDeposits walks receipts in transaction order and their logs in
// emission order, collecting every deposit the block produced.
func ExtractDeposits(receipts Receipts, depositContractAddress common.Address) (Deposits, error) {
	var deposits Deposits
	for i, receipt := range receipts {
		for _, log := range receipt.Logs {
			if log.Address != depositContractAddress {
				continue
			}
			d, err := unpackIntoDeposit(log.Data)
			if err != nil {
				return nil, fmt.Errorf("receipt %d: unable to parse deposit data: %w", i, err)
			}
			deposits = append(deposits, d)
		}
	}
	return deposits, nil
}

type Deposits []*Deposit

func (ds Deposits) Len() int { return len(ds) }

// EncodeIndex encodes the i'th deposit to w. Note that this does not check
// for errors because we assume Deposits only ever holds valid deposits that
// were constructed by decoding or via the public API of this package.
func (ds Deposits) EncodeIndex(i int, w *bytes.Buffer) {
	rlp.Encode(w, ds[i])
}

func (ds Deposits) Copy() Deposits {
	if ds == nil {
		return nil
	}
	cpy := make(Deposits, len(ds))
	for i, d := range ds {
		cpy[i] = d.Copy()
	}
	return cpy
}
