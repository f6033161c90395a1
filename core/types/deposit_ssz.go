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
	ssz "github.com/ferranbt/fastssz"
)

// DepositSSZSize is the fixed SSZ size of a deposit container:
// pubkey(48) + withdrawal_credentials(32) + amount(8) + signature(96) + index(8).
const DepositSSZSize = 192

// SizeSSZ returns the ssz encoded size in bytes for the Deposit object.
func (d *Deposit) SizeSSZ() int {
	return DepositSSZSize
}

// MarshalSSZ ssz marshals the Deposit object.
func (d *Deposit) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(d)
}

// MarshalSSZTo ssz marshals the Deposit object to a target array.
func (d *Deposit) MarshalSSZTo(buf []byte) ([]byte, error) {
	buf = append(buf, d.Pubkey[:]...)
	buf = append(buf, d.WithdrawalCredentials[:]...)
	buf = ssz.MarshalUint64(buf, d.Amount)
	buf = append(buf, d.Signature[:]...)
	buf = ssz.MarshalUint64(buf, d.Index)
	return buf, nil
}

// UnmarshalSSZ ssz unmarshals the Deposit object.
func (d *Deposit) UnmarshalSSZ(buf []byte) error {
	if len(buf) != DepositSSZSize {
		return ssz.ErrSize
	}
	copy(d.Pubkey[:], buf[0:48])
	copy(d.WithdrawalCredentials[:], buf[48:80])
	d.Amount = ssz.UnmarshallUint64(buf[80:88])
	copy(d.Signature[:], buf[88:184])
	d.Index = ssz.UnmarshallUint64(buf[184:192])
	return nil
}

// HashTreeRoot ssz hashes the Deposit object.
func (d *Deposit) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(d)
}

// HashTreeRootWith ssz hashes the Deposit object with a hasher.
func (d *Deposit) HashTreeRootWith(hh ssz.HashWalker) error {
	idx := hh.Index()
	hh.PutBytes(d.Pubkey[:])
	hh.PutBytes(d.WithdrawalCredentials[:])
	hh.PutUint64(d.Amount)
	hh.PutBytes(d.Signature[:])
	hh.PutUint64(d.Index)
	hh.Merkleize(idx)
	return nil
}

// GetTree ssz hashes the Deposit object.
func (d *Deposit) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(d)
}
