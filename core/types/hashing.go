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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

// DerivableList is an ordered list whose items can be encoded one at a time
// for trie derivation. Deposits, transaction lists and the like satisfy it.
type DerivableList interface {
	Len() int
	EncodeIndex(i int, w *bytes.Buffer)
}

// DeriveSha commits to an ordered list: it builds a hexary Merkle-Patricia
// trie mapping rlp(position) -> encoded item and returns its root. The same
// list always yields the same root, any reordering or alteration changes it,
// and the empty list yields EmptyRootHash.
func DeriveSha(list DerivableList) common.Hash {
	st := trie.NewStackTrie(nil)

	var indexBuf []byte
	var valueBuf bytes.Buffer

	put := func(i int) {
		indexBuf = rlp.AppendUint64(indexBuf[:0], uint64(i))
		valueBuf.Reset()
		list.EncodeIndex(i, &valueBuf)
		// The stack trie retains the value slice, so hand it a copy.
		st.Update(indexBuf, common.CopyBytes(valueBuf.Bytes()))
	}

	// The stack trie wants keys in ascending nibble order, and rlp-encoded
	// positions do not sort that way around the single-byte boundary:
	// rlp(0) = 0x80 sorts after 0x01..0x7f but before 0x8180.
	for i := 1; i < list.Len() && i <= 0x7f; i++ {
		put(i)
	}
	if list.Len() > 0 {
		put(0)
	}
	for i := 0x80; i < list.Len(); i++ {
		put(i)
	}
	return st.Hash()
}
