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

// Package types holds the consensus data types the deposit-inclusion engine
// operates on.
package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// EmptyRootHash is the root of an empty hexary Merkle-Patricia trie.
var EmptyRootHash = common.HexToHash("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

// Header carries the execution block header fields this engine reads.
// DepositsRoot is nil on headers sealed before deposit-inclusion activation;
// from activation onward it commits to the ordered deposit list of the body.
type Header struct {
	ParentHash   common.Hash  `json:"parentHash"`
	Root         common.Hash  `json:"stateRoot"`
	Number       *big.Int     `json:"number"`
	Time         uint64       `json:"timestamp"`
	Extra        []byte       `json:"extraData"`
	BaseFee      *uint256.Int `json:"baseFeePerGas" rlp:"optional"`
	DepositsRoot *common.Hash `json:"depositsRoot" rlp:"optional"`
}

// Hash returns the keccak256 hash of the header's RLP encoding.
func (h *Header) Hash() common.Hash {
	return rlpHash(h)
}

func (h *Header) Copy() *Header {
	cpy := *h
	if h.Number != nil {
		cpy.Number = new(big.Int).Set(h.Number)
	}
	if h.Extra != nil {
		cpy.Extra = append([]byte{}, h.Extra...)
	}
	if h.BaseFee != nil {
		cpy.BaseFee = new(uint256.Int).Set(h.BaseFee)
	}
	if h.DepositsRoot != nil {
		root := *h.DepositsRoot
		cpy.DepositsRoot = &root
	}
	return &cpy
}

// Body is the block body. Transactions are opaque here (their execution is
// an upstream concern); Deposits trails the pre-existing fields and is nil
// on bodies produced before deposit-inclusion activation.
type Body struct {
	Transactions [][]byte
	Deposits     Deposits `rlp:"optional"`
}

// Block bundles a header with its body. Blocks consumed by the validator
// are treated as immutable.
type Block struct {
	header *Header
	body   *Body
}

func NewBlock(header *Header, body *Body) *Block {
	return &Block{header: header, body: body}
}

// Header returns the block header. The returned header is shared, not
// copied; callers must not mutate it.
func (b *Block) Header() *Header { return b.header }

func (b *Block) Body() *Body        { return b.body }
func (b *Block) Deposits() Deposits { return b.body.Deposits }
func (b *Block) Number() *big.Int   { return b.header.Number }
func (b *Block) Time() uint64       { return b.header.Time }
func (b *Block) Hash() common.Hash  { return b.header.Hash() }
func (b *Block) Root() common.Hash  { return b.header.Root }

func rlpHash(x interface{}) (h common.Hash) {
	sha := crypto.NewKeccakState()
	rlp.Encode(sha, x) //nolint:errcheck
	sha.Read(h[:])     //nolint:errcheck
	return h
}
