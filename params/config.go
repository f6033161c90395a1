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

// Package params holds the per-network parameters of the deposit-inclusion
// engine. Configs are explicit values passed to the validator, not process
// globals, so several networks can be validated in one process.
package params

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/erigontech/eip6110/params/networkname"
)

//go:embed chainspecs
var chainspecs embed.FS

func readChainSpec(filename string) *ChainConfig {
	f, err := chainspecs.Open(filename)
	if err != nil {
		panic(fmt.Sprintf("Could not open chainspec for %s: %v", filename, err))
	}
	defer f.Close()
	spec := &ChainConfig{}
	if err := json.NewDecoder(f).Decode(spec); err != nil {
		panic(fmt.Sprintf("Could not parse chainspec for %s: %v", filename, err))
	}
	return spec
}

// ChainConfig carries the deposit-inclusion parameters of one network.
type ChainConfig struct {
	ChainName string   `json:"chainName"`
	ChainID   *big.Int `json:"chainId"`

	// DepositContractAddress is the fixed address of the deposit contract
	// whose logs carry validator deposits.
	DepositContractAddress common.Address `json:"depositContractAddress"`

	// PragueTime gates deposit inclusion: the rule is active for every block
	// whose timestamp is >= PragueTime. Nil means never active.
	PragueTime *big.Int `json:"pragueTime,omitempty"`
}

// IsPrague reports whether deposit inclusion is active at the given block
// timestamp.
func (c *ChainConfig) IsPrague(time uint64) bool {
	return isForked(c.PragueTime, time)
}

func (c *ChainConfig) String() string {
	return fmt.Sprintf("{ChainName: %s, ChainID: %v, DepositContract: %s, PragueTime: %v}",
		c.ChainName, c.ChainID, c.DepositContractAddress, c.PragueTime)
}

func isForked(s *big.Int, time uint64) bool {
	if s == nil {
		return false
	}
	return s.Uint64() <= time
}

var (
	MainnetChainConfig = readChainSpec("chainspecs/mainnet.json")
	SepoliaChainConfig = readChainSpec("chainspecs/sepolia.json")
	HoleskyChainConfig = readChainSpec("chainspecs/holesky.json")

	// TestChainConfig has deposit inclusion active from genesis, for tests.
	TestChainConfig = &ChainConfig{
		ChainName:              networkname.TestChainName,
		ChainID:                big.NewInt(1337),
		DepositContractAddress: common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa"),
		PragueTime:             big.NewInt(0),
	}
)

var chainConfigByName = map[string]*ChainConfig{
	networkname.MainnetChainName: MainnetChainConfig,
	networkname.SepoliaChainName: SepoliaChainConfig,
	networkname.HoleskyChainName: HoleskyChainConfig,
	networkname.TestChainName:    TestChainConfig,
}

// ChainConfigByChainName returns the config of a known network, or nil.
func ChainConfigByChainName(chain string) *ChainConfig {
	return chainConfigByName[chain]
}
