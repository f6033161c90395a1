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

package params

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestChainSpecs(t *testing.T) {
	require.Equal(t, common.HexToAddress("0x00000000219ab540356cBB839Cbe05303d7705Fa"), MainnetChainConfig.DepositContractAddress)
	require.Equal(t, big.NewInt(1), MainnetChainConfig.ChainID)
	require.NotNil(t, MainnetChainConfig.PragueTime)

	require.Equal(t, common.HexToAddress("0x7f02C3E3c98b133055B8B348B2Ac625669Ed295D"), SepoliaChainConfig.DepositContractAddress)
	require.Equal(t, common.HexToAddress("0x4242424242424242424242424242424242424242"), HoleskyChainConfig.DepositContractAddress)
}

func TestIsPrague(t *testing.T) {
	cfg := &ChainConfig{PragueTime: big.NewInt(1000)}
	require.False(t, cfg.IsPrague(0))
	require.False(t, cfg.IsPrague(999))
	require.True(t, cfg.IsPrague(1000))
	require.True(t, cfg.IsPrague(1001))

	// Nil activation time means the rule never turns on.
	never := &ChainConfig{}
	require.False(t, never.IsPrague(^uint64(0)))

	require.True(t, TestChainConfig.IsPrague(0))
}

func TestChainConfigByChainName(t *testing.T) {
	require.Same(t, MainnetChainConfig, ChainConfigByChainName("mainnet"))
	require.Same(t, SepoliaChainConfig, ChainConfigByChainName("sepolia"))
	require.Same(t, HoleskyChainConfig, ChainConfigByChainName("holesky"))
	require.Nil(t, ChainConfigByChainName("unknown"))
}
