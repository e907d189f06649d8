// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package pricefeed

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"

	"github.com/YtzBeno/aztec-connect-bridges/evmclient"
)

const aggregatorABIRaw = `[{"inputs":[],"name":"latestAnswer","outputs":[{"internalType":"int256","name":"","type":"int256"}],"stateMutability":"view","type":"function"}]`

var ErrNegativeAnswer = errors.New("price feed returned a negative answer")

// Oracle supplies the current price of the traded pair used as a sanity
// check against the encoded min price.
type Oracle interface {
	FetchPrice(ctx context.Context) (*big.Int, error)
}

// ChainlinkOracle reads latestAnswer from a chainlink aggregator.
type ChainlinkOracle struct {
	aggregator common.Address
	abi        abi.ABI
	caller     evmclient.ContractCaller
}

func NewChainlinkOracle(aggregator common.Address, caller evmclient.ContractCaller) *ChainlinkOracle {
	a, _ := abi.JSON(strings.NewReader(aggregatorABIRaw))
	return &ChainlinkOracle{
		aggregator: aggregator,
		abi:        a,
		caller:     caller,
	}
}

func (o *ChainlinkOracle) FetchPrice(ctx context.Context) (*big.Int, error) {
	data, err := o.abi.Pack("latestAnswer")
	if err != nil {
		return nil, err
	}

	res, err := o.caller.CallContract(ctx, ethereum.CallMsg{To: &o.aggregator, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "latestAnswer call failed")
	}

	answer := math.S256(new(big.Int).SetBytes(res))
	if answer.Sign() < 0 {
		return nil, ErrNegativeAnswer
	}
	return answer, nil
}
