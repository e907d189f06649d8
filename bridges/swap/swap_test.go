// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package swap_test

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/suite"

	"github.com/YtzBeno/aztec-connect-bridges/bridges"
	"github.com/YtzBeno/aztec-connect-bridges/bridges/swap"
	"github.com/YtzBeno/aztec-connect-bridges/bridges/swap/encoding"
	"github.com/YtzBeno/aztec-connect-bridges/pricefeed"
)

const routerABIRaw = `[{"inputs":[{"components":[{"internalType":"bytes","name":"path","type":"bytes"},{"internalType":"address","name":"recipient","type":"address"},{"internalType":"uint256","name":"deadline","type":"uint256"},{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"uint256","name":"amountOutMinimum","type":"uint256"}],"internalType":"struct ISwapRouter.ExactInputParams","name":"params","type":"tuple"}],"name":"exactInput","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"}],"stateMutability":"payable","type":"function"}]`

var (
	lusd      = common.HexToAddress("0x5f98805A4E8be255a32880FDeC7F6728C6568bA0")
	lqty      = common.HexToAddress("0x6DEA81C8171D0bA574754EF6F8b412F2Ed88c54D")
	recipient = common.HexToAddress("0xFF1F2B4ADb9dF6FC8eAFa8a802AA0aCf2111f290")
)

type SwapBridgeTestSuite struct {
	suite.Suite

	routerABI abi.ABI
}

func TestRunSwapBridgeTestSuite(t *testing.T) {
	suite.Run(t, new(SwapBridgeTestSuite))
}

func (s *SwapBridgeTestSuite) SetupSuite() {
	a, err := abi.JSON(strings.NewReader(routerABIRaw))
	s.Nil(err)
	s.routerABI = a
}

func packedPath(elems ...interface{}) []byte {
	buf := bytes.Buffer{}
	for _, e := range elems {
		switch v := e.(type) {
		case common.Address:
			buf.Write(v.Bytes())
		case int:
			buf.Write([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
		}
	}
	return buf.Bytes()
}

func (s *SwapBridgeTestSuite) expectedCall(path []byte, amountIn, minOut *big.Int) []byte {
	data, err := s.routerABI.Pack("exactInput", struct {
		Path             []byte
		Recipient        common.Address
		Deadline         *big.Int
		AmountIn         *big.Int
		AmountOutMinimum *big.Int
	}{path, recipient, math.MaxBig256, amountIn, minOut})
	s.Nil(err)
	return data
}

func (s *SwapBridgeTestSuite) TestConvertSplitsInputAcrossBranches() {
	bridge := swap.NewBridge(swap.DefaultRouter, recipient, nil)

	calls, err := bridge.Convert(context.Background(), bridges.Interaction{
		Nonce:       7,
		InputAsset:  lusd,
		OutputAsset: lqty,
		InputValue:  big.NewInt(1000),
		AuxData:     0xF7F136CF32346546,
	})

	s.Nil(err)
	s.Len(calls, 2)

	minPrice := new(big.Int).Mul(big.NewInt(2031142), new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil))
	oneInWei := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	minOut1 := new(big.Int).Mul(big.NewInt(700), minPrice)
	minOut1.Div(minOut1, oneInWei)
	path1 := packedPath(lusd, 500, encoding.USDC, 3000, encoding.WETH, 3000, lqty)
	s.Equal(swap.DefaultRouter, calls[0].To)
	s.Equal(s.expectedCall(path1, big.NewInt(700), minOut1), calls[0].Data)

	minOut2 := new(big.Int).Mul(big.NewInt(300), minPrice)
	minOut2.Div(minOut2, oneInWei)
	path2 := packedPath(lusd, 500, encoding.DAI, 3000, encoding.WETH, 3000, lqty)
	s.Equal(swap.DefaultRouter, calls[1].To)
	s.Equal(s.expectedCall(path2, big.NewInt(300), minOut2), calls[1].Data)
}

func (s *SwapBridgeTestSuite) TestConvertSkipsUnusedBranch() {
	bridge := swap.NewBridge(swap.DefaultRouter, recipient, pricefeed.NewStatic(big.NewInt(1)))

	calls, err := bridge.Convert(context.Background(), bridges.Interaction{
		InputAsset:  lusd,
		OutputAsset: lqty,
		InputValue:  big.NewInt(100),
		AuxData:     0xF7F136C000064546,
	})

	s.Nil(err)
	s.Len(calls, 1)

	minPrice := new(big.Int).Mul(big.NewInt(2031142), new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil))
	minOut := new(big.Int).Mul(big.NewInt(100), minPrice)
	minOut.Div(minOut, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	path := packedPath(lusd, 500, encoding.USDC, 3000, encoding.WETH, 3000, lqty)
	s.Equal(s.expectedCall(path, big.NewInt(100), minOut), calls[0].Data)
}

func (s *SwapBridgeTestSuite) TestConvertRejectsMalformedRoute() {
	bridge := swap.NewBridge(swap.DefaultRouter, recipient, nil)

	calls, err := bridge.Convert(context.Background(), bridges.Interaction{
		InputAsset:  lusd,
		OutputAsset: lqty,
		InputValue:  big.NewInt(100),
		AuxData:     0x1932346546,
	})

	s.Nil(calls)
	s.ErrorIs(err, encoding.ErrInvalidPercentageAmounts)
}

func (s *SwapBridgeTestSuite) TestConvertRejectsZeroInput() {
	bridge := swap.NewBridge(swap.DefaultRouter, recipient, nil)

	_, err := bridge.Convert(context.Background(), bridges.Interaction{
		InputAsset:  lusd,
		OutputAsset: lqty,
		InputValue:  big.NewInt(0),
		AuxData:     0xF7F136CF32346546,
	})

	s.ErrorIs(err, swap.ErrZeroInputValue)
}
