// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package swap

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/rs/zerolog/log"

	"github.com/YtzBeno/aztec-connect-bridges/bridges"
	"github.com/YtzBeno/aztec-connect-bridges/bridges/swap/encoding"
	"github.com/YtzBeno/aztec-connect-bridges/pricefeed"
)

const routerABIRaw = `[{"inputs":[{"components":[{"internalType":"bytes","name":"path","type":"bytes"},{"internalType":"address","name":"recipient","type":"address"},{"internalType":"uint256","name":"deadline","type":"uint256"},{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"uint256","name":"amountOutMinimum","type":"uint256"}],"internalType":"struct ISwapRouter.ExactInputParams","name":"params","type":"tuple"}],"name":"exactInput","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"}],"stateMutability":"payable","type":"function"}]`

// DefaultRouter is the mainnet Uniswap V3 swap router.
var DefaultRouter = common.HexToAddress("0xE592427A0AEce92De3Edee1F18E0157C05861564")

var ErrZeroInputValue = errors.New("input value is zero")

var oneInWei = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

type exactInputParams struct {
	Path             []byte
	Recipient        common.Address
	Deadline         *big.Int
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

// Bridge converts rollup swap interactions into Uniswap router calls. The
// interaction auxData is the encoded path word, the input and output assets
// come from the settlement layer.
type Bridge struct {
	router    common.Address
	recipient common.Address
	oracle    pricefeed.Oracle
	abi       abi.ABI
}

// NewBridge creates a swap bridge adapter. The oracle is optional, without
// one the encoded min price is the only slippage guard.
func NewBridge(router, recipient common.Address, oracle pricefeed.Oracle) *Bridge {
	a, _ := abi.JSON(strings.NewReader(routerABIRaw))
	return &Bridge{
		router:    router,
		recipient: recipient,
		oracle:    oracle,
		abi:       a,
	}
}

// Convert decodes the route out of the interaction auxData and prepares one
// exactInput router call per used branch. A malformed route rejects the
// whole interaction, no partial calls are returned.
func (b *Bridge) Convert(ctx context.Context, interaction bridges.Interaction) ([]bridges.Call, error) {
	if interaction.InputValue == nil || interaction.InputValue.Sign() == 0 {
		return nil, ErrZeroInputValue
	}

	decoded, err := encoding.DecodePath(interaction.InputAsset, interaction.AuxData, interaction.OutputAsset)
	if err != nil {
		return nil, err
	}

	if b.oracle != nil {
		oraclePrice, err := b.oracle.FetchPrice(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("price feed unavailable, relying on encoded min price only")
		} else if decoded.MinPrice.Cmp(oraclePrice) > 0 {
			log.Warn().
				Str("minPrice", decoded.MinPrice.String()).
				Str("oraclePrice", oraclePrice.String()).
				Uint64("nonce", interaction.Nonce).
				Msg("encoded min price above oracle price, trade will likely revert")
		}
	}

	branches := []struct {
		percentage uint64
		path       []byte
	}{
		{decoded.Percentage1, decoded.SplitPath1},
		{decoded.Percentage2, decoded.SplitPath2},
	}

	calls := make([]bridges.Call, 0, len(branches))
	for _, branch := range branches {
		if branch.percentage == 0 {
			continue
		}

		amountIn := new(big.Int).Mul(interaction.InputValue, new(big.Int).SetUint64(branch.percentage))
		amountIn.Div(amountIn, big.NewInt(100))

		data, err := b.abi.Pack("exactInput", exactInputParams{
			Path:             branch.path,
			Recipient:        b.recipient,
			Deadline:         math.MaxBig256,
			AmountIn:         amountIn,
			AmountOutMinimum: amountOutMinimum(amountIn, decoded.MinPrice),
		})
		if err != nil {
			return nil, err
		}
		calls = append(calls, bridges.Call{To: b.router, Data: data})
	}
	return calls, nil
}

// amountOutMinimum scales the branch input by the min price, which is
// denominated in output per one input scaled by 1e18.
func amountOutMinimum(amountIn, minPrice *big.Int) *big.Int {
	out := new(big.Int).Mul(amountIn, minPrice)
	return out.Div(out, oneInWei)
}
