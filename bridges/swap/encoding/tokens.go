// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package encoding

import "github.com/ethereum/go-ethereum/common"

// Mainnet addresses of the tokens a split path may route through.
var (
	WETH = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	USDC = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	USDT = common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	DAI  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	WBTC = common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599")
)

// FeeTier maps a 2 bit selector to a Uniswap fee tier. Selector 3 is
// reserved.
func FeeTier(selector uint64) (uint32, error) {
	switch selector {
	case 0:
		return 100, nil
	case 1:
		return 500, nil
	case 2:
		return 3000, nil
	}
	return 0, ErrInvalidFeeTierEncoding
}

// MiddleToken maps a 3 bit selector to a middle token address. Selector 0 is
// the "no middle token" sentinel and does not resolve to an address.
func MiddleToken(selector uint64) (common.Address, error) {
	switch selector {
	case 1:
		return WETH, nil
	case 2:
		return USDC, nil
	case 3:
		return USDT, nil
	case 4:
		return DAI, nil
	case 5:
		return WBTC, nil
	}
	return common.Address{}, ErrInvalidTokenEncoding
}
