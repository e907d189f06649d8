// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// A full swap route fits into a single 64 bit word (the bridge auxData):
//
//	|     26 bits     |     19 bits     |     19 bits     |
//	|    minPrice     |   splitPath2    |   splitPath1    |
//
// Each split path packs, from the most significant bit:
//
//	|   7 bits   | 2 bits | 3 bits | 2 bits | 3 bits | 2 bits |
//	| percentage |  fee1  | token1 |  fee2  | token2 |  fee3  |
//
// fee3 is always the fee tier of the last hop into the output token. A
// middle token selector of 0 means the corresponding hop is skipped.
//
// Min price is a decimal float, value = significand * 10^exponent:
//
//	|   21 bits   |  5 bits  |
//	| significand | exponent |
const (
	SplitPathBitLength  = 19
	SplitPathsBitLength = 2 * SplitPathBitLength
	PriceBitLength      = 64 - SplitPathsBitLength
	ExponentBitLength   = 5

	splitPathMask = (1 << SplitPathBitLength) - 1
	exponentMask  = (1 << ExponentBitLength) - 1
	feeMask       = 0x3
	tokenMask     = 0x7

	percentageBitLength = 7
	percentageShift     = SplitPathBitLength - percentageBitLength

	// MaxSignificand is the largest significand the price field can carry.
	MaxSignificand = (1 << (PriceBitLength - ExponentBitLength)) - 1
)

var (
	ErrInvalidPercentageAmounts = errors.New("split path percentages do not sum to 100")
	ErrInvalidFeeTierEncoding   = errors.New("invalid fee tier encoding")
	ErrInvalidTokenEncoding     = errors.New("invalid token encoding")
	ErrValueOutOfRange          = errors.New("value does not fit into its bit field")
)

// DecodedPath is a route unpacked from a 64 bit word. SplitPath1 and
// SplitPath2 are ABI packed (address, uint24 fee, ..., address) sequences in
// the exact layout the swap router consumes.
type DecodedPath struct {
	Percentage1 uint64
	SplitPath1  []byte
	Percentage2 uint64
	SplitPath2  []byte
	MinPrice    *big.Int
}

// DecodePath unpacks both split paths and the min price from encodedPath.
// The input and output tokens are supplied by the settlement layer and are
// not part of the encoding.
func DecodePath(inputToken common.Address, encodedPath uint64, outputToken common.Address) (*DecodedPath, error) {
	percentage1, splitPath1, err := DecodeSplitPath(inputToken, encodedPath&splitPathMask, outputToken)
	if err != nil {
		return nil, err
	}
	percentage2, splitPath2, err := DecodeSplitPath(inputToken, (encodedPath>>SplitPathBitLength)&splitPathMask, outputToken)
	if err != nil {
		return nil, err
	}
	if percentage1+percentage2 != 100 {
		return nil, ErrInvalidPercentageAmounts
	}

	return &DecodedPath{
		Percentage1: percentage1,
		SplitPath1:  splitPath1,
		Percentage2: percentage2,
		SplitPath2:  splitPath2,
		MinPrice:    DecodeMinPrice(encodedPath >> SplitPathsBitLength),
	}, nil
}

// DecodeSplitPath unpacks a single 19 bit split path field into its
// percentage and packed router path. An unused branch (percentage 0) still
// decodes its fee and token fields.
func DecodeSplitPath(inputToken common.Address, encodedSplitPath uint64, outputToken common.Address) (uint64, []byte, error) {
	fee1 := (encodedSplitPath >> 10) & feeMask
	token1 := (encodedSplitPath >> 7) & tokenMask
	fee2 := (encodedSplitPath >> 5) & feeMask
	token2 := (encodedSplitPath >> 2) & tokenMask
	fee3 := encodedSplitPath & feeMask
	percentage := encodedSplitPath >> percentageShift

	path := bytes.Buffer{}
	path.Write(inputToken.Bytes())

	switch {
	case token1 == 0 && token2 == 0:
		if err := writeFeeTier(&path, fee3); err != nil {
			return 0, nil, err
		}
	case token2 == 0:
		if err := writeHop(&path, fee1, token1); err != nil {
			return 0, nil, err
		}
		if err := writeFeeTier(&path, fee3); err != nil {
			return 0, nil, err
		}
	case token1 == 0:
		if err := writeHop(&path, fee2, token2); err != nil {
			return 0, nil, err
		}
		if err := writeFeeTier(&path, fee3); err != nil {
			return 0, nil, err
		}
	default:
		if err := writeHop(&path, fee1, token1); err != nil {
			return 0, nil, err
		}
		if err := writeHop(&path, fee2, token2); err != nil {
			return 0, nil, err
		}
		if err := writeFeeTier(&path, fee3); err != nil {
			return 0, nil, err
		}
	}
	path.Write(outputToken.Bytes())

	return percentage, path.Bytes(), nil
}

// DecodeMinPrice expands the packed (significand, exponent) pair. Overflow
// is not a concern, the significand is at most 2^21-1 and the exponent at
// most 31.
func DecodeMinPrice(encodedMinPrice uint64) *big.Int {
	price := new(big.Int).SetUint64(encodedMinPrice >> ExponentBitLength)
	exponent := new(big.Int).SetUint64(encodedMinPrice & exponentMask)
	return price.Mul(price, new(big.Int).Exp(big.NewInt(10), exponent, nil))
}

// writeFeeTier appends a fee tier as a big endian uint24.
func writeFeeTier(path *bytes.Buffer, selector uint64) error {
	tier, err := FeeTier(selector)
	if err != nil {
		return err
	}
	path.Write([]byte{byte(tier >> 16), byte(tier >> 8), byte(tier)})
	return nil
}

func writeHop(path *bytes.Buffer, feeSelector, tokenSelector uint64) error {
	if err := writeFeeTier(path, feeSelector); err != nil {
		return err
	}
	token, err := MiddleToken(tokenSelector)
	if err != nil {
		return err
	}
	path.Write(token.Bytes())
	return nil
}
