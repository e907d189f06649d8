// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package encoding

// SplitPath holds one branch of a route in raw selector form, the shape the
// off-chain router works with before packing.
type SplitPath struct {
	Percentage uint64
	Fee1       uint64
	Token1     uint64
	Fee2       uint64
	Token2     uint64
	Fee3       uint64
}

// Encode packs the branch into its 19 bit field. Selectors are only checked
// for field width here, semantic validity is enforced on decode.
func (p SplitPath) Encode() (uint64, error) {
	if p.Percentage > 100 ||
		p.Fee1 > feeMask || p.Fee2 > feeMask || p.Fee3 > feeMask ||
		p.Token1 > tokenMask || p.Token2 > tokenMask {
		return 0, ErrValueOutOfRange
	}
	return p.Percentage<<percentageShift |
		p.Fee1<<10 | p.Token1<<7 | p.Fee2<<5 | p.Token2<<2 | p.Fee3, nil
}

// EncodeMinPrice packs a decimal float into the 26 bit price field.
func EncodeMinPrice(significand, exponent uint64) (uint64, error) {
	if significand > MaxSignificand || exponent > exponentMask {
		return 0, ErrValueOutOfRange
	}
	return significand<<ExponentBitLength | exponent, nil
}

// EncodePath packs two branches and a min price into a 64 bit word.
func EncodePath(splitPath1, splitPath2 SplitPath, significand, exponent uint64) (uint64, error) {
	field1, err := splitPath1.Encode()
	if err != nil {
		return 0, err
	}
	field2, err := splitPath2.Encode()
	if err != nil {
		return 0, err
	}
	price, err := EncodeMinPrice(significand, exponent)
	if err != nil {
		return 0, err
	}
	return price<<SplitPathsBitLength | field2<<SplitPathBitLength | field1, nil
}
