// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package bridges

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Interaction is a single defi interaction the rollup processor routes to a
// bridge.
type Interaction struct {
	Nonce       uint64
	InputAsset  common.Address
	OutputAsset common.Address
	InputValue  *big.Int
	// AuxData carries bridge specific configuration. The swap bridge packs
	// the whole trade route and min price into it.
	AuxData uint64
}

// Call is prepared calldata against an external protocol contract.
type Call struct {
	To   common.Address
	Data []byte
}

// Adapter converts rollup interactions into external protocol calls.
type Adapter interface {
	Convert(ctx context.Context, interaction Interaction) ([]Call, error)
}
