// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package rollup

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	DefiBridgeProcessedSig      EventSig = "DefiBridgeProcessed(uint256,uint256,uint256,uint256,uint256,bool,bytes)"
	AsyncDefiBridgeProcessedSig EventSig = "AsyncDefiBridgeProcessed(uint256,uint256,uint256)"
)

// DefiBridgeProcessed is emitted by the rollup processor when a bridge
// interaction settles.
type DefiBridgeProcessed struct {
	// BridgeCallData identifies the bridge and asset pair, its low 32 bits
	// address the bridge contract
	BridgeCallData    *big.Int
	Nonce             *big.Int
	TotalInputValue   *big.Int
	TotalOutputValueA *big.Int
	TotalOutputValueB *big.Int
	Result            bool
	ErrorReason       []byte
}

// BridgeID extracts the bridge address id from the call data word.
func (e *DefiBridgeProcessed) BridgeID() uint64 {
	return new(big.Int).And(e.BridgeCallData, big.NewInt(0xFFFFFFFF)).Uint64()
}
