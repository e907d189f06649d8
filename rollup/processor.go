// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package rollup

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/YtzBeno/aztec-connect-bridges/bridges"
)

const processorABIRaw = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"encodedBridgeCallData","type":"uint256"},
		{"indexed":true,"internalType":"uint256","name":"nonce","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"totalInputValue","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"totalOutputValueA","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"totalOutputValueB","type":"uint256"},
		{"indexed":false,"internalType":"bool","name":"result","type":"bool"},
		{"indexed":false,"internalType":"bytes","name":"errorReason","type":"bytes"}],
	"name":"DefiBridgeProcessed","type":"event"},
	{"inputs":[
		{"internalType":"address","name":"bridgeAddress","type":"address"},
		{"internalType":"address","name":"inputAsset","type":"address"},
		{"internalType":"address","name":"outputAsset","type":"address"},
		{"internalType":"uint256","name":"totalInputValue","type":"uint256"},
		{"internalType":"uint256","name":"interactionNonce","type":"uint256"},
		{"internalType":"uint64","name":"auxData","type":"uint64"}],
	"name":"convert","outputs":[
		{"internalType":"uint256","name":"outputValueA","type":"uint256"},
		{"internalType":"uint256","name":"outputValueB","type":"uint256"},
		{"internalType":"bool","name":"isAsync","type":"bool"}],
	"stateMutability":"nonpayable","type":"function"}
]`

var ErrMalformedLog = errors.New("malformed DefiBridgeProcessed log: missing topics")

type ChainClient interface {
	FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock, endBlock *big.Int) ([]ethTypes.Log, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Processor wires bridge adapters to the rollup settlement contract. It
// builds convert calldata and reads back settlement events.
type Processor struct {
	address common.Address
	abi     abi.ABI
	client  ChainClient
}

func NewProcessor(address common.Address, client ChainClient) *Processor {
	a, _ := abi.JSON(strings.NewReader(processorABIRaw))
	return &Processor{
		address: address,
		abi:     a,
		client:  client,
	}
}

func (p *Processor) Address() common.Address {
	return p.address
}

// ConvertCalldata encodes a convert call routing the interaction to the
// given bridge.
func (p *Processor) ConvertCalldata(bridge common.Address, interaction bridges.Interaction) ([]byte, error) {
	return p.abi.Pack(
		"convert",
		bridge,
		interaction.InputAsset,
		interaction.OutputAsset,
		interaction.InputValue,
		new(big.Int).SetUint64(interaction.Nonce),
		interaction.AuxData,
	)
}

// FetchDefiBridgeProcessed returns settlement events inside the block range.
func (p *Processor) FetchDefiBridgeProcessed(ctx context.Context, startBlock, endBlock *big.Int) ([]*DefiBridgeProcessed, error) {
	logs, err := p.client.FetchEventLogs(ctx, p.address, string(DefiBridgeProcessedSig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}

	events := make([]*DefiBridgeProcessed, 0)
	for _, l := range logs {
		ev, err := p.ParseDefiBridgeProcessed(l)
		if err != nil {
			log.Error().Msgf("failed unpacking DefiBridgeProcessed event log: %v", err)
			continue
		}
		log.Debug().Msgf("found DefiBridgeProcessed log in block: %d, TxHash: %s, nonce: %s", l.BlockNumber, l.TxHash, ev.Nonce)
		events = append(events, ev)
	}
	return events, nil
}

func (p *Processor) ParseDefiBridgeProcessed(l ethTypes.Log) (*DefiBridgeProcessed, error) {
	if len(l.Topics) < 3 {
		return nil, ErrMalformedLog
	}

	var ev DefiBridgeProcessed
	err := p.abi.UnpackIntoInterface(&ev, "DefiBridgeProcessed", l.Data)
	if err != nil {
		return nil, err
	}
	ev.BridgeCallData = new(big.Int).SetBytes(l.Topics[1].Bytes())
	ev.Nonce = new(big.Int).SetBytes(l.Topics[2].Bytes())
	return &ev, nil
}
