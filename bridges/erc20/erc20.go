// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package erc20

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/YtzBeno/aztec-connect-bridges/evmclient"
)

const erc20ABIRaw = `[
	{"inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// Contract is a thin read/encode wrapper around an ERC20 token.
type Contract struct {
	address common.Address
	abi     abi.ABI
	caller  evmclient.ContractCaller
}

func NewContract(address common.Address, caller evmclient.ContractCaller) *Contract {
	a, _ := abi.JSON(strings.NewReader(erc20ABIRaw))
	return &Contract{
		address: address,
		abi:     a,
		caller:  caller,
	}
}

func (c *Contract) Address() common.Address {
	return c.address
}

// ApproveCalldata encodes an approve call without submitting it.
func (c *Contract) ApproveCalldata(spender common.Address, amount *big.Int) ([]byte, error) {
	return c.abi.Pack("approve", spender, amount)
}

func (c *Contract) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	data, err := c.abi.Pack("allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	res, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(res), nil
}

func (c *Contract) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := c.abi.Pack("balanceOf", account)
	if err != nil {
		return nil, err
	}
	res, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(res), nil
}
