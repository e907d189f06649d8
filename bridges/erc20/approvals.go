// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package erc20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/rs/zerolog/log"

	"github.com/YtzBeno/aztec-connect-bridges/evmclient"
)

// Approval is an approve call that still has to be made before a spender can
// move the token on behalf of the owner.
type Approval struct {
	Token   common.Address
	Spender common.Address
	Data    []byte
}

// MissingApprovals checks the allowance of every token/spender pair and
// returns prepared unlimited approve calldata for the pairs with a zero
// allowance.
func MissingApprovals(ctx context.Context, caller evmclient.ContractCaller, owner common.Address, tokens, spenders []common.Address) ([]Approval, error) {
	approvals := make([]Approval, 0)
	for _, token := range tokens {
		contract := NewContract(token, caller)
		for _, spender := range spenders {
			allowance, err := contract.Allowance(ctx, owner, spender)
			if err != nil {
				return nil, err
			}
			if allowance.Sign() != 0 {
				continue
			}

			data, err := contract.ApproveCalldata(spender, math.MaxBig256)
			if err != nil {
				return nil, err
			}
			log.Debug().Msgf("token %s has no allowance for spender %s", token, spender)
			approvals = append(approvals, Approval{Token: token, Spender: spender, Data: data})
		}
	}
	return approvals, nil
}
