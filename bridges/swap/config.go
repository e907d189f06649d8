// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package swap

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
)

type SwapConfig struct {
	Name   string
	Router common.Address
	Oracle common.Address
	Tokens []common.Address
}

type RawSwapConfig struct {
	Name   string   `mapstructure:"name"`
	Type   string   `mapstructure:"type"`
	Router string   `mapstructure:"router" default:"0xE592427A0AEce92De3Edee1F18E0157C05861564"`
	Oracle string   `mapstructure:"oracle"`
	Tokens []string `mapstructure:"tokens"`
}

func (c *RawSwapConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("required field bridge.Name empty for swap bridge")
	}
	if !common.IsHexAddress(c.Router) {
		return fmt.Errorf("invalid router address %s for bridge %s", c.Router, c.Name)
	}
	if c.Oracle != "" && !common.IsHexAddress(c.Oracle) {
		return fmt.Errorf("invalid oracle address %s for bridge %s", c.Oracle, c.Name)
	}
	for _, token := range c.Tokens {
		if !common.IsHexAddress(token) {
			return fmt.Errorf("invalid token address %s for bridge %s", token, c.Name)
		}
	}
	return nil
}

// NewSwapConfig decodes and validates a swap bridge config from its raw
// bridge config map.
func NewSwapConfig(bridgeConfig map[string]interface{}) (*SwapConfig, error) {
	var c RawSwapConfig
	err := mapstructure.Decode(bridgeConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &SwapConfig{
		Name:   c.Name,
		Router: common.HexToAddress(c.Router),
	}
	if c.Oracle != "" {
		config.Oracle = common.HexToAddress(c.Oracle)
	}
	for _, token := range c.Tokens {
		config.Tokens = append(config.Tokens, common.HexToAddress(token))
	}
	return config, nil
}
