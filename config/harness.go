// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

type HarnessConfig struct {
	LogLevel        zerolog.Level
	LogFile         string
	HealthPort      uint16
	Endpoint        string
	RollupProcessor common.Address
	Blockstore      string
	BlockInterval   time.Duration
}

type RawHarnessConfig struct {
	LogLevel        string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	LogFile         string `mapstructure:"logFile" json:"logFile" default:"out.log"`
	HealthPort      uint16 `mapstructure:"healthPort" json:"healthPort,string" default:"9001"`
	Endpoint        string `mapstructure:"endpoint" json:"endpoint"`
	RollupProcessor string `mapstructure:"rollupProcessor" json:"rollupProcessor" default:"0xFF1F2B4ADb9dF6FC8eAFa8a802AA0aCf2111f290"`
	Blockstore      string `mapstructure:"blockstore" json:"blockstore" default:"./lvldbdata"`
	BlockInterval   uint64 `mapstructure:"blockInterval" json:"blockInterval,string" default:"15"`
}

func (c *RawHarnessConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("required field harness.Endpoint empty")
	}
	if !common.IsHexAddress(c.RollupProcessor) {
		return fmt.Errorf("invalid rollup processor address %s", c.RollupProcessor)
	}
	return nil
}

// NewHarnessConfig parses RawHarnessConfig into HarnessConfig
func NewHarnessConfig(rawConfig RawHarnessConfig) (HarnessConfig, error) {
	config := HarnessConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}

	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.HealthPort = rawConfig.HealthPort
	config.Endpoint = rawConfig.Endpoint
	config.RollupProcessor = common.HexToAddress(rawConfig.RollupProcessor)
	config.Blockstore = rawConfig.Blockstore
	config.BlockInterval = time.Duration(rawConfig.BlockInterval) * time.Second
	return config, nil
}
