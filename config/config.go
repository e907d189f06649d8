// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"
)

type Config struct {
	HarnessConfig HarnessConfig
	BridgeConfigs []map[string]interface{}
}

type RawConfig struct {
	HarnessConfig RawHarnessConfig         `mapstructure:"harness" json:"harness"`
	BridgeConfigs []map[string]interface{} `mapstructure:"bridges" json:"bridges"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of HarnessConfig are expected to be defined as separate Env
// variables where Env variable name reflects properties position in
// structure. Each Env variable needs to be prefixed with AZC.
//
// For example, if you want to set Config.HarnessConfig.HealthPort this would
// translate to Env variable named AZC_HARNESS_HEALTHPORT.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches shared bridge configuration from URL
// and parses it.
func GetSharedConfigFromNetwork(url string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return &Config{}, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return &Config{}, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return &Config{}, err
	}

	config.BridgeConfigs = rawConfig.BridgeConfigs
	return config, err
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	harnessConfig, err := NewHarnessConfig(rawConfig.HarnessConfig)
	if err != nil {
		return config, err
	}

	bridgeConfigs := make([]map[string]interface{}, 0)
	for i, bridge := range rawConfig.BridgeConfigs {
		if i < len(config.BridgeConfigs) {
			err := mergo.Merge(&bridge, config.BridgeConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if bridge["type"] == "" || bridge["type"] == nil {
			return config, fmt.Errorf("bridge 'type' must be provided for every configured bridge")
		}
		bridgeConfigs = append(bridgeConfigs, bridge)
	}

	config.BridgeConfigs = bridgeConfigs
	config.HarnessConfig = harnessConfig
	return config, nil
}
