// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/YtzBeno/aztec-connect-bridges/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestRunConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TearDownTest() {
	os.Unsetenv("AZC_HARNESS_ENDPOINT")
	os.Unsetenv("AZC_HARNESS_LOGLEVEL")
	os.Unsetenv("AZC_HARNESS_HEALTHPORT")
	os.Unsetenv("AZC_HARNESS_BLOCKINTERVAL")
	os.Unsetenv("AZC_HARNESS_ROLLUPPROCESSOR")
	os.Unsetenv("AZC_BRG_1")
	os.Unsetenv("AZC_BRG_2")
}

func (s *ConfigTestSuite) TestGetConfigFromENV() {
	os.Setenv("AZC_HARNESS_ENDPOINT", "ws://localhost:8546")
	os.Setenv("AZC_HARNESS_LOGLEVEL", "debug")
	os.Setenv("AZC_HARNESS_HEALTHPORT", "9002")
	os.Setenv("AZC_HARNESS_BLOCKINTERVAL", "30")
	os.Setenv("AZC_BRG_1", `{"type": "swap", "name": "uniswap"}`)

	cfg, err := config.GetConfigFromENV(&config.Config{})

	s.Nil(err)
	s.Equal("ws://localhost:8546", cfg.HarnessConfig.Endpoint)
	s.Equal(zerolog.DebugLevel, cfg.HarnessConfig.LogLevel)
	s.Equal(uint16(9002), cfg.HarnessConfig.HealthPort)
	s.Equal(30*time.Second, cfg.HarnessConfig.BlockInterval)
	s.Equal(common.HexToAddress("0xFF1F2B4ADb9dF6FC8eAFa8a802AA0aCf2111f290"), cfg.HarnessConfig.RollupProcessor)
	s.Equal("./lvldbdata", cfg.HarnessConfig.Blockstore)
	s.Len(cfg.BridgeConfigs, 1)
	s.Equal("swap", cfg.BridgeConfigs[0]["type"])
	s.Equal("uniswap", cfg.BridgeConfigs[0]["name"])
}

func (s *ConfigTestSuite) TestGetConfigFromENVMissingEndpoint() {
	os.Setenv("AZC_HARNESS_LOGLEVEL", "debug")

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
}

func (s *ConfigTestSuite) TestGetConfigFromENVInvalidLogLevel() {
	os.Setenv("AZC_HARNESS_ENDPOINT", "ws://localhost:8546")
	os.Setenv("AZC_HARNESS_LOGLEVEL", "loud")

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
}

func (s *ConfigTestSuite) TestGetConfigFromENVMissingBridgeType() {
	os.Setenv("AZC_HARNESS_ENDPOINT", "ws://localhost:8546")
	os.Setenv("AZC_BRG_1", `{"name": "uniswap"}`)

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
}

func (s *ConfigTestSuite) TestGetConfigFromFile() {
	path := s.T().TempDir() + "/config.json"
	raw := `{
		"harness": {
			"endpoint": "ws://localhost:8546",
			"rollupProcessor": "0xFF1F2B4ADb9dF6FC8eAFa8a802AA0aCf2111f290"
		},
		"bridges": [
			{"type": "swap", "name": "uniswap", "tokens": ["0x5f98805A4E8be255a32880FDeC7F6728C6568bA0"]}
		]
	}`
	s.Nil(ioutil.WriteFile(path, []byte(raw), 0644))

	cfg, err := config.GetConfigFromFile(path, &config.Config{})

	s.Nil(err)
	s.Equal("ws://localhost:8546", cfg.HarnessConfig.Endpoint)
	s.Equal(zerolog.InfoLevel, cfg.HarnessConfig.LogLevel)
	s.Equal(uint16(9001), cfg.HarnessConfig.HealthPort)
	s.Equal(15*time.Second, cfg.HarnessConfig.BlockInterval)
	s.Len(cfg.BridgeConfigs, 1)
	s.Equal("swap", cfg.BridgeConfigs[0]["type"])
}

func (s *ConfigTestSuite) TestGetConfigFromFileMissing() {
	_, err := config.GetConfigFromFile("/nonexistent/config.json", &config.Config{})

	s.NotNil(err)
}

func (s *ConfigTestSuite) TestSharedConfigMergedIntoENVConfig() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bridges": [{"router": "0xE592427A0AEce92De3Edee1F18E0157C05861564"}]}`)
	}))
	defer server.Close()

	os.Setenv("AZC_HARNESS_ENDPOINT", "ws://localhost:8546")
	os.Setenv("AZC_BRG_1", `{"type": "swap", "name": "uniswap"}`)

	cfg, err := config.GetSharedConfigFromNetwork(server.URL, &config.Config{})
	s.Nil(err)
	cfg, err = config.GetConfigFromENV(cfg)
	s.Nil(err)

	s.Len(cfg.BridgeConfigs, 1)
	s.Equal("swap", cfg.BridgeConfigs[0]["type"])
	s.Equal("uniswap", cfg.BridgeConfigs[0]["name"])
	s.Equal("0xE592427A0AEce92De3Edee1F18E0157C05861564", cfg.BridgeConfigs[0]["router"])
}
