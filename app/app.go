// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/YtzBeno/aztec-connect-bridges/bridges"
	"github.com/YtzBeno/aztec-connect-bridges/bridges/erc20"
	"github.com/YtzBeno/aztec-connect-bridges/bridges/swap"
	"github.com/YtzBeno/aztec-connect-bridges/config"
	"github.com/YtzBeno/aztec-connect-bridges/evmclient"
	"github.com/YtzBeno/aztec-connect-bridges/flags"
	"github.com/YtzBeno/aztec-connect-bridges/health"
	"github.com/YtzBeno/aztec-connect-bridges/logger"
	"github.com/YtzBeno/aztec-connect-bridges/lvldb"
	"github.com/YtzBeno/aztec-connect-bridges/pricefeed"
	"github.com/YtzBeno/aztec-connect-bridges/rollup"
	"github.com/YtzBeno/aztec-connect-bridges/rollup/store"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logger.ConfigureLogger(configuration.HarnessConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	blockstorePath := configuration.HarnessConfig.Blockstore
	if path := viper.GetString(flags.BlockstoreFlagName); path != "" {
		blockstorePath = path
	}
	db, err := lvldb.NewLvlDB(blockstorePath)
	panicOnError(err)
	defer db.Close()
	interactionStore := store.NewInteractionStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := evmclient.NewClient(ctx, configuration.HarnessConfig.Endpoint)
	panicOnError(err)

	processor := rollup.NewProcessor(configuration.HarnessConfig.RollupProcessor, client)

	adapters := make(map[string]bridges.Adapter)
	for _, bridgeConfig := range configuration.BridgeConfigs {
		switch bridgeConfig["type"] {
		case "swap":
			{
				cfg, err := swap.NewSwapConfig(bridgeConfig)
				panicOnError(err)

				var oracle pricefeed.Oracle
				if cfg.Oracle != (common.Address{}) {
					oracle = pricefeed.NewChainlinkOracle(cfg.Oracle, client)
				}
				adapters[cfg.Name] = swap.NewBridge(cfg.Router, processor.Address(), oracle)
				log.Info().Str("bridge", cfg.Name).Msgf("Registering swap bridge")

				approvals, err := erc20.MissingApprovals(ctx, client, processor.Address(), cfg.Tokens, []common.Address{cfg.Router})
				panicOnError(err)
				for _, approval := range approvals {
					log.Info().
						Str("bridge", cfg.Name).
						Msgf("token %s requires approval for spender %s, calldata 0x%x", approval.Token, approval.Spender, approval.Data)
				}
			}
		default:
			panic("bridge type not recognized")
		}
	}
	log.Info().Msgf("Successfully registered %d bridge adapters", len(adapters))

	startBlock, err := client.BlockNumber(ctx)
	panicOnError(err)

	listener := rollup.NewListener(processor, interactionStore, configuration.HarnessConfig.BlockInterval)
	go listener.Listen(ctx, startBlock)

	go health.StartHealthEndpoint(configuration.HarnessConfig.HealthPort)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sysErr
	log.Info().Msgf("terminating got [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
