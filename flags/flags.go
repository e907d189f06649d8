// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	ConfigURLFlagName  = "config-url"
	BlockstoreFlagName = "blockstore"
)

// BindFlags binds the persistent harness flags and wires them into viper.
func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "config.json", "path to the configuration file or 'env' to load from environment variables")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(ConfigURLFlagName, "", "URL of the shared bridge configuration")
	_ = viper.BindPFlag(ConfigURLFlagName, cmd.PersistentFlags().Lookup(ConfigURLFlagName))

	cmd.PersistentFlags().String(BlockstoreFlagName, "", "overrides the blockstore path from the configuration")
	_ = viper.BindPFlag(BlockstoreFlagName, cmd.PersistentFlags().Lookup(BlockstoreFlagName))
}
