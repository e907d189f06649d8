// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/YtzBeno/aztec-connect-bridges/flags"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}
)

func init() {
	flags.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(runCMD, decodeCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
