package cli

import (
	"github.com/spf13/cobra"

	"github.com/YtzBeno/aztec-connect-bridges/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run bridge adapter harness",
		Long:  "Run bridge adapter harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Run(); err != nil {
				return err
			}
			return nil
		},
	}
)
