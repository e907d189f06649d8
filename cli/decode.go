// The Licensed Work is (c) 2022 Aztec
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/YtzBeno/aztec-connect-bridges/bridges/swap/encoding"
)

var (
	encodedPathFlag string
	inputTokenFlag  string
	outputTokenFlag string

	decodeCMD = &cobra.Command{
		Use:   "decode",
		Short: "Decode an encoded swap path",
		Long:  "Decode a 64 bit encoded swap path word into its split routes and min price",
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := strconv.ParseUint(strings.TrimPrefix(encodedPathFlag, "0x"), 16, 64)
			if err != nil {
				return fmt.Errorf("invalid encoded path %s: %v", encodedPathFlag, err)
			}
			if !common.IsHexAddress(inputTokenFlag) {
				return fmt.Errorf("invalid input token address %s", inputTokenFlag)
			}
			if !common.IsHexAddress(outputTokenFlag) {
				return fmt.Errorf("invalid output token address %s", outputTokenFlag)
			}

			decoded, err := encoding.DecodePath(
				common.HexToAddress(inputTokenFlag),
				word,
				common.HexToAddress(outputTokenFlag),
			)
			if err != nil {
				return err
			}

			fmt.Printf("percentage1: %d\n", decoded.Percentage1)
			fmt.Printf("splitPath1:  0x%x\n", decoded.SplitPath1)
			fmt.Printf("percentage2: %d\n", decoded.Percentage2)
			fmt.Printf("splitPath2:  0x%x\n", decoded.SplitPath2)
			fmt.Printf("minPrice:    %s\n", decoded.MinPrice)
			return nil
		},
	}
)

func init() {
	decodeCMD.Flags().StringVar(&encodedPathFlag, "path", "", "hex encoded 64 bit path word")
	decodeCMD.Flags().StringVar(&inputTokenFlag, "input", "", "input token address")
	decodeCMD.Flags().StringVar(&outputTokenFlag, "output", "", "output token address")
	_ = decodeCMD.MarkFlagRequired("path")
	_ = decodeCMD.MarkFlagRequired("input")
	_ = decodeCMD.MarkFlagRequired("output")
}
