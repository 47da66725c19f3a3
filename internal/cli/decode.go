// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-seedshare.
//
// go-seedshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var decodeFormat string

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <phrase>",
	Short: "Convert a mnemonic phrase into hex or word indices",
	Long: `Converts the given mnemonic phrase into a hex string or a sequence of
0-based word indices. The phrase is validated, including its checksum,
before conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := getPrinter()

		switch decodeFormat {
		case "hex":
			printer.PrintInfo("Converting the phrase to a hex string.")
			result, err := getToolkit().DecodeHex(args[0])
			if err != nil {
				return err
			}
			return printer.PrintResult(result)
		case "indices":
			printer.PrintInfo("Converting the phrase to a list of word indices.")
			indices, err := getToolkit().DecodeIndices(args[0])
			if err != nil {
				return err
			}
			if getConfig().OutputFormat == string(OutputFormatJSON) {
				return printer.PrintResult(map[string]interface{}{"indices": indices})
			}
			tokens := make([]string, len(indices))
			for i, index := range indices {
				tokens[i] = strconv.Itoa(index)
			}
			return printer.PrintResult(strings.Join(tokens, ", "))
		default:
			return fmt.Errorf("unknown decode format %q (choose hex or indices)", decodeFormat)
		}
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "hex",
		"output format (hex, indices)")
}
