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
	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-seedshare/pkg/toolkit"
)

var encodeFormat string

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <input>",
	Short: "Convert entropy input into a mnemonic phrase",
	Long: `Converts the given input (hex string, dice rolls, playing cards, or word
indices) into the corresponding mnemonic phrase. Sequences are passed as a
single argument; whitespace, commas, colons, and dashes separate tokens.

CAUTION: encode is an advanced command; using it with poor-quality entropy
produces an insecure phrase.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := getPrinter()
		printer.PrintInfo("Converting %s input to a mnemonic phrase.", encodeFormat)

		phrase, err := getToolkit().Encode(args[0], toolkit.InputFormat(encodeFormat))
		if err != nil {
			return err
		}

		if getConfig().OutputFormat == string(OutputFormatJSON) {
			return printer.PrintResult(map[string]interface{}{"phrase": phrase})
		}
		printer.PrintPhrase(phrase)
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeFormat, "format", "f", "hex",
		"input format (hex, dice, cards, indices)")
}
