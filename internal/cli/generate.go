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

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-seedshare/pkg/toolkit"
)

var (
	generateEntropy       string
	generateDeterministic bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [num-words]",
	Short: "Generate a new mnemonic phrase",
	Long: `Generates a new mnemonic phrase of the given length (12, 15, 18, 21, or
24 words, default 24) using the system's cryptographically secure random
number generator. Additional entropy may be mixed in with --entropy. The
--deterministic flag bypasses the system entropy source and derives the
phrase from the user-provided entropy alone.

CAUTION: using --deterministic with poor-quality entropy produces an
insecure phrase.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words := getConfig().DefaultWords
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q for num-words (choose from 12, 15, 18, 21, 24)", args[0])
			}
			words = parsed
		}

		printer := getPrinter()
		if generateEntropy == "" {
			printer.PrintInfo("Generating a %d-word phrase using the system's CSPRNG.", words)
		} else if generateDeterministic {
			printer.PrintInfo("Deterministically deriving a %d-word phrase from the user-supplied entropy.", words)
			printer.PrintInfo("CAUTION: the security of the phrase depends entirely on the quality of the provided entropy.")
		} else {
			printer.PrintInfo("Generating a %d-word phrase using the system's CSPRNG combined with the user-supplied entropy.", words)
		}

		phrase, err := getToolkit().Generate(toolkit.GenerateOptions{
			Words:         words,
			Entropy:       generateEntropy,
			Deterministic: generateDeterministic,
		})
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
	generateCmd.Flags().StringVar(&generateEntropy, "entropy", "",
		"an arbitrary string used as additional entropy source")
	generateCmd.Flags().BoolVar(&generateDeterministic, "deterministic", false,
		"derive the phrase from the user-provided entropy only")
}
