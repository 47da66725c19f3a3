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

var (
	recoverThreshold        int
	recoverNoThresholdCheck bool
)

// recoverCmd represents the recover command
var recoverCmd = &cobra.Command{
	Use:   "recover <share>...",
	Short: "Recover a mnemonic phrase from threshold shares",
	Long: `Recovers a previously shared phrase from a set of at least t shares. Each
share is specified as "{index}: {word 1} {word 2} ...".

Pass the sharing threshold with --threshold so recovery can refuse to run
with too few shares. With fewer shares than the original threshold the
interpolation still produces a value, but a meaningless one; for that
reason running without --threshold requires --no-threshold-check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := getPrinter()
		printer.PrintInfo("Recovering from %d share(s)...", len(args))

		phrase, err := getToolkit().Recover(args, toolkit.RecoverOptions{
			Threshold:          recoverThreshold,
			SkipThresholdCheck: recoverNoThresholdCheck,
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
	recoverCmd.Flags().IntVarP(&recoverThreshold, "threshold", "t", 0,
		"the threshold the shares were created with")
	recoverCmd.Flags().BoolVar(&recoverNoThresholdCheck, "no-threshold-check", false,
		"reconstruct without verifying the share count against a threshold")
}
