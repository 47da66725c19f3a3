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
	shareDeterministic bool
	shareSession       string
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share <num-shares> <threshold> <phrase>",
	Short: "Split a mnemonic phrase into threshold shares",
	Long: `Splits the given phrase into n shares such that at least t shares are
required to recover it. With --deterministic, re-running the command for
the same phrase and threshold yields the same set of shares; the optional
--session string identifies a particular sharing instance, and shares from
different sessions are incompatible.

Every share is printed in the form "{index}: {phrase}" together with its
SHA-256 commitment for out-of-band verification.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		numShares, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid value %q for num-shares (a value from 1 to 255 is required)", args[0])
		}
		threshold, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q for threshold (a value from 1 to 255 is required)", args[1])
		}
		if shareSession != "" && !shareDeterministic {
			return fmt.Errorf("the --session argument requires the --deterministic flag")
		}

		printer := getPrinter()
		printer.PrintInfo("Generating n=%d shares with recovery threshold t=%d.", numShares, threshold)

		shares, err := getToolkit().Share(args[2], toolkit.ShareOptions{
			Shares:        numShares,
			Threshold:     threshold,
			Deterministic: shareDeterministic,
			Session:       shareSession,
		})
		if err != nil {
			return err
		}

		if getConfig().OutputFormat == string(OutputFormatJSON) {
			return printer.PrintResult(shares)
		}
		for _, share := range shares {
			printer.PrintPhrase(share.Share)
		}
		return nil
	},
}

func init() {
	shareCmd.Flags().BoolVar(&shareDeterministic, "deterministic", false,
		"generate the shares deterministically")
	shareCmd.Flags().StringVar(&shareSession, "session", "",
		"an arbitrary string identifying a particular sharing instance")
}
