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
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-seedshare/pkg/logging"
	"github.com/jeremyhahn/go-seedshare/pkg/toolkit"
)

var (
	// Global configuration
	globalConfig *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "seedshare",
	Short: "seedshare CLI - Split and recover mnemonic phrases with threshold secret sharing",
	Long: `seedshare provides a set of commands to generate new mnemonic phrases,
split and recover phrases using Shamir Secret Sharing over GF(256), and
convert between entropy formats (hex, dice rolls, playing cards, word
indices) and mnemonic phrases.

Each generated share is printed together with its SHA-256 commitment so
share holders can verify their share out-of-band with nothing more than
an unmodified sha256sum utility.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize global config
	globalConfig = NewConfig()

	cobra.OnInitialize(func() {
		globalConfig.Load()
	})

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&globalConfig.ConfigFile, "config", "",
		"config file (default is $HOME/.seedshare.yaml)")
	rootCmd.PersistentFlags().StringVarP(&globalConfig.OutputFormat, "output", "o", "text",
		"output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&globalConfig.Verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalConfig.Quiet, "quiet", "q", false,
		"suppress all non-essential output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

// getConfig returns the global configuration
func getConfig() *Config {
	return globalConfig
}

// getToolkit builds a toolkit from the global configuration
func getToolkit() *toolkit.Toolkit {
	return toolkit.New(&toolkit.Config{
		Logger: logging.NewLogger(globalConfig.Verbose),
	})
}

// getPrinter builds a printer for command output
func getPrinter() *Printer {
	return NewPrinter(globalConfig.OutputFormat, globalConfig.Quiet, os.Stdout)
}
