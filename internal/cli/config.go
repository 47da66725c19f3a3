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
	"github.com/spf13/viper"
)

// Config holds global CLI configuration
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// OutputFormat controls output formatting (text, json)
	OutputFormat string

	// Verbose enables verbose logging
	Verbose bool

	// Quiet suppresses all non-essential output
	Quiet bool

	// DefaultWords is the phrase length generate uses when none is given
	DefaultWords int
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: "text",
		DefaultWords: 24,
	}
}

// Load merges settings from the configuration file, if one exists. Flags
// already parsed by cobra take precedence over file values.
func (c *Config) Load() {
	v := viper.New()
	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
	} else {
		v.SetConfigName(".seedshare")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}
	v.SetDefault("output", c.OutputFormat)
	v.SetDefault("verbose", c.Verbose)
	v.SetDefault("quiet", c.Quiet)
	v.SetDefault("words", c.DefaultWords)

	// A missing config file is not an error; the defaults apply.
	if err := v.ReadInConfig(); err != nil {
		return
	}
	if c.OutputFormat == "text" {
		c.OutputFormat = v.GetString("output")
	}
	if !c.Verbose {
		c.Verbose = v.GetBool("verbose")
	}
	if !c.Quiet {
		c.Quiet = v.GetBool("quiet")
	}
	c.DefaultWords = v.GetInt("words")
}
