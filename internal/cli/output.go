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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	quiet  bool
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, quiet bool, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		quiet:  quiet,
		writer: writer,
	}
}

// PrintInfo prints an informational line unless quiet mode is enabled or
// the output format is JSON.
func (p *Printer) PrintInfo(format string, args ...interface{}) {
	if p.quiet || p.format == OutputFormatJSON {
		return
	}
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// PrintPhrase prints a phrase (or share string) together with its SHA-256
// fingerprint. In quiet mode only the quoted phrase is printed.
func (p *Printer) PrintPhrase(phrase string) {
	if p.quiet {
		fmt.Fprintf(p.writer, "%q\n", phrase)
		return
	}
	digest := sha256.Sum256([]byte(phrase))
	fmt.Fprintln(p.writer)
	fmt.Fprintf(p.writer, "%q\n", phrase)
	fmt.Fprintf(p.writer, "(SHA2-256 hash: %s)\n", hex.EncodeToString(digest[:]))
}

// PrintResult prints the final command result, either as plain quoted lines
// or as a JSON document.
func (p *Printer) PrintResult(result interface{}) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(result)
	}
	switch v := result.(type) {
	case string:
		fmt.Fprintf(p.writer, "%q\n", v)
	case []string:
		for _, line := range v {
			fmt.Fprintf(p.writer, "%q\n", line)
		}
	default:
		fmt.Fprintf(p.writer, "%v\n", v)
	}
	return nil
}

// printJSON marshals a value as indented JSON
func (p *Printer) printJSON(v interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
