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

package toolkit

import (
	"encoding/hex"
	"fmt"

	"github.com/jeremyhahn/go-seedshare/pkg/entropy"
	"github.com/jeremyhahn/go-seedshare/pkg/mnemonic"
)

// InputFormat selects how encode input or decode output is interpreted.
type InputFormat string

const (
	// FormatHex is a hexadecimal string, four bits per digit.
	FormatHex InputFormat = "hex"

	// FormatDice is a sequence of dice rolls, digits 1-6.
	FormatDice InputFormat = "dice"

	// FormatCards is a sequence of playing card tokens drawn without
	// replacement, e.g. "AC 7H TS".
	FormatCards InputFormat = "cards"

	// FormatIndices is a sequence of wordlist indices in 0..2047.
	FormatIndices InputFormat = "indices"
)

// Encode converts user input in the given format into a mnemonic phrase.
//
// Hex, dice, and card inputs pass through the entropy encoders and receive
// a checksum; a sequence of word indices maps directly onto wordlist
// entries, index for word, with no checksum computed.
func (t *Toolkit) Encode(input string, format InputFormat) (string, error) {
	switch format {
	case FormatHex:
		data, err := entropy.FromHex(input)
		if err != nil {
			return "", err
		}
		return mnemonic.EncodeBytes(data)
	case FormatDice:
		data, err := entropy.FromDice(input)
		if err != nil {
			return "", err
		}
		return mnemonic.EncodeBytes(data)
	case FormatCards:
		data, err := entropy.FromCards(input)
		if err != nil {
			return "", err
		}
		return mnemonic.EncodeBytes(data)
	case FormatIndices:
		indices, err := entropy.ParseIndices(input)
		if err != nil {
			return "", err
		}
		return mnemonic.IndicesToPhrase(indices)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeHex converts a valid phrase into its entropy bytes as a lowercase
// hexadecimal string.
func (t *Toolkit) DecodeHex(phrase string) (string, error) {
	data, err := mnemonic.DecodePhrase(phrase)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

// DecodeIndices converts a valid phrase into its 0-based wordlist indices.
func (t *Toolkit) DecodeIndices(phrase string) ([]int, error) {
	return mnemonic.PhraseToIndices(phrase)
}
