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

// Package entropy converts user-supplied randomness (hex strings, dice
// rolls, playing cards, word indices) into canonical byte strings of an
// allowed mnemonic entropy size.
//
// Every encoder accumulates its input into an unbiased big integer, derives
// the input's usable bit length, and reduces to the largest allowed size
// (128, 160, 192, 224, or 256 bits) that the input covers. Inputs worth
// fewer than 128 bits are rejected; anything beyond 256 bits is left-trimmed
// so the least-significant 256 bits are kept.
package entropy

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// MinBits is the minimum usable entropy an encoder accepts.
const MinBits = 128

// MaxBits is the entropy cap; longer inputs are left-trimmed.
const MaxBits = 256

// bitLengths are the allowed output sizes, ascending.
var bitLengths = []int{128, 160, 192, 224, 256}

var (
	// ErrInsufficientEntropy is returned when an input derives fewer than
	// MinBits bits
	ErrInsufficientEntropy = errors.New("entropy: insufficient entropy")

	// ErrInvalidInput is returned for malformed hex, dice, card, or index
	// tokens
	ErrInvalidInput = errors.New("entropy: invalid input")
)

// canonical reduces an accumulated value with the given derived bit length
// to the canonical byte string: the largest allowed size the input covers,
// keeping the least-significant bits.
func canonical(value *big.Int, derivedBits int) ([]byte, error) {
	if derivedBits < MinBits {
		return nil, fmt.Errorf("%w: input provides %d bits, at least %d required",
			ErrInsufficientEntropy, derivedBits, MinBits)
	}
	target := 0
	for _, length := range bitLengths {
		if derivedBits >= length {
			target = length
		}
	}

	mask := new(big.Int).Lsh(big.NewInt(1), uint(target))
	mask.Sub(mask, big.NewInt(1))
	trimmed := new(big.Int).And(value, mask)
	return trimmed.FillBytes(make([]byte, target/8)), nil
}

// stripSeparators removes Unicode whitespace and the separators "-", ":",
// and "," from an input string.
func stripSeparators(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == ':' || r == ',' {
			return -1
		}
		return r
	}, input)
}
