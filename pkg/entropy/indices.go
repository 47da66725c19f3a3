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

package entropy

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FromWordIndices converts a sequence of wordlist indices (0..2047) into a
// canonical byte string. Each index contributes 11 bits, concatenated
// big-endian.
func FromWordIndices(indices []int) ([]byte, error) {
	value := new(big.Int)
	word := new(big.Int)
	for _, index := range indices {
		if index < 0 || index > 2047 {
			return nil, fmt.Errorf("%w: word index %d out of range 0..2047", ErrInvalidInput, index)
		}
		word.SetInt64(int64(index))
		value.Lsh(value, 11)
		value.Or(value, word)
	}
	return canonical(value, 11*len(indices))
}

// ParseIndices splits an input string on whitespace and separators and
// parses each token as a wordlist index in 0..2047.
func ParseIndices(input string) ([]int, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ':' || r == '-'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no word indices supplied", ErrInvalidInput)
	}
	indices := make([]int, len(tokens))
	for i, token := range tokens {
		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a word index", ErrInvalidInput, token)
		}
		if value < 0 || value > 2047 {
			return nil, fmt.Errorf("%w: word index %d out of range 0..2047", ErrInvalidInput, value)
		}
		indices[i] = value
	}
	return indices, nil
}
