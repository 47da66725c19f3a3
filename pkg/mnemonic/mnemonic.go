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

// Package mnemonic implements the bidirectional codec between raw byte
// sequences and BIP39-style mnemonic phrases over the official English
// wordlist.
//
// A phrase of w words (w in {12, 15, 18, 21, 24}) encodes b = 4w/3 bytes of
// entropy plus cs = b/4 checksum bits taken from the leading bits of
// SHA-256(entropy):
//
//	| bytes | words | checksum bits |
//	|  16   |  12   |       4       |
//	|  20   |  15   |       5       |
//	|  24   |  18   |       6       |
//	|  28   |  21   |       7       |
//	|  32   |  24   |       8       |
//
// The package also provides the index-prefixed share string form
// "{index}: {phrase}" used by the secret sharing commands.
package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
)

// wordsForBytes maps an entropy byte count to the number of phrase words.
var wordsForBytes = map[int]int{16: 12, 20: 15, 24: 18, 28: 21, 32: 24}

// bitsForWords maps a phrase word count to the number of entropy bits.
var bitsForWords = map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}

var indexMask = big.NewInt(0x7FF)

// BitLength returns the number of entropy bits encoded by a phrase with the
// given word count.
func BitLength(numWords int) (int, error) {
	bits, ok := bitsForWords[numWords]
	if !ok {
		return 0, fmt.Errorf("%w: phrases have 12, 15, 18, 21, or 24 words, got %d",
			ErrInvalidSize, numWords)
	}
	return bits, nil
}

// EncodeBytes converts a byte sequence of allowed length into a mnemonic
// phrase: lowercase words separated by single spaces.
func EncodeBytes(data []byte) (string, error) {
	numWords, ok := wordsForBytes[len(data)]
	if !ok {
		return "", fmt.Errorf("%w: secrets are 16, 20, 24, 28, or 32 bytes, got %d",
			ErrInvalidSize, len(data))
	}
	checksumBits := uint(len(data) / 4)

	digest := sha256.Sum256(data)
	v := new(big.Int).SetBytes(data)
	v.Lsh(v, checksumBits)
	v.Or(v, big.NewInt(int64(digest[0]>>(8-checksumBits))))

	// Peel 11-bit groups off the right and fill the phrase back to front.
	words := make([]string, numWords)
	index := new(big.Int)
	for i := numWords - 1; i >= 0; i-- {
		index.And(v, indexMask)
		words[i] = wordList[index.Int64()]
		v.Rsh(v, 11)
	}
	return strings.Join(words, " "), nil
}

// DecodePhrase converts a mnemonic phrase back into its byte sequence,
// verifying the embedded checksum. Any run of Unicode whitespace separates
// words and surrounding whitespace is ignored; words are lowercased before
// lookup but must be ASCII.
func DecodePhrase(phrase string) ([]byte, error) {
	words := strings.Fields(phrase)
	numBits, err := BitLength(len(words))
	if err != nil {
		return nil, err
	}
	checksumBits := uint(numBits / 32)

	var unknown []string
	v := new(big.Int)
	for _, word := range words {
		word = strings.ToLower(word)
		index, ok := IndexOf(word)
		if !ok {
			if !contains(unknown, word) {
				unknown = append(unknown, word)
			}
			continue
		}
		v.Lsh(v, 11)
		v.Or(v, big.NewInt(int64(index)))
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrWordNotInList, strings.Join(unknown, ", "))
	}

	claimed := new(big.Int).And(v, big.NewInt(int64(1<<checksumBits)-1)).Uint64()
	v.Rsh(v, checksumBits)
	data := v.FillBytes(make([]byte, numBits/8))

	digest := sha256.Sum256(data)
	if byte(claimed) != digest[0]>>(8-checksumBits) {
		return nil, ErrChecksumMismatch
	}
	return data, nil
}

// PhraseToIndices converts a valid phrase into its 0-based word indices.
// The phrase is fully validated, including its checksum.
func PhraseToIndices(phrase string) ([]int, error) {
	if _, err := DecodePhrase(phrase); err != nil {
		return nil, err
	}
	words := strings.Fields(phrase)
	indices := make([]int, len(words))
	for i, word := range words {
		indices[i], _ = IndexOf(strings.ToLower(word))
	}
	return indices, nil
}

// IndicesToPhrase maps word indices directly onto wordlist entries. No
// checksum is computed or verified; the index sequence determines every word
// including the last. The number of indices must be an allowed phrase
// length.
func IndicesToPhrase(indices []int) (string, error) {
	if _, ok := bitsForWords[len(indices)]; !ok {
		return "", fmt.Errorf("%w: phrases have 12, 15, 18, 21, or 24 words, got %d indices",
			ErrInvalidSize, len(indices))
	}
	words := make([]string, len(indices))
	for i, index := range indices {
		word, err := Word(index)
		if err != nil {
			return "", err
		}
		words[i] = word
	}
	return strings.Join(words, " "), nil
}

// Normalize re-encodes a valid phrase into its canonical form: lowercase
// words separated by single spaces.
func Normalize(phrase string) (string, error) {
	data, err := DecodePhrase(phrase)
	if err != nil {
		return "", err
	}
	return EncodeBytes(data)
}

// VerifyPhrase reports whether a phrase decodes successfully. With strict
// set, the phrase must additionally already be in canonical form.
func VerifyPhrase(phrase string, strict bool) bool {
	normalized, err := Normalize(phrase)
	if err != nil {
		return false
	}
	return !strict || phrase == normalized
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
