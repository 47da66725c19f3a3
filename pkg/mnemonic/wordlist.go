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

package mnemonic

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	bip39 "github.com/cosmos/go-bip39"
)

// ListSize is the number of words in the English wordlist.
const ListSize = 2048

// wordListDigest is the SHA-256 hex digest of the newline-joined official
// English wordlist (including the trailing newline), as published at
// https://github.com/bitcoin/bips/blob/master/bip-0039/english.txt.
// The table is verified against it once at process start so an accidentally
// modified vendored list can never produce valid-looking phrases.
const wordListDigest = "2f5eed53a4727b4bf8880d8f3f199efc90e58503646d9ff8eff3a2ed3b24dbda"

// The process-wide read-only word table and its reverse mapping. Both are
// built once during package initialization and never mutated afterwards, so
// they are safe to share across any number of concurrent callers.
var (
	wordList  = mustWordList(bip39.EnglishWordList)
	wordIndex = buildWordIndex(wordList)
)

func mustWordList(words []string) []string {
	if len(words) != ListSize {
		panic(fmt.Sprintf("mnemonic: wordlist has %d entries, want %d", len(words), ListSize))
	}
	digest := sha256.Sum256([]byte(strings.Join(words, "\n") + "\n"))
	if hex.EncodeToString(digest[:]) != wordListDigest {
		panic("mnemonic: wordlist does not match the official English list")
	}
	return words
}

func buildWordIndex(words []string) map[string]int {
	index := make(map[string]int, len(words))
	for i, word := range words {
		index[word] = i
	}
	return index
}

// Word returns the wordlist entry at the given index (0..2047).
func Word(index int) (string, error) {
	if index < 0 || index >= ListSize {
		return "", fmt.Errorf("%w: %d", ErrInvalidWordIndex, index)
	}
	return wordList[index], nil
}

// IndexOf returns the 0-based wordlist index of the given word. Only
// lowercase ASCII words are recognized.
func IndexOf(word string) (int, bool) {
	if !isLowerASCII(word) {
		return 0, false
	}
	index, ok := wordIndex[word]
	return index, ok
}

func isLowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
