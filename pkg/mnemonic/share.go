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
	"fmt"
	"strconv"
	"strings"
)

// EncodeShare encodes a share (index, value) pair as an index-prefixed
// phrase of the form "{index}: {word 1} {word 2} ...".
func EncodeShare(index int, value []byte) (string, error) {
	if index < 1 || index > 255 {
		return "", fmt.Errorf("%w: %d", ErrInvalidShareIndex, index)
	}
	phrase, err := EncodeBytes(value)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(index) + ": " + phrase, nil
}

// DecodeShare parses an index-prefixed share string back into its index and
// value. The index is a decimal integer in 1..255, separated from the phrase
// by a colon.
func DecodeShare(share string) (int, []byte, error) {
	parts := strings.Split(share, ":")
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("%w: expected \"{index}: {phrase}\"", ErrInvalidShareFormat)
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: share index %q is not an integer", ErrInvalidShareFormat, strings.TrimSpace(parts[0]))
	}
	if index < 1 || index > 255 {
		return 0, nil, fmt.Errorf("%w: %d", ErrInvalidShareIndex, index)
	}
	value, err := DecodePhrase(parts[1])
	if err != nil {
		return 0, nil, err
	}
	return index, value, nil
}

// NormalizeShare re-encodes a valid share string into its canonical form.
func NormalizeShare(share string) (string, error) {
	index, value, err := DecodeShare(share)
	if err != nil {
		return "", err
	}
	return EncodeShare(index, value)
}

// VerifyShare reports whether a share string parses successfully. With
// strict set, the share must additionally already be in canonical form.
func VerifyShare(share string, strict bool) bool {
	normalized, err := NormalizeShare(share)
	if err != nil {
		return false
	}
	return !strict || share == normalized
}
