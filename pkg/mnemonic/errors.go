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

import "errors"

var (
	// ErrWordNotInList is returned when a submitted word is not part of the
	// English wordlist
	ErrWordNotInList = errors.New("mnemonic: word not in list")

	// ErrChecksumMismatch is returned when a phrase decodes but its embedded
	// checksum bits disagree with the recomputed hash
	ErrChecksumMismatch = errors.New("mnemonic: checksum invalid")

	// ErrInvalidSize is returned when a byte count or word count is not one
	// of the allowed values
	ErrInvalidSize = errors.New("mnemonic: invalid size")

	// ErrInvalidWordIndex is returned when a word index is outside 0..2047
	ErrInvalidWordIndex = errors.New("mnemonic: word index out of range")

	// ErrInvalidShareIndex is returned when a share index is outside 1..255
	ErrInvalidShareIndex = errors.New("mnemonic: share index out of range")

	// ErrInvalidShareFormat is returned when a share string is not of the
	// form "{index}: {phrase}"
	ErrInvalidShareFormat = errors.New("mnemonic: invalid share format")
)
