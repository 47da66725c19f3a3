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
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the byte length of a derived seed.
const SeedSize = 64

// seedIterations is the PBKDF2 iteration count fixed by BIP39.
const seedIterations = 2048

// Seed derives the 512-bit seed for a phrase and optional passphrase using
// PBKDF2-HMAC-SHA512 with the salt "mnemonic" + NFKD(passphrase). The phrase
// is validated and normalized to its canonical form before derivation.
//
// This is a reference utility; the secret sharing engine operates on the
// decoded entropy bytes, never on the derived seed.
func Seed(phrase, passphrase string) ([]byte, error) {
	normalized, err := Normalize(phrase)
	if err != nil {
		return nil, err
	}
	salt := "mnemonic" + norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(normalized), []byte(salt), seedIterations, SeedSize, sha512.New), nil
}
