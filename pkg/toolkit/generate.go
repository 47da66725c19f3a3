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
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/jeremyhahn/go-seedshare/pkg/crypto/secretsharing"
	"github.com/jeremyhahn/go-seedshare/pkg/mnemonic"
)

// generateLabel is the HMAC message used to compress user-supplied extra
// entropy into 32 bytes.
const generateLabel = "BIP39 phrase"

// GenerateDerivationVersion identifies the deterministic generation
// derivation. The derivation is subject to change between major versions;
// no cross-tool compatibility is claimed.
const GenerateDerivationVersion = 1

// GenerateOptions configures phrase generation.
type GenerateOptions struct {
	// Words is the phrase length: 12, 15, 18, 21, or 24. Zero selects 24.
	Words int

	// Entropy is an arbitrary string mixed into the generated phrase. It is
	// compressed as HMAC-SHA256(key=Entropy, msg="BIP39 phrase").
	Entropy string

	// Deterministic derives the phrase from Entropy alone, bypassing the
	// randomness source entirely. Requires Entropy. The security of the
	// resulting phrase is exactly the quality of the supplied entropy.
	Deterministic bool
}

// Generate produces a new mnemonic phrase. Without extra entropy the raw
// bits come from the toolkit's randomness source; with extra entropy the
// source output is XOR-mixed with the compressed entropy, so a compromised
// source alone cannot determine the phrase.
func (t *Toolkit) Generate(opts GenerateOptions) (string, error) {
	words := opts.Words
	if words == 0 {
		words = 24
	}
	bits, err := mnemonic.BitLength(words)
	if err != nil {
		return "", err
	}
	numBytes := bits / 8

	if opts.Deterministic && opts.Entropy == "" {
		return "", ErrEntropyRequired
	}

	var secret []byte
	switch {
	case opts.Entropy == "":
		t.logger.Debug("generating phrase from system randomness", "words", words, "bits", bits)
		secret, err = t.rand.Rand(32)
		if err != nil {
			return "", fmt.Errorf("toolkit: generate: %w", err)
		}
	case opts.Deterministic:
		t.logger.Debug("deriving phrase from user entropy", "words", words, "bits", bits,
			"derivation", GenerateDerivationVersion)
		secret = compressEntropy(opts.Entropy)
	default:
		t.logger.Debug("mixing system randomness with user entropy", "words", words, "bits", bits)
		secret, err = t.rand.Rand(32)
		if err != nil {
			return "", fmt.Errorf("toolkit: generate: %w", err)
		}
		for i, b := range compressEntropy(opts.Entropy) {
			secret[i] ^= b
		}
	}
	defer secretsharing.Zeroize(secret)

	return mnemonic.EncodeBytes(secret[:numBytes])
}

func compressEntropy(entropy string) []byte {
	mac := hmac.New(sha256.New, []byte(entropy))
	mac.Write([]byte(generateLabel))
	return mac.Sum(nil)
}
