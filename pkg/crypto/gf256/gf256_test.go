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

package gf256

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mulReference is a straightforward peasant multiplication used to
// cross-check the constant-time implementation.
func mulReference(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}

func TestMulKnownValues(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x00, 0x00, 0x00},
		{0x00, 0xFF, 0x00},
		{0x01, 0x01, 0x01},
		{0x01, 0xAB, 0xAB},
		{0x02, 0x80, 0x1B}, // overflow triggers reduction
		{0x53, 0xCA, 0x01}, // classic AES inverse pair
		{0x57, 0x83, 0xC1}, // FIPS-197 worked example
		{0x57, 0x13, 0xFE}, // FIPS-197 worked example
		{0xFF, 0xFF, 0x13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mul(tt.a, tt.b), "Mul(%#x, %#x)", tt.a, tt.b)
	}
}

func TestMulMatchesReference(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if got, want := Mul(byte(a), byte(b)), mulReference(byte(a), byte(b)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, reference = %#x", a, b, got, want)
			}
		}
	}
}

// TestMulTableDigest builds the full 256x256 product table and compares its
// SHA-256 digest against a known-good value, pinning the field arithmetic
// bit-for-bit.
func TestMulTableDigest(t *testing.T) {
	table := make([]byte, 256*256)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			table[(a<<8)|b] = Mul(byte(a), byte(b))
		}
	}
	digest := sha256.Sum256(table)
	assert.Equal(t,
		"14a1e7e77ca8a30b5bb53e6310748ce0498eb9e04ab78a44dbefb6ebfac8a84b",
		hex.EncodeToString(digest[:]))
}

// TestInverseTableDigest pins the inverse table (with the 0 -> 0 convention)
// the same way.
func TestInverseTableDigest(t *testing.T) {
	table := make([]byte, 256)
	for a := 1; a < 256; a++ {
		table[a] = Inverse(byte(a))
	}
	digest := sha256.Sum256(table)
	assert.Equal(t,
		"a0b6126fef317bb998059c2fca3dddb40f2422e049866c3df87f1fde4e70a132",
		hex.EncodeToString(digest[:]))
}

func TestInverse(t *testing.T) {
	assert.Equal(t, byte(0), Inverse(0))
	for a := 1; a < 256; a++ {
		inv := Inverse(byte(a))
		require.Equal(t, byte(1), Mul(byte(a), inv), "a=%#x inv=%#x", a, inv)
	}
}

func TestFieldLaws(t *testing.T) {
	// Spot-check associativity and distributivity over a spread of triples;
	// the full 2^24 cube is unnecessary given the table digest above.
	vals := []byte{0x00, 0x01, 0x02, 0x03, 0x1B, 0x53, 0x80, 0xCA, 0xFE, 0xFF}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))
				assert.Equal(t, Mul(Mul(a, b), c), Mul(a, Mul(b, c)))
				assert.Equal(t, Mul(a, Add(b, c)), Add(Mul(a, b), Mul(a, c)))
			}
		}
	}
}

func TestExp(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(1), Exp(byte(a), 0), "a^0")
		assert.Equal(t, byte(a), Exp(byte(a), 1), "a^1")
		assert.Equal(t, Mul(byte(a), byte(a)), Exp(byte(a), 2), "a^2")
	}
	// a^254 must agree with Inverse for nonzero a.
	for a := 1; a < 256; a++ {
		assert.Equal(t, Inverse(byte(a)), Exp(byte(a), 254))
	}
	// Multiplicative group order divides 255.
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(1), Mul(Exp(byte(a), 254), byte(a)))
	}
}

func TestDiv(t *testing.T) {
	assert.Equal(t, byte(0), Div(0x42, 0))
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(1), Div(byte(a), byte(a)))
		assert.Equal(t, byte(a), Div(Mul(byte(a), 0x35), 0x35))
	}
}
