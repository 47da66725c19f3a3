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

// Package gf256 implements arithmetic in GF(2^8), the 256-element finite
// field defined by the AES irreducible polynomial x^8 + x^4 + x^3 + x + 1
// (0x11B).
//
// All operations are branch-free with respect to their operands and perform
// no secret-dependent table lookups, so they are safe to use on secret key
// material.
package gf256

// Add returns a + b in GF(2^8). Addition is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a - b in GF(2^8). Subtraction is identical to addition.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b in GF(2^8), reduced modulo 0x11B.
//
// The product is accumulated most-significant bit first; the conditional
// reduction and the conditional addition of b are expressed as multiplies
// by a 0/1 bit so the operation runs in constant time.
func Mul(a, b byte) byte {
	var p byte
	for i := 7; i >= 0; i-- {
		carry := p >> 7
		p <<= 1
		p ^= carry * 0x1B
		p ^= b * ((a >> uint(i)) & 1)
	}
	return p
}

// Inverse returns the multiplicative inverse a^-1 = a^254 in GF(2^8),
// computed with a fixed square-and-multiply chain (Fermat's little theorem).
// Inverse(0) returns 0; zero has no inverse and callers must not divide by
// it. Distinct share indices guarantee nonzero differences during Lagrange
// interpolation, so reconstruction never inverts zero.
func Inverse(a byte) byte {
	b := Mul(a, a) // a^2
	c := Mul(a, b) // a^3
	b = Mul(c, c)  // a^6
	b = Mul(b, b)  // a^12
	c = Mul(b, c)  // a^15
	b = Mul(b, b)  // a^24
	b = Mul(b, b)  // a^48
	b = Mul(b, c)  // a^63
	b = Mul(b, b)  // a^126
	b = Mul(a, b)  // a^127
	return Mul(b, b)
}

// Div returns a / b in GF(2^8). Div(a, 0) returns 0.
func Div(a, b byte) byte {
	return Mul(a, Inverse(b))
}

// Exp returns a^e in GF(2^8) using constant-time square-and-multiply.
// a^0 is 1 for every a, including 0.
func Exp(a, e byte) byte {
	result := byte(1)
	square := a
	for i := 0; i < 8; i++ {
		bit := (e >> uint(i)) & 1
		m := Mul(result, square)
		// Constant-time select: bit == 1 picks m, bit == 0 keeps result.
		result = (m & (0 - bit)) | (result & (bit - 1))
		square = Mul(square, square)
	}
	return result
}
