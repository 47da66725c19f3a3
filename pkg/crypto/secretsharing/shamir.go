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

// Package secretsharing implements Shamir's Secret Sharing over GF(2^8) for
// mnemonic-sized secrets (16, 20, 24, 28, or 32 bytes).
//
// A secret is split into N shares such that any M shares reconstruct it and
// M-1 shares reveal no information. Sharing is performed byte-per-byte: for
// each byte position a polynomial of degree M-1 is built whose constant term
// is the secret byte, and share i is the polynomial evaluated at x = i.
//
// Coefficients are either uniformly random or derived deterministically from
// the secret and a session identifier, so the same invocation can be
// reproduced bit-for-bit across platforms.
package secretsharing

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/jeremyhahn/go-seedshare/pkg/crypto/gf256"
	"github.com/jeremyhahn/go-seedshare/pkg/crypto/rand"
)

// Mode selects how the non-constant polynomial coefficients are produced.
type Mode string

const (
	// ModeRandom draws coefficients from a CSPRNG, hardened by XOR with the
	// deterministic derivation so a failing generator degrades to
	// deterministic-mode security rather than leaking the secret.
	ModeRandom Mode = "random"

	// ModeDeterministic derives coefficients from the secret and session
	// identifier only; resharing with the same parameters reproduces the
	// same shares.
	ModeDeterministic Mode = "deterministic"
)

// secretLengths enumerates the allowed secret sizes in bytes.
var secretLengths = map[int]bool{16: true, 20: true, 24: true, 28: true, 32: true}

// maxSelfTestCombinations bounds the number of recovery combinations the
// post-sharing self-test checks.
const maxSelfTestCombinations = 256

// Share is a single share of a secret: an index in 1..255 and a value of
// the secret's length.
type Share struct {
	Index byte
	Value []byte
}

// SplitConfig configures one sharing invocation.
type SplitConfig struct {
	// Shares is N, the total number of shares to create (1..255).
	Shares int

	// Threshold is M, the minimum number of shares needed to reconstruct
	// (1..Shares).
	Threshold int

	// Mode selects random or deterministic coefficients. Defaults to
	// ModeRandom.
	Mode Mode

	// Session disambiguates deterministic sharing invocations of the same
	// secret. Only valid with ModeDeterministic; empty and absent are
	// equivalent.
	Session string

	// Rand supplies randomness in ModeRandom. Defaults to the system
	// CSPRNG.
	Rand rand.Source
}

// Split divides a secret into N shares with threshold M according to the
// configuration. Share indices are 1..N in order. After generating the
// shares, Split recovers the secret from a bounded set of threshold-sized
// share combinations and fails with ErrSelfTestFailed if any combination
// disagrees.
func Split(secret []byte, config *SplitConfig) ([]Share, error) {
	if config == nil {
		return nil, fmt.Errorf("secretsharing: config cannot be nil")
	}
	if !secretLengths[len(secret)] {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSecretLength, len(secret))
	}
	if config.Shares < 1 || config.Shares > 255 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShareCount, config.Shares)
	}
	if config.Threshold < 1 || config.Threshold > config.Shares {
		return nil, fmt.Errorf("%w: threshold %d with %d shares",
			ErrInvalidThreshold, config.Threshold, config.Shares)
	}
	mode := config.Mode
	if mode == "" {
		mode = ModeRandom
	}
	if mode != ModeRandom && mode != ModeDeterministic {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if mode == ModeRandom && config.Session != "" {
		return nil, ErrSessionRequiresDeterministic
	}
	source := config.Rand
	if source == nil {
		source = rand.NewSoftwareSource()
	}

	coefficients, err := setupCoefficients(secret, config.Threshold, mode, config.Session, source)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Row 0 aliases the caller's secret and is left alone.
		for _, row := range coefficients[1:] {
			Zeroize(row)
		}
	}()

	shares := make([]Share, config.Shares)
	for i := range shares {
		shares[i] = Share{Index: byte(i + 1), Value: make([]byte, len(secret))}
	}

	column := make([]byte, config.Threshold)
	for k := 0; k < len(secret); k++ {
		for j := 0; j < config.Threshold; j++ {
			column[j] = coefficients[j][k]
		}
		for i := range shares {
			shares[i].Value[k] = evaluate(column, shares[i].Index)
		}
	}
	Zeroize(column)

	if err := selfTest(secret, shares, config.Threshold); err != nil {
		return nil, err
	}
	return shares, nil
}

// setupCoefficients builds the threshold coefficient rows. Row 0 is the
// secret itself. Rows 1..threshold-1 are HMAC-derived; in random mode each
// derived row is additionally XORed with fresh CSPRNG bytes.
func setupCoefficients(secret []byte, threshold int, mode Mode, session string, source rand.Source) ([][]byte, error) {
	coefficients := make([][]byte, threshold)
	coefficients[0] = secret
	for j := 1; j < threshold; j++ {
		row := DeriveCoefficient(secret, threshold, j, session)
		if mode == ModeRandom {
			random, err := source.Rand(len(secret))
			if err != nil {
				return nil, fmt.Errorf("secretsharing: coefficient randomness: %w", err)
			}
			for k := range row {
				row[k] ^= random[k]
			}
			Zeroize(random)
		}
		coefficients[j] = row
	}
	return coefficients, nil
}

// evaluate computes the polynomial with the given coefficients (constant
// term first) at point x using Horner's rule in GF(2^8).
func evaluate(coefficients []byte, x byte) byte {
	result := coefficients[len(coefficients)-1]
	for i := len(coefficients) - 2; i >= 0; i-- {
		result = gf256.Add(gf256.Mul(result, x), coefficients[i])
	}
	return result
}

// selfTest recovers the secret from threshold-sized share combinations and
// compares the result byte-for-byte. When the number of combinations is
// small they are all checked; otherwise every contiguous window of
// threshold shares is checked, which still exercises each share at least
// once. Checking is deterministic so sharing stays reproducible.
func selfTest(secret []byte, shares []Share, threshold int) error {
	for _, combo := range selfTestCombinations(len(shares), threshold) {
		subset := make([]Share, threshold)
		for i, index := range combo {
			subset[i] = shares[index]
		}
		recovered, err := CombineUnchecked(subset)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSelfTestFailed, err)
		}
		if !bytesEqual(recovered, secret) {
			return ErrSelfTestFailed
		}
		Zeroize(recovered)
	}
	return nil
}

// selfTestCombinations returns the index combinations to verify: all
// t-subsets of n shares when their count fits the budget, otherwise all
// sliding windows of width t.
func selfTestCombinations(n, t int) [][]int {
	if count, ok := combinationCount(n, t); ok && count <= maxSelfTestCombinations {
		return allCombinations(n, t)
	}
	windows := make([][]int, 0, n-t+1)
	for start := 0; start+t <= n; start++ {
		window := make([]int, t)
		for i := range window {
			window[i] = start + i
		}
		windows = append(windows, window)
	}
	return windows
}

// combinationCount returns C(n, t), reporting overflow of the self-test
// budget early instead of computing huge values.
func combinationCount(n, t int) (int, bool) {
	count := 1
	for i := 0; i < t; i++ {
		count = count * (n - i) / (i + 1)
		if count > maxSelfTestCombinations {
			return count, false
		}
	}
	return count, true
}

// allCombinations enumerates every t-subset of {0, ..., n-1} in
// lexicographic order.
func allCombinations(n, t int) [][]int {
	var combos [][]int
	indices := make([]int, t)
	for i := range indices {
		indices[i] = i
	}
	for {
		combo := make([]int, t)
		copy(combo, indices)
		combos = append(combos, combo)

		// Advance to the next lexicographic combination.
		i := t - 1
		for i >= 0 && indices[i] == n-t+i {
			i--
		}
		if i < 0 {
			return combos
		}
		indices[i]++
		for j := i + 1; j < t; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// CheckShares runs the recovery precondition checks: index range, index
// uniqueness, and consistent allowed value lengths, in that order. Combine
// and CombineUnchecked run them before any field arithmetic; callers
// layering additional checks (such as commitment verification) can invoke
// them directly to preserve the reporting order.
func CheckShares(shares []Share) error {
	if len(shares) == 0 {
		return fmt.Errorf("%w: no shares supplied", ErrInsufficientShares)
	}
	for _, share := range shares {
		if share.Index == 0 {
			return fmt.Errorf("%w: 0", ErrInvalidShareIndex)
		}
	}
	seen := mapset.NewThreadUnsafeSet[byte]()
	for _, share := range shares {
		if !seen.Add(share.Index) {
			return fmt.Errorf("%w: %d", ErrDuplicateShareIndex, share.Index)
		}
	}
	length := len(shares[0].Value)
	for _, share := range shares {
		if len(share.Value) != length {
			return fmt.Errorf("%w: %d and %d bytes", ErrInconsistentShareLengths,
				length, len(share.Value))
		}
	}
	if !secretLengths[length] {
		return fmt.Errorf("%w: %d bytes", ErrInconsistentShareLengths, length)
	}
	return nil
}

// Combine reconstructs the secret from at least threshold shares via
// Lagrange interpolation at x = 0. All precondition checks run before any
// field arithmetic and the first failing check is reported.
func Combine(shares []Share, threshold int) ([]byte, error) {
	if threshold < 1 || threshold > 255 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}
	if err := CheckShares(shares); err != nil {
		return nil, err
	}
	if len(shares) < threshold {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares,
			threshold, len(shares))
	}
	return interpolate(shares), nil
}

// CombineUnchecked reconstructs a value from the given shares without a
// threshold check. When fewer shares than the original threshold are
// supplied the result is deterministic but meaningless; callers who cannot
// know the threshold accept that explicitly by using this function.
func CombineUnchecked(shares []Share) ([]byte, error) {
	if err := CheckShares(shares); err != nil {
		return nil, err
	}
	return interpolate(shares), nil
}

// interpolate evaluates the Lagrange interpolation polynomial at x = 0.
// The basis values depend only on the share indices, so they are computed
// once and reused across byte positions.
func interpolate(shares []Share) []byte {
	basis := make([]byte, len(shares))
	for j, sj := range shares {
		numerator, denominator := byte(1), byte(1)
		for m, sm := range shares {
			if m == j {
				continue
			}
			// (0 - x_m) = x_m since subtraction is XOR.
			numerator = gf256.Mul(numerator, sm.Index)
			denominator = gf256.Mul(denominator, gf256.Sub(sm.Index, sj.Index))
		}
		basis[j] = gf256.Mul(numerator, gf256.Inverse(denominator))
	}

	secret := make([]byte, len(shares[0].Value))
	for k := range secret {
		var acc byte
		for j, sj := range shares {
			acc = gf256.Add(acc, gf256.Mul(sj.Value[k], basis[j]))
		}
		secret[k] = acc
	}
	return secret
}

// Zeroize overwrites a byte slice with zeros. Callers are encouraged to
// zeroize secrets and share values once they are no longer needed.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// bytesEqual performs constant-time comparison of two byte slices.
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
