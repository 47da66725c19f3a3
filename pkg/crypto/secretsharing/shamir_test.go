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

package secretsharing

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSecret(t *testing.T, size int) []byte {
	t.Helper()
	secret := make([]byte, size)
	_, err := rand.Read(secret)
	require.NoError(t, err)
	return secret
}

func TestSplitValidation(t *testing.T) {
	secret := randomSecret(t, 16)

	tests := []struct {
		name   string
		secret []byte
		config *SplitConfig
		want   error
	}{
		{"nil config", secret, nil, nil},
		{"empty secret", []byte{}, &SplitConfig{Shares: 3, Threshold: 2}, ErrInvalidSecretLength},
		{"odd secret length", make([]byte, 17), &SplitConfig{Shares: 3, Threshold: 2}, ErrInvalidSecretLength},
		{"zero shares", secret, &SplitConfig{Shares: 0, Threshold: 1}, ErrInvalidShareCount},
		{"too many shares", secret, &SplitConfig{Shares: 256, Threshold: 2}, ErrInvalidShareCount},
		{"zero threshold", secret, &SplitConfig{Shares: 3, Threshold: 0}, ErrInvalidThreshold},
		{"threshold above shares", secret, &SplitConfig{Shares: 3, Threshold: 4}, ErrInvalidThreshold},
		{"unknown mode", secret, &SplitConfig{Shares: 3, Threshold: 2, Mode: "fancy"}, ErrInvalidMode},
		{"session without deterministic", secret,
			&SplitConfig{Shares: 3, Threshold: 2, Session: "A"}, ErrSessionRequiresDeterministic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.secret, tt.config)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestSplitShareShape(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		secret := randomSecret(t, size)
		shares, err := Split(secret, &SplitConfig{Shares: 5, Threshold: 3})
		require.NoError(t, err)
		require.Len(t, shares, 5)
		for i, share := range shares {
			assert.Equal(t, byte(i+1), share.Index)
			assert.Len(t, share.Value, size)
		}
	}
}

// TestAllSubsetsRecover verifies that every threshold-sized subset of the
// produced shares reconstructs the secret, in both sharing modes.
func TestAllSubsetsRecover(t *testing.T) {
	secret := randomSecret(t, 32)
	for _, mode := range []Mode{ModeRandom, ModeDeterministic} {
		shares, err := Split(secret, &SplitConfig{Shares: 6, Threshold: 3, Mode: mode})
		require.NoError(t, err)

		for _, combo := range allCombinations(6, 3) {
			subset := []Share{shares[combo[0]], shares[combo[1]], shares[combo[2]]}
			recovered, err := Combine(subset, 3)
			require.NoError(t, err)
			assert.Equal(t, secret, recovered, "mode %s combo %v", mode, combo)
		}
	}
}

func TestRecoverWithExtraShares(t *testing.T) {
	secret := randomSecret(t, 16)
	shares, err := Split(secret, &SplitConfig{Shares: 5, Threshold: 2})
	require.NoError(t, err)

	// All five shares interpolate to the same secret.
	recovered, err := Combine(shares, 2)
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestUndersuppliedSharesYieldGarbage(t *testing.T) {
	secret := randomSecret(t, 32)
	shares, err := Split(secret, &SplitConfig{Shares: 5, Threshold: 3})
	require.NoError(t, err)

	// Two of three required shares produce a deterministic but meaningless
	// value (equality would require a 2^-256 accident).
	garbage, err := CombineUnchecked(shares[:2])
	require.NoError(t, err)
	assert.NotEqual(t, secret, garbage)

	again, err := CombineUnchecked(shares[:2])
	require.NoError(t, err)
	assert.Equal(t, garbage, again)

	// The checked path refuses outright.
	_, err = Combine(shares[:2], 3)
	assert.ErrorIs(t, err, ErrInsufficientShares)
}

func TestDegenerateThresholdOne(t *testing.T) {
	secret := randomSecret(t, 16)
	shares, err := Split(secret, &SplitConfig{Shares: 5, Threshold: 1})
	require.NoError(t, err)
	require.Len(t, shares, 5)

	// With t = 1 there are no non-constant coefficients; every share is the
	// secret itself.
	for _, share := range shares {
		assert.Equal(t, secret, share.Value)
	}

	recovered, err := Combine(shares[2:3], 1)
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestThresholdEqualsShares(t *testing.T) {
	secret := randomSecret(t, 20)
	shares, err := Split(secret, &SplitConfig{Shares: 4, Threshold: 4})
	require.NoError(t, err)

	recovered, err := Combine(shares, 4)
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestDeterministicReproducibility(t *testing.T) {
	secret := randomSecret(t, 16)
	config := &SplitConfig{Shares: 4, Threshold: 2, Mode: ModeDeterministic, Session: "session-1"}

	first, err := Split(secret, config)
	require.NoError(t, err)
	second, err := Split(secret, config)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Index, second[i].Index)
		assert.Equal(t, first[i].Value, second[i].Value)
	}
}

func TestSessionIndependence(t *testing.T) {
	secret := randomSecret(t, 16)

	a, err := Split(secret, &SplitConfig{Shares: 3, Threshold: 2, Mode: ModeDeterministic, Session: "A"})
	require.NoError(t, err)
	b, err := Split(secret, &SplitConfig{Shares: 3, Threshold: 2, Mode: ModeDeterministic, Session: "B"})
	require.NoError(t, err)

	for i := range a {
		assert.NotEqual(t, a[i].Value, b[i].Value, "share %d must differ across sessions", i+1)
	}
}

func TestRandomModeUnrepeatable(t *testing.T) {
	secret := randomSecret(t, 16)
	config := &SplitConfig{Shares: 3, Threshold: 2}

	first, err := Split(secret, config)
	require.NoError(t, err)
	second, err := Split(secret, config)
	require.NoError(t, err)

	same := true
	for i := range first {
		if !bytes.Equal(first[i].Value, second[i].Value) {
			same = false
		}
	}
	assert.False(t, same, "random mode must not reproduce shares")
}

func TestCheckShares(t *testing.T) {
	value := func(b byte) []byte { return bytes.Repeat([]byte{b}, 16) }

	tests := []struct {
		name   string
		shares []Share
		want   error
	}{
		{"no shares", nil, ErrInsufficientShares},
		{"zero index", []Share{{Index: 0, Value: value(1)}}, ErrInvalidShareIndex},
		{"duplicate index", []Share{
			{Index: 1, Value: value(1)},
			{Index: 1, Value: value(2)},
		}, ErrDuplicateShareIndex},
		{"length mismatch", []Share{
			{Index: 1, Value: value(1)},
			{Index: 2, Value: bytes.Repeat([]byte{2}, 20)},
		}, ErrInconsistentShareLengths},
		{"disallowed length", []Share{
			{Index: 1, Value: bytes.Repeat([]byte{1}, 17)},
			{Index: 2, Value: bytes.Repeat([]byte{2}, 17)},
		}, ErrInconsistentShareLengths},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CheckShares(tt.shares), tt.want)
		})
	}
}

func TestCombineInvalidThreshold(t *testing.T) {
	shares := []Share{{Index: 1, Value: make([]byte, 16)}}
	_, err := Combine(shares, 0)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
	_, err = Combine(shares, 256)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestEvaluateConstantPolynomial(t *testing.T) {
	// Degree zero: every evaluation point returns the constant term.
	for x := 1; x < 256; x++ {
		assert.Equal(t, byte(0x5A), evaluate([]byte{0x5A}, byte(x)))
	}
}

func TestSelfTestCombinations(t *testing.T) {
	// Small spaces enumerate exhaustively: C(5,3) = 10.
	combos := selfTestCombinations(5, 3)
	assert.Len(t, combos, 10)

	// Large spaces fall back to sliding windows, one per start offset.
	combos = selfTestCombinations(200, 3)
	assert.Len(t, combos, 198)
	seen := make(map[int]bool)
	for _, combo := range combos {
		for _, index := range combo {
			seen[index] = true
		}
	}
	// Every share participates in at least one checked combination.
	assert.Len(t, seen, 200)
}

func TestZeroize(t *testing.T) {
	buf := []byte{1, 2, 3}
	Zeroize(buf)
	assert.Equal(t, []byte{0, 0, 0}, buf)
}
