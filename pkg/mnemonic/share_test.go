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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeShare(t *testing.T) {
	value := bytes.Repeat([]byte{0xFF}, 16)
	share, err := EncodeShare(7, value)
	require.NoError(t, err)
	assert.Equal(t, "7: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", share)

	for _, index := range []int{0, -1, 256} {
		_, err := EncodeShare(index, value)
		assert.ErrorIs(t, err, ErrInvalidShareIndex, "index %d", index)
	}
}

func TestDecodeShare(t *testing.T) {
	index, value, err := DecodeShare("7: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong")
	require.NoError(t, err)
	assert.Equal(t, 7, index)
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 16), value)

	// Index 255 is the upper bound.
	share, err := EncodeShare(255, bytes.Repeat([]byte{0xFF}, 16))
	require.NoError(t, err)
	index, _, err = DecodeShare(share)
	require.NoError(t, err)
	assert.Equal(t, 255, index)
}

func TestDecodeShareErrors(t *testing.T) {
	tests := []struct {
		name  string
		share string
		want  error
	}{
		{"missing index", "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", ErrInvalidShareFormat},
		{"two colons", "1: 2: zoo", ErrInvalidShareFormat},
		{"non-numeric index", "abc: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", ErrInvalidShareFormat},
		{"index zero", "0: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", ErrInvalidShareIndex},
		{"index too large", "256: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", ErrInvalidShareIndex},
		{"bad phrase checksum", "1: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo", ErrChecksumMismatch},
		{"unknown word", "1: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zzz", ErrWordNotInList},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeShare(tt.share)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeShare(t *testing.T) {
	normalized, err := NormalizeShare(" 7 :  zoo zoo  zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong")
	require.NoError(t, err)
	assert.Equal(t, "7: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", normalized)
}

func TestVerifyShare(t *testing.T) {
	canonical := "7: zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong"
	assert.True(t, VerifyShare(canonical, false))
	assert.True(t, VerifyShare(canonical, true))
	assert.True(t, VerifyShare("7:  zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", false))
	assert.False(t, VerifyShare("7:  zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", true))
	assert.False(t, VerifyShare("zoo zoo", false))
}
