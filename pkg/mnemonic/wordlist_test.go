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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordListShape(t *testing.T) {
	require.Len(t, wordList, ListSize)
	assert.True(t, sort.StringsAreSorted(wordList), "wordlist must be alphabetically ordered")
	assert.Equal(t, "abandon", wordList[0])
	assert.Equal(t, "zoo", wordList[ListSize-1])
	assert.Equal(t, "zebra", wordList[2044])
}

func TestWord(t *testing.T) {
	word, err := Word(0)
	require.NoError(t, err)
	assert.Equal(t, "abandon", word)

	_, err = Word(-1)
	assert.ErrorIs(t, err, ErrInvalidWordIndex)
	_, err = Word(ListSize)
	assert.ErrorIs(t, err, ErrInvalidWordIndex)
}

func TestIndexOf(t *testing.T) {
	index, ok := IndexOf("zoo")
	require.True(t, ok)
	assert.Equal(t, ListSize-1, index)

	// Reverse mapping is total and consistent.
	for i, word := range wordList {
		index, ok := IndexOf(word)
		require.True(t, ok, word)
		require.Equal(t, i, index)
	}

	_, ok = IndexOf("notaword")
	assert.False(t, ok)
	_, ok = IndexOf("")
	assert.False(t, ok)
	_, ok = IndexOf("Zoo")
	assert.False(t, ok)
	_, ok = IndexOf("zoö")
	assert.False(t, ok)
}
