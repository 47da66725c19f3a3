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

package rand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftwareSourceRand(t *testing.T) {
	source := NewSoftwareSource()

	buf, err := source.Rand(32)
	require.NoError(t, err)
	assert.Len(t, buf, 32)

	other, err := source.Rand(32)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(buf, other), "consecutive draws must differ")
}

func TestSoftwareSourceRead(t *testing.T) {
	source := NewSoftwareSource()

	buf := make([]byte, 16)
	n, err := source.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.NotEqual(t, make([]byte, 16), buf)
}
