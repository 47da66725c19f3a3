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

// Package rand provides randomness as an injectable capability.
//
// The sharing engine and phrase generator never read process-global
// randomness directly; they accept a Source so tests can inject
// deterministic readers and callers can substitute hardened generators.
package rand

import (
	"crypto/rand"
	"fmt"
)

// Source represents a random number generator. It implements io.Reader so a
// Source can be used anywhere the standard library expects a randomness
// reader.
type Source interface {
	// Rand returns n random bytes.
	Rand(n int) ([]byte, error)

	// Read implements io.Reader.
	Read(p []byte) (n int, err error)
}

// SoftwareSource draws from crypto/rand, the operating system CSPRNG.
type SoftwareSource struct{}

var _ Source = (*SoftwareSource)(nil)

// NewSoftwareSource returns a Source backed by crypto/rand.
func NewSoftwareSource() *SoftwareSource {
	return &SoftwareSource{}
}

// Rand returns n random bytes from the system CSPRNG.
func (s *SoftwareSource) Rand(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("rand: system source failed: %w", err)
	}
	return buf, nil
}

// Read implements io.Reader.
func (s *SoftwareSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}
