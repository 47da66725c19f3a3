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

import "errors"

var (
	// ErrInvalidSecretLength is returned when a secret is not 16, 20, 24,
	// 28, or 32 bytes
	ErrInvalidSecretLength = errors.New("secretsharing: invalid secret length")

	// ErrInvalidShareCount is returned when the requested number of shares
	// is outside 1..255
	ErrInvalidShareCount = errors.New("secretsharing: share count out of range")

	// ErrInvalidThreshold is returned when the threshold is outside
	// 1..shares
	ErrInvalidThreshold = errors.New("secretsharing: invalid threshold")

	// ErrInvalidMode is returned when the sharing mode is neither random nor
	// deterministic
	ErrInvalidMode = errors.New("secretsharing: invalid sharing mode")

	// ErrSessionRequiresDeterministic is returned when a session identifier
	// is supplied in random mode
	ErrSessionRequiresDeterministic = errors.New("secretsharing: session identifier requires deterministic mode")

	// ErrInvalidShareIndex is returned when a share index is outside 1..255
	ErrInvalidShareIndex = errors.New("secretsharing: share index out of range")

	// ErrDuplicateShareIndex is returned when two shares in a recovery set
	// carry the same index
	ErrDuplicateShareIndex = errors.New("secretsharing: duplicate share index")

	// ErrInconsistentShareLengths is returned when share values in a
	// recovery set differ in length or the length is not an allowed secret
	// length
	ErrInconsistentShareLengths = errors.New("secretsharing: inconsistent share lengths")

	// ErrInsufficientShares is returned when fewer shares than the threshold
	// are supplied
	ErrInsufficientShares = errors.New("secretsharing: insufficient shares")

	// ErrSelfTestFailed is returned when the post-sharing self-test cannot
	// recover the secret; it indicates an implementation bug, never bad
	// input
	ErrSelfTestFailed = errors.New("secretsharing: self-test failed")
)
