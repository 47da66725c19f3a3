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
	"github.com/jeremyhahn/go-seedshare/pkg/commitment"
	"github.com/jeremyhahn/go-seedshare/pkg/crypto/secretsharing"
	"github.com/jeremyhahn/go-seedshare/pkg/mnemonic"
)

// RecoverOptions configures recovery.
type RecoverOptions struct {
	// Threshold is the sharing threshold the shares were created with.
	// Recovery refuses to run with fewer shares.
	Threshold int

	// SkipThresholdCheck permits reconstruction without knowing the
	// threshold. With fewer shares than the original threshold the result
	// is deterministic but meaningless; the toolkit cannot detect that.
	SkipThresholdCheck bool

	// Commitments maps share indices to expected commitment hex digests.
	// When present, each supplied share is verified before reconstruction.
	Commitments map[int]string
}

// Recover reconstructs the original phrase from share strings of the form
// "{index}: {word 1} {word 2} ...". All precondition checks run, in order,
// before any reconstruction arithmetic: share syntax, index range, index
// uniqueness, value lengths, share count, and commitments.
func (t *Toolkit) Recover(shares []string, opts RecoverOptions) (string, error) {
	if opts.Threshold <= 0 && !opts.SkipThresholdCheck {
		return "", ErrThresholdRequired
	}

	raw := make([]secretsharing.Share, len(shares))
	phrases := make([]string, len(shares))
	for i, share := range shares {
		index, value, err := mnemonic.DecodeShare(share)
		if err != nil {
			return "", err
		}
		raw[i] = secretsharing.Share{Index: byte(index), Value: value}
		// Canonical phrase form, for commitment verification.
		phrases[i], err = mnemonic.EncodeBytes(value)
		if err != nil {
			return "", err
		}
	}
	if err := secretsharing.CheckShares(raw); err != nil {
		return "", err
	}
	if opts.Threshold > 0 && len(raw) < opts.Threshold {
		return "", secretsharing.ErrInsufficientShares
	}
	if opts.Commitments != nil {
		for i, share := range raw {
			expected, ok := opts.Commitments[int(share.Index)]
			if !ok {
				continue
			}
			if err := commitment.VerifyHex(int(share.Index), phrases[i], expected); err != nil {
				return "", err
			}
		}
	}

	t.logger.Debug("recovering phrase", "shares", len(raw), "threshold", opts.Threshold)

	var secret []byte
	var err error
	if opts.Threshold > 0 {
		secret, err = secretsharing.Combine(raw, opts.Threshold)
	} else {
		secret, err = secretsharing.CombineUnchecked(raw)
	}
	if err != nil {
		return "", err
	}
	defer secretsharing.Zeroize(secret)

	for _, share := range raw {
		secretsharing.Zeroize(share.Value)
	}
	return mnemonic.EncodeBytes(secret)
}
