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
	"strconv"

	"github.com/jeremyhahn/go-seedshare/pkg/commitment"
	"github.com/jeremyhahn/go-seedshare/pkg/crypto/secretsharing"
	"github.com/jeremyhahn/go-seedshare/pkg/mnemonic"
)

// ShareOptions configures one sharing invocation.
type ShareOptions struct {
	// Shares is N, the total number of shares to create (1..255).
	Shares int

	// Threshold is M, the minimum number of shares needed for recovery
	// (1..Shares).
	Threshold int

	// Deterministic reproduces the same shares for the same phrase,
	// parameters, and session.
	Deterministic bool

	// Session disambiguates deterministic sharing invocations. Only valid
	// with Deterministic.
	Session string
}

// SharedPhrase is one share of a phrase in its user-facing forms.
type SharedPhrase struct {
	// Index is the share index, 1..N.
	Index int

	// Phrase is the share's mnemonic in canonical form.
	Phrase string

	// Share is the display form "{index}: {phrase}".
	Share string

	// Commitment is the share fingerprint as 64 lowercase hex characters.
	Commitment string
}

// Share splits a phrase into N share phrases with threshold M. Each share
// is returned with its commitment so recipients can verify their share
// out-of-band.
func (t *Toolkit) Share(phrase string, opts ShareOptions) ([]SharedPhrase, error) {
	secret, err := mnemonic.DecodePhrase(phrase)
	if err != nil {
		return nil, err
	}
	defer secretsharing.Zeroize(secret)

	mode := secretsharing.ModeRandom
	if opts.Deterministic {
		mode = secretsharing.ModeDeterministic
	}
	t.logger.Debug("sharing phrase",
		"shares", opts.Shares, "threshold", opts.Threshold, "mode", string(mode))

	raw, err := secretsharing.Split(secret, &secretsharing.SplitConfig{
		Shares:    opts.Shares,
		Threshold: opts.Threshold,
		Mode:      mode,
		Session:   opts.Session,
		Rand:      t.rand,
	})
	if err != nil {
		return nil, err
	}

	shares := make([]SharedPhrase, len(raw))
	for i, share := range raw {
		sharePhrase, err := mnemonic.EncodeBytes(share.Value)
		if err != nil {
			return nil, err
		}
		fingerprint, err := commitment.ComputeHex(int(share.Index), sharePhrase)
		if err != nil {
			return nil, err
		}
		shares[i] = SharedPhrase{
			Index:      int(share.Index),
			Phrase:     sharePhrase,
			Share:      strconv.Itoa(int(share.Index)) + ": " + sharePhrase,
			Commitment: fingerprint,
		}
		secretsharing.Zeroize(share.Value)
	}
	t.logger.Debug("shares created", "count", len(shares))
	return shares, nil
}
