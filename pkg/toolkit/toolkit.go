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

// Package toolkit ties the codec, entropy encoders, sharing engine, and
// commitments together behind the operations the command line exposes:
// generate, share, recover, encode, and decode.
//
// The toolkit holds no state beyond its logger and randomness source; every
// operation is a pure function over its inputs.
package toolkit

import (
	"errors"

	"github.com/jeremyhahn/go-seedshare/pkg/crypto/rand"
	"github.com/jeremyhahn/go-seedshare/pkg/logging"
)

var (
	// ErrEntropyRequired is returned when deterministic generation is
	// requested without user-supplied entropy
	ErrEntropyRequired = errors.New("toolkit: deterministic generation requires extra entropy")

	// ErrThresholdRequired is returned when recovery is attempted without a
	// threshold and without explicitly opting out of the threshold check
	ErrThresholdRequired = errors.New("toolkit: recovery threshold required (or opt out explicitly)")

	// ErrUnknownFormat is returned for an unrecognized encode or decode
	// format
	ErrUnknownFormat = errors.New("toolkit: unknown input format")
)

// Toolkit provides the high-level phrase operations.
type Toolkit struct {
	logger *logging.Logger
	rand   rand.Source
}

// Config configures a Toolkit. Both fields are optional.
type Config struct {
	// Logger receives operational logging. Defaults to a non-debug logger.
	Logger *logging.Logger

	// Rand supplies randomness for generation and random-mode sharing.
	// Defaults to the system CSPRNG.
	Rand rand.Source
}

// New creates a Toolkit with the given configuration. A nil config selects
// all defaults.
func New(config *Config) *Toolkit {
	t := &Toolkit{}
	if config != nil {
		t.logger = config.Logger
		t.rand = config.Rand
	}
	if t.logger == nil {
		t.logger = logging.DefaultLogger()
	}
	if t.rand == nil {
		t.rand = rand.NewSoftwareSource()
	}
	return t
}
