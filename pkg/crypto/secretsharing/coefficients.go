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
	"crypto/hmac"
	"crypto/sha256"
)

// coefficientLabel is the domain-separation label for coefficient
// derivation. The derived row is the leading secret-length bytes of
// HMAC-SHA256(key=secret, msg=label || [threshold] || [index] || session).
const coefficientLabel = "secret-sharing-coefficient"

// DeriveCoefficient deterministically derives coefficient row `index`
// (1 <= index < threshold) for the given secret and session identifier.
// Keying the HMAC with the secret hides the coefficients from anyone who
// does not already hold it; the label separates this use of the secret from
// any other. An absent session is the empty string.
//
// Callers are responsible for supplying index and threshold in range; the
// derivation itself never fails.
func DeriveCoefficient(secret []byte, threshold, index int, session string) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(coefficientLabel))
	mac.Write([]byte{byte(threshold), byte(index)})
	mac.Write([]byte(session))
	return mac.Sum(nil)[:len(secret)]
}
