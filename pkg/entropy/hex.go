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

package entropy

import (
	"fmt"
	"math/big"
	"strings"
)

// FromHex converts a hexadecimal string into a canonical byte string. Each
// digit contributes four bits; whitespace and separators are stripped first.
func FromHex(input string) ([]byte, error) {
	cleaned := strings.ToLower(stripSeparators(input))
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty hex string", ErrInvalidInput)
	}
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return nil, fmt.Errorf("%w: %q is not a hex digit", ErrInvalidInput, c)
		}
	}
	value, ok := new(big.Int).SetString(cleaned, 16)
	if !ok {
		return nil, fmt.Errorf("%w: malformed hex string", ErrInvalidInput)
	}
	return canonical(value, 4*len(cleaned))
}
