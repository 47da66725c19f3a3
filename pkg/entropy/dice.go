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
)

// FromDice converts a sequence of dice rolls (digits 1-6) into a canonical
// byte string. The rolls form the base-6 digits of a single large integer
// (a roll of 6 counts as digit 0), so k rolls cover the range [0, 6^k) and
// derive floor(k * log2(6)) usable bits.
func FromDice(input string) ([]byte, error) {
	cleaned := stripSeparators(input)
	value := new(big.Int)
	six := big.NewInt(6)
	digit := new(big.Int)
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if c < '1' || c > '6' {
			return nil, fmt.Errorf("%w: %q is not a dice roll", ErrInvalidInput, c)
		}
		digit.SetInt64(int64(c-'0') % 6)
		value.Mul(value, six)
		value.Add(value, digit)
	}

	// floor(log2(6^k)) via the bit length of 6^k.
	rolls := int64(len(cleaned))
	span := new(big.Int).Exp(six, big.NewInt(rolls), nil)
	return canonical(value, span.BitLen()-1)
}
