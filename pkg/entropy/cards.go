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

	mapset "github.com/deckarep/golang-set/v2"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// deck is the canonical card ordering: clubs, diamonds, hearts, spades,
// each suit ace through king. Tokens are rank then suit, e.g. "AC", "TD".
var deck = buildDeck()

func buildDeck() []string {
	const suits = "CDHS"
	const ranks = "A23456789TJQK"
	cards := make([]string, 0, DeckSize)
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, string(rank)+string(suit))
		}
	}
	return cards
}

// FromCards converts a sequence of playing card tokens into a canonical
// byte string. The sequence is interpreted as drawing without replacement
// from a full deck: the i-th card contributes its position among the cards
// still in the deck, a value in [0, 52-i), weighted by the number of
// arrangements of the preceding draws. k cards therefore cover the range
// [0, 52!/(52-k)!) and derive floor(log2(52!/(52-k)!)) usable bits.
//
// Duplicate cards and unknown tokens are rejected.
func FromCards(input string) ([]byte, error) {
	cleaned := strings.ToUpper(stripSeparators(input))
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("%w: card tokens are two characters (rank then suit)", ErrInvalidInput)
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	remaining := make([]string, DeckSize)
	copy(remaining, deck)

	count := len(cleaned) / 2
	draws := make([]int64, count)
	for i := 0; i < count; i++ {
		token := cleaned[2*i : 2*i+2]
		if !seen.Add(token) {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, token)
		}
		position := indexOfCard(remaining, token)
		if position < 0 {
			return nil, fmt.Errorf("%w: unknown card %s", ErrInvalidInput, token)
		}
		draws[i] = int64(position)
		remaining = append(remaining[:position], remaining[position+1:]...)
	}

	// Mixed-radix Horner: the first draw is the least significant digit.
	value := new(big.Int)
	span := big.NewInt(1)
	for i := count - 1; i >= 0; i-- {
		radix := big.NewInt(int64(DeckSize - i))
		value.Mul(value, radix)
		value.Add(value, big.NewInt(draws[i]))
		span.Mul(span, radix)
	}
	return canonical(value, span.BitLen()-1)
}

func indexOfCard(cards []string, token string) int {
	for i, card := range cards {
		if card == token {
			return i
		}
	}
	return -1
}
