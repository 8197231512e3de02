package engine

import (
	"fmt"
	"strings"
)

// ParseCard parses the compact card notation produced by Card.String:
// a rank (A, 2-10, J, Q, K) followed by a suit letter (H, D, C, S),
// e.g. "AS", "10H", "QD". Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'H':
		suit = SuitHearts
	case 'D':
		suit = SuitDiamonds
	case 'C':
		suit = SuitClubs
	case 'S':
		suit = SuitSpades
	default:
		return Card{}, fmt.Errorf("unknown suit in %q", s)
	}

	var rank Rank
	switch rs := s[:len(s)-1]; rs {
	case "A":
		rank = RankAce
	case "J":
		rank = RankJack
	case "Q":
		rank = RankQueen
	case "K":
		rank = RankKing
	case "10", "T":
		rank = RankTen
	default:
		if len(rs) == 1 && rs[0] >= '2' && rs[0] <= '9' {
			rank = Rank(rs[0] - '0')
		} else {
			return Card{}, fmt.Errorf("unknown rank in %q", s)
		}
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a whitespace-separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards given")
	}
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
