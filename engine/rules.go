package engine

import "sort"

// Rules holds configurable game rule settings.
type Rules struct {
	HandSize       int // cards dealt to each player per round
	YanivThreshold int // maximum hand value that allows calling Yaniv
	AssafPenalty   int // points added to an Assaf'd caller
	RollbackStep   int // a score landing on an exact positive multiple is reduced by this
	TargetScore    int // any score at or above this ends the game
}

// DefaultRules returns the standard two-player Yaniv rules.
func DefaultRules() Rules {
	return Rules{
		HandSize:       5,
		YanivThreshold: 7,
		AssafPenalty:   30,
		RollbackStep:   50,
		TargetScore:    101,
	}
}

// HandValue returns the sum of the card values in the group.
func HandValue(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

// IsSet reports whether the group is two or more cards of identical rank.
func IsSet(cards []Card) bool {
	if len(cards) < 2 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// IsRun reports whether the group is three or more cards of one suit whose
// values are strictly consecutive ascending after sorting. There is no
// wraparound: King does not connect back to Ace.
func IsRun(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// IsValidDiscard reports whether the group is a legal discard: a single
// card, a set, or a run.
func IsValidDiscard(cards []Card) bool {
	return len(cards) == 1 || IsSet(cards) || IsRun(cards)
}
