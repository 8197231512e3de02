// Package engine implements the Yaniv card game rules.
//
// The engine is a synchronous, in-process command/query object. A caller
// reads a snapshot via State, decides on an action, and issues exactly one
// command per turn phase. Every command validates completely before mutating,
// so a failed command never leaves the game partially applied. The engine
// owns no goroutines and no globals; a host embedding it in a concurrent
// setting must serialize commands per game instance.
package engine

import "fmt"

// Suit identifies one of the four french suits.
type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// Rank is the card rank, ordered Ace (1) through King (13).
type Rank int

const (
	RankAce Rank = iota + 1
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
)

func (r Rank) String() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		if r >= RankTwo && r <= RankTen {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card is an immutable suit/rank pair. Cards are comparable values; a game
// sources every card from a single 52-card deck, so duplicates cannot occur
// inside a hand.
type Card struct {
	Suit Suit
	Rank Rank
}

// Value returns the point value of the card: the rank's ordinal position,
// A=1 through K=13. Face cards are not capped at 10.
func (c Card) Value() int { return int(c.Rank) }

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
