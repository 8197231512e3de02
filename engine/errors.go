package engine

import "errors"

// Hard errors indicate a caller-side contract violation. They never leave
// the game state mutated. Expected, recoverable outcomes (an illegal discard
// combination, an ineligible Yaniv call) are reported as soft failures
// instead: a false return with a nil error.
var (
	// ErrGameOver is returned by any command issued after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNoSuchPlayer is returned for a player index outside the game.
	ErrNoSuchPlayer = errors.New("no such player")

	// ErrOutOfTurn is returned when a player acts on another player's turn.
	ErrOutOfTurn = errors.New("not your turn")

	// ErrWrongPhase is returned when a command does not match the turn phase.
	ErrWrongPhase = errors.New("wrong turn phase")

	// ErrNothingToDraw is returned by DrawFromDiscard when no opponent
	// discard is eligible.
	ErrNothingToDraw = errors.New("no eligible discard to draw")

	// ErrDeckExhausted is returned when the deck is empty and the discard
	// pile holds too few cards to reshuffle.
	ErrDeckExhausted = errors.New("deck exhausted and discard pile cannot be reshuffled")
)
