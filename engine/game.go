package engine

import "math/rand/v2"

// NumPlayers is the number of players in a game. The scoring and winner
// logic assume exactly two.
const NumPlayers = 2

// TurnPhase is the two-step per-turn cycle: the current player sheds a legal
// group (discard) and then acquires exactly one card (draw) before control
// passes to the next player.
type TurnPhase uint8

const (
	TurnDiscard TurnPhase = iota
	TurnDraw
)

func (p TurnPhase) String() string {
	switch p {
	case TurnDiscard:
		return "discard"
	case TurnDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// GamePhase tracks the game lifecycle.
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhaseRoundEnd
	PhaseGameEnd
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundEnd:
		return "roundEnd"
	case PhaseGameEnd:
		return "gameEnd"
	default:
		return "unknown"
	}
}

// playerState holds one player's hand and cumulative score.
type playerState struct {
	Name         string
	Hand         []Card
	Score        int
	YanivBlocked bool
}

// Game owns the canonical state of a single two-player Yaniv game.
type Game struct {
	rules   Rules
	players [NumPlayers]playerState
	deck    *Deck
	discard []Card

	current   int
	turnPhase TurnPhase
	gamePhase GamePhase
	round     int

	// lastDiscards records, per player, the group most recently discarded
	// by that player. Only the newest card of the opponent's group may be
	// drawn from the discard pile.
	lastDiscards  [NumPlayers][]Card
	lastDiscarder int

	winner int
	rng    *rand.Rand
}

// NewGame creates a game for the two named players, deals five cards each
// and seeds the discard pile with one card. The seed makes shuffles
// deterministic; the same seed replays the same game.
func NewGame(names [NumPlayers]string, seed uint64, rules Rules) *Game {
	g := &Game{
		rules:  rules,
		winner: -1,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for i := range g.players {
		g.players[i].Name = names[i]
	}
	g.startRound()
	return g
}

// startRound replaces the deck and hands for a fresh round. Player 0 always
// acts first.
func (g *Game) startRound() {
	g.deck = NewDeck(g.rng)
	for i := range g.players {
		g.players[i].Hand = g.deck.Draw(g.rules.HandSize)
	}
	g.discard = g.deck.Draw(1)
	for i := range g.lastDiscards {
		g.lastDiscards[i] = nil
	}
	g.lastDiscarder = -1
	g.round++
	g.current = 0
	g.turnPhase = TurnDiscard
	g.gamePhase = PhasePlaying
}

// Rules returns the rule settings the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// Round returns the 1-based round number.
func (g *Game) Round() int { return g.round }

// CurrentPlayer returns the index of the player who must act.
func (g *Game) CurrentPlayer() int { return g.current }

// DeckSize returns the number of cards remaining in the hidden supply.
func (g *Game) DeckSize() int { return g.deck.Len() }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.gamePhase == PhaseGameEnd }

// Winner returns the winning player index, or -1 while the game is running.
func (g *Game) Winner() int { return g.winner }

// CanCallYaniv reports whether the player's hand value is at or below the
// Yaniv threshold and the player is not blocked by a previous Assaf.
func (g *Game) CanCallYaniv(player int) bool {
	if player < 0 || player >= NumPlayers {
		return false
	}
	p := &g.players[player]
	return HandValue(p.Hand) <= g.rules.YanivThreshold && !p.YanivBlocked
}

// checkCommand validates the shared command contract: the game is running,
// the caller exists, it is their turn, and the turn phase matches.
func (g *Game) checkCommand(player int, phase TurnPhase) error {
	if player < 0 || player >= NumPlayers {
		return ErrNoSuchPlayer
	}
	if g.gamePhase == PhaseGameEnd {
		return ErrGameOver
	}
	if player != g.current {
		return ErrOutOfTurn
	}
	if g.turnPhase != phase {
		return ErrWrongPhase
	}
	return nil
}
