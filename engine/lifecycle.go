package engine

import "fmt"

// CallResult reports the outcome of a Yaniv call.
type CallResult struct {
	// Success is false when the caller was not eligible; nothing changed.
	Success bool
	// Assaf is true when another player's hand value was at or below the
	// caller's, turning the call against them.
	Assaf bool
	// Scores holds the per-player score delta applied this round, before
	// the multiple-of-50 rollback.
	Scores map[int]int
}

// CallYaniv resolves a Yaniv call by the current player in place of a
// discard. It hard-errors on a turn or phase violation. An ineligible call
// (hand value above the threshold, or the caller is blocked) is a soft
// failure: Success is false and no state changes.
//
// On success the round is scored: an Assaf'd caller takes the penalty and
// is blocked from calling next round, players tied for the lowest hand take
// nothing, everyone else takes their own hand value. Any score landing on
// an exact positive multiple of the rollback step is reduced by one step.
// The game then either ends (a score reached the target; the other player
// wins) or a fresh round is dealt.
func (g *Game) CallYaniv(player int) (CallResult, error) {
	if err := g.checkCommand(player, TurnDiscard); err != nil {
		return CallResult{}, fmt.Errorf("call yaniv: %w", err)
	}
	if !g.CanCallYaniv(player) {
		return CallResult{Success: false}, nil
	}

	var values [NumPlayers]int
	for p := range g.players {
		values[p] = HandValue(g.players[p].Hand)
	}

	assaf := false
	lowest := values[player]
	for p, v := range values {
		if p != player && v <= values[player] {
			assaf = true
		}
		if v < lowest {
			lowest = v
		}
	}

	deltas := make(map[int]int, NumPlayers)
	for p := range g.players {
		var delta int
		switch {
		case assaf && p == player:
			delta = g.rules.AssafPenalty
			g.players[p].YanivBlocked = true
		case values[p] == lowest:
			delta = 0
			g.players[p].YanivBlocked = false
		default:
			delta = values[p]
			g.players[p].YanivBlocked = false
		}
		deltas[p] = delta
		g.players[p].Score += delta

		// Exact-equality rollback: landing on 50, 100, 150, ... costs 50.
		if s := g.players[p].Score; s > 0 && s%g.rules.RollbackStep == 0 {
			g.players[p].Score -= g.rules.RollbackStep
		}
	}

	g.gamePhase = PhaseRoundEnd

	loser := -1
	for p := range g.players {
		if g.players[p].Score >= g.rules.TargetScore {
			loser = p
		}
	}
	if loser >= 0 {
		g.gamePhase = PhaseGameEnd
		g.winner = (loser + 1) % NumPlayers
	} else {
		g.startRound()
	}

	return CallResult{Success: true, Assaf: assaf, Scores: deltas}, nil
}
