package engine

import (
	"math/rand/v2"
	"testing"
)

func findAction(actions []Action, typ ActionType) bool {
	for _, a := range actions {
		if a.Type == typ {
			return true
		}
	}
	return false
}

func TestLegalActionsDiscardPhase(t *testing.T) {
	g := newTestGame(t)
	g.players[0].Hand = []Card{
		c(RankFive, SuitHearts),
		c(RankFive, SuitSpades),
		c(RankFive, SuitClubs),
		c(RankSix, SuitHearts),
		c(RankSeven, SuitHearts),
	}

	actions := g.LegalActions(0)

	singles, pairs, triples, runs, calls := 0, 0, 0, 0, 0
	for _, a := range actions {
		switch {
		case a.Type == ActionCallYaniv:
			calls++
		case a.Type != ActionDiscard:
			t.Errorf("unexpected action type %s in discard phase", a.Type)
		case len(a.Cards) == 1:
			singles++
		case IsSet(a.Cards) && len(a.Cards) == 2:
			pairs++
		case IsSet(a.Cards) && len(a.Cards) == 3:
			triples++
		case IsRun(a.Cards):
			runs++
		default:
			t.Errorf("illegal enumerated discard %v", a.Cards)
		}
	}
	if singles != 5 {
		t.Errorf("singles: want 5, got %d", singles)
	}
	if pairs != 3 {
		t.Errorf("pairs of fives: want 3, got %d", pairs)
	}
	if triples != 1 {
		t.Errorf("triples: want 1, got %d", triples)
	}
	if runs != 1 {
		t.Errorf("runs (5H-6H-7H): want 1, got %d", runs)
	}
	if calls != 0 {
		t.Errorf("hand value 28: Yaniv must not be offered, got %d", calls)
	}

	// Every enumerated discard must actually be accepted.
	for _, a := range actions {
		if a.Type != ActionDiscard {
			continue
		}
		if !g.holdsAll(0, a.Cards) || !IsValidDiscard(a.Cards) {
			t.Errorf("enumerated discard %v is not legal", a.Cards)
		}
	}
}

func TestLegalActionsIncludeYanivCall(t *testing.T) {
	g := newTestGame(t)
	g.players[0].Hand = []Card{c(RankAce, SuitSpades), c(RankTwo, SuitHearts)} // value 3

	if !findAction(g.LegalActions(0), ActionCallYaniv) {
		t.Error("value 3 hand: Yaniv call should be enumerated")
	}

	g.players[0].YanivBlocked = true
	if findAction(g.LegalActions(0), ActionCallYaniv) {
		t.Error("blocked player: Yaniv call must not be enumerated")
	}
}

func TestLegalActionsDrawPhase(t *testing.T) {
	g := newTestGame(t)
	if ok, err := g.Discard(0, []Card{g.players[0].Hand[0]}); err != nil || !ok {
		t.Fatalf("Discard: ok=%v err=%v", ok, err)
	}

	actions := g.LegalActions(0)
	if !findAction(actions, ActionDrawDeck) {
		t.Error("deck draw should be offered")
	}
	// No opponent record yet: the pile is not drawable.
	if findAction(actions, ActionDrawDiscard) {
		t.Error("discard draw must not be offered without an opponent record")
	}

	if _, err := g.DrawFromDeck(0); err != nil {
		t.Fatalf("DrawFromDeck: %v", err)
	}
	if ok, err := g.Discard(1, []Card{g.players[1].Hand[0]}); err != nil || !ok {
		t.Fatalf("Discard: ok=%v err=%v", ok, err)
	}
	if !findAction(g.LegalActions(1), ActionDrawDiscard) {
		t.Error("discard draw should be offered once the opponent has a record")
	}
}

func TestLegalActionsOffTurn(t *testing.T) {
	g := newTestGame(t)
	if got := g.LegalActions(1); got != nil {
		t.Errorf("off-turn actions: want nil, got %v", got)
	}
}

// TestRandomPlayoutConservesCards drives full games picking uniformly among
// legal actions and checks the core invariants after every command.
func TestRandomPlayoutConservesCards(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		g := NewGame([NumPlayers]string{"Alice", "Bob"}, seed, DefaultRules())
		rng := rand.New(rand.NewPCG(seed, ^seed))

		for step := 0; step < 2000 && !g.IsOver(); step++ {
			player := g.CurrentPlayer()
			actions := g.LegalActions(player)
			if len(actions) == 0 {
				t.Fatalf("seed %d step %d: no legal actions", seed, step)
			}
			a := actions[rng.IntN(len(actions))]

			var err error
			switch a.Type {
			case ActionDiscard:
				var ok bool
				ok, err = g.Discard(player, a.Cards)
				if err == nil && !ok {
					t.Fatalf("seed %d step %d: enumerated discard %v rejected", seed, step, a.Cards)
				}
			case ActionDrawDeck:
				_, err = g.DrawFromDeck(player)
			case ActionDrawDiscard:
				_, err = g.DrawFromDiscard(player)
			case ActionCallYaniv:
				var res CallResult
				res, err = g.CallYaniv(player)
				if err == nil && !res.Success {
					t.Fatalf("seed %d step %d: enumerated Yaniv call rejected", seed, step)
				}
			}
			if err != nil {
				t.Fatalf("seed %d step %d: %s failed: %v", seed, step, a.Type, err)
			}

			if total := totalCards(g); total != DeckSize {
				t.Fatalf("seed %d step %d: card conservation broken: %d", seed, step, total)
			}
		}
	}
}
