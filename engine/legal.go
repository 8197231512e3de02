package engine

import "sort"

// ActionType identifies a command a decision policy may issue.
type ActionType uint8

const (
	ActionDiscard ActionType = iota
	ActionDrawDeck
	ActionDrawDiscard
	ActionCallYaniv
)

func (t ActionType) String() string {
	switch t {
	case ActionDiscard:
		return "discard"
	case ActionDrawDeck:
		return "drawDeck"
	case ActionDrawDiscard:
		return "drawDiscard"
	case ActionCallYaniv:
		return "callYaniv"
	default:
		return "unknown"
	}
}

// Action is one legal command. Cards is populated for discards only.
type Action struct {
	Type  ActionType
	Cards []Card
}

// LegalActions enumerates the commands the player may issue right now.
// It returns nil when it is not the player's turn or the game is over.
// Ordering is deterministic: for the discard phase, singles by hand order,
// then rank sets, then suit runs, then the Yaniv call if eligible.
func (g *Game) LegalActions(player int) []Action {
	if player != g.current || g.gamePhase != PhasePlaying {
		return nil
	}
	switch g.turnPhase {
	case TurnDiscard:
		return g.legalDiscards(player)
	case TurnDraw:
		return g.legalDraws(player)
	default:
		return nil
	}
}

func (g *Game) legalDiscards(player int) []Action {
	hand := g.players[player].Hand
	var actions []Action

	// Single-card discards.
	for _, c := range hand {
		actions = append(actions, Action{Type: ActionDiscard, Cards: []Card{c}})
	}

	// Sets: every pair of equal rank, plus the full group for three or more.
	byRank := make(map[Rank][]Card)
	for _, c := range hand {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	ranks := make([]Rank, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	for _, r := range ranks {
		group := byRank[r]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				actions = append(actions, Action{Type: ActionDiscard, Cards: []Card{group[i], group[j]}})
			}
		}
		if len(group) >= 3 {
			actions = append(actions, Action{Type: ActionDiscard, Cards: append([]Card(nil), group...)})
		}
	}

	// Runs: per suit, the longest consecutive ascending run from each start.
	bySuit := make(map[Suit][]Card)
	for _, c := range hand {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	for s := SuitHearts; s <= SuitSpades; s++ {
		group := bySuit[s]
		if len(group) < 3 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Rank < group[j].Rank })
		for start := 0; start+2 < len(group); start++ {
			run := []Card{group[start]}
			for j := start + 1; j < len(group); j++ {
				if group[j].Value() == run[len(run)-1].Value()+1 {
					run = append(run, group[j])
				} else {
					break
				}
			}
			if len(run) >= 3 {
				actions = append(actions, Action{Type: ActionDiscard, Cards: run})
			}
		}
	}

	if g.CanCallYaniv(player) {
		actions = append(actions, Action{Type: ActionCallYaniv})
	}
	return actions
}

func (g *Game) legalDraws(player int) []Action {
	var actions []Action
	// The deck can produce a card directly or via a reshuffle.
	if g.deck.Len() > 0 || len(g.discard) > 1 {
		actions = append(actions, Action{Type: ActionDrawDeck})
	}
	if len(g.lastDiscards[1-player]) > 0 {
		actions = append(actions, Action{Type: ActionDrawDiscard})
	}
	return actions
}
