package engine

// PlayerState is a read-only view of one player.
type PlayerState struct {
	ID           int
	Name         string
	Hand         []Card
	HandValue    int
	Score        int
	YanivBlocked bool
}

// State is a structurally independent snapshot of the game. Every slice and
// map is a fresh copy; mutating a snapshot cannot corrupt the engine.
type State struct {
	Players       []PlayerState
	CurrentPlayer int
	DeckSize      int
	DiscardPile   []Card
	GamePhase     GamePhase
	TurnPhase     TurnPhase
	Round         int
	LastDiscarder int           // -1 before the first discard of a round
	LastDiscards  map[int][]Card // player index -> their most recent discard group
	Winner        int            // -1 while the game is running
}

// State returns a snapshot of the current game.
func (g *Game) State() State {
	s := State{
		Players:       make([]PlayerState, NumPlayers),
		CurrentPlayer: g.current,
		DeckSize:      g.deck.Len(),
		DiscardPile:   append([]Card(nil), g.discard...),
		GamePhase:     g.gamePhase,
		TurnPhase:     g.turnPhase,
		Round:         g.round,
		LastDiscarder: g.lastDiscarder,
		LastDiscards:  make(map[int][]Card, NumPlayers),
		Winner:        g.winner,
	}
	for i := range g.players {
		p := &g.players[i]
		s.Players[i] = PlayerState{
			ID:           i,
			Name:         p.Name,
			Hand:         append([]Card(nil), p.Hand...),
			HandValue:    HandValue(p.Hand),
			Score:        p.Score,
			YanivBlocked: p.YanivBlocked,
		}
	}
	for i, grp := range g.lastDiscards {
		if len(grp) > 0 {
			s.LastDiscards[i] = append([]Card(nil), grp...)
		}
	}
	return s
}
