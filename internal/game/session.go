// Package game hosts engine instances for concurrent callers. The engine
// itself assumes single-writer access; a Session serializes commands with a
// per-game mutex, maps stable player identities onto engine seats, and logs
// every accepted command.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ysetbon/yaniv/engine"
)

// OnRoundEndFunc is called after every successful Yaniv resolution, with the
// per-player score deltas keyed by player identity.
type OnRoundEndFunc func(gameID uuid.UUID, assaf bool, scores map[uuid.UUID]int)

// OnGameEndFunc is called once when the game ends.
type OnGameEndFunc func(gameID uuid.UUID, winner uuid.UUID, finalScores map[uuid.UUID]int)

// Session wraps one engine.Game behind a mutex and uuid player identities.
type Session struct {
	ID uuid.UUID

	mu  sync.Mutex
	eng *engine.Game
	log *logrus.Entry

	seats  [engine.NumPlayers]uuid.UUID
	seatOf map[uuid.UUID]int

	actionIndex int

	// Lifecycle callbacks. Invoked synchronously while the session lock is
	// held; callbacks must not call back into the session.
	OnRoundEnd OnRoundEndFunc
	OnGameEnd  OnGameEndFunc
}

// NewSession creates a session with a freshly dealt game. Player identities
// are generated here and returned by PlayerIDs in seat order.
func NewSession(names [engine.NumPlayers]string, seed uint64, rules engine.Rules, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Session{
		ID:     uuid.New(),
		eng:    engine.NewGame(names, seed, rules),
		seatOf: make(map[uuid.UUID]int, engine.NumPlayers),
	}
	s.log = logger.WithField("game_id", s.ID)
	for i := range s.seats {
		id := uuid.New()
		s.seats[i] = id
		s.seatOf[id] = i
	}
	s.log.WithFields(logrus.Fields{
		"players": names,
		"seed":    seed,
	}).Info("game created")
	return s
}

// PlayerIDs returns the player identities in seat order (seat 0 acts first
// in every round).
func (s *Session) PlayerIDs() [engine.NumPlayers]uuid.UUID { return s.seats }

// SeatOf resolves a player identity to their engine seat.
func (s *Session) SeatOf(playerID uuid.UUID) (int, error) {
	seat, ok := s.seatOf[playerID]
	if !ok {
		return -1, fmt.Errorf("player %s is not in game %s", playerID, s.ID)
	}
	return seat, nil
}

// State returns an independent snapshot of the underlying game.
func (s *Session) State() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.State()
}

// CanCallYaniv reports whether the player may currently declare Yaniv.
func (s *Session) CanCallYaniv(playerID uuid.UUID) (bool, error) {
	seat, err := s.SeatOf(playerID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.CanCallYaniv(seat), nil
}

// LegalActions enumerates the commands the player may issue right now.
func (s *Session) LegalActions(playerID uuid.UUID) ([]engine.Action, error) {
	seat, err := s.SeatOf(playerID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.LegalActions(seat), nil
}

// Discard forwards a discard command for the player.
func (s *Session) Discard(playerID uuid.UUID, cards []engine.Card) (bool, error) {
	seat, err := s.SeatOf(playerID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.eng.Discard(seat, cards)
	if err != nil {
		return false, err
	}
	if ok {
		s.logAction(playerID, "discard", logrus.Fields{"cards": fmt.Sprint(cards)})
	}
	return ok, nil
}

// DrawFromDeck forwards a deck draw for the player.
func (s *Session) DrawFromDeck(playerID uuid.UUID) (engine.Card, error) {
	seat, err := s.SeatOf(playerID)
	if err != nil {
		return engine.Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.eng.DrawFromDeck(seat)
	if err != nil {
		return engine.Card{}, err
	}
	s.logAction(playerID, "draw_deck", nil)
	return card, nil
}

// DrawFromDiscard forwards a discard-pile draw for the player.
func (s *Session) DrawFromDiscard(playerID uuid.UUID) (engine.Card, error) {
	seat, err := s.SeatOf(playerID)
	if err != nil {
		return engine.Card{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.eng.DrawFromDiscard(seat)
	if err != nil {
		return engine.Card{}, err
	}
	s.logAction(playerID, "draw_discard", logrus.Fields{"card": card.String()})
	return card, nil
}

// CallYaniv forwards a Yaniv call and fires the lifecycle callbacks when the
// call resolves.
func (s *Session) CallYaniv(playerID uuid.UUID) (engine.CallResult, error) {
	seat, err := s.SeatOf(playerID)
	if err != nil {
		return engine.CallResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.eng.CallYaniv(seat)
	if err != nil {
		return engine.CallResult{}, err
	}
	if !res.Success {
		return res, nil
	}

	deltas := make(map[uuid.UUID]int, engine.NumPlayers)
	for seatIdx, delta := range res.Scores {
		deltas[s.seats[seatIdx]] = delta
	}
	s.logAction(playerID, "call_yaniv", logrus.Fields{
		"assaf":  res.Assaf,
		"deltas": fmt.Sprint(res.Scores),
	})

	if s.OnRoundEnd != nil {
		s.OnRoundEnd(s.ID, res.Assaf, deltas)
	}

	state := s.eng.State()
	if state.GamePhase == engine.PhaseGameEnd {
		finals := make(map[uuid.UUID]int, engine.NumPlayers)
		for _, p := range state.Players {
			finals[s.seats[p.ID]] = p.Score
		}
		winner := s.seats[state.Winner]
		s.log.WithFields(logrus.Fields{
			"winner": winner,
			"scores": fmt.Sprint(finals),
		}).Info("game ended")
		if s.OnGameEnd != nil {
			s.OnGameEnd(s.ID, winner, finals)
		}
	}
	return res, nil
}

// logAction records an accepted command with a sequential index so a log
// stream reconstructs the exact command order.
func (s *Session) logAction(actor uuid.UUID, action string, fields logrus.Fields) {
	s.actionIndex++
	entry := s.log.WithFields(logrus.Fields{
		"action_index": s.actionIndex,
		"actor":        actor,
		"action":       action,
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Debug("action applied")
}
