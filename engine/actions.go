package engine

import "fmt"

// Discard removes a legal group of cards from the caller's hand and appends
// it to the discard pile. It hard-errors on a turn or phase violation.
// An illegal combination, or cards not actually held, is a soft failure:
// false is returned and no state changes.
//
// On success the group is recorded as the caller's last discard (so the
// other player may later draw its newest card) and the turn phase moves to
// draw. The caller's position in turn order does not advance until they draw.
func (g *Game) Discard(player int, cards []Card) (bool, error) {
	if err := g.checkCommand(player, TurnDiscard); err != nil {
		return false, fmt.Errorf("discard: %w", err)
	}
	if len(cards) == 0 || !g.holdsAll(player, cards) || !IsValidDiscard(cards) {
		return false, nil
	}

	group := make([]Card, len(cards))
	copy(group, cards)
	for _, c := range group {
		g.removeFromHand(player, c)
	}
	g.discard = append(g.discard, group...)
	g.lastDiscards[player] = group
	g.lastDiscarder = player
	g.turnPhase = TurnDraw
	return true, nil
}

// DrawFromDeck draws exactly one card from the deck into the caller's hand,
// reshuffling the discard pile into the deck first if the deck is empty.
// It hard-errors on a turn or phase violation, and when no card can be
// produced even after a reshuffle.
func (g *Game) DrawFromDeck(player int) (Card, error) {
	if err := g.checkCommand(player, TurnDraw); err != nil {
		return Card{}, fmt.Errorf("draw from deck: %w", err)
	}
	if g.deck.Len() == 0 {
		g.reshuffleDiscard()
	}
	drawn := g.deck.Draw(1)
	if len(drawn) == 0 {
		return Card{}, fmt.Errorf("draw from deck: %w", ErrDeckExhausted)
	}
	g.players[player].Hand = append(g.players[player].Hand, drawn[0])
	g.finishDraw()
	return drawn[0], nil
}

// DrawFromDiscard draws the single eligible discard card into the caller's
// hand: the newest card of the group most recently discarded by the other
// player. A player can never draw their own last discard. Hard-errors on a
// turn or phase violation and when no eligible card exists.
func (g *Game) DrawFromDiscard(player int) (Card, error) {
	if err := g.checkCommand(player, TurnDraw); err != nil {
		return Card{}, fmt.Errorf("draw from discard: %w", err)
	}
	opp := 1 - player
	group := g.lastDiscards[opp]
	if len(group) == 0 {
		return Card{}, fmt.Errorf("draw from discard: %w", ErrNothingToDraw)
	}
	target := group[len(group)-1]

	idx := -1
	for i := len(g.discard) - 1; i >= 0; i-- {
		if g.discard[i] == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Card{}, fmt.Errorf("draw from discard: %w", ErrNothingToDraw)
	}

	g.discard = append(g.discard[:idx], g.discard[idx+1:]...)
	g.players[player].Hand = append(g.players[player].Hand, target)
	g.lastDiscards[opp] = nil
	g.finishDraw()
	return target, nil
}

// finishDraw closes the draw phase and passes control to the next player.
func (g *Game) finishDraw() {
	g.turnPhase = TurnDiscard
	g.current = (g.current + 1) % NumPlayers
}

// reshuffleDiscard moves all discard cards except the newest back into the
// deck and shuffles. The newest card stays behind as the new discard seed.
func (g *Game) reshuffleDiscard() {
	if len(g.discard) <= 1 {
		return
	}
	top := g.discard[len(g.discard)-1]
	g.deck.AddCards(g.discard[:len(g.discard)-1])
	g.deck.Shuffle()
	g.discard = []Card{top}

	// Last-discard records whose card just left the pile are void.
	for p := range g.lastDiscards {
		grp := g.lastDiscards[p]
		if len(grp) == 0 || grp[len(grp)-1] != top {
			g.lastDiscards[p] = nil
		}
	}
}

// holdsAll reports whether the player's hand contains every requested card,
// counting repeats in the request against the single copy a hand can hold.
func (g *Game) holdsAll(player int, cards []Card) bool {
	held := make(map[Card]int, len(g.players[player].Hand))
	for _, c := range g.players[player].Hand {
		held[c]++
	}
	for _, c := range cards {
		if held[c] == 0 {
			return false
		}
		held[c]--
	}
	return true
}

func (g *Game) removeFromHand(player int, card Card) {
	hand := g.players[player].Hand
	for i, c := range hand {
		if c == card {
			g.players[player].Hand = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}
