package engine

import "math/rand/v2"

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is a shuffled supply of cards. The top of the deck is the last
// element of the backing slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a full 52-card deck and shuffles it with the given source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for s := SuitHearts; s <= SuitSpades; s++ {
		for r := RankAce; r <= RankKing; r++ {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
	d.Shuffle()
	return d
}

// Shuffle reorders the deck in place using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns up to n cards from the top of the deck.
// It returns fewer than n cards if the deck is exhausted.
func (d *Deck) Draw(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Card, n)
	for i := 0; i < n; i++ {
		d.cards, out[i] = d.cards[:len(d.cards)-1], d.cards[len(d.cards)-1]
	}
	return out
}

// AddCards appends cards to the deck. Used when the discard pile is
// reshuffled back into the supply.
func (d *Deck) AddCards(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int { return len(d.cards) }
