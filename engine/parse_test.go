package engine

import "testing"

func TestParseCardRoundTrip(t *testing.T) {
	d := NewDeck(newTestRNG(9))
	for _, card := range d.Draw(DeckSize) {
		parsed, err := ParseCard(card.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", card.String(), err)
		}
		if parsed != card {
			t.Errorf("round trip: want %v, got %v", card, parsed)
		}
	}
}

func TestParseCardInputs(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{"AS", Card{Suit: SuitSpades, Rank: RankAce}, false},
		{"as", Card{Suit: SuitSpades, Rank: RankAce}, false},
		{" 10h ", Card{Suit: SuitHearts, Rank: RankTen}, false},
		{"TD", Card{Suit: SuitDiamonds, Rank: RankTen}, false},
		{"QC", Card{Suit: SuitClubs, Rank: RankQueen}, false},
		{"", Card{}, true},
		{"A", Card{}, true},
		{"1S", Card{}, true},
		{"AX", Card{}, true},
		{"11H", Card{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCard(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AS 2S 3S")
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	if len(cards) != 3 || !IsRun(cards) {
		t.Errorf("want the A-2-3 spade run, got %v", cards)
	}
	if _, err := ParseCards(""); err == nil {
		t.Error("empty input should error")
	}
	if _, err := ParseCards("AS ZZ"); err == nil {
		t.Error("bad card in list should error")
	}
}
