package engine

import (
	"math/rand"
	"testing"
)

func TestNewDeckHoldsEveryCardOnce(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	if d.Len() != DeckSize {
		t.Fatalf("deck size = %d, want %d", d.Len(), DeckSize)
	}
	seen := map[Card]bool{}
	for d.Len() > 0 {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("deal: %v", err)
		}
		if seen[c] {
			t.Fatalf("card %v dealt twice", c)
		}
		seen[c] = true
	}
	if _, err := d.Deal(); err != ErrEmptyDeck {
		t.Fatalf("deal from empty deck: err = %v, want ErrEmptyDeck", err)
	}
}

func TestShuffleAndCutPreserveTheDeck(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(7)))
	d.Shuffle()
	d.Cut()
	if d.Len() != DeckSize {
		t.Fatalf("deck size after shuffle+cut = %d", d.Len())
	}
	seen := map[Card]bool{}
	for d.Len() > 0 {
		c, _ := d.Deal()
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("shuffle+cut lost cards: %d distinct", len(seen))
	}
}

func TestSeededShuffleReplays(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(42)))
	b := NewDeck(rand.New(rand.NewSource(42)))
	a.Shuffle()
	b.Shuffle()
	for a.Len() > 0 {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		if ca != cb {
			t.Fatalf("same seed produced different shuffles: %v vs %v", ca, cb)
		}
	}
}

func TestCollectRestocks(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(3)))
	var out []Card
	for i := 0; i < 5; i++ {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("deal: %v", err)
		}
		out = append(out, c)
	}
	d.Collect(out)
	if d.Len() != DeckSize {
		t.Fatalf("deck size after collect = %d, want %d", d.Len(), DeckSize)
	}
}
