package engine

import "math/rand"

// Deck is the 32-card Belote deck (ranks 7..A of each suit). It is owned by
// the match: shuffled and cut between deals, emptied by dealing and restocked
// by collecting winnings.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a full deck in suit/rank order. The randomness source is
// injected so tests can replay exact shuffles.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for _, s := range allSuits {
		for r := Rank7; r <= RankA; r++ {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
	return d
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Shuffle applies a uniform random permutation. Called once per deal before
// dealing.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Cut splits the deck at the midpoint and swaps the halves. A fixed
// perturbation performed between deals, never before the first.
func (d *Deck) Cut() {
	half := len(d.cards) / 2
	cut := make([]Card, 0, len(d.cards))
	cut = append(cut, d.cards[half:]...)
	cut = append(cut, d.cards[:half]...)
	d.cards = cut
}

// Deal removes and returns the top card. ErrEmptyDeck signals an accounting
// bug: deal counts are invariant-checked and must never exhaust the deck
// unexpectedly.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Collect appends returned cards. Order is irrelevant: the next operation is
// always Shuffle or Cut.
func (d *Deck) Collect(cards []Card) {
	d.cards = append(d.cards, cards...)
}
