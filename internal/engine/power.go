package engine

// PowerTable is one of the two fixed rank orderings of Belote. Which table a
// suit uses is fixed by the contract for the whole deal.
type PowerTable int

const (
	NoTrumpTable PowerTable = iota
	AllTrumpTable
)

// Ordinal strength per rank, indexed by Rank in sequence order
// (7 8 9 10 J Q K A).
var (
	noTrumpPower  = [8]int{1, 2, 3, 7, 4, 5, 6, 8}
	allTrumpPower = [8]int{1, 2, 7, 5, 8, 3, 4, 6}

	noTrumpValue  = [8]int{0, 0, 0, 10, 2, 3, 4, 11}
	allTrumpValue = [8]int{0, 0, 14, 10, 20, 3, 4, 11}
)

// Power returns the ordinal strength of r under the table.
func (t PowerTable) Power(r Rank) int {
	if t == AllTrumpTable {
		return allTrumpPower[r]
	}
	return noTrumpPower[r]
}

// Value returns the scoring value of r under the table.
func (t PowerTable) Value(r Rank) int {
	if t == AllTrumpTable {
		return allTrumpValue[r]
	}
	return noTrumpValue[r]
}

// TopRank returns the strongest rank of the table.
func (t PowerTable) TopRank() Rank {
	if t == AllTrumpTable {
		return RankJ
	}
	return RankA
}

// Table returns the power table in force for the given suit under the
// contract: a suit contract puts its trump suit on the all-trump table and
// everything else on the no-trump table; NoTrump and AllTrump contracts use
// one table everywhere. Before any contract exists the no-trump table
// applies.
func (c Contract) Table(s Suit) PowerTable {
	switch c.Bid {
	case BidAllTrump:
		return AllTrumpTable
	case BidNoTrump, BidPass:
		return NoTrumpTable
	default:
		if trump, ok := c.Bid.TrumpSuit(); ok && trump == s {
			return AllTrumpTable
		}
		return NoTrumpTable
	}
}

// CardPower returns the ordinal strength of c within its own suit under the
// contract. Powers of cards from different suits are not comparable; trick
// resolution handles the trump-beats-all rule separately.
func (c Contract) CardPower(card Card) int {
	return c.Table(card.Suit).Power(card.Rank)
}

// CardValue returns the scoring value of the card under the contract.
func (c Contract) CardValue(card Card) int {
	return c.Table(card.Suit).Value(card.Rank)
}
