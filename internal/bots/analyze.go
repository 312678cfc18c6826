package bots

import "github.com/mirosoltan/belote/internal/engine"

// label classifies one suit holding's strategic strength, judged from which
// of the suit's top three cards are held and how long the holding is.
type label int

const (
	commanding label = iota // both top cards
	controlling             // the top card with length behind it
	strongBlock             // the second card, well guarded
	long                    // the third card in a long suit
	blocking                // the second card, barely guarded
	weak
)

// labelOrder is the priority in which the card strategy tries suits.
var labelOrder = [...]label{commanding, controlling, strongBlock, long, blocking, weak}

// behavior tunes bidding between reckless and cautious, from the score gap.
type behavior int

const (
	normal behavior = iota
	aggressive
	defensive
	desperate
)

// behaviorFor derives the team's stance: desperate once the enemy is within
// ten points of game, defensive when trailing by more than thirty, aggressive
// when leading by more than thirty. With both sides at the threshold waiting
// the enemy out is pointless, so the stance turns aggressive instead: a
// table where all four seats sit on their hands never ends.
func behaviorFor(m engine.MatchState, team engine.Team) behavior {
	friend, enemy := m.Scores[team], m.Scores[1-team]
	switch {
	case enemy >= engine.WinningScore-10 && friend >= engine.WinningScore-10:
		return aggressive
	case enemy >= engine.WinningScore-10:
		return desperate
	case friend-enemy < -30:
		return defensive
	case friend-enemy > 30:
		return aggressive
	default:
		return normal
	}
}

// suitStrength is the bidding-time evaluation of one suit holding.
type suitStrength struct {
	noTrump  int // summed no-trump ordinal powers
	allTrump int // summed all-trump ordinal powers
	label    label
	count    int
}

// classifySuit evaluates the cards of one suit (all of the same suit) under
// the contract in force. Power sums use both fixed tables; the label judges
// the top three cards of whichever table governs the suit right now.
func classifySuit(cards []engine.Card, contract engine.Contract) (suitStrength, bool) {
	if len(cards) == 0 {
		return suitStrength{}, false
	}
	table := contract.Table(cards[0].Suit)

	if len(cards) == 1 {
		r := cards[0].Rank
		switch r {
		case engine.RankJ:
			return suitStrength{noTrump: 0, allTrump: 3, label: weak, count: 1}, true
		case engine.RankA:
			return suitStrength{noTrump: 3, allTrump: 0, label: weak, count: 1}, true
		default:
			return suitStrength{noTrump: 1, allTrump: 1, label: weak, count: 1}, true
		}
	}

	var s suitStrength
	s.count = len(cards)
	var first, second, third bool
	for _, c := range cards {
		s.noTrump += engine.NoTrumpTable.Power(c.Rank)
		s.allTrump += engine.AllTrumpTable.Power(c.Rank)
		switch table.Power(c.Rank) {
		case 8:
			first = true
		case 7:
			second = true
		case 6:
			third = true
		}
	}

	switch {
	case first && second:
		s.label = commanding
	case first && ((third && len(cards) > 2) || len(cards) > 3):
		s.label = controlling
	case first:
		s.label = weak
	case second && len(cards) > 2:
		s.label = strongBlock
	case second:
		s.label = blocking
	case third && len(cards) > 3:
		s.label = long
	default:
		s.label = weak
	}
	return s, true
}

// handStrength evaluates the whole hand: per-suit strengths, the dominant
// suit (all-trump power above 17, strongest such suit wins), and the summed
// no-trump / all-trump powers.
func handStrength(cards []engine.Card, contract engine.Contract) (map[engine.Suit]suitStrength, engine.Suit, bool, int, int) {
	bySuit := make(map[engine.Suit]suitStrength, 4)
	var dominant engine.Suit
	haveDominant := false
	var ntp, atp int

	for _, suit := range []engine.Suit{engine.SuitClubs, engine.SuitDiamonds, engine.SuitHearts, engine.SuitSpades} {
		s, ok := classifySuit(suitCards(cards, suit), contract)
		if !ok {
			continue
		}
		bySuit[suit] = s
		ntp += s.noTrump
		atp += s.allTrump
		if s.allTrump > 17 && (!haveDominant || s.allTrump > bySuit[dominant].allTrump) {
			dominant = suit
			haveDominant = true
		}
	}
	return bySuit, dominant, haveDominant, ntp, atp
}

// memory is what a team can legitimately know mid-deal: which ranks of each
// suit have hit the table, which suits the partnership looks strong in and
// which the opponents are fighting for. Rebuilt from the match state on
// every decision.
type memory struct {
	passed    map[engine.Suit][]engine.Rank
	partner   []engine.Suit
	contested []engine.Suit
}

func observe(m engine.MatchState, seat int) memory {
	mem := memory{passed: make(map[engine.Suit][]engine.Rank, 4)}
	for _, p := range m.PlayLog {
		mem.passed[p.Card.Suit] = append(mem.passed[p.Card.Suit], p.Card.Rank)
	}

	team := engine.TeamOf(seat)
	for _, br := range m.BidHistory {
		suit, ok := br.Bid.TrumpSuit()
		if !ok {
			continue
		}
		if engine.TeamOf(br.Seat) == team {
			mem.partner = appendSuit(mem.partner, suit)
		} else {
			mem.contested = appendSuit(mem.contested, suit)
		}
	}
	if trump, ok := m.Trump(); ok {
		if engine.TeamOf(m.Contract.Declarer) == team {
			mem.partner = appendSuit(mem.partner, trump)
		} else {
			mem.contested = appendSuit(mem.contested, trump)
		}
	}
	// Whatever the partner led to the first trick is presumed safe.
	if len(m.PlayLog) > 0 && m.PlayLog[0].Seat == engine.Partner(seat) {
		mem.partner = appendSuit(mem.partner, m.PlayLog[0].Card.Suit)
	}
	return mem
}

// strongestOutstanding reports the strongest rank of the suit not yet seen on
// the table. The second return is false while the suit is untracked (nothing
// of it has been played), which the strategy reads as "no information yet".
func (mem memory) strongestOutstanding(suit engine.Suit, contract engine.Contract) (engine.Card, bool) {
	seen, tracked := mem.passed[suit]
	if !tracked {
		return engine.Card{}, false
	}
	table := contract.Table(suit)
	best := engine.Card{}
	found := false
	for r := engine.Rank7; r <= engine.RankA; r++ {
		if containsRank(seen, r) {
			continue
		}
		if !found || table.Power(r) > table.Power(best.Rank) {
			best = engine.Card{Suit: suit, Rank: r}
			found = true
		}
	}
	return best, found
}

// savedCards marks the cards worth protecting from a low discard: the top
// card of each suit under its table, every card of a blocking suit, and the
// halves of an undeclared belote.
func savedCards(m engine.MatchState, seat int, labels map[engine.Suit]label) map[engine.Card]bool {
	saved := make(map[engine.Card]bool)
	h := m.Hands[seat]
	for _, c := range h.Cards {
		table := m.Contract.Table(c.Suit)
		if c.Rank == table.TopRank() {
			saved[c] = true
		}
		if labels[c.Suit] == blocking {
			saved[c] = true
		}
		if c.Rank == engine.RankK || c.Rank == engine.RankQ {
			for _, b := range h.Belotes {
				if b.Suit == c.Suit {
					saved[c] = true
				}
			}
		}
	}
	return saved
}

func suitCards(cards []engine.Card, suit engine.Suit) []engine.Card {
	var out []engine.Card
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func appendSuit(suits []engine.Suit, s engine.Suit) []engine.Suit {
	for _, have := range suits {
		if have == s {
			return suits
		}
	}
	return append(suits, s)
}

func containsSuit(suits []engine.Suit, s engine.Suit) bool {
	for _, have := range suits {
		if have == s {
			return true
		}
	}
	return false
}

func containsRank(ranks []engine.Rank, r engine.Rank) bool {
	for _, have := range ranks {
		if have == r {
			return true
		}
	}
	return false
}

func containsCard(cards []engine.Card, c engine.Card) bool {
	for _, have := range cards {
		if have == c {
			return true
		}
	}
	return false
}

func lowestCard(cards []engine.Card, contract engine.Contract) (engine.Card, bool) {
	if len(cards) == 0 {
		return engine.Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if contract.CardPower(c) < contract.CardPower(best) {
			best = c
		}
	}
	return best, true
}

func highestCard(cards []engine.Card, contract engine.Contract) (engine.Card, bool) {
	if len(cards) == 0 {
		return engine.Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if contract.CardPower(c) > contract.CardPower(best) {
			best = c
		}
	}
	return best, true
}
