package bots

import "github.com/mirosoltan/belote/internal/engine"

// chooseCard picks the card for the seat's turn: a leading plan when opening
// the trick, a responding plan otherwise. Whatever the plan yields is
// checked against the legal set; a plan that picked an unplayable card
// degrades to the cheapest legal card.
func (s *Strategy) chooseCard(m engine.MatchState, seat int) engine.Action {
	legal := engine.LegalCards(m, seat)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}

	var card engine.Card
	if len(m.Trick.Plays) == 0 {
		card = s.lead(m, seat)
	} else {
		card = s.follow(m, seat)
	}
	if !containsCard(legal, card) {
		card = cheapest(legal, m.Contract, savedFor(m, seat))
	}
	return engine.Action{Type: engine.ActionPlayCard, Card: &card}
}

// lead walks the suit labels in priority order and plays the first plan that
// fits: demand with a live top card, bore a guarded suit to flush the cards
// above, switch to a suit the partner holds, cash a belote, or discard low.
// Suits whose top card is known to be gone are downgraded and the walk
// continues; a second, last-resort pass may bore a blocking suit rather than
// throw away a good card.
func (s *Strategy) lead(m engine.MatchState, seat int) engine.Card {
	hand := m.Hands[seat].Cards
	contract := m.Contract
	mem := observe(m, seat)

	labels := make(map[engine.Suit]label, 4)
	for _, suit := range []engine.Suit{engine.SuitClubs, engine.SuitDiamonds, engine.SuitHearts, engine.SuitSpades} {
		if st, ok := classifySuit(suitCards(hand, suit), contract); ok {
			labels[suit] = st.label
			if st.label == commanding || st.label == controlling {
				mem.partner = appendSuit(mem.partner, suit)
			}
		}
	}
	saved := savedCards(m, seat, labels)

	demand := func(suit engine.Suit) (engine.Card, bool) {
		return highestCard(suitCards(hand, suit), contract)
	}
	bore := func(suit engine.Suit) (engine.Card, bool) {
		cards := suitCards(hand, suit)
		top, _ := highestCard(cards, contract)
		var rest []engine.Card
		for _, c := range cards {
			if c != top {
				rest = append(rest, c)
			}
		}
		return highestCard(rest, contract)
	}
	belote := func() (engine.Card, bool) {
		return beloteCard(m.Hands[seat], engine.Suit(0), false)
	}
	partnerLead := func(avoid engine.Suit) (engine.Card, bool) {
		for _, suit := range mem.partner {
			if suit == avoid {
				continue
			}
			if c, ok := lowestCard(suitCards(hand, suit), contract); ok {
				return c, true
			}
		}
		return engine.Card{}, false
	}
	otherPartnerSuit := func(suit engine.Suit) bool {
		for _, ps := range mem.partner {
			if ps != suit {
				return true
			}
		}
		return false
	}
	topIsLive := func(suit engine.Suit) (inHand, tracked bool) {
		out, found := mem.strongestOutstanding(suit, contract)
		if !found {
			return false, false
		}
		return containsCard(hand, out), true
	}

	for round := 0; round < 2; round++ {
		lastResort := round == 1
		order := labelOrder[:]
		if lastResort {
			order = []label{blocking}
		}
		for _, stance := range order {
			for _, suit := range []engine.Suit{engine.SuitClubs, engine.SuitDiamonds, engine.SuitHearts, engine.SuitSpades} {
				if labels[suit] != stance || len(suitCards(hand, suit)) == 0 {
					continue
				}
				inHand, tracked := topIsLive(suit)
				count := len(suitCards(hand, suit))

				switch stance {
				case commanding:
					if !tracked || inHand {
						if c, ok := demand(suit); ok {
							return c
						}
					}
					labels[suit] = weak
					if c, ok := belote(); ok {
						return c
					}

				case controlling:
					if !tracked || inHand {
						if c, ok := demand(suit); ok {
							return c
						}
					}
					labels[suit] = weak
					if otherPartnerSuit(suit) {
						if c, ok := partnerLead(suit); ok {
							return c
						}
					}
					if c, ok := belote(); ok {
						return c
					}
					if count > 1 {
						if c, ok := bore(suit); ok {
							return c
						}
					}

				case strongBlock:
					if tracked && inHand {
						if c, ok := demand(suit); ok {
							return c
						}
					}
					if len(mem.partner) > 1 {
						if c, ok := partnerLead(suit); ok {
							return c
						}
					}
					if c, ok := belote(); ok {
						return c
					}
					if count > 2 {
						if c, ok := bore(suit); ok {
							return c
						}
					}
					if count > 1 {
						labels[suit] = blocking
						if c, ok := bore(suit); ok {
							return c
						}
					}

				case long:
					if tracked && inHand {
						if c, ok := demand(suit); ok {
							return c
						}
					}
					if c, ok := belote(); ok {
						return c
					}
					if count > 2 {
						if c, ok := bore(suit); ok {
							return c
						}
					}
					labels[suit] = weak

				case blocking:
					if tracked && inHand {
						if c, ok := demand(suit); ok {
							return c
						}
					}
					if lastResort && count > 1 {
						if c, ok := bore(suit); ok {
							return c
						}
					}
					if otherPartnerSuit(suit) {
						if c, ok := partnerLead(suit); ok {
							return c
						}
					}
					if c, ok := belote(); ok {
						return c
					}
					if !lastResort {
						labels[suit] = weak
					}

				case weak:
					if tracked && inHand {
						if c, ok := demand(suit); ok {
							return c
						}
					}
					if c, ok := belote(); ok {
						return c
					}
					return leadCheap(hand, contract, saved, mem.contested)
				}
			}
		}
	}
	return leadCheap(hand, contract, saved, mem.contested)
}

// follow answers a trick in progress: beat a beatable winner in the suit
// led, answer low when it cannot be beaten, trump an opposing winner when
// void in a suit game, and otherwise throw the cheapest card that is safe
// to lose.
func (s *Strategy) follow(m engine.MatchState, seat int) engine.Card {
	hand := m.Hands[seat].Cards
	contract := m.Contract
	led, _ := m.Trick.LedSuit()
	winning, _ := engine.WinningPlay(m.Trick, contract)
	trump, suitGame := m.Trump()
	partnerHolds := engine.TeamOf(winning.Seat) == engine.TeamOf(seat)
	saved := savedFor(m, seat)

	if respond := suitCards(hand, led); len(respond) > 0 {
		winnerTrumped := suitGame && winning.Card.Suit == trump && led != trump
		if !winnerTrumped {
			if c, ok := lowestAbove(respond, winning.Card, contract); ok {
				return c
			}
		}
		if c, ok := beloteCard(m.Hands[seat], led, true); ok {
			return c
		}
		c, _ := lowestCard(respond, contract)
		return c
	}

	if !suitGame || partnerHolds {
		if partnerHolds {
			return spendOnPartner(hand, contract)
		}
		return cheapest(hand, contract, saved)
	}

	if trumps := suitCards(hand, trump); len(trumps) > 0 {
		if winning.Card.Suit == trump {
			if c, ok := lowestAbove(trumps, winning.Card, contract); ok {
				return c
			}
			return cheapest(hand, contract, saved)
		}
		if c, ok := beloteCard(m.Hands[seat], trump, true); ok {
			return c
		}
		c, _ := lowestCard(trumps, contract)
		return c
	}
	return cheapest(hand, contract, saved)
}

// beloteCard picks a playable half of an undeclared belote, preferring the
// queen. With wantSuit set only a belote of that suit qualifies.
func beloteCard(h engine.HandState, suit engine.Suit, wantSuit bool) (engine.Card, bool) {
	for _, b := range h.Belotes {
		if wantSuit && b.Suit != suit {
			continue
		}
		q := engine.Card{Suit: b.Suit, Rank: engine.RankQ}
		if containsCard(h.Cards, q) {
			return q, true
		}
		k := engine.Card{Suit: b.Suit, Rank: engine.RankK}
		if containsCard(h.Cards, k) {
			return k, true
		}
	}
	return engine.Card{}, false
}

// leadCheap is the low lead: like cheapest, but a suit the opponents bid for
// is opened only when nothing else can be.
func leadCheap(cards []engine.Card, contract engine.Contract, saved map[engine.Card]bool, contested []engine.Suit) engine.Card {
	var quiet []engine.Card
	for _, c := range cards {
		if !containsSuit(contested, c.Suit) {
			quiet = append(quiet, c)
		}
	}
	if len(quiet) > 0 {
		return cheapest(quiet, contract, saved)
	}
	return cheapest(cards, contract, saved)
}

// cheapest is the low discard: the weakest card that is not saved, or the
// weakest outright when everything is.
func cheapest(cards []engine.Card, contract engine.Contract, saved map[engine.Card]bool) engine.Card {
	var free []engine.Card
	for _, c := range cards {
		if !saved[c] {
			free = append(free, c)
		}
	}
	if c, ok := lowestCard(free, contract); ok {
		return c
	}
	c, _ := lowestCard(cards, contract)
	return c
}

// spendOnPartner feeds value to a trick the partner already holds: the best
// card that is neither a throwaway nor a suit's top card.
func spendOnPartner(cards []engine.Card, contract engine.Contract) engine.Card {
	var mid []engine.Card
	for _, c := range cards {
		switch contract.CardPower(c) {
		case 1, 2, 8:
			continue
		default:
			mid = append(mid, c)
		}
	}
	if c, ok := highestCard(mid, contract); ok {
		return c
	}
	c, _ := lowestCard(cards, contract)
	return c
}

func lowestAbove(cards []engine.Card, target engine.Card, contract engine.Contract) (engine.Card, bool) {
	var higher []engine.Card
	for _, c := range cards {
		if c.Suit == target.Suit && contract.CardPower(c) > contract.CardPower(target) {
			higher = append(higher, c)
		}
	}
	return lowestCard(higher, contract)
}

func savedFor(m engine.MatchState, seat int) map[engine.Card]bool {
	hand := m.Hands[seat].Cards
	labels := make(map[engine.Suit]label, 4)
	for _, suit := range []engine.Suit{engine.SuitClubs, engine.SuitDiamonds, engine.SuitHearts, engine.SuitSpades} {
		if st, ok := classifySuit(suitCards(hand, suit), m.Contract); ok {
			labels[suit] = st.label
		}
	}
	return savedCards(m, seat, labels)
}
