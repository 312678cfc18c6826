package engine

import "fmt"

// WinningPlay returns the play currently holding the trick under the active
// power tables. In a suit contract any trump outranks every non-trump play;
// otherwise only cards of the suit led compete.
func WinningPlay(t Trick, contract Contract) (Play, bool) {
	if len(t.Plays) == 0 {
		return Play{}, false
	}
	led := t.Plays[0].Card.Suit
	trump, suitGame := contract.Bid.TrumpSuit()

	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		c, b := p.Card, best.Card

		if suitGame {
			if c.Suit == trump && b.Suit != trump {
				best = p
				continue
			}
			if c.Suit != trump && b.Suit == trump {
				continue
			}
		}

		if c.Suit == b.Suit {
			if contract.CardPower(c) > contract.CardPower(b) {
				best = p
			}
			continue
		}
		if b.Suit != led && c.Suit == led {
			best = p
		}
	}
	return best, true
}

// LegalCards returns the subset of the seat's hand accepted by the play
// rules for the current trick. It is empty when it is not the seat's turn.
func LegalCards(m MatchState, seat int) []Card {
	if m.Phase != PhasePlayTricks {
		return nil
	}
	if expected, ok := expectedPlayer(m); !ok || expected != seat {
		return nil
	}
	var out []Card
	for _, c := range m.Hands[seat].Cards {
		if playViolation(m, seat, c) == nil {
			out = append(out, c)
		}
	}
	return out
}

// expectedPlayer is the seat due to put the next card to the trick.
func expectedPlayer(m MatchState) (int, bool) {
	if m.Phase != PhasePlayTricks || len(m.Trick.Plays) >= NumSeats {
		return -1, false
	}
	return (m.Leader + len(m.Trick.Plays)) % NumSeats, true
}

// playViolation checks the card against the suit-following and trumping
// obligations, returning an ErrIllegalMove naming the broken rule, or nil.
//
// In order: a seat holding the suit led must follow it, and when the suit
// led is the trump suit must beat the winning trump if able. A seat void in
// the suit led is unconstrained in NoTrump/AllTrump contracts or when its
// partner holds the trick; against an opponent in a suit contract it must
// overtrump a winning trump if able, or trump a non-trump winner with any
// trump it holds.
func playViolation(m MatchState, seat int, card Card) error {
	hand := m.Hands[seat].Cards
	if !containsCard(hand, card) {
		return fmt.Errorf("%w: card not in hand", ErrIllegalMove)
	}
	led, ok := m.Trick.LedSuit()
	if !ok {
		return nil
	}
	winning, _ := WinningPlay(m.Trick, m.Contract)
	trump, suitGame := m.Contract.Bid.TrumpSuit()

	if hasSuit(hand, led) {
		if card.Suit != led {
			return fmt.Errorf("%w: must follow %v", ErrIllegalMove, led)
		}
		if suitGame && led == trump {
			if beats := higherInSuit(hand, led, winning.Card, m.Contract); beats &&
				m.Contract.CardPower(card) < m.Contract.CardPower(winning.Card) {
				return fmt.Errorf("%w: must play a higher trump", ErrIllegalMove)
			}
		}
		return nil
	}

	if !suitGame {
		return nil
	}
	if TeamOf(winning.Seat) == TeamOf(seat) {
		return nil
	}
	if !hasSuit(hand, trump) {
		return nil
	}
	if winning.Card.Suit == trump {
		if higherInSuit(hand, trump, winning.Card, m.Contract) {
			if card.Suit != trump || m.Contract.CardPower(card) < m.Contract.CardPower(winning.Card) {
				return fmt.Errorf("%w: must overtrump", ErrIllegalMove)
			}
		}
		return nil
	}
	if card.Suit != trump {
		return fmt.Errorf("%w: must trump", ErrIllegalMove)
	}
	return nil
}

func applyPlayAction(m *MatchState, seat int, a Action) error {
	if a.Type != ActionPlayCard || a.Card == nil {
		return fmt.Errorf("%w: invalid play action", ErrIllegalMove)
	}
	expected, ok := expectedPlayer(*m)
	if !ok || seat != expected {
		return ErrNotYourTurn
	}
	card := *a.Card
	if err := playViolation(*m, seat, card); err != nil {
		return err
	}

	m.settleBelote(seat, card)

	if !removeCard(&m.Hands[seat].Cards, card) {
		return fmt.Errorf("%w: card not in hand", ErrIllegalMove)
	}
	m.Trick.Plays = append(m.Trick.Plays, Play{Seat: seat, Card: card})
	m.PlayLog = append(m.PlayLog, Play{Seat: seat, Card: card})

	if len(m.Trick.Plays) < NumSeats {
		return nil
	}

	winning, _ := WinningPlay(m.Trick, m.Contract)
	for _, p := range m.Trick.Plays {
		m.Hands[winning.Seat].Winnings = append(m.Hands[winning.Seat].Winnings, p.Card)
	}
	m.Leader = winning.Seat
	m.Trick = Trick{}

	if m.TrickNo == TricksPerDeal {
		m.LastTaker = winning.Seat
		scoreDeal(m)
		return nil
	}
	m.TrickNo++
	return nil
}

// settleBelote commits or voids a pending belote when one of its cards is
// played. Playing the King or Queen to its own suit (leading it, following
// it, or trumping with it) declares the belote; discarding it off-suit
// silently voids it.
func (m *MatchState) settleBelote(seat int, card Card) {
	if card.Rank != RankK && card.Rank != RankQ {
		return
	}
	h := &m.Hands[seat]
	for i, b := range h.Belotes {
		if b.Suit != card.Suit {
			continue
		}
		h.Belotes = append(h.Belotes[:i], h.Belotes[i+1:]...)
		led, ok := m.Trick.LedSuit()
		trump, suitGame := m.Contract.Bid.TrumpSuit()
		declares := !ok || led == card.Suit || (suitGame && card.Suit == trump)
		if declares {
			m.Announces = append(m.Announces, DeclaredAnnounce{Seat: seat, Announce: b})
		}
		return
	}
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// higherInSuit reports whether cards contains a card of the suit stronger
// than target under the contract.
func higherInSuit(cards []Card, suit Suit, target Card, contract Contract) bool {
	for _, c := range cards {
		if c.Suit == suit && contract.CardPower(c) > contract.CardPower(target) {
			return true
		}
	}
	return false
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}
