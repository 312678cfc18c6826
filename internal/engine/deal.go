package engine

import (
	"fmt"
	"sort"
)

// CutPending marks that cards were collected since the last deal, so the
// deck must be cut before the next one. Kept on MatchState (not the deck)
// because the very first deal of a match is never cut.

// StartDeal shuffles, cuts if due, and deals the five-card bidding hands
// (three cards per seat, then two) in rotation from the first seat. The
// remaining twelve cards stay in the deck until a contract is fixed.
func StartDeal(m *MatchState) error {
	if m.Phase != PhaseDeal {
		return fmt.Errorf("cannot deal in phase %v", m.Phase)
	}
	if m.Deck.Len() != DeckSize {
		return fmt.Errorf("deck holds %d cards before deal: %w", m.Deck.Len(), ErrEmptyDeck)
	}

	m.Deck.Shuffle()
	if m.DealsDone > 0 || m.Redeals > 0 {
		m.Deck.Cut()
	}

	for _, n := range []int{3, 2} {
		for i := 0; i < NumSeats; i++ {
			seat := (m.First + i) % NumSeats
			if err := dealTo(m, seat, n); err != nil {
				return err
			}
		}
	}
	for i := range m.Hands {
		sortHand(m.Hands[i].Cards, m.Contract)
	}

	m.Phase = PhaseBidding
	m.BidTurn = m.First
	m.Acted = [NumSeats]bool{}
	return nil
}

func dealTo(m *MatchState, seat, n int) error {
	for i := 0; i < n; i++ {
		c, err := m.Deck.Deal()
		if err != nil {
			return err
		}
		m.Hands[seat].Cards = append(m.Hands[seat].Cards, c)
	}
	return nil
}

// beginPlay hands out the last three cards of each seat, detects announces
// under the fixed contract and opens the first trick. Under a NoTrump
// contract no announces are collected at all.
func beginPlay(m *MatchState) error {
	for i := 0; i < NumSeats; i++ {
		seat := (m.First + i) % NumSeats
		if err := dealTo(m, seat, 3); err != nil {
			return err
		}
	}
	for i := range m.Hands {
		sortHand(m.Hands[i].Cards, m.Contract)
		if m.Contract.Bid != BidNoTrump {
			m.Hands[i].Pending = DetectAnnounces(m.Hands[i].Cards)
			m.Hands[i].Belotes = DetectBelotes(m.Hands[i].Cards, m.Contract)
		}
	}

	m.Phase = PhasePlayTricks
	m.Leader = m.First
	m.TrickNo = 1
	return nil
}

// redeal collects all hands after an all-pass bidding round, rotates the
// first seat and returns to the deal phase.
func redeal(m *MatchState) {
	for i := range m.Hands {
		m.Deck.Collect(m.Hands[i].Cards)
	}
	first := nextSeat(m.First)
	m.ResetDeal()
	m.First = first
	m.Redeals++
}

// sortHand orders cards by suit, strongest first within each suit under the
// table currently in force. Rules never depend on hand order; this keeps
// views and tests deterministic.
func sortHand(cards []Card, contract Contract) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return cards[i].Suit < cards[j].Suit
		}
		return contract.CardPower(cards[i]) > contract.CardPower(cards[j])
	})
}
