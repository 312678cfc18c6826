package engine

import "fmt"

// legalBidActions enumerates everything the seat may do on its bidding turn:
// always pass, raise to any bid strictly above the standing contract, contra
// a live opposing contract, or re-contra an opposing contra.
func legalBidActions(m MatchState, seat int) []Action {
	if seat != m.BidTurn || m.Acted[seat] {
		return nil
	}
	out := []Action{{Type: ActionPass}}
	for b := m.Contract.Bid + 1; b <= BidAllTrump; b++ {
		out = append(out, Action{Type: ActionBid, Bid: b})
	}
	if canContra(m, seat) {
		out = append(out, Action{Type: ActionContra})
	}
	if canReContra(m, seat) {
		out = append(out, Action{Type: ActionReContra})
	}
	return out
}

func canContra(m MatchState, seat int) bool {
	return m.Contract.Bid != BidPass &&
		!m.Contract.Contra && !m.Contract.ReContra &&
		TeamOf(seat) != TeamOf(m.Contract.Declarer)
}

func canReContra(m MatchState, seat int) bool {
	return m.Contract.Contra &&
		TeamOf(seat) == TeamOf(m.Contract.Declarer)
}

func applyBidAction(m *MatchState, seat int, a Action) error {
	if seat != m.BidTurn {
		return ErrNotYourTurn
	}

	switch a.Type {
	case ActionPass:
		m.Acted[seat] = true

	case ActionBid:
		if a.Bid < BidClubs || a.Bid > BidAllTrump {
			return fmt.Errorf("%w: unknown bid", ErrIllegalBid)
		}
		if a.Bid <= m.Contract.Bid {
			return fmt.Errorf("%w: %v does not raise %v", ErrIllegalBid, a.Bid, m.Contract.Bid)
		}
		m.Contract = Contract{Declarer: seat, Bid: a.Bid}
		m.BidHistory = append(m.BidHistory, BidRecord{Seat: seat, Bid: a.Bid})
		m.resetActed(seat)

	case ActionContra:
		if !canContra(*m, seat) {
			return fmt.Errorf("%w: contra requires a live opposing contract", ErrIllegalBid)
		}
		m.Contract.Contra = true
		m.resetActed(seat)

	case ActionReContra:
		if !canReContra(*m, seat) {
			return fmt.Errorf("%w: re-contra answers an opposing contra only", ErrIllegalBid)
		}
		m.Contract.Contra = false
		m.Contract.ReContra = true
		m.resetActed(seat)

	default:
		return fmt.Errorf("%w: invalid action for bidding", ErrIllegalBid)
	}

	m.BidTurn = nextSeat(seat)

	for i := 0; i < NumSeats; i++ {
		if !m.Acted[i] {
			return nil
		}
	}
	// All four seats acted since the last state change.
	if m.Contract.Bid == BidPass {
		redeal(m)
		return nil
	}
	return beginPlay(m)
}

// resetActed clears everyone's acted flag except the seat that just changed
// the state, forcing the other three seats to speak again.
func (m *MatchState) resetActed(seat int) {
	m.Acted = [NumSeats]bool{}
	m.Acted[seat] = true
}
