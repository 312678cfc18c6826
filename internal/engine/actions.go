package engine

import "fmt"

type ActionType int

const (
	ActionPass ActionType = iota
	ActionBid
	ActionContra
	ActionReContra
	ActionPlayCard
	ActionDeclareAnnounce
)

func (t ActionType) String() string {
	switch t {
	case ActionPass:
		return "Pass"
	case ActionBid:
		return "Bid"
	case ActionContra:
		return "Contra"
	case ActionReContra:
		return "ReContra"
	case ActionPlayCard:
		return "PlayCard"
	case ActionDeclareAnnounce:
		return "DeclareAnnounce"
	default:
		return "Unknown"
	}
}

// Action is one move by one seat. Exactly the fields relevant to the type
// are set: Bid for ActionBid, Card for ActionPlayCard, Announce for
// ActionDeclareAnnounce.
type Action struct {
	Type     ActionType
	Bid      Bid
	Card     *Card
	Announce *Announce
}

func (a Action) String() string {
	switch a.Type {
	case ActionBid:
		return fmt.Sprintf("Bid(%v)", a.Bid)
	case ActionPlayCard:
		if a.Card != nil {
			return fmt.Sprintf("Play(%v)", *a.Card)
		}
		return "Play(?)"
	case ActionDeclareAnnounce:
		if a.Announce != nil {
			return fmt.Sprintf("Declare(%v)", *a.Announce)
		}
		return "Declare(?)"
	default:
		return a.Type.String()
	}
}

// CurrentSeat is the seat the match is waiting on, or -1 when no seat may
// act (the deal and game-over phases).
func CurrentSeat(m MatchState) int {
	switch m.Phase {
	case PhaseBidding:
		return m.BidTurn
	case PhasePlayTricks:
		if seat, ok := expectedPlayer(m); ok {
			return seat
		}
	}
	return -1
}

// LegalActions enumerates every action the seat may take right now. During
// the first trick a seat on turn may also declare any of its pending
// sequences and carrés before playing.
func LegalActions(m MatchState, seat int) []Action {
	switch m.Phase {
	case PhaseBidding:
		return legalBidActions(m, seat)
	case PhasePlayTricks:
		cards := LegalCards(m, seat)
		if cards == nil {
			return nil
		}
		var out []Action
		if m.TrickNo == 1 {
			for i := range m.Hands[seat].Pending {
				ann := m.Hands[seat].Pending[i]
				out = append(out, Action{Type: ActionDeclareAnnounce, Announce: &ann})
			}
		}
		for i := range cards {
			out = append(out, Action{Type: ActionPlayCard, Card: &cards[i]})
		}
		return out
	}
	return nil
}

// ApplyAction validates and applies one action by one seat, advancing the
// match through bidding, play, scoring and deal transitions as a side
// effect. The state is unchanged when an error is returned.
func ApplyAction(m *MatchState, seat int, a Action) error {
	if seat < 0 || seat >= NumSeats {
		return fmt.Errorf("%w: no such seat %d", ErrIllegalMove, seat)
	}
	switch m.Phase {
	case PhaseBidding:
		return applyBidAction(m, seat, a)
	case PhasePlayTricks:
		if a.Type == ActionDeclareAnnounce {
			return applyDeclareAnnounce(m, seat, a)
		}
		return applyPlayAction(m, seat, a)
	default:
		return fmt.Errorf("%w: no actions in phase %v", ErrIllegalMove, m.Phase)
	}
}

// applyDeclareAnnounce commits one of the seat's pending sequences or carrés
// to the match ledger. Declaring is only open during the first trick, on the
// seat's own turn, and only for announces detected in the seat's hand.
func applyDeclareAnnounce(m *MatchState, seat int, a Action) error {
	if a.Announce == nil {
		return fmt.Errorf("%w: missing announce", ErrInvalidAnnounce)
	}
	if expected, ok := expectedPlayer(*m); !ok || seat != expected {
		return ErrNotYourTurn
	}
	if m.TrickNo != 1 {
		return fmt.Errorf("%w: announces close after the first trick", ErrInvalidAnnounce)
	}
	h := &m.Hands[seat]
	for i, p := range h.Pending {
		if p == *a.Announce {
			h.Pending = append(h.Pending[:i], h.Pending[i+1:]...)
			m.Announces = append(m.Announces, DeclaredAnnounce{Seat: seat, Announce: p})
			return nil
		}
	}
	return fmt.Errorf("%w: %v was not detected in this hand", ErrInvalidAnnounce, *a.Announce)
}
