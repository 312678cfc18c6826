package server

import "github.com/mirosoltan/belote/internal/engine"

type EventPayload struct {
	Seat     int                   `json:"seat,omitempty"`
	Bid      string                `json:"bid,omitempty"`
	Card     *CardDTO              `json:"card,omitempty"`
	Announce *AnnounceDTO          `json:"announce,omitempty"`
	Trick    int                   `json:"trick,omitempty"`
	Winner   int                   `json:"winner,omitempty"`
	Awarded  *[engine.NumTeams]int `json:"awarded,omitempty"`
	Capot    bool                  `json:"capot,omitempty"`
	Hung     bool                  `json:"hung,omitempty"`
	Scores   *[engine.NumTeams]int `json:"scores,omitempty"`
}

// buildEvents derives the discrete happenings of one accepted action by
// comparing the state before and after it.
func buildEvents(prev, next engine.MatchState, seat int, action engine.Action) []Event {
	events := []Event{}

	switch action.Type {
	case engine.ActionBid:
		events = append(events, Event{Type: "bid_made", Data: EventPayload{Seat: seat, Bid: bidToString(action.Bid)}})
	case engine.ActionPass:
		events = append(events, Event{Type: "bid_passed", Data: EventPayload{Seat: seat}})
	case engine.ActionContra:
		events = append(events, Event{Type: "contra_declared", Data: EventPayload{Seat: seat}})
	case engine.ActionReContra:
		events = append(events, Event{Type: "recontra_declared", Data: EventPayload{Seat: seat}})
	case engine.ActionPlayCard:
		if action.Card != nil {
			events = append(events, Event{Type: "card_played", Data: EventPayload{Seat: seat, Card: cardToDTO(*action.Card)}})
		}
	case engine.ActionDeclareAnnounce:
		if action.Announce != nil {
			dto := announceToDTO(*action.Announce)
			events = append(events, Event{Type: "announce_declared", Data: EventPayload{Seat: seat, Announce: &dto}})
		}
	}

	// A belote entered the ledger as a side effect of a played card.
	if action.Type == engine.ActionPlayCard && len(next.Announces) > len(prev.Announces) {
		da := next.Announces[len(next.Announces)-1]
		dto := announceToDTO(da.Announce)
		events = append(events, Event{Type: "belote_declared", Data: EventPayload{Seat: da.Seat, Announce: &dto}})
	}

	// A fourth card completed the trick; the leader of the next trick is
	// its winner (also across a deal boundary).
	if action.Type == engine.ActionPlayCard && len(prev.Trick.Plays) == engine.NumSeats-1 {
		events = append(events, Event{Type: "trick_won", Data: EventPayload{Winner: next.Leader, Trick: prev.TrickNo}})
	}

	if next.Redeals > prev.Redeals {
		events = append(events, Event{Type: "redeal", Data: EventPayload{}})
	}

	if next.DealsDone > prev.DealsDone && next.LastResult != nil {
		r := next.LastResult
		awarded := r.Awarded
		scores := next.Scores
		events = append(events, Event{Type: "deal_scored", Data: EventPayload{
			Winner:  int(r.Winner),
			Awarded: &awarded,
			Capot:   r.Capot,
			Hung:    r.Hung,
			Scores:  &scores,
		}})
	}

	if next.Phase == engine.PhaseGameOver && prev.Phase != engine.PhaseGameOver {
		scores := next.Scores
		winner := 0
		if next.GamesWon[1] > prev.GamesWon[1] {
			winner = 1
		}
		events = append(events, Event{Type: "match_over", Data: EventPayload{Winner: winner, Scores: &scores}})
	}

	return events
}
