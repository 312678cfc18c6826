package server

import "github.com/mirosoltan/belote/internal/engine"

type SeatView struct {
	Seat      int       `json:"seat"`
	Team      int       `json:"team"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
	Tricks    int       `json:"tricks"`
}

type ContractView struct {
	Declarer int    `json:"declarer"`
	Bid      string `json:"bid"`
	Contra   bool   `json:"contra"`
	ReContra bool   `json:"reContra"`
}

type PlayView struct {
	Seat int     `json:"seat"`
	Card CardDTO `json:"card"`
}

type AnnounceEntryView struct {
	Seat     int         `json:"seat"`
	Announce AnnounceDTO `json:"announce"`
	Value    int         `json:"value"`
}

type ResultView struct {
	Totals  [engine.NumTeams]int `json:"totals"`
	Awarded [engine.NumTeams]int `json:"awarded"`
	Capot   bool                 `json:"capot"`
	Hung    bool                 `json:"hung"`
	Winner  int                  `json:"winner"`
}

type GameView struct {
	SessionID string `json:"sessionId"`
	Phase     string `json:"phase"`

	Seats    []SeatView    `json:"seats"`
	Contract *ContractView `json:"contract,omitempty"`
	BidTurn  int           `json:"bidTurn"`

	TrickNo int        `json:"trickNo"`
	Leader  int        `json:"leader"`
	Trick   []PlayView `json:"trick"`

	Announces []AnnounceEntryView `json:"announces"`

	Scores   [engine.NumTeams]int `json:"scores"`
	GamesWon [engine.NumTeams]int `json:"gamesWon"`
	Hanging  int                  `json:"hanging"`

	LastResult   *ResultView `json:"lastResult,omitempty"`
	LegalActions []ActionDTO `json:"legalActions"`
}

// BuildGameView projects the match for one viewer: the viewer's own cards
// are listed, everyone else's hands appear as counts only. Pending announces
// are private until declared, so only the match ledger is shown.
func BuildGameView(m engine.MatchState, viewer int, sessionID string) *GameView {
	seats := make([]SeatView, 0, engine.NumSeats)
	for seat := range m.Hands {
		sv := SeatView{
			Seat:      seat,
			Team:      int(engine.TeamOf(seat)),
			HandCount: len(m.Hands[seat].Cards),
			Tricks:    len(m.Hands[seat].Winnings) / engine.NumSeats,
		}
		if seat == viewer {
			for _, c := range m.Hands[seat].Cards {
				sv.Hand = append(sv.Hand, *cardToDTO(c))
			}
		}
		seats = append(seats, sv)
	}

	var contract *ContractView
	if m.Contract.Bid != engine.BidPass {
		contract = &ContractView{
			Declarer: m.Contract.Declarer,
			Bid:      bidToString(m.Contract.Bid),
			Contra:   m.Contract.Contra,
			ReContra: m.Contract.ReContra,
		}
	}

	trick := make([]PlayView, 0, len(m.Trick.Plays))
	for _, p := range m.Trick.Plays {
		trick = append(trick, PlayView{Seat: p.Seat, Card: *cardToDTO(p.Card)})
	}

	announces := make([]AnnounceEntryView, 0, len(m.Announces))
	for _, da := range m.Announces {
		announces = append(announces, AnnounceEntryView{
			Seat:     da.Seat,
			Announce: announceToDTO(da.Announce),
			Value:    da.Announce.Value(),
		})
	}

	var last *ResultView
	if m.LastResult != nil {
		last = &ResultView{
			Totals:  m.LastResult.Totals,
			Awarded: m.LastResult.Awarded,
			Capot:   m.LastResult.Capot,
			Hung:    m.LastResult.Hung,
			Winner:  int(m.LastResult.Winner),
		}
	}

	legal := []ActionDTO{}
	for _, a := range engine.LegalActions(m, viewer) {
		legal = append(legal, ActionFromEngine(a))
	}

	return &GameView{
		SessionID:    sessionID,
		Phase:        m.Phase.String(),
		Seats:        seats,
		Contract:     contract,
		BidTurn:      m.BidTurn,
		TrickNo:      m.TrickNo,
		Leader:       m.Leader,
		Trick:        trick,
		Announces:    announces,
		Scores:       m.Scores,
		GamesWon:     m.GamesWon,
		Hanging:      m.Hanging,
		LastResult:   last,
		LegalActions: legal,
	}
}
