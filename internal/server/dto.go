package server

import (
	"errors"

	"github.com/mirosoltan/belote/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type AnnounceDTO struct {
	Type   string `json:"type"`
	Suit   string `json:"suit,omitempty"`
	Length int    `json:"length,omitempty"`
	High   string `json:"high,omitempty"`
	Rank   string `json:"rank,omitempty"`
}

type ActionDTO struct {
	Type     string       `json:"type"`
	Bid      string       `json:"bid,omitempty"`
	Card     *CardDTO     `json:"card,omitempty"`
	Announce *AnnounceDTO `json:"announce,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "bid":
		b, err := parseBid(a.Bid)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionBid, Bid: b}, nil
	case "pass":
		return engine.Action{Type: engine.ActionPass}, nil
	case "contra":
		return engine.Action{Type: engine.ActionContra}, nil
	case "recontra":
		return engine.Action{Type: engine.ActionReContra}, nil
	case "play_card":
		if a.Card == nil {
			return engine.Action{}, errors.New("card required")
		}
		card, err := a.Card.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionPlayCard, Card: &card}, nil
	case "declare_announce":
		if a.Announce == nil {
			return engine.Action{}, errors.New("announce required")
		}
		ann, err := a.Announce.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionDeclareAnnounce, Announce: &ann}, nil
	default:
		return engine.Action{}, errors.New("unknown action type")
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	switch a.Type {
	case engine.ActionBid:
		return ActionDTO{Type: "bid", Bid: bidToString(a.Bid)}
	case engine.ActionPass:
		return ActionDTO{Type: "pass"}
	case engine.ActionContra:
		return ActionDTO{Type: "contra"}
	case engine.ActionReContra:
		return ActionDTO{Type: "recontra"}
	case engine.ActionPlayCard:
		if a.Card == nil {
			return ActionDTO{Type: "play_card"}
		}
		return ActionDTO{Type: "play_card", Card: cardToDTO(*a.Card)}
	case engine.ActionDeclareAnnounce:
		if a.Announce == nil {
			return ActionDTO{Type: "declare_announce"}
		}
		dto := announceToDTO(*a.Announce)
		return ActionDTO{Type: "declare_announce", Announce: &dto}
	default:
		return ActionDTO{Type: "unknown"}
	}
}

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := parseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Rank: r}, nil
}

func cardToDTO(c engine.Card) *CardDTO {
	return &CardDTO{Suit: suitToString(c.Suit), Rank: rankToString(c.Rank)}
}

func (a AnnounceDTO) toEngine() (engine.Announce, error) {
	switch a.Type {
	case "sequence":
		s, err := parseSuit(a.Suit)
		if err != nil {
			return engine.Announce{}, err
		}
		high, err := parseRank(a.High)
		if err != nil {
			return engine.Announce{}, err
		}
		return engine.Announce{Type: engine.AnnounceSequence, Suit: s, Length: a.Length, High: high}, nil
	case "carre":
		r, err := parseRank(a.Rank)
		if err != nil {
			return engine.Announce{}, err
		}
		return engine.Announce{Type: engine.AnnounceCarre, Rank: r}, nil
	case "belote":
		s, err := parseSuit(a.Suit)
		if err != nil {
			return engine.Announce{}, err
		}
		return engine.Announce{Type: engine.AnnounceBelote, Suit: s}, nil
	default:
		return engine.Announce{}, errors.New("unknown announce type")
	}
}

func announceToDTO(a engine.Announce) AnnounceDTO {
	switch a.Type {
	case engine.AnnounceSequence:
		return AnnounceDTO{
			Type:   "sequence",
			Suit:   suitToString(a.Suit),
			Length: a.Length,
			High:   rankToString(a.High),
		}
	case engine.AnnounceCarre:
		return AnnounceDTO{Type: "carre", Rank: rankToString(a.Rank)}
	default:
		return AnnounceDTO{Type: "belote", Suit: suitToString(a.Suit)}
	}
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "C":
		return engine.SuitClubs, nil
	case "D":
		return engine.SuitDiamonds, nil
	case "H":
		return engine.SuitHearts, nil
	case "S":
		return engine.SuitSpades, nil
	default:
		return engine.SuitClubs, errors.New("invalid suit")
	}
}

func parseRank(r string) (engine.Rank, error) {
	switch r {
	case "7":
		return engine.Rank7, nil
	case "8":
		return engine.Rank8, nil
	case "9":
		return engine.Rank9, nil
	case "10":
		return engine.Rank10, nil
	case "J":
		return engine.RankJ, nil
	case "Q":
		return engine.RankQ, nil
	case "K":
		return engine.RankK, nil
	case "A":
		return engine.RankA, nil
	default:
		return engine.Rank7, errors.New("invalid rank")
	}
}

func parseBid(b string) (engine.Bid, error) {
	switch b {
	case "C":
		return engine.BidClubs, nil
	case "D":
		return engine.BidDiamonds, nil
	case "H":
		return engine.BidHearts, nil
	case "S":
		return engine.BidSpades, nil
	case "NT":
		return engine.BidNoTrump, nil
	case "AT":
		return engine.BidAllTrump, nil
	default:
		return engine.BidPass, errors.New("invalid bid")
	}
}

func bidToString(b engine.Bid) string {
	return b.String()
}

func suitToString(s engine.Suit) string {
	return s.String()
}

func rankToString(r engine.Rank) string {
	return r.String()
}
