package engine

import (
	"fmt"
	"sort"
)

type AnnounceType int

const (
	AnnounceSequence AnnounceType = iota
	AnnounceCarre
	AnnounceBelote
)

// Announce is a declarable card combination. Sequence uses Suit, Length and
// High; Carre uses Rank; Belote uses Suit.
type Announce struct {
	Type   AnnounceType
	Suit   Suit
	Length int
	High   Rank
	Rank   Rank
}

// carreOrder is the fixed precedence of carré ranks, weakest first.
var carreOrder = map[Rank]int{
	RankQ:  0,
	RankK:  1,
	Rank10: 2,
	RankA:  3,
	Rank9:  4,
	RankJ:  5,
}

// Value returns the announce's score in points.
func (a Announce) Value() int {
	switch a.Type {
	case AnnounceBelote:
		return 20
	case AnnounceCarre:
		switch a.Rank {
		case RankJ:
			return 200
		case Rank9:
			return 150
		default:
			return 100
		}
	default:
		switch {
		case a.Length >= 5:
			return 100
		case a.Length == 4:
			return 50
		default:
			return 20
		}
	}
}

func (a Announce) String() string {
	switch a.Type {
	case AnnounceBelote:
		return fmt.Sprintf("belote %s", a.Suit)
	case AnnounceCarre:
		return fmt.Sprintf("carre of %s", a.Rank)
	default:
		return fmt.Sprintf("sequence of %d in %s up to %s", a.Length, a.Suit, a.High)
	}
}

// DetectAnnounces scans a hand for sequences (maximal runs of 3+ consecutive
// ranks in one suit) and carrés (four of a kind, ranks 9..A). A sequence
// whose rank range contains a carré's rank is voided: no card may count
// toward two declarations, and carrés take precedence.
func DetectAnnounces(cards []Card) []Announce {
	var out []Announce
	for _, s := range allSuits {
		out = append(out, suitSequences(cards, s)...)
	}
	carres := findCarres(cards)

	// Overlap rule.
	kept := out[:0]
	for _, seq := range out {
		voided := false
		for _, c := range carres {
			low := Rank(int(seq.High) - seq.Length + 1)
			if c.Rank >= low && c.Rank <= seq.High {
				voided = true
				break
			}
		}
		if !voided {
			kept = append(kept, seq)
		}
	}
	return append(kept, carres...)
}

func suitSequences(cards []Card, s Suit) []Announce {
	var ranks []Rank
	for _, c := range cards {
		if c.Suit == s {
			ranks = append(ranks, c.Rank)
		}
	}
	if len(ranks) < 3 {
		return nil
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	var out []Announce
	run := 1
	for i := 1; i <= len(ranks); i++ {
		if i < len(ranks) && ranks[i] == ranks[i-1]+1 {
			run++
			continue
		}
		if run >= 3 {
			out = append(out, Announce{
				Type:   AnnounceSequence,
				Suit:   s,
				Length: run,
				High:   ranks[i-1],
			})
		}
		run = 1
	}
	return out
}

func findCarres(cards []Card) []Announce {
	var counts [8]int
	for _, c := range cards {
		counts[c.Rank]++
	}
	var out []Announce
	for r := Rank9; r <= RankA; r++ {
		if counts[r] == 4 {
			out = append(out, Announce{Type: AnnounceCarre, Rank: r})
		}
	}
	return out
}

// DetectBelotes finds King+Queen pairs eligible as belote under the
// contract: in a suit contract only the trump suit qualifies, in NoTrump or
// AllTrump any suit holding both does.
func DetectBelotes(cards []Card, contract Contract) []Announce {
	var out []Announce
	for _, s := range allSuits {
		if trump, ok := contract.Bid.TrumpSuit(); ok && s != trump {
			continue
		}
		hasK, hasQ := false, false
		for _, c := range cards {
			if c.Suit != s {
				continue
			}
			switch c.Rank {
			case RankK:
				hasK = true
			case RankQ:
				hasQ = true
			}
		}
		if hasK && hasQ {
			out = append(out, Announce{Type: AnnounceBelote, Suit: s})
		}
	}
	return out
}
