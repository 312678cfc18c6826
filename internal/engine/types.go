package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

// Ranks are declared in sequence order (the order used for run detection),
// not in power order. Power depends on the table in force; see power.go.
const (
	Rank7 Rank = iota
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

var allSuits = [...]Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "C"
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case Rank10:
		return "10"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// Bid is one entry of the bidding ladder. The declaration order doubles as
// the raise order: each bid must be strictly higher than the standing one.
type Bid int

const (
	BidPass Bid = iota
	BidClubs
	BidDiamonds
	BidHearts
	BidSpades
	BidNoTrump
	BidAllTrump
)

// BidForSuit returns the suit-contract bid for s.
func BidForSuit(s Suit) Bid {
	return Bid(int(s) + 1)
}

// TrumpSuit reports the trump suit named by a suit contract. The second
// return is false for Pass, NoTrump and AllTrump.
func (b Bid) TrumpSuit() (Suit, bool) {
	if b >= BidClubs && b <= BidSpades {
		return Suit(int(b) - 1), true
	}
	return 0, false
}

func (b Bid) String() string {
	switch b {
	case BidPass:
		return "pass"
	case BidClubs:
		return "C"
	case BidDiamonds:
		return "D"
	case BidHearts:
		return "H"
	case BidSpades:
		return "S"
	case BidNoTrump:
		return "NT"
	case BidAllTrump:
		return "AT"
	default:
		return "?"
	}
}

// Team identifies one of the two fixed partnerships. Seats 0 and 2 play
// together against seats 1 and 3.
type Team int

const (
	NumSeats = 4
	NumTeams = 2

	TricksPerDeal = 8
	DeckSize      = 32

	// WinningScore is the threshold a team's cumulative score must exceed
	// for the match to end.
	WinningScore = 151
)

func TeamOf(seat int) Team {
	return Team(seat % 2)
}

func Partner(seat int) int {
	return (seat + 2) % NumSeats
}

func nextSeat(seat int) int {
	return (seat + 1) % NumSeats
}

type Phase int

const (
	PhaseDeal Phase = iota
	PhaseBidding
	PhasePlayTricks
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDeal:
		return "Deal"
	case PhaseBidding:
		return "Bidding"
	case PhasePlayTricks:
		return "PlayTricks"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Contract is the standing result of the bidding phase. Declarer is -1 while
// no seat has bid. Contra and ReContra are mutually exclusive: a re-contra
// replaces the contra it answers, and any new bid clears both.
type Contract struct {
	Declarer int
	Bid      Bid
	Contra   bool
	ReContra bool
}

// BidRecord is one entry of the per-deal bid history. Only raises are
// recorded; passes and contras carry no suit information for later play.
type BidRecord struct {
	Seat int
	Bid  Bid
}

// Play is one card put to the current trick by one seat.
type Play struct {
	Seat int
	Card Card
}

// Trick collects up to four plays in play order. The first play fixes the
// suit led.
type Trick struct {
	Plays []Play
}

func (t Trick) LedSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// DeclaredAnnounce is a ledger entry: an announce committed to the match by
// a seat. Arbitration prunes this ledger before scoring.
type DeclaredAnnounce struct {
	Seat     int
	Announce Announce
}

// HandState is everything one seat owns during a deal.
type HandState struct {
	Cards []Card
	// Pending holds detected sequences and carrés that have not been
	// declared yet. Belotes are kept apart because they are declared by
	// playing one of their cards, not by an explicit action.
	Pending  []Announce
	Belotes  []Announce
	Winnings []Card
}

// MatchState is the whole state of one match: the deck, the four hands, the
// bidding, the current trick and the cumulative scores. It is passed
// explicitly to every query and mutated only through ApplyAction.
type MatchState struct {
	Phase Phase
	Deck  *Deck
	Hands [NumSeats]HandState

	// Bidding state.
	Contract   Contract
	BidTurn    int
	Acted      [NumSeats]bool
	BidHistory []BidRecord

	// Play state.
	Trick   Trick
	TrickNo int
	Leader  int
	// PlayLog records every card played this deal in play order. It is a
	// log, not card ownership: played cards live in the trick or in a
	// winnings pile.
	PlayLog []Play
	// Announces is the match-level ledger of declared announces for the
	// current deal.
	Announces []DeclaredAnnounce

	// Match-level bookkeeping.
	First     int
	Scores    [NumTeams]int
	GamesWon  [NumTeams]int
	Hanging   int
	FinalDeal bool
	LastTaker int
	DealsDone int
	Redeals   int

	// LastResult is the settlement of the most recently scored deal.
	LastResult *DealResult
}

// NewMatch creates a match around the given deck. The first seat to act is
// drawn from the deck's randomness source so seeded matches replay exactly.
func NewMatch(deck *Deck) MatchState {
	return MatchState{
		Phase:     PhaseDeal,
		Deck:      deck,
		Contract:  Contract{Declarer: -1},
		First:     deck.rng.Intn(NumSeats),
		LastTaker: -1,
	}
}

// ResetDeal clears all per-deal state while keeping match-level scores. The
// deck is expected to hold all 32 cards again before the next StartDeal.
func (m *MatchState) ResetDeal() {
	for i := range m.Hands {
		m.Hands[i] = HandState{}
	}
	m.Contract = Contract{Declarer: -1}
	m.Acted = [NumSeats]bool{}
	m.BidHistory = nil
	m.Trick = Trick{}
	m.TrickNo = 0
	m.PlayLog = nil
	m.Announces = nil
	m.LastTaker = -1
	m.Phase = PhaseDeal
}

// Trump reports the trump suit of the active contract, if it is a suit
// contract.
func (m MatchState) Trump() (Suit, bool) {
	return m.Contract.Bid.TrumpSuit()
}
