package bots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirosoltan/belote/internal/engine"
)

func biddingState(seat int) engine.MatchState {
	return engine.MatchState{
		Phase:    engine.PhaseBidding,
		Contract: engine.Contract{Declarer: -1, Bid: engine.BidPass},
		BidTurn:  seat,
		First:    seat,
	}
}

func TestBidsDominantSuit(t *testing.T) {
	m := biddingState(0)
	m.Hands[0].Cards = []engine.Card{
		c(engine.SuitClubs, engine.RankJ),
		c(engine.SuitClubs, engine.Rank9),
		c(engine.SuitClubs, engine.RankA),
		c(engine.SuitClubs, engine.Rank10),
		c(engine.SuitHearts, engine.Rank7),
	}

	a := NewStrategy().ChooseAction(m, 0)
	require.Equal(t, engine.ActionBid, a.Type)
	require.Equal(t, engine.BidClubs, a.Bid)
}

func TestWeakHandPasses(t *testing.T) {
	m := biddingState(0)
	m.Hands[0].Cards = []engine.Card{
		c(engine.SuitClubs, engine.Rank7),
		c(engine.SuitDiamonds, engine.Rank8),
		c(engine.SuitHearts, engine.Rank7),
		c(engine.SuitSpades, engine.Rank8),
		c(engine.SuitSpades, engine.Rank7),
	}

	a := NewStrategy().ChooseAction(m, 0)
	require.Equal(t, engine.ActionPass, a.Type)
}

func TestDesperateTeamStaysSilentFirst(t *testing.T) {
	m := biddingState(0)
	m.Scores = [engine.NumTeams]int{20, 150}
	m.Hands[0].Cards = []engine.Card{
		c(engine.SuitClubs, engine.RankJ),
		c(engine.SuitClubs, engine.Rank9),
		c(engine.SuitClubs, engine.RankA),
		c(engine.SuitClubs, engine.Rank10),
		c(engine.SuitHearts, engine.Rank7),
	}

	a := NewStrategy().ChooseAction(m, 0)
	require.Equal(t, engine.ActionPass, a.Type)
}

func TestBothTeamsNearGameStillBid(t *testing.T) {
	// With both sides within ten of game nobody can afford to wait the
	// other out; a biddable hand has to come forward or the table folds
	// deal after deal.
	m := biddingState(0)
	m.Scores = [engine.NumTeams]int{145, 145}
	m.Hands[0].Cards = []engine.Card{
		c(engine.SuitClubs, engine.RankJ),
		c(engine.SuitClubs, engine.Rank9),
		c(engine.SuitClubs, engine.RankA),
		c(engine.SuitClubs, engine.Rank10),
		c(engine.SuitHearts, engine.Rank7),
	}

	a := NewStrategy().ChooseAction(m, 0)
	require.Equal(t, engine.ActionBid, a.Type)
	require.Equal(t, engine.BidClubs, a.Bid)
}

func TestRaisesOwnSuitOverOpposingBid(t *testing.T) {
	m := biddingState(1)
	m.Contract = engine.Contract{Declarer: 0, Bid: engine.BidClubs}
	m.BidHistory = []engine.BidRecord{{Seat: 0, Bid: engine.BidClubs}}
	m.Hands[1].Cards = []engine.Card{
		c(engine.SuitSpades, engine.RankJ),
		c(engine.SuitSpades, engine.Rank9),
		c(engine.SuitSpades, engine.RankA),
		c(engine.SuitSpades, engine.Rank10),
		c(engine.SuitHearts, engine.Rank7),
	}

	a := NewStrategy().ChooseAction(m, 1)
	require.Equal(t, engine.ActionBid, a.Type)
	require.Equal(t, engine.BidSpades, a.Bid)
}

func TestSuggestionNeverIllegal(t *testing.T) {
	// The dominant suit sits below the standing bid and the hand is not
	// worth a higher call; whatever the ladder suggests must be in the
	// legal set.
	m := biddingState(1)
	m.First = 0
	m.Contract = engine.Contract{Declarer: 0, Bid: engine.BidSpades}
	m.Hands[1].Cards = []engine.Card{
		c(engine.SuitClubs, engine.RankJ),
		c(engine.SuitClubs, engine.Rank9),
		c(engine.SuitClubs, engine.RankA),
		c(engine.SuitDiamonds, engine.Rank7),
		c(engine.SuitHearts, engine.Rank7),
	}

	a := NewStrategy().ChooseAction(m, 1)
	found := false
	for _, legal := range engine.LegalActions(m, 1) {
		if legal.Type == a.Type && legal.Bid == a.Bid {
			found = true
		}
	}
	require.True(t, found, "suggested %v", a)
}
