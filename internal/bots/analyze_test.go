package bots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirosoltan/belote/internal/engine"
)

func c(s engine.Suit, r engine.Rank) engine.Card {
	return engine.Card{Suit: s, Rank: r}
}

func TestClassifySuitLabels(t *testing.T) {
	noContract := engine.Contract{Declarer: -1, Bid: engine.BidPass}

	cases := []struct {
		name  string
		cards []engine.Card
		want  label
	}{
		{"both top cards", []engine.Card{c(engine.SuitClubs, engine.RankA), c(engine.SuitClubs, engine.Rank10)}, commanding},
		{"top card with length", []engine.Card{c(engine.SuitClubs, engine.RankA), c(engine.SuitClubs, engine.RankK), c(engine.SuitClubs, engine.Rank7)}, controlling},
		{"guarded second", []engine.Card{c(engine.SuitClubs, engine.Rank10), c(engine.SuitClubs, engine.Rank8), c(engine.SuitClubs, engine.Rank7)}, strongBlock},
		{"bare second", []engine.Card{c(engine.SuitClubs, engine.Rank10), c(engine.SuitClubs, engine.Rank7)}, blocking},
		{"long third", []engine.Card{c(engine.SuitClubs, engine.RankK), c(engine.SuitClubs, engine.Rank9), c(engine.SuitClubs, engine.Rank8), c(engine.SuitClubs, engine.Rank7)}, long},
		{"short top", []engine.Card{c(engine.SuitClubs, engine.RankA), c(engine.SuitClubs, engine.Rank7)}, weak},
	}
	for _, tc := range cases {
		st, ok := classifySuit(tc.cards, noContract)
		require.True(t, ok, tc.name)
		require.Equal(t, tc.want, st.label, tc.name)
	}

	_, ok := classifySuit(nil, noContract)
	require.False(t, ok)
}

func TestClassifySuitUsesContractTable(t *testing.T) {
	// J+9 are the top pair only on the all-trump table.
	cards := []engine.Card{c(engine.SuitHearts, engine.RankJ), c(engine.SuitHearts, engine.Rank9)}

	st, _ := classifySuit(cards, engine.Contract{Declarer: 0, Bid: engine.BidHearts})
	require.Equal(t, commanding, st.label)

	st, _ = classifySuit(cards, engine.Contract{Declarer: 0, Bid: engine.BidNoTrump})
	require.Equal(t, weak, st.label)
}

func TestBehaviorFromScoreGap(t *testing.T) {
	m := engine.MatchState{}

	m.Scores = [engine.NumTeams]int{50, 50}
	require.Equal(t, normal, behaviorFor(m, 0))

	m.Scores = [engine.NumTeams]int{100, 40}
	require.Equal(t, aggressive, behaviorFor(m, 0))
	require.Equal(t, defensive, behaviorFor(m, 1))

	m.Scores = [engine.NumTeams]int{10, 145}
	require.Equal(t, desperate, behaviorFor(m, 0))
}

func TestStrongestOutstanding(t *testing.T) {
	m := engine.MatchState{
		Contract: engine.Contract{Declarer: 0, Bid: engine.BidNoTrump},
		PlayLog: []engine.Play{
			{Seat: 0, Card: c(engine.SuitHearts, engine.RankA)},
			{Seat: 1, Card: c(engine.SuitHearts, engine.Rank10)},
		},
	}
	mem := observe(m, 0)

	out, ok := mem.strongestOutstanding(engine.SuitHearts, m.Contract)
	require.True(t, ok)
	require.Equal(t, c(engine.SuitHearts, engine.RankK), out, "ace and ten are gone, the king is the live top")

	_, ok = mem.strongestOutstanding(engine.SuitClubs, m.Contract)
	require.False(t, ok, "an unplayed suit is untracked")
}

func TestObserveReadsBidHistory(t *testing.T) {
	m := engine.MatchState{
		Contract: engine.Contract{Declarer: 1, Bid: engine.BidSpades},
		BidHistory: []engine.BidRecord{
			{Seat: 0, Bid: engine.BidHearts},
			{Seat: 1, Bid: engine.BidSpades},
		},
	}
	mem := observe(m, 0)
	require.Equal(t, []engine.Suit{engine.SuitHearts}, mem.partner)
	require.Equal(t, []engine.Suit{engine.SuitSpades}, mem.contested)
}
