package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectSequenceWithGap(t *testing.T) {
	hand := []Card{
		{SuitClubs, Rank7},
		{SuitClubs, Rank8},
		{SuitClubs, Rank9},
		{SuitClubs, RankJ},
	}
	anns := DetectAnnounces(hand)
	require.Len(t, anns, 1)
	require.Equal(t, Announce{Type: AnnounceSequence, Suit: SuitClubs, Length: 3, High: Rank9}, anns[0])
	require.Equal(t, 20, anns[0].Value())
}

func TestDetectLongSequences(t *testing.T) {
	hand := []Card{
		{SuitHearts, Rank9},
		{SuitHearts, Rank10},
		{SuitHearts, RankJ},
		{SuitHearts, RankQ},
		{SuitHearts, RankK},
	}
	anns := DetectAnnounces(hand)
	require.Len(t, anns, 1)
	require.Equal(t, 5, anns[0].Length)
	require.Equal(t, RankK, anns[0].High)
	require.Equal(t, 100, anns[0].Value())

	anns = DetectAnnounces(hand[:4])
	require.Len(t, anns, 1)
	require.Equal(t, 50, anns[0].Value())
}

func TestCarreOutsideSequenceRange(t *testing.T) {
	hand := []Card{
		{SuitClubs, RankK}, {SuitDiamonds, RankK}, {SuitHearts, RankK}, {SuitSpades, RankK},
		{SuitClubs, Rank9}, {SuitClubs, Rank10}, {SuitClubs, RankJ},
	}
	anns := DetectAnnounces(hand)
	require.Len(t, anns, 2)

	var seq, carre *Announce
	for i := range anns {
		switch anns[i].Type {
		case AnnounceSequence:
			seq = &anns[i]
		case AnnounceCarre:
			carre = &anns[i]
		}
	}
	require.NotNil(t, seq, "sequence must survive: the carré rank sits outside its range")
	require.NotNil(t, carre)
	require.Equal(t, RankK, carre.Rank)
	require.Equal(t, 100, carre.Value())
}

func TestCarreInsideSequenceRangeVoidsIt(t *testing.T) {
	hand := []Card{
		{SuitClubs, RankJ}, {SuitDiamonds, RankJ}, {SuitHearts, RankJ}, {SuitSpades, RankJ},
		{SuitClubs, Rank9}, {SuitClubs, Rank10},
	}
	anns := DetectAnnounces(hand)
	require.Len(t, anns, 1)
	require.Equal(t, AnnounceCarre, anns[0].Type)
	require.Equal(t, 200, anns[0].Value())
}

func TestSevensAndEightsMakeNoCarre(t *testing.T) {
	hand := []Card{
		{SuitClubs, Rank7}, {SuitDiamonds, Rank7}, {SuitHearts, Rank7}, {SuitSpades, Rank7},
		{SuitClubs, Rank8}, {SuitDiamonds, Rank8}, {SuitHearts, Rank8}, {SuitSpades, Rank8},
	}
	require.Empty(t, DetectAnnounces(hand))
}

func TestDetectBelotes(t *testing.T) {
	hand := []Card{
		{SuitClubs, RankK}, {SuitClubs, RankQ},
		{SuitHearts, RankK}, {SuitHearts, RankQ},
		{SuitSpades, RankK},
	}

	suitContract := Contract{Declarer: 0, Bid: BidClubs}
	belotes := DetectBelotes(hand, suitContract)
	require.Len(t, belotes, 1)
	require.Equal(t, SuitClubs, belotes[0].Suit)

	allTrump := Contract{Declarer: 0, Bid: BidAllTrump}
	belotes = DetectBelotes(hand, allTrump)
	require.Len(t, belotes, 2)
}

func TestCarrePrecedenceOrder(t *testing.T) {
	weaker := []Rank{RankQ, RankK, Rank10, RankA, Rank9}
	stronger := []Rank{RankK, Rank10, RankA, Rank9, RankJ}
	for i := range weaker {
		require.Greater(t, carreOrder[stronger[i]], carreOrder[weaker[i]],
			"carre of %v must outrank carre of %v", stronger[i], weaker[i])
	}
}
