package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableSelection(t *testing.T) {
	hearts := Contract{Declarer: 0, Bid: BidHearts}
	require.Equal(t, AllTrumpTable, hearts.Table(SuitHearts))
	require.Equal(t, NoTrumpTable, hearts.Table(SuitSpades))

	require.Equal(t, NoTrumpTable, Contract{Bid: BidNoTrump}.Table(SuitClubs))
	require.Equal(t, AllTrumpTable, Contract{Bid: BidAllTrump}.Table(SuitClubs))
	require.Equal(t, NoTrumpTable, Contract{Bid: BidPass, Declarer: -1}.Table(SuitClubs))
}

func TestPowerOrderings(t *testing.T) {
	// 7 8 9 J Q K 10 A, weakest first.
	wantNT := []Rank{Rank7, Rank8, Rank9, RankJ, RankQ, RankK, Rank10, RankA}
	for i := 1; i < len(wantNT); i++ {
		require.Greater(t, NoTrumpTable.Power(wantNT[i]), NoTrumpTable.Power(wantNT[i-1]))
	}

	// 7 8 Q K 10 A 9 J, weakest first.
	wantAT := []Rank{Rank7, Rank8, RankQ, RankK, Rank10, RankA, Rank9, RankJ}
	for i := 1; i < len(wantAT); i++ {
		require.Greater(t, AllTrumpTable.Power(wantAT[i]), AllTrumpTable.Power(wantAT[i-1]))
	}

	require.Equal(t, RankA, NoTrumpTable.TopRank())
	require.Equal(t, RankJ, AllTrumpTable.TopRank())
}

func TestCardValues(t *testing.T) {
	require.Equal(t, 11, NoTrumpTable.Value(RankA))
	require.Equal(t, 10, NoTrumpTable.Value(Rank10))
	require.Equal(t, 2, NoTrumpTable.Value(RankJ))
	require.Equal(t, 0, NoTrumpTable.Value(Rank9))

	require.Equal(t, 20, AllTrumpTable.Value(RankJ))
	require.Equal(t, 14, AllTrumpTable.Value(Rank9))
	require.Equal(t, 11, AllTrumpTable.Value(RankA))
}

func TestDeckTotalsPerContract(t *testing.T) {
	var nt, at int
	for r := Rank7; r <= RankA; r++ {
		nt += NoTrumpTable.Value(r)
		at += AllTrumpTable.Value(r)
	}
	// One suit on each table. With the 10-point last trick a suit deal is
	// worth 162 card points, an all-trump deal 258, a no-trump deal 260
	// after doubling.
	require.Equal(t, 30, nt)
	require.Equal(t, 62, at)

	suitDeal := at + 3*nt + 10
	require.Equal(t, 162, suitDeal)
	require.Equal(t, 258, 4*at+10)
	require.Equal(t, 260, (4*nt+10)*2)
}
