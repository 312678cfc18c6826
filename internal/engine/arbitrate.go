package engine

// arbitrateAnnounces applies the end-of-deal precedence rules to the declared
// ledger. Sequences are contested as one category: the best sequence is found
// (longer wins; at equal length the higher top card, then the trump suit,
// then bid order of the suit) and only its team's sequences survive. Carrés
// are contested separately under the fixed carré precedence. Belotes are
// never contested.
func arbitrateAnnounces(m *MatchState) {
	var bestSeq, bestCarre *DeclaredAnnounce
	trump, suitGame := m.Trump()

	for i := range m.Announces {
		da := &m.Announces[i]
		switch da.Announce.Type {
		case AnnounceBelote:
			continue
		case AnnounceCarre:
			if bestCarre == nil || carreOrder[da.Announce.Rank] > carreOrder[bestCarre.Announce.Rank] {
				bestCarre = da
			}
		case AnnounceSequence:
			if bestSeq == nil || sequenceBeats(da.Announce, bestSeq.Announce, trump, suitGame) {
				bestSeq = da
			}
		}
	}

	kept := m.Announces[:0]
	for _, da := range m.Announces {
		switch da.Announce.Type {
		case AnnounceBelote:
			kept = append(kept, da)
		case AnnounceCarre:
			if TeamOf(da.Seat) == TeamOf(bestCarre.Seat) {
				kept = append(kept, da)
			}
		case AnnounceSequence:
			if TeamOf(da.Seat) == TeamOf(bestSeq.Seat) {
				kept = append(kept, da)
			}
		}
	}
	m.Announces = kept
}

func sequenceBeats(a, b Announce, trump Suit, suitGame bool) bool {
	if a.Length != b.Length {
		return a.Length > b.Length
	}
	if a.High != b.High {
		return a.High > b.High
	}
	if suitGame && (a.Suit == trump) != (b.Suit == trump) {
		return a.Suit == trump
	}
	return a.Suit > b.Suit
}
