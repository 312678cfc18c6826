package engine

import "math"

// DealResult summarizes how a finished deal settled. It stays available on
// the match until the next deal settles.
type DealResult struct {
	Contract Contract
	// Raw trick-card points per team, last-trick bonus included and the
	// NoTrump doubling applied.
	Raw [NumTeams]int
	// AnnouncePoints per team after arbitration. Zero in a capot.
	AnnouncePoints [NumTeams]int
	// Totals are Raw plus AnnouncePoints.
	Totals [NumTeams]int
	// Awarded match points per team.
	Awarded [NumTeams]int
	Capot   bool
	Hung    bool
	// Winner is -1 for a hung deal.
	Winner Team
}

func rounded(v int) int {
	return int(math.Round(float64(v) / 10))
}

// scoreDeal converts trick winnings, arbitrated announces and the contract
// outcome into match points, then either ends the match or stages the next
// deal.
func scoreDeal(m *MatchState) {
	var raw [NumTeams]int
	for seat := range m.Hands {
		for _, c := range m.Hands[seat].Winnings {
			raw[TeamOf(seat)] += m.Contract.CardValue(c)
		}
	}
	raw[TeamOf(m.LastTaker)] += 10
	if m.Contract.Bid == BidNoTrump {
		raw[0] *= 2
		raw[1] *= 2
	}

	res := DealResult{Contract: m.Contract, Raw: raw, Winner: -1}
	declTeam := TeamOf(m.Contract.Declarer)
	defTeam := 1 - declTeam
	doubled := m.Contract.Contra || m.Contract.ReContra

	if raw[0] == 0 || raw[1] == 0 {
		// Capot: flat bonus to the sweeping team, no announce credit.
		winner := Team(0)
		if raw[0] == 0 {
			winner = Team(1)
		}
		bonus := 26
		if m.Contract.Bid == BidNoTrump || m.Contract.Bid == BidAllTrump {
			bonus = 35
		}
		if doubled {
			bonus *= 2
		}
		bonus += m.Hanging
		m.Hanging = 0
		m.Scores[winner] += bonus
		res.Capot = true
		res.Winner = winner
		res.Totals = raw
		res.Awarded[winner] = bonus
	} else {
		arbitrateAnnounces(m)
		for _, da := range m.Announces {
			res.AnnouncePoints[TeamOf(da.Seat)] += da.Announce.Value()
		}
		res.Totals[0] = raw[0] + res.AnnouncePoints[0]
		res.Totals[1] = raw[1] + res.AnnouncePoints[1]

		mult := 1
		switch {
		case m.Contract.Contra:
			mult = 2
		case m.Contract.ReContra:
			mult = 4
		}

		if res.Totals[0] == res.Totals[1] {
			// The deal hangs. Without a double the defenders keep their
			// rounded half and the declarer's half carries over; under a
			// double the whole multiplied stake hangs.
			res.Hung = true
			sum := rounded(res.Totals[0]) + rounded(res.Totals[1])
			if mult > 1 {
				m.Hanging += sum * mult
			} else {
				m.Scores[defTeam] += rounded(res.Totals[defTeam])
				res.Awarded[defTeam] = rounded(res.Totals[defTeam])
				m.Hanging += rounded(res.Totals[declTeam])
			}
		} else {
			winner := Team(0)
			if res.Totals[1] > res.Totals[0] {
				winner = Team(1)
			}
			res.Winner = winner
			sum := rounded(res.Totals[0]) + rounded(res.Totals[1])

			var winPts, losePts int
			switch {
			case winner != declTeam:
				// Contract lost inside: the defenders take everything.
				winPts = sum * mult
			case mult > 1:
				winPts = sum * mult
			default:
				winPts = rounded(res.Totals[winner])
				losePts = rounded(res.Totals[1-winner])
			}
			winPts += m.Hanging
			m.Hanging = 0
			m.Scores[winner] += winPts
			m.Scores[1-winner] += losePts
			res.Awarded[winner] = winPts
			res.Awarded[1-winner] = losePts
		}
	}

	m.LastResult = &res
	m.DealsDone++

	for i := range m.Hands {
		m.Deck.Collect(m.Hands[i].Winnings)
	}

	if winner, over := matchOver(m, res); over {
		m.GamesWon[winner]++
		first := m.First
		m.ResetDeal()
		m.First = first
		m.Phase = PhaseGameOver
		return
	}

	first := nextSeat(m.First)
	m.ResetDeal()
	m.First = first
}

// matchOver decides whether the match ends with this result. Crossing the
// winning threshold by sweeping every trick does not end the match: one more
// deal is owed, after which the threshold applies unconditionally.
func matchOver(m *MatchState, res DealResult) (Team, bool) {
	s0, s1 := m.Scores[0], m.Scores[1]
	switch {
	case s0 > WinningScore && s1 > WinningScore:
		if s0 > s1 {
			return 0, true
		}
		if s1 > s0 {
			return 1, true
		}
		return 0, false
	case s0 > WinningScore:
		return 0, finalOrDefer(m, res, 0)
	case s1 > WinningScore:
		return 1, finalOrDefer(m, res, 1)
	}
	return 0, false
}

func finalOrDefer(m *MatchState, res DealResult, t Team) bool {
	if res.Capot && res.Winner == t && !m.FinalDeal {
		m.FinalDeal = true
		return false
	}
	return true
}
