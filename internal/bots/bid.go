package bots

import "github.com/mirosoltan/belote/internal/engine"

// chooseBid ports the bidding ladder: evaluate the hand, then branch on
// whether the table is silent, the partner holds the contract, or the
// opponents do, tempered by the team's behavior. The suggestion is checked
// against the legal set before it is returned; anything unplayable becomes a
// pass.
func (s *Strategy) chooseBid(m engine.MatchState, seat int) engine.Action {
	_, dominant, haveDominant, ntp, atp := handStrength(m.Hands[seat].Cards, m.Contract)
	b := behaviorFor(m, engine.TeamOf(seat))
	firstOurs := engine.TeamOf(m.First) == engine.TeamOf(seat)

	suggestion := s.suggestBid(m, seat, dominant, haveDominant, ntp, atp, b, firstOurs)
	return legalOrPass(m, seat, suggestion)
}

func (s *Strategy) suggestBid(m engine.MatchState, seat int, dominant engine.Suit, haveDominant bool,
	ntp, atp int, b behavior, firstOurs bool) engine.Action {

	pass := engine.Action{Type: engine.ActionPass}
	bid := func(v engine.Bid) engine.Action { return engine.Action{Type: engine.ActionBid, Bid: v} }
	contract := m.Contract
	ourTeam := engine.TeamOf(seat)

	if contract.Bid == engine.BidPass {
		// Nothing on the table yet.
		switch b {
		case desperate:
			// Stay silent and let the enemy commit to something.
			return pass
		case defensive:
			switch {
			case haveDominant:
				return bid(engine.BidForSuit(dominant))
			case ntp > 18 && ntp > atp && firstOurs:
				return bid(engine.BidNoTrump)
			case atp > 18 && firstOurs:
				return bid(engine.BidAllTrump)
			default:
				return pass
			}
		default:
			switch {
			case haveDominant:
				return bid(engine.BidForSuit(dominant))
			case ntp > 18 && ntp > atp:
				return bid(engine.BidNoTrump)
			case atp > 18:
				return bid(engine.BidAllTrump)
			default:
				return pass
			}
		}
	}

	if engine.TeamOf(contract.Declarer) == ourTeam {
		// The partner holds the contract.
		if contract.Contra {
			if b == aggressive && firstOurs {
				return engine.Action{Type: engine.ActionReContra}
			}
			return pass
		}
		if contract.ReContra {
			return pass
		}
		if haveDominant {
			switch {
			case contract.Bid < engine.BidNoTrump:
				if engine.BidForSuit(dominant) > contract.Bid {
					return bid(engine.BidForSuit(dominant))
				}
				return bid(engine.BidAllTrump)
			case contract.Bid == engine.BidNoTrump:
				if atp > 25 && firstOurs {
					return bid(engine.BidAllTrump)
				}
				return pass
			default:
				return pass
			}
		}
		if contract.Bid < engine.BidAllTrump && atp > 20 && firstOurs {
			return bid(engine.BidAllTrump)
		}
		return pass
	}

	// The opponents hold the contract.
	if contract.Contra || contract.ReContra {
		// The contra is necessarily the partner's; nothing to add.
		return pass
	}
	if !haveDominant && ntp < 13 && atp < 13 {
		return pass
	}

	teamDeclared := false
	for _, br := range m.BidHistory {
		if engine.TeamOf(br.Seat) == ourTeam {
			teamDeclared = true
			break
		}
	}

	switch {
	case haveDominant && contract.Bid < engine.BidNoTrump:
		if engine.BidForSuit(dominant) == contract.Bid {
			// They took our best suit from under us.
			if b == aggressive || b == desperate {
				return engine.Action{Type: engine.ActionContra}
			}
			return pass
		}
		if teamDeclared {
			if engine.BidForSuit(dominant) > contract.Bid {
				return bid(engine.BidForSuit(dominant))
			}
			if atp > 17 && firstOurs {
				return bid(engine.BidAllTrump)
			}
		}
		if engine.BidForSuit(dominant) > contract.Bid {
			return bid(engine.BidForSuit(dominant))
		}
		if b != defensive && b != desperate && firstOurs {
			return bid(engine.BidAllTrump)
		}
		if b == desperate {
			return engine.Action{Type: engine.ActionContra}
		}
		return pass

	case !haveDominant && contract.Bid < engine.BidNoTrump:
		switch {
		case ntp > 15 && b != defensive:
			return bid(engine.BidNoTrump)
		case atp > 15 && b != defensive:
			return bid(engine.BidAllTrump)
		case b == desperate:
			return bid(engine.BidNoTrump)
		default:
			return pass
		}

	case contract.Bid == engine.BidNoTrump:
		if ntp > 20 && firstOurs && b == aggressive {
			return engine.Action{Type: engine.ActionContra}
		}
		switch {
		case atp > 18 && b != defensive:
			return bid(engine.BidAllTrump)
		case b == desperate:
			return bid(engine.BidAllTrump)
		case teamDeclared && b != defensive:
			return bid(engine.BidAllTrump)
		default:
			return pass
		}

	default: // all trumps on the table
		if atp > 20 && firstOurs && b == aggressive {
			return engine.Action{Type: engine.ActionContra}
		}
		if b == desperate {
			return engine.Action{Type: engine.ActionContra}
		}
		if atp > 25 && b != defensive {
			return engine.Action{Type: engine.ActionContra}
		}
		return pass
	}
}

// legalOrPass downgrades any suggestion the rules reject to a pass. The
// suggestion ladder already respects the raise order; this guards the
// remaining corners (contra preconditions, stale reads).
func legalOrPass(m engine.MatchState, seat int, a engine.Action) engine.Action {
	for _, legal := range engine.LegalActions(m, seat) {
		if legal.Type == a.Type && legal.Bid == a.Bid {
			return a
		}
	}
	return engine.Action{Type: engine.ActionPass}
}
