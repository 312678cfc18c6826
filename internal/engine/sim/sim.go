// Package sim drives full self-play matches to exercise the rules under
// bot-generated traffic and to check the accounting invariants after every
// single action.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/mirosoltan/belote/internal/bots"
	"github.com/mirosoltan/belote/internal/engine"
)

// Result summarizes one self-play run.
type Result struct {
	Steps     int
	DealsDone int
	Redeals   int
	Completed bool
	Winner    engine.Team
}

// Run plays one match with every seat controlled by bot, stopping at game
// over or after maxSteps actions. It fails on any invariant breach: wrong
// card count, duplicated cards, a bot action the rules reject, or a turn
// with no legal action.
func Run(seed int64, maxSteps int, bot bots.Bot) (Result, error) {
	return RunFrom(seed, maxSteps, bot, [2]int{})
}

// RunFrom is Run starting from preset team scores, for driving the endgame
// directly.
func RunFrom(seed int64, maxSteps int, bot bots.Bot, scores [engine.NumTeams]int) (Result, error) {
	rng := rand.New(rand.NewSource(seed))
	m := engine.NewMatch(engine.NewDeck(rng))
	m.Scores = scores

	var res Result
	deals := 0
	for res.Steps = 0; res.Steps < maxSteps; res.Steps++ {
		switch m.Phase {
		case engine.PhaseGameOver:
			res.Completed = true
			res.DealsDone = deals
			res.Redeals = m.Redeals
			if m.GamesWon[1] > m.GamesWon[0] {
				res.Winner = 1
			}
			return res, nil

		case engine.PhaseDeal:
			if err := engine.StartDeal(&m); err != nil {
				return res, fmt.Errorf("step %d: start deal: %w", res.Steps, err)
			}

		default:
			seat := engine.CurrentSeat(m)
			if seat < 0 {
				return res, fmt.Errorf("step %d: phase %v waits on no seat", res.Steps, m.Phase)
			}
			if len(engine.LegalActions(m, seat)) == 0 {
				return res, fmt.Errorf("step %d: seat %d has no legal action", res.Steps, seat)
			}
			before := m.DealsDone
			a := bot.ChooseAction(m, seat)
			if err := engine.ApplyAction(&m, seat, a); err != nil {
				return res, fmt.Errorf("step %d: seat %d chose illegal %v: %w", res.Steps, seat, a, err)
			}
			if m.DealsDone > before {
				deals++
			}
		}

		if err := checkConservation(m); err != nil {
			return res, fmt.Errorf("step %d: %w", res.Steps, err)
		}
	}
	res.DealsDone = deals
	res.Redeals = m.Redeals
	return res, nil
}

// checkConservation verifies that the deck, the hands, the winnings piles
// and the open trick together hold each of the 32 cards exactly once.
func checkConservation(m engine.MatchState) error {
	seen := make(map[engine.Card]int, engine.DeckSize)
	total := m.Deck.Len()

	count := func(cards []engine.Card) {
		for _, c := range cards {
			seen[c]++
			total++
		}
	}
	for seat := range m.Hands {
		count(m.Hands[seat].Cards)
		count(m.Hands[seat].Winnings)
	}
	for _, p := range m.Trick.Plays {
		seen[p.Card]++
		total++
	}

	if total != engine.DeckSize {
		return fmt.Errorf("%d cards in circulation, want %d", total, engine.DeckSize)
	}
	for c, n := range seen {
		if n > 1 {
			return fmt.Errorf("card %v held %d times", c, n)
		}
	}
	return nil
}
