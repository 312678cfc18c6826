// Package bots implements computer players. Strategy is the rule-driven
// player used for real seats; Random picks uniformly among legal actions and
// exists for self-play testing.
package bots

import (
	"math/rand"

	"github.com/mirosoltan/belote/internal/engine"
)

// Bot selects one action for a seat. Implementations must only return
// actions the engine accepts; returning an illegal action is a programming
// defect, not a recoverable condition.
type Bot interface {
	ChooseAction(m engine.MatchState, seat int) engine.Action
}

// Strategy is the heuristic player. It keeps no state of its own: everything
// it "remembers" (passed cards, the partner's strong suits, contested suits)
// is derived from the match's play log and bid history on every turn, so a
// Strategy value can serve any seat.
type Strategy struct{}

func NewStrategy() *Strategy {
	return &Strategy{}
}

func (s *Strategy) ChooseAction(m engine.MatchState, seat int) engine.Action {
	switch m.Phase {
	case engine.PhaseBidding:
		return s.chooseBid(m, seat)
	case engine.PhasePlayTricks:
		// Declare every detected announce before the first card goes.
		for _, a := range engine.LegalActions(m, seat) {
			if a.Type == engine.ActionDeclareAnnounce {
				return a
			}
		}
		return s.chooseCard(m, seat)
	}
	return engine.Action{Type: engine.ActionPass}
}

// Random plays a uniformly random legal action.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) ChooseAction(m engine.MatchState, seat int) engine.Action {
	acts := engine.LegalActions(m, seat)
	if len(acts) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	return acts[r.rng.Intn(len(acts))]
}
