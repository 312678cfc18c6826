package sim

import (
	"math/rand"
	"testing"

	"github.com/mirosoltan/belote/internal/bots"
)

func TestRandomSelfPlayHoldsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		res, err := Run(seed, 100000, bots.NewRandom(rand.New(rand.NewSource(seed))))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.DealsDone == 0 {
			t.Fatalf("seed %d: no deal scored in %d steps", seed, res.Steps)
		}
	}
}

func TestStrategySelfPlayHoldsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		res, err := Run(seed, 200000, bots.NewStrategy())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !res.Completed {
			t.Fatalf("seed %d: match did not finish in %d steps (%d deals)",
				seed, res.Steps, res.DealsDone)
		}
	}
}

// Four bots at 141 apiece must not fold the table forever: somebody has to
// bid, or the all-pass redeal cycle repeats without bound.
func TestSelfPlayEndsWhenBothTeamsNearGame(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		res, err := RunFrom(seed, 200000, bots.NewStrategy(), [2]int{141, 141})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !res.Completed {
			t.Fatalf("seed %d: stuck with both teams near game (%d redeals)",
				seed, res.Redeals)
		}
	}
}
