// Package simulation fakes live production data for the dashboard.
package simulation

import "opsboard/m/domain"

const (
	// An order advances on a tick when the draw exceeds this threshold (30%).
	advanceThreshold = 0.7
	// Progress grows by an integer in [0, maxProgressStep).
	maxProgressStep = 10
	// Efficiency moves by at most half of this in either direction.
	efficiencySpread = 5.0
)

// Rand is the randomness Step draws from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Step advances unfinished orders in place and returns how many changed.
// Progress never exceeds 100 and efficiency stays within [0,100].
func Step(orders []domain.ProductionOrder, rng Rand) int {
	changed := 0
	for i := range orders {
		order := &orders[i]
		if order.Progress >= 100 || rng.Float64() <= advanceThreshold {
			continue
		}
		order.Progress = min(100, order.Progress+rng.IntN(maxProgressStep))
		order.Efficiency = clamp(order.Efficiency+(rng.Float64()-0.5)*efficiencySpread, 0, 100)
		changed++
	}
	return changed
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
