package router

// veryQuick substitutes for a zero response-time average so the cube below
// never divides by zero; 0.1 microsecond.
const veryQuick = 1e-7

// rouletteFloorDivisor sets the probability floor at roughly 1/197th of the
// pre-normalised mass, guaranteeing every candidate keeps a nonzero draw
// probability so a once-slow server is periodically resampled.
const rouletteFloorDivisor = 197.0

// adaptiveRoulette draws one candidate index using response-time-weighted
// roulette selection (spec.md 4.B). It returns -1 if candidates is empty.
func adaptiveRoulette(candidates []Backend, rnd RandomSource) int {
	n := len(candidates)
	if n == 0 {
		return -1
	}

	raw := make([]float64, n)
	sum := 0.0
	for i, c := range candidates {
		ave := c.Ref().Stats.ResponseTimeAverage
		if ave == 0 {
			ave = veryQuick
		}
		inv := 1.0 / ave
		raw[i] = inv * inv * inv
		sum += raw[i]
	}

	floor := sum / rouletteFloorDivisor
	slots := make([]float64, n)
	total := 0.0
	for i, r := range raw {
		slot := r
		if floor > slot {
			slot = floor
		}
		slots[i] = slot
		total += slot
	}

	if total == 0 {
		return n - 1
	}

	u := rnd.ZeroToOneExclusive()
	cumulative := 0.0
	for i, slot := range slots {
		cumulative += slot / total
		if cumulative > u {
			return i
		}
	}
	// Only reachable via floating-point drift; last candidate wins.
	return n - 1
}
