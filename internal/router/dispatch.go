package router

// BackendSelectFunc is a bound, policy-specific selection function: given a
// candidate set and (for the adaptive policy) a random source, it returns
// the index of the chosen candidate, or -1 for "none".
type BackendSelectFunc func(candidates []Backend, rnd RandomSource) int

// debugAssertionsEnabled gates the panic-on-unknown-policy path (spec.md
// 4.E, 7). It is a package variable rather than a build-tag so tests can
// exercise the release fallback path deterministically.
var debugAssertionsEnabled = false

func scoreSelectFunc(score ScoreFunc) BackendSelectFunc {
	return func(candidates []Backend, _ RandomSource) int {
		return bestOfScore(candidates, score)
	}
}

// GetBackendSelectFunction is the dispatcher from spec.md 4.E: a total
// function over the policy enum. An unrecognized policy asserts in debug
// builds (debugAssertionsEnabled == true) and otherwise falls back to
// LEAST_CURRENT_OPERATIONS, mirroring the source's safe default.
func GetBackendSelectFunction(policy Policy) BackendSelectFunc {
	switch policy {
	case LeastRouterConnections:
		return scoreSelectFunc(scoreLeastRouterConnections)
	case LeastGlobalConnections:
		return scoreSelectFunc(scoreLeastGlobalConnections)
	case LeastBehindMaster:
		return scoreSelectFunc(scoreLeastBehindMaster)
	case LeastCurrentOperations:
		return scoreSelectFunc(scoreLeastCurrentOperations)
	case AdaptiveRouting:
		return adaptiveRoulette
	default:
		if debugAssertionsEnabled {
			panic("router: unknown selection policy")
		}
		return scoreSelectFunc(scoreLeastCurrentOperations)
	}
}
