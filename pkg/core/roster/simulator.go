package roster

// SimOptions are the Monte-Carlo tuning knobs: the attempt budget and the
// base seed. The early-exit thresholds (Score.succeeds) and the score
// weights are fixed in code and not configurable here.
type SimOptions struct {
	MaxAttempts int   // default 100
	Seed        int64 // base seed; attempt i uses Seed+int64(i)
}

// DefaultSimOptions matches the policy defaults named throughout §4.9.
func DefaultSimOptions() SimOptions {
	return SimOptions{MaxAttempts: 100, Seed: 1}
}

// Simulate is the outer Monte-Carlo driver (§4.9): it runs stages 2-6 up to
// MaxAttempts times with independent per-attempt randomness, keeps the
// lowest-scoring candidate, and exits early once a candidate clears the
// tightened success bounds. Given a fixed seed it is deterministic (§8).
func Simulate(in Input, opts SimOptions) Result {
	if len(in.Staff) == 0 {
		return fallback(in)
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 100
	}

	var best Result
	haveBest := false

	for i := 0; i < opts.MaxAttempts; i++ {
		candidate := runAttempt(in, opts.Seed+int64(i))

		if !haveBest || candidate.Score.Total < best.Score.Total {
			best = candidate
			haveBest = true
		}

		if candidate.Score.succeeds() {
			break
		}
	}

	if !haveBest {
		return fallback(in)
	}
	return best
}
