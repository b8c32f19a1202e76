package roster

const balancerMaxIterations = 50

// balance equalizes OFF counts across RNs via single-swap transfers (§4.7).
// Each iteration moves at most one shift, to avoid cascading invariant
// violations.
func balance(s *state) {
	for iter := 0; iter < balancerMaxIterations; iter++ {
		rns := s.namesByRole(RoleRN)
		if len(rns) < 2 {
			return
		}

		maxP, maxScore := "", 0.0
		minP, minScore := "", 0.0
		for i, name := range rns {
			score := adjustedOffScore(s, name)
			if i == 0 || score > maxScore {
				maxP, maxScore = name, score
			}
			if i == 0 || score < minScore {
				minP, minScore = name, score
			}
		}

		if maxP == minP || maxScore-minScore <= 2 {
			return
		}

		if !trySwap(s, maxP, minP) {
			return
		}
	}
}

func adjustedOffScore(s *state, name string) float64 {
	off := float64(s.offCount(name))
	n := s.cnt[name].n
	weight := 0.3
	if n > 10 {
		weight = 1.0
	}
	return off - float64(n)*weight
}

func trySwap(s *state, maxP, minP string) bool {
	days := make([]int, s.lastDay)
	for i := range days {
		days[i] = i + 1
	}
	s.rng.shuffleInts(days)

	for _, d := range days {
		maxCell := s.cell(maxP, d)
		if maxCell != Empty && maxCell != Off {
			continue
		}
		minCell := s.cell(minP, d)
		if minCell != Day && minCell != Eve {
			continue
		}
		if !feasible(s, maxP, d, minCell) {
			continue
		}

		s.set(minP, d, Off)
		s.set(maxP, d, minCell)
		return true
	}
	return false
}
