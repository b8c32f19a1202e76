package roster

const nightCapNormal = 10

// packNights is the left-to-right night sweep (§4.4). For each day missing
// an N it tries RN (non-HN) candidates in ascending n_count order, each with
// run lengths 2 or 3 (or 1 near month end) in random order, accepting the
// first admissible run and writing its forced-OFF tail. If nothing fits it
// falls back to a last-resort single/double placement without the tail
// guarantee.
func packNights(s *state) {
	for d := 1; d <= s.lastDay; d++ {
		if dayHasNight(s, d) {
			continue
		}

		candidates := nightCandidates(s, nightCapNormal)
		if placeNightRun(s, d, candidates, nightCapNormal) {
			continue
		}

		lastResortNight(s, d, candidates, nightCapNormal)
	}
}

func dayHasNight(s *state, day int) bool {
	for _, n := range s.staff {
		if s.cell(n.Name, day) == Night {
			return true
		}
	}
	return false
}

// nightCandidates returns RN (non-HN) names with n_count below cap, sorted
// ascending by n_count with a random tie-break.
func nightCandidates(s *state, cap int) []string {
	type cand struct {
		name string
		n    int
		tie  float64
	}
	var list []cand
	for _, name := range s.namesByRole(RoleRN) {
		if s.cnt[name].n < cap {
			list = append(list, cand{name, s.cnt[name].n, s.rng.Float64()})
		}
	}
	sortCands(list, func(a, b cand) bool {
		if a.n != b.n {
			return a.n < b.n
		}
		return a.tie < b.tie
	})
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.name
	}
	return out
}

func placeNightRun(s *state, d int, candidates []string, cap int) bool {
	for _, name := range candidates {
		remaining := s.lastDay - d + 1
		lengths := []int{3, 2}
		if remaining < 2 {
			lengths = []int{1}
		}
		s.rng.shuffleInts(lengths)

		budget := cap - s.cnt[name].n

		for _, L := range lengths {
			if L > budget {
				continue
			}
			if d+L-1 > s.lastDay {
				continue
			}
			if !admissibleNightRun(s, name, d, L) {
				continue
			}

			for i := 0; i < L; i++ {
				s.set(name, d+i, Night)
			}
			tail := d + L
			if tail <= s.lastDay && s.cell(name, tail) == Empty {
				s.set(name, tail, Off)
			}
			return true
		}
	}
	return false
}

// admissibleNightRun checks feasible() for each day of the run plus the
// tail-day slack required to leave room for the forced OFF.
func admissibleNightRun(s *state, name string, d, length int) bool {
	for i := 0; i < length; i++ {
		day := d + i
		if day > s.lastDay {
			return false
		}
		if !feasible(s, name, day, Night) {
			return false
		}
	}
	tail := d + length
	if tail <= s.lastDay {
		tailCode := s.cell(name, tail)
		if tailCode != Empty && tailCode != Off {
			return false
		}
	}
	return true
}

// lastResortNight places one or two N's without the forced-tail guarantee
// when no run fits cleanly. Per §9 Open Questions this intentionally skips
// the tail slack check; it is still bound by feasible() and the cap.
func lastResortNight(s *state, d int, candidates []string, cap int) {
	for _, name := range candidates {
		budget := cap - s.cnt[name].n
		if budget <= 0 {
			continue
		}
		lengths := []int{2, 1}
		if budget < 2 {
			lengths = []int{1}
		}
		s.rng.shuffleInts(lengths)

		for _, L := range lengths {
			ok := true
			for i := 0; i < L; i++ {
				if !feasible(s, name, d+i, Night) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			for i := 0; i < L; i++ {
				s.set(name, d+i, Night)
			}
			return
		}
	}
}

func sortCands[T any](list []T, less func(a, b T) bool) {
	// small insertion sort: candidate lists are short (staff-sized) and this
	// keeps the RNG-driven tie-break stable without pulling in sort.Slice's
	// less-stability caveats.
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && less(list[j], list[j-1]); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}
