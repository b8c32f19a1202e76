package roster

const nightCapExtended = 11

// repairZeroGaps is the second coverage pass (§4.6): for every day still
// missing a required shift, it tries the normal night cap first and only
// relaxes to the extended cap for N. Candidates must keep at least 6 OFF
// days after being pulled in, protecting I8.
func repairZeroGaps(s *state) {
	for d := 1; d <= s.lastDay; d++ {
		for _, shift := range missingShifts(s, d) {
			limits := []int{nightCapNormal}
			if shift == Night {
				limits = []int{nightCapNormal, nightCapExtended}
			}

			for _, cap := range limits {
				if fillGap(s, d, shift, cap) {
					break
				}
			}
		}
	}
}

func missingShifts(s *state, d int) []ShiftCode {
	var missing []ShiftCode
	if !dayHasNight(s, d) {
		missing = append(missing, Night)
	}
	for _, shift := range requiredShifts(s, d) {
		// A holiday covered by a split D+E pair (§4.5 substitution) is not
		// missing its DE.
		if shift == DE && dayHasShift(s, d, Day) && dayHasShift(s, d, Eve) {
			continue
		}
		if !dayHasShift(s, d, shift) {
			missing = append(missing, shift)
		}
	}
	return missing
}

func fillGap(s *state, d int, shift ShiftCode, nCap int) bool {
	candidates := gapCandidates(s, d, shift, nCap)
	for _, name := range candidates {
		if s.offCount(name) <= 6 {
			continue
		}
		if !feasible(s, name, d, shift) {
			continue
		}
		s.set(name, d, shift)

		if shift == Night {
			extendNightIfSafe(s, name, d+1, nCap)
		}
		return true
	}
	return false
}

// extendNightIfSafe opportunistically grows the run by one more N when it
// stays feasible and doesn't drop the nurse below the 6-OFF floor.
func extendNightIfSafe(s *state, name string, day, nCap int) {
	if s.cnt[name].n >= nCap {
		return
	}
	if s.offCount(name)-1 < 6 {
		return
	}
	if !feasible(s, name, day, Night) {
		return
	}
	s.set(name, day, Night)
}

func gapCandidates(s *state, day int, shift ShiftCode, nCap int) []string {
	type cand struct {
		name string
		n    int
		work int
		tie  float64
	}
	var list []cand

	var pool []string
	if shift == Night {
		for _, name := range s.namesByRole(RoleRN) {
			c := s.cell(name, day)
			if (c == Empty || c == Off) && s.cnt[name].n < nCap {
				pool = append(pool, name)
			}
		}
	} else {
		pool = s.namesByRole(RoleHN, RoleRN)
	}

	for _, name := range pool {
		list = append(list, cand{name, s.cnt[name].n, s.cnt[name].work, s.rng.Float64()})
	}

	sortCands(list, func(a, b cand) bool {
		if a.n != b.n {
			return a.n < b.n
		}
		if a.work != b.work {
			return a.work < b.work
		}
		return a.tie < b.tie
	})

	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.name
	}
	return out
}
