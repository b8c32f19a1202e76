package roster

// fillDayEvening is the per-day filler (§4.5): D/E on ordinary days, DE on
// holidays/weekends, with role-preference sorted candidates and a three-pass
// relaxation when nobody qualifies outright.
func fillDayEvening(s *state) {
	for d := 1; d <= s.lastDay; d++ {
		fillDay(s, d)
	}
}

func fillDay(s *state, d int) {
	required := requiredShifts(s, d)

	for i := 0; i < len(required); i++ {
		shift := required[i]
		if dayHasShift(s, d, shift) {
			continue
		}

		if placeShift(s, d, shift) {
			continue
		}

		if shift == DE {
			// Coverage substitution (§4.5, §9 Design Notes): split the
			// holiday into separate D and E requirements and re-enter the
			// filler loop for this day only.
			required = append(required, Day, Eve)
		}
	}
}

func requiredShifts(s *state, d int) []ShiftCode {
	if s.isWeekendOrHoliday(d) {
		return []ShiftCode{DE}
	}
	return []ShiftCode{Day, Eve}
}

func dayHasShift(s *state, day int, shift ShiftCode) bool {
	for _, n := range s.staff {
		if s.cell(n.Name, day) == shift {
			return true
		}
	}
	return false
}

// placeShift runs the three relaxation passes described in §4.5 and writes
// the first admissible candidate. Returns false if nobody could be placed.
func placeShift(s *state, d int, shift ShiftCode) bool {
	holiday := s.isWeekendOrHoliday(d)

	// Pass 1 & 2 share the same (filtered) candidate pool; pass 2 just
	// ignores each candidate's fixed-work restriction.
	candidates := dayEveningCandidates(s, d, shift, holiday, true)
	if tryPlace(s, d, shift, candidates, true) {
		return true
	}
	if tryPlace(s, d, shift, candidates, false) {
		return true
	}

	if shift == DE {
		return false
	}

	// Pass 3: drop de_count/hnE candidate filtering entirely, ignore
	// fixed-work too.
	unfiltered := dayEveningCandidates(s, d, shift, holiday, false)
	return tryPlace(s, d, shift, unfiltered, false)
}

func tryPlace(s *state, d int, shift ShiftCode, candidates []string, applyFixedWork bool) bool {
	for _, name := range candidates {
		if feasibleFiltered(s, name, d, shift, applyFixedWork) {
			s.set(name, d, shift)
			return true
		}
	}
	return false
}

// dayEveningCandidates builds HN ∪ RN sorted by: HN priority (0 for D/DE,
// 999 for E), others 10; then ascending work_count; then random tie-break.
// When filterRoleCaps is true, de_count>=1 is skipped for DE and HN with
// hnE_count>=1 is skipped for holiday E (§4.5).
func dayEveningCandidates(s *state, day int, shift ShiftCode, holiday bool, filterRoleCaps bool) []string {
	type cand struct {
		name     string
		priority int
		work     int
		tie      float64
	}
	var list []cand
	for _, name := range s.namesByRole(RoleHN, RoleRN) {
		n := s.byName[name]

		if filterRoleCaps {
			if shift == DE && s.cnt[name].de >= 1 {
				continue
			}
			if n.Role == RoleHN && holiday && shift == Eve && s.cnt[name].hnE >= 1 {
				continue
			}
		}

		priority := 10
		if n.Role == RoleHN {
			if shift == Day || shift == DE {
				priority = 0
			} else {
				priority = 999
			}
		}

		list = append(list, cand{name, priority, s.cnt[name].work, s.rng.Float64()})
	}

	sortCands(list, func(a, b cand) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
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
