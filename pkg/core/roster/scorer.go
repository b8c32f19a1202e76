package roster

// Score is the weighted soft-constraint breakdown from §4.9, kept as named
// terms (not just the scalar) so callers can see which constraint dominated
// (§7 "diagnostics surfaced to callers").
type Score struct {
	Holes            int
	OffDiff          int
	Singles          int
	Longs            int
	MinOffViolations int
	MaxNViolations   int
	Total            float64
}

func scoreState(s *state) Score {
	sc := Score{}

	for d := 1; d <= s.lastDay; d++ {
		if len(missingShifts(s, d)) > 0 {
			sc.Holes++
		}
	}

	rns := s.namesByRole(RoleRN)
	if len(rns) > 0 {
		maxOff, minOff := s.offCount(rns[0]), s.offCount(rns[0])
		for _, name := range rns[1:] {
			off := s.offCount(name)
			if off > maxOff {
				maxOff = off
			}
			if off < minOff {
				minOff = off
			}
		}
		sc.OffDiff = maxOff - minOff
	}

	for _, n := range s.staff {
		sc.Singles += countSingles(s, n.Name)
		sc.Longs += countLongOffRuns(s, n.Name)
	}

	for _, name := range s.namesByRole(RoleHN, RoleRN) {
		if s.offCount(name) < 6 {
			sc.MinOffViolations++
		}
	}
	for _, n := range s.staff {
		if s.cnt[n.Name].n > 11 {
			sc.MaxNViolations++
		}
	}

	sc.Total = 50*float64(sc.OffDiff) + 30*float64(sc.Singles) + 40*float64(sc.Longs) +
		9_999_999*float64(sc.Holes) + 999_999*float64(sc.MinOffViolations+sc.MaxNViolations)

	return sc
}

// countSingles counts days where this nurse has a single OFF day sandwiched
// by non-OFF days on both sides.
func countSingles(s *state, name string) int {
	count := 0
	for d := 1; d <= s.lastDay; d++ {
		if isWork(s.cell(name, d)) {
			continue
		}
		prevWork := d > 1 && isWork(s.cell(name, d-1))
		nextWork := d < s.lastDay && isWork(s.cell(name, d+1))
		if prevWork && nextWork {
			count++
		}
	}
	return count
}

// countLongOffRuns counts maximal OFF runs of length >= 4 for this nurse.
func countLongOffRuns(s *state, name string) int {
	count, run := 0, 0
	flush := func() {
		if run >= 4 {
			count++
		}
		run = 0
	}
	for d := 1; d <= s.lastDay; d++ {
		if !isWork(s.cell(name, d)) {
			run++
		} else {
			flush()
		}
	}
	flush()
	return count
}

// succeeds reports the early-exit condition from §4.9.
func (sc Score) succeeds() bool {
	return sc.Holes == 0 && sc.MinOffViolations == 0 && sc.MaxNViolations == 0 &&
		sc.OffDiff <= 2 && sc.Singles <= 3 && sc.Longs == 0
}
