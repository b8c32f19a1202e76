package roster

// repairMinimumOff enforces the §4.8 OFF floor: every HN/RN must reach at
// least 6 OFF days, converting D/E days to OFF (preferring days where
// coverage is preserved by another nurse) and attempting to backfill the
// freed slot from a peer with OFF days to spare.
func repairMinimumOff(s *state) {
	for _, name := range s.namesByRole(RoleHN, RoleRN) {
		for s.offCount(name) < 6 {
			day, shift, ok := pickConversionDay(s, name)
			if !ok {
				break
			}

			s.set(name, day, Off)
			refillFromPeer(s, name, day, shift)
		}
	}
}

// pickConversionDay finds a D/E day to convert, preferring ones where
// another nurse already covers the same shift (so coverage survives even if
// the refill fails).
func pickConversionDay(s *state, name string) (int, ShiftCode, bool) {
	days := make([]int, s.lastDay)
	for i := range days {
		days[i] = i + 1
	}
	s.rng.shuffleInts(days)

	bestDay, bestShift, found := 0, Empty, false
	for _, d := range days {
		c := s.cell(name, d)
		if c != Day && c != Eve {
			continue
		}
		if dayShiftCoveredByOther(s, d, c, name) {
			return d, c, true
		}
		if !found {
			bestDay, bestShift, found = d, c, true
		}
	}
	return bestDay, bestShift, found
}

func dayShiftCoveredByOther(s *state, day int, shift ShiftCode, exclude string) bool {
	for _, n := range s.staff {
		if n.Name == exclude {
			continue
		}
		if s.cell(n.Name, day) == shift {
			return true
		}
	}
	return false
}

// refillFromPeer tries to move another RN with OFF days to spare into the
// slot just vacated, preserving coverage.
func refillFromPeer(s *state, vacatedBy string, day int, shift ShiftCode) {
	for _, name := range s.namesByRole(RoleRN) {
		if name == vacatedBy {
			continue
		}
		if s.offCount(name) <= 6 {
			continue
		}
		if s.cell(name, day) != Empty && s.cell(name, day) != Off {
			continue
		}
		if !feasible(s, name, day, shift) {
			continue
		}
		s.set(name, day, shift)
		return
	}
}
