package roster

// prefill seeds the matrix (§4.2): AN blanket patterns (weekday M,
// weekend/holiday/request OFF) and single-code fixed-work pre-assignments
// for every nurse. Multi-code fixed entries are left for feasible() to use
// as a filter later; they are not applied here.
func prefill(s *state) {
	for i := range s.staff {
		n := &s.staff[i]
		if n.Role == RoleAN {
			for d := 1; d <= s.lastDay; d++ {
				if n.ReqOff[d] || s.isWeekendOrHoliday(d) {
					s.set(n.Name, d, Off)
				} else {
					s.set(n.Name, d, Admin)
				}
			}
		}
	}

	for i := range s.staff {
		n := &s.staff[i]
		for day, codes := range n.FixedWork {
			if len(codes) == 1 {
				s.set(n.Name, day, codes[0])
			}
		}
	}
}
