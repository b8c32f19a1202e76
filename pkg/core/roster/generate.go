package roster

// runAttempt executes stages 2-6 once (§2 System Overview) and scores the
// result. It owns its own state exclusively, never touching shared mutable
// data (§5 Concurrency & Resource Model).
func runAttempt(in Input, seed int64) Result {
	s := newState(in, newRNG(seed))

	prefill(s)
	packNights(s)
	fillDayEvening(s)
	repairZeroGaps(s)
	balance(s)
	repairMinimumOff(s)

	return s.toResult(scoreState(s))
}

// fallback returns the "structurally impossible" safe result from §7: an
// all-OFF matrix, used when staff is empty or no attempt can even be built.
func fallback(in Input) Result {
	lastDay := daysInMonth(in.Year, in.Month)
	out := Result{
		Matrix:    make(map[string][]ShiftCode, len(in.Staff)),
		ReqOffMap: make(map[string]map[int]bool, len(in.Staff)),
		NCounts:   make(map[string]int, len(in.Staff)),
		LastDay:   lastDay,
	}
	for _, n := range in.Staff {
		row := make([]ShiftCode, lastDay+1)
		for d := 1; d <= lastDay; d++ {
			row[d] = Off
		}
		out.Matrix[n.Name] = row
		out.ReqOffMap[n.Name] = n.ReqOff
		out.NCounts[n.Name] = 0
	}
	out.Score = Score{Total: 0}
	return out
}
