package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairZeroGaps_FillsMissingNight(t *testing.T) {
	s := testState(rnStaff(4))
	fillDayEvening(s)
	// skip packNights deliberately so every day is missing a Night.
	repairZeroGaps(s)

	for d := 1; d <= s.lastDay; d++ {
		assert.True(t, dayHasNight(s, d), "day %d still missing a night", d)
	}
}

func TestRepairZeroGaps_RespectsMinimumOffFloor(t *testing.T) {
	staff := rnStaff(3)
	s := testState(staff)
	// Drive one nurse's OFF count down to exactly 6 so the gap filler must
	// skip it for further pulls.
	for d := 1; d <= s.lastDay-6; d++ {
		s.set("A", d, Day)
	}
	before := s.offCount("A")
	repairZeroGaps(s)
	assert.Equal(t, before, s.offCount("A"))
}

func TestRepairZeroGaps_NightCountsWithinExtendedCap(t *testing.T) {
	s := testState(rnStaff(2))
	fillDayEvening(s)
	repairZeroGaps(s)

	for _, n := range s.staff {
		assert.LessOrEqual(t, s.cnt[n.Name].n, nightCapExtended)
	}
}
