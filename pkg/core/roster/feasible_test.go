package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testState(staff []Nurse) *state {
	in := Input{Year: 2026, Month: 2, Staff: staff, Holidays: DaySet{}}
	return newState(in, newRNG(1))
}

func TestFeasible_RequestOffBlocks(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN, ReqOff: map[int]bool{5: true}}})
	assert.False(t, feasible(s, "A", 5, Day))
}

func TestFeasible_NightThenOffOrNightOnly(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN}})
	s.set("A", 3, Night)
	assert.True(t, feasible(s, "A", 4, Off))
	assert.True(t, feasible(s, "A", 4, Night))
	assert.False(t, feasible(s, "A", 4, Day))
	assert.False(t, feasible(s, "A", 4, Eve))
}

func TestFeasible_EveningBansNextDayDayAndDE(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN}})
	s.set("A", 3, Eve)
	assert.False(t, feasible(s, "A", 4, Day))
	assert.False(t, feasible(s, "A", 4, DE))
	assert.True(t, feasible(s, "A", 4, Eve))
	assert.True(t, feasible(s, "A", 4, Off))
}

func TestFeasible_NightForbiddenWhenNextDayCommitted(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN}})
	s.set("A", 5, Day)
	assert.False(t, feasible(s, "A", 4, Night))
}

func TestFeasible_StreakCap(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN}})
	for d := 1; d <= 6; d++ {
		s.set("A", d, Day)
	}
	assert.False(t, feasible(s, "A", 7, Day), "7th consecutive work day must be rejected")
}

func TestFeasible_FixedWorkRestrictsChoice(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN, FixedWork: map[int][]ShiftCode{5: {Day, Eve}}}})
	assert.True(t, feasible(s, "A", 5, Day))
	assert.True(t, feasible(s, "A", 5, Eve))
	assert.False(t, feasible(s, "A", 5, Night))
	assert.True(t, feasibleFiltered(s, "A", 5, Night, false), "ignoring the fixed-work filter lifts the restriction")
}

func TestFeasible_CellAlreadyFilled(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN}})
	s.set("A", 5, Day)
	assert.False(t, feasible(s, "A", 5, Eve))
}

func TestFeasible_OutOfRangeDay(t *testing.T) {
	s := testState([]Nurse{{Name: "A", Role: RoleRN}})
	assert.False(t, feasible(s, "A", 0, Day))
	assert.False(t, feasible(s, "A", s.lastDay+1, Day))
}
