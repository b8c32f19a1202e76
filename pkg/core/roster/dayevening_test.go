package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillDayEvening_WeekdayGetsDayAndEvening(t *testing.T) {
	staff := []Nurse{
		{Name: "HN1", Role: RoleHN},
		{Name: "RN1", Role: RoleRN},
		{Name: "RN2", Role: RoleRN},
	}
	s := testState(staff)
	// Feb 2, 2026 is a Monday.
	fillDayEvening(s)

	assert.True(t, dayHasShift(s, 2, Day))
	assert.True(t, dayHasShift(s, 2, Eve))
}

func TestFillDayEvening_HolidayGetsDEOrSplit(t *testing.T) {
	staff := []Nurse{
		{Name: "HN1", Role: RoleHN},
		{Name: "RN1", Role: RoleRN},
		{Name: "RN2", Role: RoleRN},
	}
	in := Input{Year: 2026, Month: 2, Staff: staff, Holidays: DaySet{10: true}}
	s := newState(in, newRNG(1))
	fillDayEvening(s)

	hasDE := dayHasShift(s, 10, DE)
	hasSplit := dayHasShift(s, 10, Day) && dayHasShift(s, 10, Eve)
	assert.True(t, hasDE || hasSplit)
}

func TestFillDayEvening_HNPrefersDayOverEvening(t *testing.T) {
	staff := []Nurse{
		{Name: "HN1", Role: RoleHN},
		{Name: "RN1", Role: RoleRN},
	}
	s := testState(staff)
	fillDayEvening(s)

	// HN1 takes the DE on Sunday Feb 1, which bans D on days 2-6 (evening
	// before day); Monday Feb 9 follows a day HN1 did not end on an evening.
	assert.Equal(t, Day, s.cell("HN1", 9))
}

func TestFillDayEvening_DECapEnforced(t *testing.T) {
	staff := []Nurse{
		{Name: "HN1", Role: RoleHN},
		{Name: "RN1", Role: RoleRN},
	}
	holidays := DaySet{}
	for d := 1; d <= 28; d++ {
		if isWeekend(2026, 2, d) {
			continue
		}
		holidays[d] = true
	}
	in := Input{Year: 2026, Month: 2, Staff: staff, Holidays: holidays}
	s := newState(in, newRNG(1))
	fillDayEvening(s)

	for _, n := range s.staff {
		assert.LessOrEqual(t, s.cnt[n.Name].de, 1)
	}
}
