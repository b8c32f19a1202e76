package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveNurseStaff() []Nurse {
	return []Nurse{
		{Name: "Head", Role: RoleHN},
		{Name: "R1", Role: RoleRN},
		{Name: "R2", Role: RoleRN},
		{Name: "R3", Role: RoleRN},
		{Name: "A1", Role: RoleAN},
	}
}

func TestSimulate_EmptyStaffReturnsFallback(t *testing.T) {
	in := Input{Year: 2026, Month: 2, Staff: nil, Holidays: DaySet{}}
	res := Simulate(in, DefaultSimOptions())
	assert.Equal(t, daysInMonth(2026, 2), res.LastDay)
	assert.Empty(t, res.Matrix)
}

func TestSimulate_DeterministicForFixedSeed(t *testing.T) {
	in := Input{Year: 2026, Month: 2, Staff: fiveNurseStaff(), Holidays: DaySet{14: true}}
	opts := SimOptions{MaxAttempts: 20, Seed: 42}

	r1 := Simulate(in, opts)
	r2 := Simulate(in, opts)

	require.Equal(t, r1.Matrix, r2.Matrix)
	assert.Equal(t, r1.Score, r2.Score)
}

func TestSimulate_NoOutputCellIsEmpty(t *testing.T) {
	in := Input{Year: 2026, Month: 2, Staff: fiveNurseStaff(), Holidays: DaySet{}}
	res := Simulate(in, DefaultSimOptions())

	for name, row := range res.Matrix {
		for d := 1; d <= res.LastDay; d++ {
			assert.NotEqual(t, Empty, row[d], "%s day %d emitted as empty", name, d)
		}
	}
}

func TestSimulate_FindsZeroHoleCandidate(t *testing.T) {
	in := Input{Year: 2026, Month: 2, Staff: fiveNurseStaff(), Holidays: DaySet{}}
	opts := SimOptions{MaxAttempts: 1000, Seed: 7}
	res := Simulate(in, opts)
	assert.True(t, res.Score.Total < 9_999_999, "a 5-nurse month should find at least a zero-hole candidate")
}
