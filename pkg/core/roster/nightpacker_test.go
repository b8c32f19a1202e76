package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rnStaff(n int) []Nurse {
	staff := make([]Nurse, n)
	for i := range staff {
		staff[i] = Nurse{Name: string(rune('A' + i)), Role: RoleRN}
	}
	return staff
}

func TestPackNights_EveryDayGetsOneNight(t *testing.T) {
	s := testState(rnStaff(5))
	packNights(s)

	for d := 1; d <= s.lastDay; d++ {
		count := 0
		for _, n := range s.staff {
			if s.cell(n.Name, d) == Night {
				count++
			}
		}
		assert.GreaterOrEqual(t, count, 1, "day %d should have a night nurse", d)
	}
}

func TestPackNights_ForcesRestTail(t *testing.T) {
	s := testState(rnStaff(3))
	packNights(s)

	for _, n := range s.staff {
		for d := 1; d < s.lastDay; d++ {
			if s.cell(n.Name, d) == Night && s.cell(n.Name, d+1) != Night {
				assert.Equal(t, Off, s.cell(n.Name, d+1), "%s day %d", n.Name, d+1)
			}
		}
	}
}

func TestPackNights_RespectsCap(t *testing.T) {
	s := testState(rnStaff(2))
	packNights(s)

	for _, n := range s.staff {
		require.LessOrEqual(t, s.cnt[n.Name].n, nightCapNormal)
	}
}

func TestPackNights_HNNeverAssignedNight(t *testing.T) {
	staff := append(rnStaff(2), Nurse{Name: "Head", Role: RoleHN})
	s := testState(staff)
	packNights(s)

	for d := 1; d <= s.lastDay; d++ {
		assert.NotEqual(t, Night, s.cell("Head", d))
	}
}
