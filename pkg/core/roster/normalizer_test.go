package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReqOff(t *testing.T) {
	got := ParseReqOff(" 1, 2,x, 35, 10 ,,", 28)
	assert.Equal(t, map[int]bool{1: true, 2: true, 10: true}, got)
}

func TestParseFixedWork(t *testing.T) {
	got := ParseFixedWork("15=E, 3=d/n, bogus, 40=D", 28)
	require.Equal(t, []ShiftCode{Eve}, got[15])
	assert.Equal(t, []ShiftCode{Day, Night}, got[3])
	_, ok := got[40]
	assert.False(t, ok, "out-of-range day must be dropped")
}

func TestNormalizeIdempotent(t *testing.T) {
	n1 := Normalize("Alice", RoleRN, "1,2,3", "10=E", 5, 28)
	n2 := Normalize("Alice", RoleRN, "1,2,3", "10=E", 5, 28)
	assert.Equal(t, n1, n2)
}
