package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Ward:  "Maple Ward",
		Year:  2026,
		Month: 2,
		Staff: []NurseEntry{
			{Name: "Head", Role: "HN"},
			{Name: "R1", Role: "RN"},
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := validConfig()
	cfg.Ward = ""
	assert.Error(t, Validate(cfg))
}

func TestValidate_RejectsUnknownRole(t *testing.T) {
	cfg := validConfig()
	cfg.Staff[0].Role = "XX"
	assert.Error(t, Validate(cfg))
}

func TestValidate_RejectsMalformedRRule(t *testing.T) {
	cfg := validConfig()
	cfg.RecurringHolidays = []RecurringHoliday{{RRule: "not-an-rrule"}}
	assert.Error(t, Validate(cfg))
}

func TestResolvedHolidays_UnionsExplicitAndRecurring(t *testing.T) {
	cfg := validConfig()
	cfg.Holidays = []int{1}
	cfg.RecurringHolidays = []RecurringHoliday{{RRule: "FREQ=WEEKLY;BYDAY=SU;COUNT=10"}}

	holidays, err := cfg.ResolvedHolidays()
	require.NoError(t, err)

	assert.True(t, holidays[1])
	foundSunday := false
	// Start at day 2: day 1 is the explicit entry (and itself a Sunday).
	for d := 2; d <= 28; d++ {
		if holidays[d] && isWeekendDay(2026, 2, d) {
			foundSunday = true
		}
	}
	assert.True(t, foundSunday, "expected at least one Sunday in February 2026 to resolve as a holiday")
}

func TestToInput_ParsesStaffFreeTextFields(t *testing.T) {
	cfg := validConfig()
	cfg.Staff[1].ReqOff = "1,2,3"

	in, err := cfg.ToInput()
	require.NoError(t, err)
	require.Len(t, in.Staff, 2)

	var reqOff map[int]bool
	for _, n := range in.Staff {
		if n.Name == "R1" {
			reqOff = n.ReqOff
		}
	}
	require.NotNil(t, reqOff)
	assert.True(t, reqOff[1])
	assert.True(t, reqOff[2])
	assert.True(t, reqOff[3])
}

func isWeekendDay(year, month, day int) bool {
	wd := dateUTC(year, month, day).Weekday()
	return wd.String() == "Sunday" || wd.String() == "Saturday"
}
