package config

import "time"

func dateUTC(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year, month int) int {
	return dateUTC(year, month+1, 0).Day()
}
