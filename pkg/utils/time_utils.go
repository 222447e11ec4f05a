package utils

import "time"

// Trip dates are calendar dates, stored and exchanged as "YYYY-MM-DD".
const ISODate = "2006-01-02"

func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODate)
}

// DaysBetween counts whole calendar days from start to end, inclusive of
// both endpoints. Same-day trips count as 1.
func DaysBetween(start, end time.Time) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
