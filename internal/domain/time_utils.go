package domain

import "time"

// DisplayLayout matches the en-US locale string a browser renders, e.g. "1/2/2024, 9:00:00 AM"
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// EndOfDay returns the last millisecond (23:59:59.999) of the given date in its own location.
func EndOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), date.Location())
}

// FormatDisplayTime parses an RFC3339 timestamp and renders it in loc using DisplayLayout.
// Unparseable input is returned as given.
func FormatDisplayTime(value string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}
