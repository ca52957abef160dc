package entity

import "time"

// FormatDate renders an expiry date for table cells. Missing or unparseable
// dates render as a dash, matching the "no expiry" convention.
func FormatDate(s string) string {
	t, ok := ParseExpiry(s)
	if !ok {
		return "-"
	}
	return t.Format("January 2, 2006")
}

// FormatDateTime renders a creation timestamp with an AM/PM clock.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("January 2, 2006, 3:04 PM")
}

// MinExpiryDate returns the earliest selectable expiry date, which is
// tomorrow relative to now, as YYYY-MM-DD.
func MinExpiryDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
