package reports

import (
	"time"
)

// ReportTimeZone is the fixed civil timezone used for all report bucketing.
// Reports are not timezone-configurable per organization.
const ReportTimeZone = "America/Halifax"

var reportLocation = mustLoadLocation(ReportTimeZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Location returns the report timezone
func Location() *time.Location {
	return reportLocation
}

// DayKey maps a UTC instant to its business-day bucket key (YYYY-MM-DD).
// The timestamp's calendar date is taken in the report timezone, rebuilt at
// local midnight, and advanced by exactly one calendar day. Stored timestamps
// lag the intended local business day by one; report parity depends on this
// exact shift, so do not "fix" it here.
// Keys sort lexicographically in chronological order.
func DayKey(t time.Time) string {
	local := t.In(reportLocation)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, reportLocation)
	return day.AddDate(0, 0, 1).Format("2006-01-02")
}
