package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKeyShiftsForwardOneCalendarDay(t *testing.T) {
	// 2024-03-04 15:00 UTC is 11:00 in Halifax (UTC-4 in March); the
	// bucket key advances one calendar day from the local date
	ts := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DayKey(ts))
}

func TestDayKeyUsesLocalCalendarDate(t *testing.T) {
	// 2024-03-05 01:00 UTC is still 2024-03-04 21:00 in Halifax, so the
	// key lands on the 5th, not the 6th
	ts := time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DayKey(ts))
}

func TestDayKeyIsDeterministicAcrossInstantsOfOneDay(t *testing.T) {
	morning := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 7, 10, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, DayKey(morning), DayKey(evening))
}

func TestDayKeysSortChronologically(t *testing.T) {
	earlier := time.Date(2024, 9, 30, 15, 0, 0, 0, time.UTC)
	later := time.Date(2024, 10, 1, 15, 0, 0, 0, time.UTC)
	assert.Less(t, DayKey(earlier), DayKey(later))
}

func TestLocationIsFixed(t *testing.T) {
	assert.Equal(t, ReportTimeZone, Location().String())
}
