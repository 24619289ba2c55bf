package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuilderBuildsSortedZeroFilledTable(t *testing.T) {
	b := NewBuilder("Date", "Sorting")
	b.Add("2024-03-05", "Delivery", 3)
	b.Add("2024-03-04", "Delivery", 2)
	b.Add("2024-03-04", "Delivery", 1)

	table := b.Build()

	assert.Equal(t, "Date", table.LabelColumn)
	assert.Equal(t, []string{"Date", "Delivery", "Sorting", "Total"}, table.Columns)

	// Rows sorted by label ascending
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, "2024-03-04", table.Rows[0].Label)
	assert.Equal(t, "2024-03-05", table.Rows[1].Label)

	// Values accumulate per cell; seeded columns are zero-filled
	assert.Equal(t, 3.0, table.Rows[0].Cells["Delivery"])
	assert.Equal(t, 0.0, table.Rows[0].Cells["Sorting"])
	assert.Equal(t, 3.0, table.Rows[0].Total)
	assert.Equal(t, 3.0, table.Rows[1].Total)

	assert.Equal(t, 6.0, table.Totals["Delivery"])
	assert.Equal(t, 0.0, table.Totals["Sorting"])
	assert.Equal(t, 6.0, table.Totals[TotalColumn])
}

func TestBuilderTouchKeepsEmptyRows(t *testing.T) {
	b := NewBuilder("Date", "Sorting")
	b.Touch("2024-03-04")

	table := b.Build()

	assert.Len(t, table.Rows, 1)
	assert.Equal(t, 0.0, table.Rows[0].Total)
	assert.Equal(t, 0.0, table.Totals[TotalColumn])
}

func TestConvertUnitsToPounds(t *testing.T) {
	b := NewBuilder("Date")
	b.Add("2024-03-04", "Produce", 10)

	table := b.Build().ConvertUnits(UnitPounds)

	// 10 kg is 22.0462 lb, rounded to two decimal places
	assert.Equal(t, 22.05, table.Rows[0].Cells["Produce"])
	assert.Equal(t, 22.05, table.Rows[0].Total)
	assert.Equal(t, 22.05, table.Totals["Produce"])
	assert.Equal(t, 22.05, table.Totals[TotalColumn])
}

func TestConvertUnitsIgnoresOtherUnits(t *testing.T) {
	b := NewBuilder("Date")
	b.Add("2024-03-04", "Produce", 10)

	table := b.Build().ConvertUnits("Kilograms (kg)")

	assert.Equal(t, 10.0, table.Rows[0].Cells["Produce"])
	assert.Equal(t, 10.0, table.Totals[TotalColumn])
}

func TestFoldCategoryName(t *testing.T) {
	assert.Equal(t, "Collection", FoldCategoryName("Food Collection"))
	assert.Equal(t, "Collection", FoldCategoryName("collection run"))
	assert.Equal(t, "Collection", FoldCategoryName("COLLECTION"))
	assert.Equal(t, "Sorting", FoldCategoryName("Sorting"))
}

func TestBillableHours(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	// Full duration above one hour is billed as is
	assert.Equal(t, 3.0, BillableHours(start, start.Add(3*time.Hour)))

	// Under an hour floors up to the minimum billing unit
	assert.Equal(t, 1.0, BillableHours(start, start.Add(20*time.Minute)))

	// Zero and negative durations bill nothing
	assert.Equal(t, 0.0, BillableHours(start, start))
	assert.Equal(t, 0.0, BillableHours(start, start.Add(-time.Hour)))
}

func TestHoursTrackerKeepsMaxPerTriple(t *testing.T) {
	tracker := NewHoursTracker()
	tracker.Record("2024-03-04", "Sorting", "user-a", 2)
	tracker.Record("2024-03-04", "Sorting", "user-a", 4)
	tracker.Record("2024-03-04", "Sorting", "user-a", 3)
	tracker.Record("2024-03-04", "Sorting", "user-b", 1)
	tracker.Record("2024-03-05", "Sorting", "user-a", 5)

	b := NewBuilder("Date")
	tracker.Fill(b)
	table := b.Build()

	// user-a's sessions on the 4th count once at the maximum, user-b adds 1
	assert.Equal(t, 5.0, table.Rows[0].Cells["Sorting"])
	assert.Equal(t, "2024-03-04", table.Rows[0].Label)
	assert.Equal(t, 5.0, table.Rows[1].Cells["Sorting"])
	assert.Equal(t, 10.0, table.Totals[TotalColumn])
}
