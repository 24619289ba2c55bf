package reports

import (
	"math"
	"sort"
	"strings"
	"time"
)

// KgToLb is the fixed kilogram to pound conversion factor
const KgToLb = 2.20462

// UnitPounds is the query flag value that switches weight reports to pounds
const UnitPounds = "Pounds (lb)"

// TotalColumn is the name of the per-row total column appended to every table
const TotalColumn = "Total"

// Table is a rows-by-named-columns aggregation summary. Columns holds the
// label column followed by the value columns and TotalColumn; Rows are sorted
// by label ascending; Totals carries the per-column sums plus the grand total
// under TotalColumn.
type Table struct {
	LabelColumn string             `json:"label_column"`
	Columns     []string           `json:"columns"`
	Rows        []Row              `json:"rows"`
	Totals      map[string]float64 `json:"totals"`
}

// Row is one group of the aggregation: a label (date or donor) with one cell
// per value column and a row total.
type Row struct {
	Label string             `json:"label"`
	Cells map[string]float64 `json:"cells"`
	Total float64            `json:"total"`
}

// Builder accumulates (label, column) -> value sums and produces a Table
// with every known column zero-filled on every row.
type Builder struct {
	labelColumn string
	columns     map[string]bool
	cells       map[string]map[string]float64
}

// NewBuilder creates a builder. Columns seeded here appear in the output even
// if no row touches them; columns discovered via Add are appended.
func NewBuilder(labelColumn string, columns ...string) *Builder {
	b := &Builder{
		labelColumn: labelColumn,
		columns:     make(map[string]bool),
		cells:       make(map[string]map[string]float64),
	}
	for _, c := range columns {
		b.columns[c] = true
	}
	return b
}

// Add accumulates value into the (label, column) cell
func (b *Builder) Add(label, column string, value float64) {
	b.columns[column] = true
	row, ok := b.cells[label]
	if !ok {
		row = make(map[string]float64)
		b.cells[label] = row
	}
	row[column] += value
}

// Touch ensures a label appears in the output even when all its cells are zero
func (b *Builder) Touch(label string) {
	if _, ok := b.cells[label]; !ok {
		b.cells[label] = make(map[string]float64)
	}
}

// Build produces the sorted, zero-filled table with row, column and grand totals
func (b *Builder) Build() *Table {
	columns := make([]string, 0, len(b.columns))
	for c := range b.columns {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	labels := make([]string, 0, len(b.cells))
	for l := range b.cells {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	totals := make(map[string]float64, len(columns)+1)
	rows := make([]Row, 0, len(labels))
	for _, label := range labels {
		cells := make(map[string]float64, len(columns))
		rowTotal := 0.0
		for _, c := range columns {
			v := b.cells[label][c]
			cells[c] = v
			rowTotal += v
			totals[c] += v
		}
		totals[TotalColumn] += rowTotal
		rows = append(rows, Row{Label: label, Cells: cells, Total: rowTotal})
	}

	return &Table{
		LabelColumn: b.labelColumn,
		Columns:     append(append([]string{b.labelColumn}, columns...), TotalColumn),
		Rows:        rows,
		Totals:      totals,
	}
}

// ConvertUnits multiplies every cell and total by KgToLb, rounded to two
// decimal places, when unit is UnitPounds. Aggregation always runs in
// kilograms; conversion happens only at render time.
func (t *Table) ConvertUnits(unit string) *Table {
	if unit != UnitPounds {
		return t
	}
	for i := range t.Rows {
		for c, v := range t.Rows[i].Cells {
			t.Rows[i].Cells[c] = roundPounds(v)
		}
		t.Rows[i].Total = roundPounds(t.Rows[i].Total)
	}
	for c, v := range t.Totals {
		t.Totals[c] = roundPounds(v)
	}
	return t
}

func roundPounds(kg float64) float64 {
	return math.Round(kg*KgToLb*100) / 100
}

// FoldCategoryName collapses every category whose name contains "collection"
// (case-insensitive) into the single synthetic "Collection" reporting bucket.
// Applies only to the volunteer-hours report.
func FoldCategoryName(name string) string {
	if strings.Contains(strings.ToLower(name), "collection") {
		return "Collection"
	}
	return name
}

// BillableHours converts a single session to billed volunteer hours:
// non-positive or NaN durations floor to 0, and any positive duration under
// one hour floors up to 1 (minimum billing unit).
func BillableHours(start, end time.Time) float64 {
	d := end.Sub(start).Hours()
	if math.IsNaN(d) || d <= 0 {
		return 0
	}
	if d < 1 {
		return 1
	}
	return d
}

// HoursTracker keeps the maximum single-session duration per
// (date, category, user) triple. When a user has several signups on the same
// day and category, the longest shift counts; sessions are never summed.
type HoursTracker struct {
	max map[hoursKey]float64
}

type hoursKey struct {
	date     string
	category string
	user     string
}

// NewHoursTracker creates an empty tracker
func NewHoursTracker() *HoursTracker {
	return &HoursTracker{max: make(map[hoursKey]float64)}
}

// Record keeps hours for the triple if it exceeds the current maximum
func (h *HoursTracker) Record(date, category, user string, hours float64) {
	k := hoursKey{date: date, category: category, user: user}
	if hours > h.max[k] {
		h.max[k] = hours
	}
}

// Fill adds every tracked maximum into the builder, summed per (date, category)
func (h *HoursTracker) Fill(b *Builder) {
	for k, hours := range h.max {
		b.Add(k.date, k.category, hours)
	}
}
