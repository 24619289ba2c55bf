package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "outgoing-stats-2024-6.xlsx", Filename("outgoing-stats", 6, 2024))
	assert.Equal(t, "donor-summary-2024-all.xlsx", Filename("donor-summary", 0, 2024))
}

func TestWriteExcel(t *testing.T) {
	b := NewBuilder("Date", "Sorting", "Delivery")
	b.Add("2024-03-04", "Sorting", 10)
	b.Add("2024-03-05", "Delivery", 5)

	f, err := WriteExcel(b.Build())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	// Header, two group rows, totals row
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Delivery", "Sorting", "Total"}, rows[0])
	assert.Equal(t, []string{"2024-03-04", "0", "10", "10"}, rows[1])
	assert.Equal(t, []string{"2024-03-05", "5", "0", "5"}, rows[2])
	assert.Equal(t, []string{"Total", "5", "10", "15"}, rows[3])
}
