package parser

import (
	"testing"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

func row(cells ...interface{}) []interface{} {
	return cells
}

func TestAnalyzeStructure(t *testing.T) {
	days := row("", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")

	tests := []struct {
		name           string
		grid           models.Grid
		expectedHeader int
		expectedDate   int
	}{
		{
			name:           "header on first row without dates",
			grid:           models.Grid{days, row("Breakfast")},
			expectedHeader: 0,
			expectedDate:   -1,
		},
		{
			name: "header below title rows with date row",
			grid: models.Grid{
				row("Hostel Mess Menu"),
				row("Week 51"),
				days,
				row("", "15/12/25", "16/12/25", "17/12/25"),
			},
			expectedHeader: 2,
			expectedDate:   3,
		},
		{
			name:           "serial date row",
			grid:           models.Grid{days, row("", int64(46006), float64(46007))},
			expectedHeader: 0,
			expectedDate:   1,
		},
		{
			name:           "single date is not a date row",
			grid:           models.Grid{days, row("", "15/12/25", "Poha")},
			expectedHeader: 0,
			expectedDate:   -1,
		},
		{
			name:           "small numbers are not serials",
			grid:           models.Grid{days, row("", int64(12), int64(300))},
			expectedHeader: 0,
			expectedDate:   -1,
		},
		{
			name: "first row reaching three days wins",
			grid: models.Grid{
				row("Monday", "Tuesday"),
				row("Monday 15/12/25", "Tuesday", "Wednesday"),
				days,
			},
			expectedHeader: 1,
			expectedDate:   -1,
		},
		{
			name:           "no header",
			grid:           models.Grid{row("Poha", "Upma"), row("Idli")},
			expectedHeader: -1,
			expectedDate:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeStructure(tt.grid, DefaultStructureParams())
			if result.HeaderRowIndex != tt.expectedHeader {
				t.Errorf("HeaderRowIndex = %d, expected %d", result.HeaderRowIndex, tt.expectedHeader)
			}
			if result.DateRowIndex != tt.expectedDate {
				t.Errorf("DateRowIndex = %d, expected %d", result.DateRowIndex, tt.expectedDate)
			}
		})
	}
}

func TestAnalyzeStructureScanWindow(t *testing.T) {
	grid := make(models.Grid, 16)
	grid[15] = row("Monday", "Tuesday", "Wednesday")

	if got := AnalyzeStructure(grid, DefaultStructureParams()); got.Found() {
		t.Errorf("header beyond the scan window was found at row %d", got.HeaderRowIndex)
	}

	params := DefaultStructureParams()
	params.HeaderScanRows = 20
	if got := AnalyzeStructure(grid, params); got.HeaderRowIndex != 15 {
		t.Errorf("HeaderRowIndex = %d, expected 15", got.HeaderRowIndex)
	}
}

func TestDayFromText(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Day
		ok       bool
	}{
		{"Monday", models.Monday, true},
		{"SUNDAY 21/12/25", models.Sunday, true},
		{"mondays & tuesdays", models.Monday, true},
		{"Day", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		day, ok := DayFromText(tt.input)
		if day != tt.expected || ok != tt.ok {
			t.Errorf("DayFromText(%q) = %q, %v, expected %q, %v", tt.input, day, ok, tt.expected, tt.ok)
		}
	}
}
