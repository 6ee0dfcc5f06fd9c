package parser

import (
	"testing"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

func TestDiscoverColumnsHeaderDates(t *testing.T) {
	header := row("", "Monday 15/12/25", "Tuesday 16/12/25", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday")

	columns, warnings := DiscoverColumns(header, nil)
	if len(columns) != 7 {
		t.Fatalf("Expected 7 columns, got %d", len(columns))
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	expected := []models.DayColumn{
		{ColumnIndex: 1, Day: models.Monday, Date: "2025-12-15"},
		{ColumnIndex: 2, Day: models.Tuesday, Date: "2025-12-16"},
		{ColumnIndex: 3, Day: models.Wednesday, Date: ""},
	}
	for i, want := range expected {
		if columns[i] != want {
			t.Errorf("columns[%d] = %+v, expected %+v", i, columns[i], want)
		}
	}
}

func TestDiscoverColumnsDateRowPreferred(t *testing.T) {
	header := row("", "Monday 01/01/25", "Tuesday", "Wednesday")
	dates := row("Date", "15/12/25", int64(46007), "not a date")

	columns, _ := DiscoverColumns(header, dates)
	if len(columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(columns))
	}
	if columns[0].Date != "2025-12-15" {
		t.Errorf("Monday date = %q, expected date row value", columns[0].Date)
	}
	if columns[1].Date != "2025-12-16" {
		t.Errorf("Tuesday date = %q, expected serial conversion", columns[1].Date)
	}
	if columns[2].Date != "" {
		t.Errorf("Wednesday date = %q, expected empty", columns[2].Date)
	}
}

func TestDiscoverColumnsDuplicatesAndMissing(t *testing.T) {
	header := row("", "Monday", "Tuesday", "Monday (special)", "Wednesday", "Thursday", "Friday")

	columns, warnings := DiscoverColumns(header, nil)
	if len(columns) != 5 {
		t.Fatalf("Expected 5 columns, got %d", len(columns))
	}
	if columns[0].ColumnIndex != 1 {
		t.Errorf("Monday column = %d, expected the first occurrence", columns[0].ColumnIndex)
	}

	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %v", warnings)
	}
	if warnings[0] != "Duplicate Monday column ignored (column D)." {
		t.Errorf("unexpected duplicate warning: %q", warnings[0])
	}
	if warnings[1] != "Missing days detected: Saturday, Sunday. These days will show as empty." {
		t.Errorf("unexpected missing warning: %q", warnings[1])
	}
}

func TestFoundDays(t *testing.T) {
	found := FoundDays([]models.DayColumn{{Day: models.Monday}, {Day: models.Friday}})
	if len(found) != 2 || !found[models.Monday] || !found[models.Friday] {
		t.Errorf("unexpected found days: %v", found)
	}
}
