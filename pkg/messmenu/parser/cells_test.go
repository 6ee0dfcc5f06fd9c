package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Day")
	f.SetCellValue(sheetName, "C1", "Tuesday")
	f.SetCellValue(sheetName, "B2", 45642)
	f.SetCellValue(sheetName, "C2", 200.5)
	f.SetCellValue(sheetName, "A3", "Poha")

	tmpFile := filepath.Join(t.TempDir(), "menu.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ReadGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if grid.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", grid.Len())
	}
	if grid.Value(0, 0) != "Day" {
		t.Errorf("Expected 'Day', got %v", grid.Value(0, 0))
	}
	if grid.Value(0, 1) != nil {
		t.Errorf("Expected blank cell to be nil, got %v", grid.Value(0, 1))
	}
	if grid.Value(0, 2) != "Tuesday" {
		t.Errorf("Expected 'Tuesday', got %v", grid.Value(0, 2))
	}

	// Check numeric values
	if grid.Value(1, 1) != int64(45642) {
		t.Errorf("Expected int64(45642), got %v (type: %T)", grid.Value(1, 1), grid.Value(1, 1))
	}
	if grid.Value(1, 2) != 200.5 {
		t.Errorf("Expected 200.5, got %v", grid.Value(1, 2))
	}
	if grid.Text(2, 0) != "Poha" {
		t.Errorf("Expected 'Poha', got %q", grid.Text(2, 0))
	}
}

func TestReadGridMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadGrid(f, "NoSuchSheet"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
		{"Nan", "Nan"},
		{"Inf", "Inf"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
