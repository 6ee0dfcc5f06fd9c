package parser

import (
	"math"
	"strconv"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads a sheet into a Grid.
// Raw cell values are used so date cells surface as spreadsheet serials.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]interface{}, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells[colIdx] = parseValue(cellValue)
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; "Nan" is a dish, not a number
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
