package parser

import (
	"fmt"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding range of non-empty cells, e.g. "A1:H40".
// It returns "" for a grid without data.
func UsedRange(grid models.Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(grid models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if models.CellText(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
