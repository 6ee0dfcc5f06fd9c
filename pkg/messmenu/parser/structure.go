package parser

import "github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"

// serialDateFloor is the smallest number treated as a date serial in a date row.
const serialDateFloor = 40000

// StructureParams holds parameters for header and date row detection.
type StructureParams struct {
	// HeaderScanRows bounds how many leading rows are searched for the header.
	HeaderScanRows int
	// MinDayMatches is the number of day-name cells that makes a row the header.
	MinDayMatches int
	// MinDateCells is the number of date-like cells that makes a row the date row.
	MinDateCells int
}

// DefaultStructureParams returns default structure detection parameters.
func DefaultStructureParams() StructureParams {
	return StructureParams{
		HeaderScanRows: 15,
		MinDayMatches:  3,
		MinDateCells:   2,
	}
}

// AnalyzeStructure locates the header row and, right below it, an optional date row.
// The first row within the scan window that reaches MinDayMatches wins.
func AnalyzeStructure(grid models.Grid, params StructureParams) models.StructureAnalysis {
	analysis := models.StructureAnalysis{HeaderRowIndex: -1, DateRowIndex: -1}

	limit := params.HeaderScanRows
	if limit > grid.Len() {
		limit = grid.Len()
	}

	for rowIdx := 0; rowIdx < limit; rowIdx++ {
		if countDayCells(grid.Row(rowIdx)) < params.MinDayMatches {
			continue
		}
		analysis.HeaderRowIndex = rowIdx
		if next := rowIdx + 1; next < grid.Len() && countDateCells(grid.Row(next)) >= params.MinDateCells {
			analysis.DateRowIndex = next
		}
		break
	}

	return analysis
}

func countDayCells(row []interface{}) int {
	count := 0
	for _, cell := range row {
		if _, ok := DayFromText(models.CellText(cell)); ok {
			count++
		}
	}
	return count
}

func countDateCells(row []interface{}) int {
	count := 0
	for _, cell := range row {
		if n, ok := models.CellNumber(cell); ok {
			if n > serialDateFloor {
				count++
			}
			continue
		}
		if slashDatePattern.MatchString(models.CellText(cell)) {
			count++
		}
	}
	return count
}
