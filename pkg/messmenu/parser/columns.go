package parser

import (
	"fmt"
	"strings"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/xuri/excelize/v2"
)

// DiscoverColumns maps header cells to day columns in column order.
// The date of a column comes from dateRow when it parses, else from the header text.
// When a day heads several columns only the first is kept; later ones produce a warning.
func DiscoverColumns(header, dateRow []interface{}) ([]models.DayColumn, []string) {
	var (
		columns  []models.DayColumn
		warnings []string
	)
	seen := make(map[models.Day]bool)

	for colIdx, cell := range header {
		text := models.CellText(cell)
		day, ok := DayFromText(text)
		if !ok {
			continue
		}
		if seen[day] {
			colName, _ := excelize.ColumnNumberToName(colIdx + 1)
			warnings = append(warnings, fmt.Sprintf("Duplicate %s column ignored (column %s).", day.Title(), colName))
			continue
		}
		seen[day] = true

		date := ""
		if colIdx < len(dateRow) {
			date = ExtractDate(dateRow[colIdx])
		}
		if date == "" {
			date = DateFromHeader(text)
		}

		columns = append(columns, models.DayColumn{
			ColumnIndex: colIdx,
			Day:         day,
			Date:        date,
		})
	}

	var missing []string
	for _, d := range models.AllDays {
		if !seen[d] {
			missing = append(missing, d.Title())
		}
	}
	if len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf("Missing days detected: %s. These days will show as empty.", strings.Join(missing, ", ")))
	}

	return columns, warnings
}

// FoundDays returns the set of days covered by columns.
func FoundDays(columns []models.DayColumn) map[models.Day]bool {
	found := make(map[models.Day]bool, len(columns))
	for _, c := range columns {
		found[c.Day] = true
	}
	return found
}
