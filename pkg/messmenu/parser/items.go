package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

// ExtractItems adds the food items of one meal section to menu.
// The section's label row is skipped, as are rows whose first cell is a meal
// label or a dish category. Items already present under the same day and meal
// (ignoring case) are not added again. It returns the number of items added.
func ExtractItems(grid models.Grid, section models.MealSection, columns []models.DayColumn, menu models.WeeklyMenu) int {
	if !section.Found() {
		return 0
	}

	added := 0
	for rowIdx := section.StartRow + 1; rowIdx <= section.EndRow && rowIdx < grid.Len(); rowIdx++ {
		first := grid.Text(rowIdx, 0)
		if _, ok := MealFromText(first); ok {
			continue
		}
		if IsCategoryHeader(first) {
			continue
		}

		for _, col := range columns {
			name := CleanFoodName(grid.Value(rowIdx, col.ColumnIndex))
			if name == "" {
				continue
			}
			dm, ok := menu[col.Day]
			if !ok {
				continue
			}
			if dm.Add(models.MenuItem{Name: name, Day: col.Day, Meal: section.Meal}) {
				added++
			}
		}
	}

	return added
}

// CleanFoodName normalizes a cell into a food name, or returns "" when the
// cell holds no food: blanks, non-food tokens, and numeric or symbol noise.
func CleanFoodName(v interface{}) string {
	text := models.CellText(v)
	if text == "" || isNonFood(text) {
		return ""
	}

	name := strings.Join(strings.Fields(text), " ")
	name = strings.TrimSpace(strings.Trim(name, "/-*"))

	if utf8.RuneCountInString(name) < 2 {
		return ""
	}
	if noiseOnlyPattern.MatchString(name) {
		return ""
	}
	return name
}
