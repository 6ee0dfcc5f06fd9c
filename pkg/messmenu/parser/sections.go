package parser

import "github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"

// DetectSections splits the rows below the header into meal sections.
// Scanning starts two rows below headerRow. A row whose first cell names a meal
// closes the open section and opens a new one; the last section runs to the end
// of the grid. Meals never labelled keep StartRow -1.
func DetectSections(grid models.Grid, headerRow int) map[models.Meal]models.MealSection {
	sections := make(map[models.Meal]models.MealSection, len(models.AllMeals))
	for _, m := range models.AllMeals {
		sections[m] = models.MealSection{Meal: m, StartRow: -1, EndRow: -1}
	}

	var current models.Meal
	for rowIdx := headerRow + 2; rowIdx < grid.Len(); rowIdx++ {
		meal, ok := MealFromText(grid.Text(rowIdx, 0))
		if !ok {
			continue
		}
		if current != "" {
			closed := sections[current]
			closed.EndRow = rowIdx - 1
			sections[current] = closed
		}
		current = meal
		sections[meal] = models.MealSection{Meal: meal, StartRow: rowIdx, EndRow: -1}
	}

	if current != "" {
		last := sections[current]
		last.EndRow = grid.Len() - 1
		sections[current] = last
	}

	return sections
}
