package parser

import (
	"fmt"
	"strings"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

// Validate deduplicates every meal list, counts items, and warns about empty
// meals on days that were present in the sheet.
func Validate(menu models.WeeklyMenu, foundDays map[models.Day]bool) (models.Stats, []string) {
	stats := models.EmptyStats()
	stats.DaysFound = len(foundDays)
	stats.DaysMissing = len(models.AllDays) - len(foundDays)

	var warnings []string
	for _, d := range models.AllDays {
		dm, ok := menu[d]
		if !ok {
			continue
		}
		for _, m := range models.AllMeals {
			items := dedupe(dm.Items(m))
			dm.SetItems(m, items)

			stats.MealCounts[m] += len(items)
			stats.TotalItems += len(items)

			if foundDays[d] && len(items) == 0 {
				warnings = append(warnings, fmt.Sprintf("%s %s has no items.", d.Title(), m))
			}
		}
	}

	return stats, warnings
}

func dedupe(items []models.MenuItem) []models.MenuItem {
	unique := make([]models.MenuItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		key := strings.ToLower(item.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}
	return unique
}
