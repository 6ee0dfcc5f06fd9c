package output

import (
	"fmt"
	"strings"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

// Summary renders the message shown to the admin after an upload.
// A failed parse lists its errors; a successful one confirms the update.
// Stats and warnings are included either way.
func Summary(result *models.ParseResult) string {
	var b strings.Builder

	if result.OK() {
		b.WriteString("Menu updated successfully.")
	} else {
		b.WriteString(strings.Join(result.Errors, " "))
	}
	b.WriteString("\n")
	b.WriteString(StatsLine(result.Stats))

	for _, w := range result.Warnings {
		b.WriteString("\n- ")
		b.WriteString(w)
	}
	return b.String()
}

// StatsLine renders stats on one line.
func StatsLine(s models.Stats) string {
	meals := make([]string, 0, len(models.AllMeals))
	for _, m := range models.AllMeals {
		meals = append(meals, fmt.Sprintf("%s %d", m, s.MealCounts[m]))
	}
	return fmt.Sprintf("Days found: %d/%d, items: %d (%s)",
		s.DaysFound, s.DaysFound+s.DaysMissing, s.TotalItems, strings.Join(meals, ", "))
}
