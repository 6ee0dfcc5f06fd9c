package models

// Stats summarizes a parse.
type Stats struct {
	DaysFound   int          `json:"days_found"`
	DaysMissing int          `json:"days_missing"`
	TotalItems  int          `json:"total_items"`
	MealCounts  map[Meal]int `json:"per_meal_counts"`
}

// EmptyStats returns zero stats with every day missing.
func EmptyStats() Stats {
	counts := make(map[Meal]int, len(AllMeals))
	for _, m := range AllMeals {
		counts[m] = 0
	}
	return Stats{DaysMissing: len(AllDays), MealCounts: counts}
}

// ParseResult is the outcome of parsing one menu workbook.
type ParseResult struct {
	// Menu always carries all seven days.
	Menu     WeeklyMenu `json:"menu"`
	Errors   []string   `json:"errors"`
	Warnings []string   `json:"warnings"`
	Stats    Stats      `json:"stats"`
	// Structure records where the header and date rows were found.
	Structure StructureAnalysis `json:"structure"`
	// UsedRange is the bounding range of non-empty cells, e.g. "A1:H40".
	UsedRange string `json:"used_range,omitempty"`
	// Failure is the typed error behind Errors, if any.
	Failure error `json:"-"`
}

// OK reports whether the parse produced something to persist.
func (r *ParseResult) OK() bool {
	return len(r.Errors) == 0
}

// Err returns the typed failure, or nil on success.
func (r *ParseResult) Err() error {
	if r.OK() {
		return nil
	}
	return r.Failure
}
