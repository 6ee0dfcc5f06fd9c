package models

// StructureAnalysis locates the anchoring rows of a menu sheet.
// Row indexes are 0-based; -1 means not found.
type StructureAnalysis struct {
	HeaderRowIndex int `json:"header_row_index"`
	DateRowIndex   int `json:"date_row_index"`
}

// Found reports whether a header row was located.
func (s StructureAnalysis) Found() bool {
	return s.HeaderRowIndex >= 0
}

// DayColumn maps a grid column to a day and, when known, its ISO date.
type DayColumn struct {
	ColumnIndex int    `json:"column_index"`
	Day         Day    `json:"day"`
	Date        string `json:"date,omitempty"`
}

// MealSection is a contiguous row range attributed to one meal.
// StartRow is the meal's label row; -1 means the meal was not found.
type MealSection struct {
	Meal     Meal `json:"meal"`
	StartRow int  `json:"start_row"`
	EndRow   int  `json:"end_row"`
}

// Found reports whether the section exists in the sheet.
func (s MealSection) Found() bool {
	return s.StartRow >= 0
}
