// Package parser infers the layout of a mess menu sheet and extracts its items.
package parser

import (
	"regexp"
	"strings"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

// mealKeywords is checked in order; the first set with a member found wins.
var mealKeywords = []struct {
	meal     models.Meal
	keywords []string
}{
	{models.Breakfast, []string{"breakfast", "bf", "morning"}},
	{models.Lunch, []string{"lunch", "afternoon"}},
	{models.Snacks, []string{"snack", "evening", "tea time"}},
	{models.Dinner, []string{"dinner", "night", "supper"}},
}

// categoryHeaders label groups of dishes; rows whose first cell contains one are skipped.
var categoryHeaders = []string{
	"hot food", "dal", "veg", "rice", "roti", "salad", "pickle",
	"beverages", "fruits", "cereals", "dessert", "non-veg", "curd",
	"milk", "refreshment", "chutney", "sauces", "fryums", "papad",
}

// nonFoodTokens are whole-cell values that never count as menu items.
var nonFoodTokens = map[string]struct{}{
	"pickle": {}, "curd": {}, "milk": {}, "tea": {}, "coffee": {},
	"water": {}, "salad": {}, "papad": {}, "fryums": {}, "sauces": {},
	"chutney": {}, "onion": {}, "lemon": {}, "techha": {}, "dessert": {},
	"non-veg": {}, "non veg": {},
}

var (
	slashDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	asterisksPattern = regexp.MustCompile(`^\*+$`)
	noiseOnlyPattern = regexp.MustCompile(`^[\d\s\-*/]+$`)
)

// DayFromText returns the first day whose name occurs in text, ignoring case.
func DayFromText(text string) (models.Day, bool) {
	lower := strings.ToLower(text)
	for _, d := range models.AllDays {
		if strings.Contains(lower, string(d)) {
			return d, true
		}
	}
	return "", false
}

// MealFromText returns the meal whose keyword set first matches text, ignoring case.
func MealFromText(text string) (models.Meal, bool) {
	lower := strings.ToLower(text)
	for _, mk := range mealKeywords {
		for _, kw := range mk.keywords {
			if strings.Contains(lower, kw) {
				return mk.meal, true
			}
		}
	}
	return "", false
}

// IsCategoryHeader reports whether text contains a dish category label.
func IsCategoryHeader(text string) bool {
	lower := strings.ToLower(text)
	for _, h := range categoryHeaders {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

func isNonFood(text string) bool {
	lower := strings.ToLower(text)
	if _, ok := nonFoodTokens[lower]; ok {
		return true
	}
	return asterisksPattern.MatchString(text)
}
