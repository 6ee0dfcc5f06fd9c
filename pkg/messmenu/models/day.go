// Package models defines data structures for mess menu parsing.
package models

import (
	"fmt"
	"strings"
)

// Day is a canonical lowercase day key.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// AllDays lists the day keys in calendar order.
var AllDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Title returns the capitalized day name, e.g. "Monday".
func (d Day) Title() string {
	return capitalize(string(d))
}

// ParseDay validates a day key, ignoring case and surrounding space.
func ParseDay(s string) (Day, error) {
	key := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range AllDays {
		if d == key {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day: %q", s)
}

// Meal is a canonical meal key.
type Meal string

const (
	Breakfast Meal = "breakfast"
	Lunch     Meal = "lunch"
	Snacks    Meal = "snacks"
	Dinner    Meal = "dinner"
)

// AllMeals lists the meal keys in serving order.
var AllMeals = []Meal{Breakfast, Lunch, Snacks, Dinner}

// ParseMeal validates a meal key, ignoring case and surrounding space.
func ParseMeal(s string) (Meal, error) {
	key := Meal(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range AllMeals {
		if m == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid meal type: %q", s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
