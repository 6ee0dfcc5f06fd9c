package models

import "strings"

// MenuItem is a single food item served for a day and meal.
type MenuItem struct {
	Name string `json:"name"`
	Day  Day    `json:"day"`
	Meal Meal   `json:"meal"`
}

// Key returns the deduplication identity of the item.
func (i MenuItem) Key() string {
	return string(i.Day) + "/" + string(i.Meal) + "/" + strings.ToLower(i.Name)
}

// DayMenu holds the date and the four meal lists of one day.
type DayMenu struct {
	// Date is the ISO date of the day, or nil when unknown.
	Date      *string    `json:"date"`
	Breakfast []MenuItem `json:"breakfast"`
	Lunch     []MenuItem `json:"lunch"`
	Snacks    []MenuItem `json:"snacks"`
	Dinner    []MenuItem `json:"dinner"`
}

func newDayMenu() *DayMenu {
	return &DayMenu{
		Breakfast: []MenuItem{},
		Lunch:     []MenuItem{},
		Snacks:    []MenuItem{},
		Dinner:    []MenuItem{},
	}
}

// Items returns the list for meal.
func (d *DayMenu) Items(meal Meal) []MenuItem {
	if p := d.list(meal); p != nil {
		return *p
	}
	return nil
}

// SetItems replaces the list for meal.
func (d *DayMenu) SetItems(meal Meal, items []MenuItem) {
	if items == nil {
		items = []MenuItem{}
	}
	if p := d.list(meal); p != nil {
		*p = items
	}
}

// Add appends item to its meal list unless an item with the same
// case-insensitive name is already there. It reports whether item was added.
func (d *DayMenu) Add(item MenuItem) bool {
	p := d.list(item.Meal)
	if p == nil {
		return false
	}
	name := strings.ToLower(item.Name)
	for _, existing := range *p {
		if strings.ToLower(existing.Name) == name {
			return false
		}
	}
	*p = append(*p, item)
	return true
}

func (d *DayMenu) list(meal Meal) *[]MenuItem {
	switch meal {
	case Breakfast:
		return &d.Breakfast
	case Lunch:
		return &d.Lunch
	case Snacks:
		return &d.Snacks
	case Dinner:
		return &d.Dinner
	}
	return nil
}

// WeeklyMenu maps every day key to its menu.
type WeeklyMenu map[Day]*DayMenu

// NewWeeklyMenu returns a menu with all seven days present and empty.
func NewWeeklyMenu() WeeklyMenu {
	menu := make(WeeklyMenu, len(AllDays))
	for _, d := range AllDays {
		menu[d] = newDayMenu()
	}
	return menu
}

// MenuRow is one persistable menu entry.
type MenuRow struct {
	Day  Day     `json:"day"`
	Meal Meal    `json:"meal"`
	Name string  `json:"name"`
	Date *string `json:"date"`
}

// Flatten lists every item in day then meal order, carrying the day's date.
func (w WeeklyMenu) Flatten() []MenuRow {
	var rows []MenuRow
	for _, d := range AllDays {
		dm, ok := w[d]
		if !ok {
			continue
		}
		for _, m := range AllMeals {
			for _, item := range dm.Items(m) {
				rows = append(rows, MenuRow{Day: d, Meal: m, Name: item.Name, Date: dm.Date})
			}
		}
	}
	return rows
}
