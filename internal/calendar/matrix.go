package calendar

import "restaurant-manager/internal/plan"

// Weekdays is the canonical Sunday-first ordering of the meal matrix.
var Weekdays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// MealTypes is the canonical meal-type ordering.
var MealTypes = []string{"breakfast", "lunch", "dinner"}

// PlaceholderMeal fills cells the template leaves empty so the matrix is
// always rectangular and the menu screen never renders a hole.
var PlaceholderMeal = plan.Meal{Name: "N/A", Calories: 0}

// MatrixCell is one weekday x meal-type entry. Meals is never empty.
type MatrixCell struct {
	Day      string
	MealType string
	Meals    []plan.Meal
}

// Matrix is the full 7x3 grid: Sunday-first weekdays by rows,
// breakfast/lunch/dinner by columns.
type Matrix [7][3]MatrixCell

// DeriveMatrix resolves a weekly template, possibly partially populated
// by the backend, into a fully populated matrix. A day/meal-type with no
// entry, or with an empty list, gets the single placeholder meal; entries
// with a blank name are patched the same way.
func DeriveMatrix(weekly plan.WeeklyMeals) Matrix {
	var m Matrix
	for di, day := range Weekdays {
		dm := weekly.Day(day)
		lists := [3][]plan.Meal{dm.Breakfast, dm.Lunch, dm.Dinner}
		for mi, mealType := range MealTypes {
			m[di][mi] = MatrixCell{
				Day:      day,
				MealType: mealType,
				Meals:    sanitizeMeals(lists[mi]),
			}
		}
	}
	return m
}

func sanitizeMeals(meals []plan.Meal) []plan.Meal {
	if len(meals) == 0 {
		return []plan.Meal{PlaceholderMeal}
	}
	out := make([]plan.Meal, len(meals))
	for i, meal := range meals {
		if meal.Name == "" {
			meal.Name = PlaceholderMeal.Name
		}
		out[i] = meal
	}
	return out
}
