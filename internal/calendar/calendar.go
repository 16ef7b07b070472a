// Package calendar derives renderable structures from subscription slots
// and weekly meal templates. Every derivation is a fresh pure computation
// over the inputs given; nothing here touches the network.
package calendar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Slot is one contiguous delivery window of a subscription, carrying the
// subset of dates that actually have a scheduled meal.
type Slot struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Year      int      `json:"year"`
	MealDates []string `json:"mealDates"`
}

// Cell is one day of the rendered date strip.
type Cell struct {
	DayNumber      int    // day of month
	Date           string // ISO date, e.g. 2025-09-20
	WeekdayInitial string // S, M, T, W, T, F, S
	HasMeal        bool
}

// DeriveCells expands slot into one cell per calendar day, start and end
// both inclusive, so a single-day slot yields exactly one cell. Meal
// dates outside the window are ignored rather than rejected; upstream
// data is loosely curated and must never produce an out-of-range cell.
func DeriveCells(slot Slot) ([]Cell, error) {
	start, err := time.Parse(dateLayout, slot.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid slot start date %q: %w", slot.StartDate, err)
	}
	end, err := time.Parse(dateLayout, slot.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid slot end date %q: %w", slot.EndDate, err)
	}

	mealDates := make(map[string]struct{}, len(slot.MealDates))
	for _, d := range slot.MealDates {
		mealDates[d] = struct{}{}
	}

	var cells []Cell
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := d.Format(dateLayout)
		_, hasMeal := mealDates[iso]
		cells = append(cells, Cell{
			DayNumber:      d.Day(),
			Date:           iso,
			WeekdayInitial: d.Weekday().String()[:1],
			HasMeal:        hasMeal,
		})
	}
	return cells, nil
}
