package plan

import "restaurant-manager/internal/shared"

// Meal is one entry in a weekly template cell.
type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// DayMeals groups one weekday's template by meal type. A zero value means
// the backend has no meals recorded for that day.
type DayMeals struct {
	Breakfast []Meal `json:"breakfast,omitempty"`
	Lunch     []Meal `json:"lunch,omitempty"`
	Dinner    []Meal `json:"dinner,omitempty"`
}

// WeeklyMeals is the day-of-week keyed template a Plan serves, independent
// of any specific subscriber's slot dates.
type WeeklyMeals struct {
	Sunday    DayMeals `json:"sunday"`
	Monday    DayMeals `json:"monday"`
	Tuesday   DayMeals `json:"tuesday"`
	Wednesday DayMeals `json:"wednesday"`
	Thursday  DayMeals `json:"thursday"`
	Friday    DayMeals `json:"friday"`
	Saturday  DayMeals `json:"saturday"`
}

// Day returns the template entry for the named lowercase weekday. Unknown
// names resolve to an empty entry.
func (w WeeklyMeals) Day(name string) DayMeals {
	switch name {
	case "sunday":
		return w.Sunday
	case "monday":
		return w.Monday
	case "tuesday":
		return w.Tuesday
	case "wednesday":
		return w.Wednesday
	case "thursday":
		return w.Thursday
	case "friday":
		return w.Friday
	case "saturday":
		return w.Saturday
	}
	return DayMeals{}
}

// Plan is the backend-owned subscription plan aggregate. The backend
// inconsistently exposes the identifier as either _id or id, so both are
// kept and resolved through ResolveID.
type Plan struct {
	ID             string      `json:"_id,omitempty"`
	LegacyID       string      `json:"id,omitempty"`
	Name           string      `json:"name"`
	PricePerWeek   float64     `json:"pricePerWeek"`
	Features       []string    `json:"features,omitempty"`
	WeeklyMeals    WeeklyMeals `json:"weeklyMeals"`
	MaxSubscribers int         `json:"maxSubscribers,omitempty"`
	IsRecommended  bool        `json:"isRecommended,omitempty"`
	IsPopular      bool        `json:"isPopular,omitempty"`
	IsActive       bool        `json:"isActive,omitempty"`
	IsAvailable    bool        `json:"isAvailable,omitempty"`
	CreatedAt      string      `json:"createdAt,omitempty"`
	UpdatedAt      string      `json:"updatedAt,omitempty"`
}

// ResolveID returns the canonical identifier for the plan, failing loudly
// when neither field is well-formed.
func (p *Plan) ResolveID() (string, error) {
	return shared.ResolveObjectID(p.ID, p.LegacyID)
}

// Pagination describes one page of a plan listing.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalPlans   int `json:"totalPlans"`
	PlansPerPage int `json:"plansPerPage"`
}
