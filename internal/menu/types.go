package menu

import "restaurant-manager/internal/shared"

// Category groups menu items.
type Category struct {
	ID          string `json:"_id,omitempty"`
	LegacyID    string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"isActive,omitempty"`
}

// ResolveID returns the canonical identifier for the category.
func (c *Category) ResolveID() (string, error) {
	return shared.ResolveObjectID(c.ID, c.LegacyID)
}

// Item is a single orderable menu entry.
type Item struct {
	ID           string  `json:"_id,omitempty"`
	LegacyID     string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category"`
	ItemCategory string  `json:"itemCategory,omitempty"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability,omitempty"`
	IsDietMeal   bool    `json:"isDietMeal,omitempty"`
	Calories     int     `json:"calories,omitempty"`
	Image        string  `json:"image,omitempty"`
	TotalOrder   int     `json:"totalOrder,omitempty"`
	IsAvailable  bool    `json:"isAvailable,omitempty"`
}

// ResolveID returns the canonical identifier for the item.
func (i *Item) ResolveID() (string, error) {
	return shared.ResolveObjectID(i.ID, i.LegacyID)
}

// Offer is a time-bounded discount.
type Offer struct {
	ID             string  `json:"_id,omitempty"`
	LegacyID       string  `json:"id,omitempty"`
	OfferTitle     string  `json:"offerTitle"`
	DiscountAmount float64 `json:"discountAmount"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Image          string  `json:"image,omitempty"`
	IsActive       bool    `json:"isActive,omitempty"`
}

// ResolveID returns the canonical identifier for the offer.
func (o *Offer) ResolveID() (string, error) {
	return shared.ResolveObjectID(o.ID, o.LegacyID)
}

// NewCategory is the creation payload for a category.
type NewCategory struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewItem is the creation payload for an item.
type NewItem struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category"`
	ItemCategory string  `json:"itemCategory,omitempty"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability,omitempty"`
	IsDietMeal   bool    `json:"isDietMeal,omitempty"`
	Calories     int     `json:"calories,omitempty"`
}

// NewOffer is the creation payload for an offer.
type NewOffer struct {
	OfferTitle     string  `json:"offerTitle"`
	DiscountAmount float64 `json:"discountAmount"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
}

// OrderCountUpdate adjusts an item's running order counter.
type OrderCountUpdate struct {
	TotalOrder int    `json:"totalOrder,omitempty"`
	Action     string `json:"action,omitempty"` // set, increment or decrement
}
