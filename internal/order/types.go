package order

import (
	"encoding/json"

	"restaurant-manager/internal/shared"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is one line of an order.
type Item struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	ItemTotal   float64 `json:"itemTotal"`
}

// Address is the delivery destination.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Order is a backend-owned order record. Customer arrives either as a
// bare id string or as an embedded record, so it is kept raw and read
// through CustomerID / CustomerRecord.
type Order struct {
	ID                  string          `json:"_id,omitempty"`
	LegacyID            string          `json:"id,omitempty"`
	OrderNumber         string          `json:"orderNumber"`
	OrderDate           string          `json:"orderDate,omitempty"`
	OrderTime           string          `json:"orderTime,omitempty"`
	Customer            json.RawMessage `json:"customer,omitempty"`
	CustomerName        string          `json:"customerName,omitempty"`
	Restaurant          string          `json:"restaurant,omitempty"`
	RestaurantName      string          `json:"restaurantName,omitempty"`
	Items               []Item          `json:"items"`
	Subtotal            float64         `json:"subtotal,omitempty"`
	TotalAmount         float64         `json:"totalAmount"`
	DeliveryAddress     Address         `json:"deliveryAddress,omitzero"`
	EstimatedDelivery   string          `json:"estimatedDelivery,omitempty"`
	Status              Status          `json:"status"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	CreatedAt           string          `json:"createdAt,omitempty"`
	UpdatedAt           string          `json:"updatedAt,omitempty"`
}

// ResolveID returns the canonical identifier for the order.
func (o *Order) ResolveID() (string, error) {
	return shared.ResolveObjectID(o.ID, o.LegacyID)
}

// CustomerRecord is the embedded form of the customer field.
type CustomerRecord struct {
	ID           string `json:"_id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// CustomerID extracts the customer identifier from either wire form.
func (o *Order) CustomerID() string {
	if len(o.Customer) == 0 {
		return ""
	}
	var id string
	if err := json.Unmarshal(o.Customer, &id); err == nil {
		return id
	}
	var rec CustomerRecord
	if err := json.Unmarshal(o.Customer, &rec); err == nil {
		return rec.ID
	}
	return ""
}

// Pagination describes one page of an order listing.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalOrders int  `json:"totalOrders"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// DailyCount is one day of the stats overview.
type DailyCount struct {
	Date    string  `json:"_id"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Stats is the order statistics overview.
type Stats struct {
	StatusCounts map[string]int `json:"statusCounts"`
	Totals       struct {
		TotalOrders   int     `json:"totalOrders"`
		TotalRevenue  float64 `json:"totalRevenue"`
		AvgOrderValue float64 `json:"avgOrderValue"`
	} `json:"totals"`
	DailyOrders []DailyCount `json:"dailyOrders"`
}
