package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/shared"
)

// Service is the typed surface over the plans endpoints. Every call takes
// the caller's token; nothing is cached between calls.
type Service struct {
	client *api.Client
}

// NewService creates a new plan service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// ListResult carries one page of plans.
type ListResult struct {
	Plans      []Plan     `json:"plans"`
	Pagination Pagination `json:"pagination"`
}

// NewPlan is the creation payload for POST /restaurant/plans.
type NewPlan struct {
	Name           string       `json:"name"`
	PricePerWeek   float64      `json:"pricePerWeek"`
	Features       []string     `json:"features,omitempty"`
	WeeklyMeals    *WeeklyMeals `json:"weeklyMeals,omitempty"`
	MaxSubscribers int          `json:"maxSubscribers,omitempty"`
	IsRecommended  bool         `json:"isRecommended,omitempty"`
	IsPopular      bool         `json:"isPopular,omitempty"`
}

// MealUpdate is the payload for PUT /restaurant/plans/{id}/meals.
type MealUpdate struct {
	Day      string `json:"day"`
	MealType string `json:"mealType"`
	Meals    []Meal `json:"meals"`
}

// List fetches all plans for the restaurant.
func (s *Service) List(ctx context.Context, token string) (*ListResult, error) {
	env, err := s.client.Get(ctx, "/restaurant/plans", token)
	if err != nil {
		return nil, err
	}
	var result ListResult
	if err := env.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single plan by its identifier.
func (s *Service) Get(ctx context.Context, planID, token string) (*Plan, error) {
	if err := guardID(planID); err != nil {
		return nil, err
	}
	env, err := s.client.Get(ctx, "/restaurant/plans/"+planID, token)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	if _, err := p.ResolveID(); err != nil {
		return nil, fmt.Errorf("plan response missing identifier: %w", err)
	}
	return &p, nil
}

// Create registers a new plan and returns the backend's copy of it.
func (s *Service) Create(ctx context.Context, np NewPlan, token string) (*Plan, error) {
	env, err := s.client.Post(ctx, "/restaurant/plans", np, token)
	if err != nil {
		return nil, err
	}
	var p Plan
	if err := env.Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces mutable plan fields. Callers re-fetch the plan after a
// successful mutation instead of merging partial server state.
func (s *Service) Update(ctx context.Context, planID string, p Plan, token string) error {
	if err := guardID(planID); err != nil {
		return err
	}
	_, err := s.client.Put(ctx, "/restaurant/plans/"+planID, p, token)
	return err
}

// Delete removes a plan.
func (s *Service) Delete(ctx context.Context, planID, token string) error {
	if err := guardID(planID); err != nil {
		return err
	}
	_, err := s.client.Delete(ctx, "/restaurant/plans/"+planID, token)
	return err
}

// ToggleAvailability flips whether new subscribers can pick the plan.
func (s *Service) ToggleAvailability(ctx context.Context, planID, token string) error {
	if err := guardID(planID); err != nil {
		return err
	}
	_, err := s.client.Put(ctx, "/restaurant/plans/"+planID+"/toggle-availability", struct{}{}, token)
	return err
}

// UpdateMeal replaces one day/meal-type cell of the weekly template. Day
// and meal type are lowercased to the backend's keys. Gateway errors pass
// through unchanged.
func (s *Service) UpdateMeal(ctx context.Context, planID, day, mealType string, meals []Meal, token string) error {
	if err := guardID(planID); err != nil {
		return err
	}
	body := MealUpdate{
		Day:      strings.ToLower(day),
		MealType: strings.ToLower(mealType),
		Meals:    meals,
	}
	_, err := s.client.Put(ctx, "/restaurant/plans/"+planID+"/meals", body, token)
	return err
}

// AddFeature appends a feature line to the plan.
func (s *Service) AddFeature(ctx context.Context, planID, feature, token string) error {
	if err := guardID(planID); err != nil {
		return err
	}
	_, err := s.client.Post(ctx, "/restaurant/plans/"+planID+"/features",
		map[string]string{"feature": feature}, token)
	return err
}

// RemoveFeature removes a feature line. The feature rides in the query
// string since DELETE bodies are routinely dropped by proxies.
func (s *Service) RemoveFeature(ctx context.Context, planID, feature, token string) error {
	if err := guardID(planID); err != nil {
		return err
	}
	path := "/restaurant/plans/" + planID + "/features?feature=" + url.QueryEscape(feature)
	_, err := s.client.Delete(ctx, path, token)
	return err
}

// Stats fetches subscriber statistics for one plan. The payload shape is
// backend-defined and surfaced raw.
func (s *Service) Stats(ctx context.Context, planID, token string) (json.RawMessage, error) {
	if err := guardID(planID); err != nil {
		return nil, err
	}
	env, err := s.client.Get(ctx, "/restaurant/plans/"+planID+"/stats", token)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// AllStats fetches statistics across every plan.
func (s *Service) AllStats(ctx context.Context, token string) (json.RawMessage, error) {
	env, err := s.client.Get(ctx, "/restaurant/plans/stats", token)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func guardID(id string) error {
	return shared.GuardObjectID("plan id", id)
}
