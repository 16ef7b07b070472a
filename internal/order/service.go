package order

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/shared"
)

// Service wraps the order endpoints.
type Service struct {
	client *api.Client
}

// NewService creates a new order service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// ListOptions filters and pages an order listing. Zero values fall back
// to the backend defaults (all statuses, page 1, 10 per page).
type ListOptions struct {
	Status Status
	Page   int
	Limit  int
}

// ListResult carries one page of orders.
type ListResult struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// List fetches the restaurant's orders.
func (s *Service) List(ctx context.Context, opts ListOptions, token string) (*ListResult, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, fmt.Errorf("invalid order status %q", opts.Status)
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}

	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", string(opts.Status))
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	env, err := s.client.Get(ctx, "/orders/restaurant?"+q.Encode(), token)
	if err != nil {
		return nil, err
	}
	var result ListResult
	if err := env.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single order.
func (s *Service) Get(ctx context.Context, orderID, token string) (*Order, error) {
	if err := guardID(orderID); err != nil {
		return nil, err
	}
	env, err := s.client.Get(ctx, "/orders/"+orderID, token)
	if err != nil {
		return nil, err
	}
	var o Order
	if err := env.Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus moves an order to the given lifecycle state. Unknown
// states are rejected before any network call.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status Status, token string) error {
	if err := guardID(orderID); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("invalid order status %q", status)
	}
	_, err := s.client.Patch(ctx, "/orders/"+orderID+"/status",
		map[string]string{"status": string(status)}, token)
	return err
}

// Cancel cancels an order with a reason.
func (s *Service) Cancel(ctx context.Context, orderID, reason, token string) error {
	if err := guardID(orderID); err != nil {
		return err
	}
	_, err := s.client.Patch(ctx, "/orders/"+orderID+"/cancel",
		map[string]string{"reason": reason}, token)
	return err
}

// Stats fetches the order statistics overview.
func (s *Service) Stats(ctx context.Context, token string) (*Stats, error) {
	env, err := s.client.Get(ctx, "/orders/stats/overview", token)
	if err != nil {
		return nil, err
	}
	var st Stats
	if err := env.Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func guardID(id string) error {
	return shared.GuardObjectID("order id", id)
}
