// Package review wraps the customer-review endpoints. Listing calls are
// paginated and sortable; moderation calls (helpful, report) mutate a
// single review and leave re-fetching to the caller.
package review

import (
	"context"
	"net/url"
	"strconv"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/shared"
)

// Customer is the reviewer as embedded in a review.
type Customer struct {
	ID           string `json:"_id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// OrderRef ties a review back to the order it rates.
type OrderRef struct {
	ID          string `json:"_id"`
	OrderNumber string `json:"orderNumber"`
	OrderDate   string `json:"orderDate"`
}

// Review is a backend-owned review record.
type Review struct {
	ID             string   `json:"_id,omitempty"`
	LegacyID       string   `json:"id,omitempty"`
	Customer       Customer `json:"customer,omitzero"`
	Order          OrderRef `json:"order,omitzero"`
	Rating         int      `json:"rating"`
	Comment        string   `json:"comment,omitempty"`
	ReviewDate     string   `json:"reviewDate,omitempty"`
	HelpfulCount   int      `json:"helpfulCount,omitempty"`
	UnhelpfulCount int      `json:"unhelpfulCount,omitempty"`
	ReportCount    int      `json:"reportCount,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
}

// ResolveID returns the canonical identifier for the review.
func (r *Review) ResolveID() (string, error) {
	return shared.ResolveObjectID(r.ID, r.LegacyID)
}

// Pagination describes one page of a review listing.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalReviews int  `json:"totalReviews"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// Stats summarizes ratings for a restaurant.
type Stats struct {
	AverageRating      float64        `json:"averageRating"`
	TotalReviews       int            `json:"totalReviews"`
	RatingDistribution map[string]int `json:"ratingDistribution,omitempty"`
}

// ListOptions filters, sorts and pages a review listing. Zero values
// fall back to the backend defaults: page 1, 10 per page, newest first.
type ListOptions struct {
	Page      int
	Limit     int
	Rating    int    // 1..5, zero means all ratings
	SortBy    string // defaults to reviewDate
	SortOrder string // asc or desc, defaults to desc
}

// ListResult carries one page of reviews.
type ListResult struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

// Service wraps the review endpoints.
type Service struct {
	client *api.Client
}

// NewService creates a new review service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List fetches the authenticated restaurant's reviews.
func (s *Service) List(ctx context.Context, opts ListOptions, token string) (*ListResult, error) {
	env, err := s.client.Get(ctx, "/reviews/restaurant?"+opts.query(), token)
	if err != nil {
		return nil, err
	}
	var result ListResult
	if err := env.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ByRestaurant fetches another restaurant's public reviews.
func (s *Service) ByRestaurant(ctx context.Context, restaurantID string, opts ListOptions) (*ListResult, error) {
	if err := guardID(restaurantID); err != nil {
		return nil, err
	}
	env, err := s.client.Get(ctx, "/reviews/restaurant/"+restaurantID+"?"+opts.query(), "")
	if err != nil {
		return nil, err
	}
	var result ListResult
	if err := env.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single review.
func (s *Service) Get(ctx context.Context, reviewID string) (*Review, error) {
	if err := guardID(reviewID); err != nil {
		return nil, err
	}
	env, err := s.client.Get(ctx, "/reviews/"+reviewID, "")
	if err != nil {
		return nil, err
	}
	var r Review
	if err := env.Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Stats fetches the authenticated restaurant's rating summary.
func (s *Service) Stats(ctx context.Context, token string) (*Stats, error) {
	env, err := s.client.Get(ctx, "/reviews/stats/restaurant", token)
	if err != nil {
		return nil, err
	}
	var st Stats
	if err := env.Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// StatsByRestaurant fetches another restaurant's public rating summary.
func (s *Service) StatsByRestaurant(ctx context.Context, restaurantID string) (*Stats, error) {
	if err := guardID(restaurantID); err != nil {
		return nil, err
	}
	env, err := s.client.Get(ctx, "/reviews/stats/restaurant/"+restaurantID, "")
	if err != nil {
		return nil, err
	}
	var st Stats
	if err := env.Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

// MarkHelpful votes a review helpful or unhelpful.
func (s *Service) MarkHelpful(ctx context.Context, reviewID string, isHelpful bool, token string) error {
	if err := guardID(reviewID); err != nil {
		return err
	}
	_, err := s.client.Patch(ctx, "/reviews/"+reviewID+"/helpful",
		map[string]bool{"isHelpful": isHelpful}, token)
	return err
}

// Report flags a review for moderation.
func (s *Service) Report(ctx context.Context, reviewID, reason, token string) error {
	if err := guardID(reviewID); err != nil {
		return err
	}
	_, err := s.client.Patch(ctx, "/reviews/"+reviewID+"/report",
		map[string]string{"reason": reason}, token)
	return err
}

func (o ListOptions) query() string {
	page := o.Page
	if page < 1 {
		page = 1
	}
	limit := o.Limit
	if limit < 1 {
		limit = 10
	}
	sortBy := o.SortBy
	if sortBy == "" {
		sortBy = "reviewDate"
	}
	sortOrder := o.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if o.Rating > 0 {
		q.Set("rating", strconv.Itoa(o.Rating))
	}
	q.Set("sortBy", sortBy)
	q.Set("sortOrder", sortOrder)
	return q.Encode()
}

func guardID(id string) error {
	return shared.GuardObjectID("review id", id)
}
