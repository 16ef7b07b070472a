package menu

import (
	"context"
	"encoding/json"
	"strconv"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/shared"
)

// Service wraps the category, item and offer endpoints. Creation calls
// come in a JSON flavor and a multipart flavor carrying an image file.
type Service struct {
	client *api.Client
}

// NewService creates a new menu service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Categories lists every category of the restaurant.
func (s *Service) Categories(ctx context.Context, token string) ([]Category, error) {
	env, err := s.client.Get(ctx, "/restaurant/categories", token)
	if err != nil {
		return nil, err
	}
	var categories []Category
	if err := env.Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory registers a category without an image.
func (s *Service) CreateCategory(ctx context.Context, nc NewCategory, token string) (*Category, error) {
	env, err := s.client.Post(ctx, "/restaurant/categories", nc, token)
	if err != nil {
		return nil, err
	}
	var c Category
	if err := env.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCategoryWithImage registers a category with an image upload.
func (s *Service) CreateCategoryWithImage(ctx context.Context, nc NewCategory, image api.FileRef, token string) (*Category, error) {
	form := api.NewForm().
		AddField("name", nc.Name).
		AddField("description", nc.Description).
		AddFile("image", image)
	env, err := s.client.PostForm(ctx, "/restaurant/categories", form, token)
	if err != nil {
		return nil, err
	}
	var c Category
	if err := env.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Items lists every menu item.
func (s *Service) Items(ctx context.Context, token string) ([]Item, error) {
	env, err := s.client.Get(ctx, "/restaurant/items", token)
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := env.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// BestSellers lists the top-ordered items, optionally capped at limit.
func (s *Service) BestSellers(ctx context.Context, limit int, token string) ([]Item, error) {
	path := "/restaurant/items/best-sellers"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	env, err := s.client.Get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := env.Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem registers an item without an image.
func (s *Service) CreateItem(ctx context.Context, ni NewItem, token string) (*Item, error) {
	env, err := s.client.Post(ctx, "/restaurant/items", ni, token)
	if err != nil {
		return nil, err
	}
	var item Item
	if err := env.Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItemWithImage registers an item with an image upload.
func (s *Service) CreateItemWithImage(ctx context.Context, ni NewItem, image api.FileRef, token string) (*Item, error) {
	env, err := s.client.PostForm(ctx, "/restaurant/items", itemForm(ni, image), token)
	if err != nil {
		return nil, err
	}
	var item Item
	if err := env.Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces an item's fields.
func (s *Service) UpdateItem(ctx context.Context, itemID string, item Item, token string) error {
	if err := guardID(itemID); err != nil {
		return err
	}
	_, err := s.client.Put(ctx, "/restaurant/items/"+itemID, item, token)
	return err
}

// UpdateItemWithImage replaces an item's fields and its image in one
// multipart request.
func (s *Service) UpdateItemWithImage(ctx context.Context, itemID string, ni NewItem, image api.FileRef, token string) error {
	if err := guardID(itemID); err != nil {
		return err
	}
	_, err := s.client.PostForm(ctx, "/restaurant/items/"+itemID, itemForm(ni, image), token)
	return err
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, itemID, token string) error {
	if err := guardID(itemID); err != nil {
		return err
	}
	_, err := s.client.Delete(ctx, "/restaurant/items/"+itemID, token)
	return err
}

// ToggleItemAvailability flips whether the item can be ordered.
func (s *Service) ToggleItemAvailability(ctx context.Context, itemID, token string) error {
	if err := guardID(itemID); err != nil {
		return err
	}
	_, err := s.client.Put(ctx, "/restaurant/items/"+itemID+"/toggle-availability", struct{}{}, token)
	return err
}

// UpdateItemOrderCount adjusts the item's order counter.
func (s *Service) UpdateItemOrderCount(ctx context.Context, itemID string, update OrderCountUpdate, token string) error {
	if err := guardID(itemID); err != nil {
		return err
	}
	_, err := s.client.Put(ctx, "/restaurant/items/"+itemID+"/update-order-count", update, token)
	return err
}

// ItemStats fetches order statistics across items; the payload shape is
// backend-defined and surfaced raw.
func (s *Service) ItemStats(ctx context.Context, token string) (json.RawMessage, error) {
	env, err := s.client.Get(ctx, "/restaurant/items/stats", token)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Offers lists every offer.
func (s *Service) Offers(ctx context.Context, token string) ([]Offer, error) {
	env, err := s.client.Get(ctx, "/restaurant/offers", token)
	if err != nil {
		return nil, err
	}
	var offers []Offer
	if err := env.Decode(&offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// ActiveOffers lists only currently running offers.
func (s *Service) ActiveOffers(ctx context.Context, token string) ([]Offer, error) {
	env, err := s.client.Get(ctx, "/restaurant/offers/active", token)
	if err != nil {
		return nil, err
	}
	var offers []Offer
	if err := env.Decode(&offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CreateOffer registers an offer without an image.
func (s *Service) CreateOffer(ctx context.Context, no NewOffer, token string) (*Offer, error) {
	env, err := s.client.Post(ctx, "/restaurant/offers/create", no, token)
	if err != nil {
		return nil, err
	}
	var o Offer
	if err := env.Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOfferWithImage registers an offer with an image upload.
func (s *Service) CreateOfferWithImage(ctx context.Context, no NewOffer, image api.FileRef, token string) (*Offer, error) {
	env, err := s.client.PostForm(ctx, "/restaurant/offers/create", offerForm(no, image), token)
	if err != nil {
		return nil, err
	}
	var o Offer
	if err := env.Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOffer replaces an offer's fields.
func (s *Service) UpdateOffer(ctx context.Context, offerID string, o Offer, token string) error {
	if err := guardID(offerID); err != nil {
		return err
	}
	_, err := s.client.Put(ctx, "/restaurant/offers/"+offerID, o, token)
	return err
}

// UpdateOfferWithImage replaces an offer's fields and image together.
func (s *Service) UpdateOfferWithImage(ctx context.Context, offerID string, no NewOffer, image api.FileRef, token string) error {
	if err := guardID(offerID); err != nil {
		return err
	}
	_, err := s.client.PostForm(ctx, "/restaurant/offers/"+offerID, offerForm(no, image), token)
	return err
}

// DeleteOffer removes an offer.
func (s *Service) DeleteOffer(ctx context.Context, offerID, token string) error {
	if err := guardID(offerID); err != nil {
		return err
	}
	_, err := s.client.Delete(ctx, "/restaurant/offers/"+offerID, token)
	return err
}

func itemForm(ni NewItem, image api.FileRef) *api.Form {
	return api.NewForm().
		AddFields([][2]string{
			{"name", ni.Name},
			{"description", ni.Description},
			{"category", ni.Category},
			{"itemCategory", ni.ItemCategory},
			{"price", strconv.FormatFloat(ni.Price, 'f', -1, 64)},
			{"availability", ni.Availability},
			{"isDietMeal", strconv.FormatBool(ni.IsDietMeal)},
			{"calories", strconv.Itoa(ni.Calories)},
		}).
		AddFile("image", image)
}

func offerForm(no NewOffer, image api.FileRef) *api.Form {
	return api.NewForm().
		AddFields([][2]string{
			{"offerTitle", no.OfferTitle},
			{"discountAmount", strconv.FormatFloat(no.DiscountAmount, 'f', -1, 64)},
			{"startDate", no.StartDate},
			{"endDate", no.EndDate},
		}).
		AddFile("image", image)
}

func guardID(id string) error {
	return shared.GuardObjectID("menu id", id)
}
