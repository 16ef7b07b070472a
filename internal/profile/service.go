package profile

import (
	"context"
	"net/url"

	"restaurant-manager/internal/api"
)

// Service wraps the restaurant profile endpoints.
type Service struct {
	client *api.Client
}

// NewService creates a new profile service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// DocumentFiles references the files a profile update may carry. Nil
// entries are skipped; slices append one part per file under the same
// field name the way the upload endpoint expects.
type DocumentFiles struct {
	ProfileImage *api.FileRef
	MessImages   []api.FileRef
	QRCode       *api.FileRef
	Passbook     *api.FileRef
	AadharCard   *api.FileRef
	PanCard      *api.FileRef
}

// Get fetches the caller's profile.
func (s *Service) Get(ctx context.Context, token string) (*Restaurant, error) {
	env, err := s.client.Get(ctx, "/restaurant/profile", token)
	if err != nil {
		return nil, err
	}
	var r Restaurant
	if err := env.Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Update posts changed profile fields and returns the backend's copy.
func (s *Service) Update(ctx context.Context, r Restaurant, token string) (*Restaurant, error) {
	env, err := s.client.Post(ctx, "/restaurant/profile", r, token)
	if err != nil {
		return nil, err
	}
	var updated Restaurant
	if err := env.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateWithDocuments posts a multipart profile update. Text fields go
// first, in the order supplied, then the document files.
func (s *Service) UpdateWithDocuments(ctx context.Context, fields [][2]string, files DocumentFiles, token string) (*Restaurant, error) {
	form := api.NewForm().AddFields(fields)

	if files.ProfileImage != nil {
		form.AddFile("profileImage", *files.ProfileImage)
	}
	for _, img := range files.MessImages {
		form.AddFile("messImages", img)
	}
	if files.QRCode != nil {
		form.AddFile("qrCode", *files.QRCode)
	}
	if files.Passbook != nil {
		form.AddFile("passbook", *files.Passbook)
	}
	if files.AadharCard != nil {
		form.AddFile("aadharCard", *files.AadharCard)
	}
	if files.PanCard != nil {
		form.AddFile("panCard", *files.PanCard)
	}

	env, err := s.client.PostForm(ctx, "/restaurant/profile", form, token)
	if err != nil {
		return nil, err
	}
	var updated Restaurant
	if err := env.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Dashboard fetches the overview numbers for the home screen.
func (s *Service) Dashboard(ctx context.Context, token string) (*Dashboard, error) {
	env, err := s.client.Get(ctx, "/restaurant/dashboard", token)
	if err != nil {
		return nil, err
	}
	var d Dashboard
	if err := env.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// RemoveMessImage deletes one mess image by its URL and returns the list
// that remains.
func (s *Service) RemoveMessImage(ctx context.Context, imageURL, token string) ([]string, error) {
	env, err := s.client.Delete(ctx, "/restaurant/mess-image/"+url.PathEscape(imageURL), token)
	if err != nil {
		return nil, err
	}
	var data struct {
		MessImages []string `json:"messImages"`
	}
	if err := env.Decode(&data); err != nil {
		return nil, err
	}
	return data.MessImages, nil
}

// ClearMessImages deletes every mess image.
func (s *Service) ClearMessImages(ctx context.Context, token string) error {
	_, err := s.client.Delete(ctx, "/restaurant/mess-images", token)
	return err
}

// ToggleOnline flips the restaurant's online flag and returns the new value.
func (s *Service) ToggleOnline(ctx context.Context, token string) (bool, error) {
	env, err := s.client.Post(ctx, "/restaurant/toggle-online", struct{}{}, token)
	if err != nil {
		return false, err
	}
	var data struct {
		IsOnline bool `json:"isOnline"`
	}
	if err := env.Decode(&data); err != nil {
		return false, err
	}
	return data.IsOnline, nil
}
