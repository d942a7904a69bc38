// README: Profile service; thin CRUD over the generic store.
package profile

import (
	"context"
	"errors"
	"strings"

	"railway/internal/store"
	"railway/internal/types"
)

var ErrUsernameTaken = errors.New("username already taken")

type Service struct {
	profiles store.Repository[UserProfile]
}

func NewService(profiles store.Repository[UserProfile]) *Service {
	return &Service{profiles: profiles}
}

// CreateProfile registers a profile. Usernames are unique
// case-insensitively.
func (s *Service) CreateProfile(ctx context.Context, username string, age int, railcard types.Railcard) (UserProfile, error) {
	existing, err := s.GetByUsername(ctx, username)
	if err != nil {
		return UserProfile{}, err
	}
	if existing != nil {
		return UserProfile{}, ErrUsernameTaken
	}

	p := NewProfile(username, age, railcard)
	if err := s.profiles.Add(ctx, p); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

// GetByUsername looks a profile up case-insensitively; nil when absent.
func (s *Service) GetByUsername(ctx context.Context, username string) (*UserProfile, error) {
	all, err := s.profiles.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Username, username) {
			return &all[i], nil
		}
	}
	return nil, nil
}

// UpdateAddress is a silent no-op for unknown ids.
func (s *Service) UpdateAddress(ctx context.Context, id types.ID, newAddress string) error {
	p, ok, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	p.Address = newAddress
	return s.profiles.Update(ctx, p)
}

func (s *Service) AllProfiles(ctx context.Context) ([]UserProfile, error) {
	return s.profiles.GetAll(ctx)
}
