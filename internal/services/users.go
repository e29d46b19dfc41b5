package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinefind/dinefind/internal/model"
	"github.com/dinefind/dinefind/internal/store"
)

// UserService handles account lookups and credential checks.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	return s.store.Users().Create(ctx, u)
}

// VerifyCredentials compares the supplied password with the stored one.
// Fails closed: an unknown user is a plain false, not a fault.
func (s *UserService) VerifyCredentials(ctx context.Context, userID, password string) (bool, error) {
	u, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Password == password, nil
}

// DisplayName returns the user's first and last name joined with a space.
func (s *UserService) DisplayName(ctx context.Context, userID string) (string, error) {
	u, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", model.ErrUserNotFound, userID)
		}
		return "", err
	}
	return u.FirstName + " " + u.LastName, nil
}
