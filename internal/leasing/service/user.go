package service

import (
	"context"
	"errors"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store"
)

// UserService maintains the local mirror of identity-provider accounts.
type UserService struct {
	Store store.Store
}

type UserInput struct {
	Name  string
	Email string
	Phone string
}

// Sync upserts the caller's profile row. Identity and role come from the
// verified token, never from the request body.
func (s *UserService) Sync(ctx context.Context, userID string, role domain.Role, in UserInput) (domain.User, error) {
	if in.Name == "" || in.Email == "" {
		return domain.User{}, ErrInvalidRequest
	}

	err := s.Store.Users().UpsertUser(ctx, domain.User{
		ID:    userID,
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Role:  role,
	})
	if err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
