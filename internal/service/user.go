package service

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
)

type UserStore interface {
	CreateUserIfAbsent(ctx context.Context, u *models.User) (bool, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(s UserStore) *UserService {
	return &UserService{store: s}
}

// Register creates the user record for email unless one already exists.
// The returned bool reports whether an insert happened; registering the same
// email twice is not an error.
func (u *UserService) Register(ctx context.Context, email, name, photoURL string, otherInfo map[string]interface{}) (*models.User, bool, error) {
	user := &models.User{
		Email:     email,
		Name:      name,
		PhotoURL:  photoURL,
		OtherInfo: otherInfo,
	}
	created, err := u.store.CreateUserIfAbsent(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}
