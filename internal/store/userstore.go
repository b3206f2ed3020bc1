package store

import (
	"context"
	"errors"
	"time"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
	"gorm.io/gorm/clause"
)

/* ------------------ User CRUD ------------------ */

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

// CreateUserIfAbsent inserts u unless a user with the same email already
// exists. Calling it twice with one email is a no-op the second time.
func (s *Store) CreateUserIfAbsent(ctx context.Context, u *models.User) (bool, error) {
	_, err := s.GetUserByEmail(ctx, u.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return false, err
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetRoleDefaulting returns the user's role, persisting "member" first when
// the user exists without one.
func (s *Store) GetRoleDefaulting(ctx context.Context, email string) (models.Role, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Role == "" {
		if err := s.SetUserRoleByEmail(ctx, email, models.RoleMember); err != nil {
			return "", err
		}
		return models.RoleMember, nil
	}
	return u.Role, nil
}

func (s *Store) UpdateUserFields(ctx context.Context, email string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Updates(fields).Error
}

func (s *Store) SetUserRoleByEmail(ctx context.Context, email string, role models.Role) error {
	return s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"role": role, "updated_at": time.Now()}).Error
}

func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	var res []*models.User
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// GetTrainerByName finds the trainer whose display name matches exactly.
func (s *Store) GetTrainerByName(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).
		Where("name = ? AND role = ?", name, models.RoleTrainer).
		First(&u).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

// GetTrainerByPhotoURL finds the trainer whose photo URL matches exactly.
func (s *Store) GetTrainerByPhotoURL(ctx context.Context, photoURL string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).
		Where("photo_url = ? AND role = ?", photoURL, models.RoleTrainer).
		First(&u).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (s *Store) ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	var res []*models.User
	if err := s.DB.WithContext(ctx).Where("role = ?", role).Order("created_at desc").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// UpsertProfile writes profile fields for email, creating the user row first
// if it does not exist.
func (s *Store) UpsertProfile(ctx context.Context, email string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	tx := s.DB.WithContext(ctx)
	// a conflict just means the row already exists
	_ = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.User{Email: email}).Error
	return tx.Model(&models.User{}).Where("email = ?", email).Updates(fields).Error
}
