package store

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
)

func (s *Store) CreateReview(ctx context.Context, r *models.Review) error {
	return s.DB.WithContext(ctx).Create(r).Error
}

func (s *Store) ListReviews(ctx context.Context) ([]*models.Review, error) {
	var res []*models.Review
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}
