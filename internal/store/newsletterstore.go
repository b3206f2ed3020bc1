package store

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
)

/* ------------------ Newsletter (append-only) ------------------ */

func (s *Store) AddSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error {
	return s.DB.WithContext(ctx).Create(sub).Error
}

func (s *Store) ListSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	var res []*models.NewsletterSubscriber
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) CountSubscribers(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.NewsletterSubscriber{}).Count(&n).Error
	return n, err
}
