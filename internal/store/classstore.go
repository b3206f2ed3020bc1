package store

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
)

func (s *Store) CreateClass(ctx context.Context, c *models.Class) error {
	return s.DB.WithContext(ctx).Create(c).Error
}

// ListClasses pages through classes in insertion order, optionally filtered by
// a case-insensitive title substring. The filter does not change the order.
func (s *Store) ListClasses(ctx context.Context, page PageRequest, search string) ([]*models.Class, int64, error) {
	q := s.DB.WithContext(ctx).Model(&models.Class{})
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var classes []*models.Class
	if err := q.Order("id asc").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&classes).Error; err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

// LatestClasses returns the n most recently added classes, newest first.
func (s *Store) LatestClasses(ctx context.Context, n int) ([]*models.Class, error) {
	var classes []*models.Class
	if err := s.DB.WithContext(ctx).Order("id desc").Limit(n).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *Store) ListClassesByTitle(ctx context.Context, title string) ([]*models.Class, error) {
	var classes []*models.Class
	if err := s.DB.WithContext(ctx).Where("title = ?", title).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *Store) UpdateClassFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.DB.WithContext(ctx).Model(&models.Class{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) GetClassByID(ctx context.Context, id string) (*models.Class, error) {
	var c models.Class
	if err := s.DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &c, nil
}
