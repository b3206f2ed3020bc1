package store

import (
	"context"
	"strconv"
	"time"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
	"gorm.io/gorm/clause"
)

/* ------------------ Trainer applications ------------------ */

func (s *Store) CreateApplication(ctx context.Context, a *models.TrainerApplication) error {
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	return s.DB.WithContext(ctx).Create(a).Error
}

func (s *Store) GetApplicationByID(ctx context.Context, id string) (*models.TrainerApplication, error) {
	var a models.TrainerApplication
	if err := s.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &a, nil
}

func (s *Store) ListApplicationsByStatus(ctx context.Context, statuses ...models.ApplicationStatus) ([]*models.TrainerApplication, error) {
	var res []*models.TrainerApplication
	if err := s.DB.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at desc").
		Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// UpsertApplicationStatus writes status and feedback onto the application
// identified by id. When no such record exists a new one is created under that
// same id, so the record stays addressable and repeating the write converges
// on one row. A non-numeric id cannot key a row and reports ErrNotFound.
func (s *Store) UpsertApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, feedback, email string) error {
	res := s.DB.WithContext(ctx).Model(&models.TrainerApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "feedback": feedback, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	appID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return utils.ErrNotFound
	}
	a := models.TrainerApplication{ID: uint(appID), Email: email, Status: status, Feedback: feedback}
	// a concurrent write may have created the row between the two statements
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&a).Error
}

func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.TrainerApplication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
