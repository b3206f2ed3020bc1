package store

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

/* ------------------ Trainer slots ------------------ */

func (s *Store) CreateSlot(ctx context.Context, slot *models.Slot) error {
	if slot.ID == "" {
		slot.ID = utils.GenerateID()
	}
	return s.DB.WithContext(ctx).Create(slot).Error
}

func (s *Store) ListSlots(ctx context.Context, trainerEmail string) ([]*models.Slot, error) {
	q := s.DB.WithContext(ctx).Order("created_at asc")
	if trainerEmail != "" {
		q = q.Where("trainer_email = ?", trainerEmail)
	}
	var res []*models.Slot
	if err := q.Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) ListSlotsByName(ctx context.Context, slotName string) ([]*models.Slot, error) {
	var res []*models.Slot
	if err := s.DB.WithContext(ctx).Where("slot_name = ?", slotName).Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) DeleteSlot(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Slot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
