package store

import (
	"context"

	"github.com/fitpulse/gym-api/internal/models"
)

/* ------------------ Bookings / payments ------------------ */

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	return s.DB.WithContext(ctx).Create(b).Error
}

func (s *Store) GetBookingByEmail(ctx context.Context, email string) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.WithContext(ctx).Where("user_email = ?", email).First(&b).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &b, nil
}

// SumBookingPrices returns the aggregate revenue over all bookings, zero when
// there are none.
func (s *Store) SumBookingPrices(ctx context.Context) (float64, error) {
	var total float64
	err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	return total, err
}

func (s *Store) CountPaidBookings(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Booking{}).Where("paid = ?", true).Count(&n).Error
	return n, err
}
