package service

import (
	"context"
	"log"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

type ApplicationStore interface {
	UpsertApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus, feedback, email string) error
}

type RoleStore interface {
	SetUserRoleByEmail(ctx context.Context, email string, role models.Role) error
}

// TrainerService runs the application-review workflow: write the decision on
// the application, and flip the applicant's role when the decision is a
// confirmation.
type TrainerService struct {
	apps  ApplicationStore
	users RoleStore
}

func NewTrainerService(apps ApplicationStore, users RoleStore) *TrainerService {
	return &TrainerService{apps: apps, users: users}
}

// UpdateStatus performs two independent writes:
//
//  1. status + feedback onto the application identified by id (upsert), then
//  2. role = trainer onto the user matching email, only when status is
//     "confirmed".
//
// The two writes are not one transaction. When the second write fails after
// the first succeeded the outcome is reported through promoteErr, but the
// application write still counts as the operation's result: the application
// stays confirmed and the role catches up on a later confirmation. err is
// non-nil only when the application write itself failed.
func (t *TrainerService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, feedback, email string) (promoteErr, err error) {
	if !models.ValidStatus(status) {
		return nil, utils.ErrInvalidStatus
	}
	if err := t.apps.UpsertApplicationStatus(ctx, id, status, feedback, email); err != nil {
		return nil, err
	}
	if status != models.StatusConfirmed {
		return nil, nil
	}
	if perr := t.users.SetUserRoleByEmail(ctx, email, models.RoleTrainer); perr != nil {
		log.Printf("trainer promotion: application %s confirmed but role write for %s failed: %v", id, email, perr)
		return perr, nil
	}
	return nil, nil
}
