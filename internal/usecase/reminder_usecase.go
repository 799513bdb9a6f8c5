package usecase

import (
	"context"
	"time"

	"autocare/internal/domain/entities"
	"autocare/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ReminderInterval is how long a user may go without a mileage request.
const ReminderInterval = 28 * 24 * time.Hour

// ReminderUseCase sends the periodic "enter your current mileage" prompt.
// The scheduler invokes Sweep on a fixed cadence; the 28-day predicate here
// decides who actually gets a message.
type ReminderUseCase struct {
	repo      interfaces.IUserRepository
	messenger interfaces.IMessenger
	log       *zap.Logger
	now       func() time.Time
}

func NewReminderUseCase(repo interfaces.IUserRepository, messenger interfaces.IMessenger, log *zap.Logger) *ReminderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReminderUseCase{repo: repo, messenger: messenger, log: log, now: time.Now}
}

// Sweep walks every profile and prompts those whose last reminder is at
// least 28 days old (never reminded counts as epoch). Per-user failures
// are logged and skipped; one bad profile must not stall the rest.
func (u *ReminderUseCase) Sweep(ctx context.Context) error {
	profiles, err := u.repo.List(ctx)
	if err != nil {
		u.log.Error("reminder sweep: list profiles failed", zap.Error(err))
		return err
	}

	now := u.now()
	for _, p := range profiles {
		lastSent := time.Time{}
		if p.LastReminderSentAt != nil {
			lastSent = *p.LastReminderSentAt
		}
		if now.Sub(lastSent) < ReminderInterval {
			continue
		}

		prompt := entities.Prompt{
			Text:    "Please enter your current mileage:",
			Buttons: []entities.Button{{ID: BtnEnterMileage, Label: "Enter mileage"}},
		}
		if err := u.messenger.SendPrompt(ctx, p.UserID, prompt); err != nil {
			u.log.Warn("reminder sweep: send failed", zap.String("user_id", p.UserID), zap.Error(err))
			continue
		}

		sentAt := now
		p.LastReminderSentAt = &sentAt
		if err := u.repo.Save(ctx, p); err != nil {
			u.log.Warn("reminder sweep: save failed", zap.String("user_id", p.UserID), zap.Error(err))
		}
	}
	return nil
}
