package scheduler

import (
	"context"
	"os"
	"time"

	"autocare/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Default cadence: every Sunday at midnight. The sweep itself applies the
// 28-day per-user predicate, so running the sweep more often is harmless.
const defaultReminderCron = "0 0 * * 0"

const sweepTimeout = 5 * time.Minute

// ReminderScheduler runs the mileage reminder sweep on a cron cadence.
type ReminderScheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

// NewReminderScheduler wires the sweep into a cron schedule taken from
// REMINDER_CRON (standard 5-field spec).
func NewReminderScheduler(reminders *usecase.ReminderUseCase, log *zap.Logger) (*ReminderScheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	spec := os.Getenv("REMINDER_CRON")
	if spec == "" {
		spec = defaultReminderCron
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if err := reminders.Sweep(ctx); err != nil {
			log.Error("reminder sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}

	log.Info("reminder scheduler configured", zap.String("cron", spec))
	return &ReminderScheduler{cron: c, log: log}, nil
}

func (s *ReminderScheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *ReminderScheduler) Stop() {
	<-s.cron.Stop().Done()
}
