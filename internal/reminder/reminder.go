// Package reminder runs the background water-reminder actor. It holds a
// read-only handle into the store and pulls on its own timer; the core
// exposes no push mechanism. Relative to the foreground CLI/TUI writers it
// is a concurrent reader, which the storage providers are built for.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/BinadaPasandul/pulse/internal/logger"
	"github.com/BinadaPasandul/pulse/internal/repo"
	"github.com/BinadaPasandul/pulse/internal/storage"
)

// NotifyFunc delivers a composed reminder to the user.
type NotifyFunc func(title, body string)

type Scheduler struct {
	store  storage.Provider
	water  *repo.Water
	notify NotifyFunc
}

func New(store storage.Provider, notify NotifyFunc) *Scheduler {
	return &Scheduler{
		store:  store,
		water:  repo.NewWater(store),
		notify: notify,
	}
}

// Compose performs the read-only queries a reminder needs and decides
// whether one should fire: goal met or reminders disabled means no
// notification.
func (s *Scheduler) Compose() (string, bool, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return "", false, err
	}
	if !settings.RemindersEnabled || !settings.NotificationsEnabled {
		return "", false, nil
	}

	total, err := s.water.TodayTotal()
	if err != nil {
		return "", false, err
	}
	if total >= settings.DailyWaterGoal {
		return "", false, nil
	}

	body := fmt.Sprintf("You're at %d of %d glasses today. Time for a glass of water!",
		total, settings.DailyWaterGoal)
	return body, true, nil
}

// Run fires reminders at the configured interval until the context is
// cancelled. Settings are re-read on every tick so goal and enablement
// changes take effect without a restart; interval changes apply from the
// next run.
func (s *Scheduler) Run(ctx context.Context) error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}

	interval := time.Duration(settings.ReminderIntervalMinutes) * time.Minute
	if interval <= 0 {
		return fmt.Errorf("invalid reminder interval: %d minutes", settings.ReminderIntervalMinutes)
	}

	logger.Info("Water reminder started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Water reminder stopped")
			return nil
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	body, fire, err := s.Compose()
	if err != nil {
		logger.Warn("Reminder check failed", "error", err)
		return
	}
	if !fire {
		return
	}
	s.notify("Stay hydrated 💧", body)
}
