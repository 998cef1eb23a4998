// Package reminder schedules the single daily "log your prayers" nudge.
// The scheduler is an explicitly owned handle; Reschedule atomically
// cancels any pending fire and arms the next one. There is no package
// state.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Settings mirror the persisted reminder preferences.
type Settings struct {
	Enabled bool
	Time    string // HH:MM, 24h local time
}

// Scheduler owns at most one pending reminder timer.
type Scheduler struct {
	mu     sync.Mutex
	timer  *time.Timer
	now    func() time.Time
	notify func()
}

// New creates a scheduler that invokes notify when the reminder fires.
func New(notify func()) *Scheduler {
	return &Scheduler{
		now:    time.Now,
		notify: notify,
	}
}

// parseClock validates an HH:MM wall-clock time.
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %q", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

// NextDelay returns how long until the next occurrence of the reminder
// time, relative to now. A time already past today rolls to tomorrow.
func (s *Scheduler) NextDelay(settings Settings) (time.Duration, error) {
	hour, minute, err := parseClock(settings.Time)
	if err != nil {
		return 0, err
	}
	now := s.now()
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now), nil
}

// Reschedule cancels any pending reminder and, if enabled, arms the next
// fire. Cancel-and-rearm happens under one lock so two in-flight calls
// cannot leave two timers armed.
func (s *Scheduler) Reschedule(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !settings.Enabled {
		return nil
	}

	delay, err := s.NextDelay(settings)
	if err != nil {
		return err
	}
	s.timer = time.AfterFunc(delay, func() {
		s.notify()
		// Re-arm for the next day.
		_ = s.Reschedule(settings)
	})
	return nil
}

// Stop cancels any pending reminder.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Pending reports whether a reminder is currently armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
