package reminder

import (
	"testing"
	"time"
)

func fixedScheduler(clock time.Time) *Scheduler {
	s := New(func() {})
	s.now = func() time.Time { return clock }
	return s
}

func TestNextDelay(t *testing.T) {
	// 2026-02-01 09:30 local.
	clock := time.Date(2026, 2, 1, 9, 30, 0, 0, time.Local)
	s := fixedScheduler(clock)

	tests := []struct {
		name string
		at   string
		want time.Duration
	}{
		{"later today", "21:00", 11*time.Hour + 30*time.Minute},
		{"already past rolls to tomorrow", "06:00", 20*time.Hour + 30*time.Minute},
		{"exactly now rolls to tomorrow", "09:30", 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.NextDelay(Settings{Enabled: true, Time: tt.at})
			if err != nil {
				t.Fatalf("NextDelay failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextDelay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextDelayInvalidTime(t *testing.T) {
	s := fixedScheduler(time.Date(2026, 2, 1, 9, 30, 0, 0, time.Local))
	for _, bad := range []string{"", "21", "25:00", "09:60", "nine:thirty", "9:3:0"} {
		if _, err := s.NextDelay(Settings{Enabled: true, Time: bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestRescheduleAndStop(t *testing.T) {
	s := New(func() {})

	if err := s.Reschedule(Settings{Enabled: true, Time: "21:00"}); err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}
	if !s.Pending() {
		t.Error("expected a pending reminder after enable")
	}

	// Rescheduling replaces the pending timer rather than stacking one.
	if err := s.Reschedule(Settings{Enabled: true, Time: "08:00"}); err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}
	if !s.Pending() {
		t.Error("expected a pending reminder after reschedule")
	}

	if err := s.Reschedule(Settings{Enabled: false, Time: "08:00"}); err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}
	if s.Pending() {
		t.Error("disabled settings must cancel the pending reminder")
	}

	if err := s.Reschedule(Settings{Enabled: true, Time: "08:00"}); err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}
	s.Stop()
	if s.Pending() {
		t.Error("Stop must cancel the pending reminder")
	}
}

func TestRescheduleInvalidTimeLeavesNothingArmed(t *testing.T) {
	s := New(func() {})
	if err := s.Reschedule(Settings{Enabled: true, Time: "bogus"}); err == nil {
		t.Fatal("expected error for invalid time")
	}
	if s.Pending() {
		t.Error("failed reschedule must not leave a timer armed")
	}
}
