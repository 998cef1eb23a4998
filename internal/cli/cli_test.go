package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
	"github.com/julianstephens/salahtrack/internal/stats"
)

func fixNow(t *testing.T, date string) {
	t.Helper()
	parsed, err := time.Parse(calendar.DateLayout, date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	old := calendar.Now
	calendar.Now = func() time.Time { return parsed }
	t.Cleanup(func() { calendar.Now = old })
}

func TestResolveDate(t *testing.T) {
	fixNow(t, "2026-02-15")

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"today", "2026-02-15", true},
		{"", "2026-02-15", true},
		{"Yesterday", "2026-02-14", true},
		{"2026-01-31", "2026-01-31", true},
		{"31-01-2026", "", false},
		{"2026-02-30", "", false},
	}
	for _, tt := range tests {
		got, err := resolveDate(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("resolveDate(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("resolveDate(%q) succeeded, want error", tt.in)
		}
	}
}

func TestDayHeaderShowsBothCalendars(t *testing.T) {
	// Known anchor: 17 Apr 1999 is 1 Muharram 1420 AH.
	header, err := dayHeader("1999-04-17")
	if err != nil {
		t.Fatalf("dayHeader failed: %v", err)
	}
	want := "Saturday, 17 Apr 1999\n1 Muharram 1420 AH\n"
	if header != want {
		t.Errorf("dayHeader = %q, want %q", header, want)
	}
}

func TestCanonicalPrayerAndStatus(t *testing.T) {
	if got, ok := canonicalPrayer("fajr"); !ok || got != models.PrayerFajr {
		t.Errorf("canonicalPrayer(fajr) = %q, %v", got, ok)
	}
	if got, ok := canonicalPrayer("MAGHRIB"); !ok || got != models.PrayerMaghrib {
		t.Errorf("canonicalPrayer(MAGHRIB) = %q, %v", got, ok)
	}
	if _, ok := canonicalPrayer("Zuhr"); ok {
		t.Error("canonicalPrayer accepted unknown spelling")
	}

	if got, ok := canonicalStatus("jamah"); !ok || got != models.StatusJamah {
		t.Errorf("canonicalStatus(jamah) = %q, %v", got, ok)
	}
	if got, ok := canonicalStatus("none"); !ok || got != models.StatusNone {
		t.Errorf("canonicalStatus(none) = %q, %v", got, ok)
	}
	if _, ok := canonicalStatus("Late"); ok {
		t.Error("canonicalStatus accepted unknown status")
	}
}

func TestRenderMonthGridShape(t *testing.T) {
	fixNow(t, "2026-02-15")

	grid, err := stats.BuildMonthGrid(nil, 2026, 2, calendar.SystemGregorian)
	if err != nil {
		t.Fatalf("BuildMonthGrid failed: %v", err)
	}
	out := RenderMonthGrid(grid)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Title, weekday header, and four full weeks: Feb 2026 starts on a
	// Sunday and has exactly 28 days.
	if len(lines) != 6 {
		t.Errorf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "February 2026") {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.Contains(out, "28") {
		t.Error("missing last day of month")
	}
}
