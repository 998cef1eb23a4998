package calendar

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

func fixNow(t *testing.T, date string) {
	t.Helper()
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", date, err)
	}
	old := Now
	Now = func() time.Time { return parsed }
	t.Cleanup(func() { Now = old })
}

func TestGregorianToHijri_KnownAnchor(t *testing.T) {
	// 1 Muharram 1420 AH = 17 April 1999 in the civil tabular calendar.
	got, err := GregorianToHijri("1999-04-17")
	if err != nil {
		t.Fatalf("GregorianToHijri failed: %v", err)
	}
	if got != "1420-01-01" {
		t.Errorf("expected 1420-01-01, got %s", got)
	}

	g, err := HijriToGregorian(1420, 1, 1)
	if err != nil {
		t.Fatalf("HijriToGregorian failed: %v", err)
	}
	if g != "1999-04-17" {
		t.Errorf("expected 1999-04-17, got %s", g)
	}
}

func TestGregorianToHijri_PlainASCIIShape(t *testing.T) {
	shape := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	for _, date := range []string{"1999-04-17", "2024-02-29", "2026-01-01", "2026-12-31", "0700-06-15"} {
		got, err := GregorianToHijri(date)
		if err != nil {
			t.Fatalf("GregorianToHijri(%s) failed: %v", date, err)
		}
		if !shape.MatchString(got) {
			t.Errorf("GregorianToHijri(%s) = %q, not plain YYYY-MM-DD", date, got)
		}
		for _, r := range got {
			if r > 127 {
				t.Errorf("GregorianToHijri(%s) contains non-ASCII rune %q", date, r)
			}
		}
	}
}

func TestGregorianToHijri_InvalidInput(t *testing.T) {
	for _, date := range []string{"", "not-a-date", "2026-02-30", "2026-13-01", "2026-1-5"} {
		if _, err := GregorianToHijri(date); err == nil {
			t.Errorf("expected error for %q", date)
		}
	}
}

func TestHijriMonthRoundTrip(t *testing.T) {
	for _, tc := range []struct{ year, month int }{
		{1420, 1}, {1446, 9}, {1447, 12}, {1400, 2},
	} {
		dates := DatesInHijriMonth(tc.year, tc.month)
		if len(dates) != 29 && len(dates) != 30 {
			t.Fatalf("hijri %d-%02d has %d days", tc.year, tc.month, len(dates))
		}
		for i, g := range dates {
			h, err := GregorianToHijri(g)
			if err != nil {
				t.Fatalf("round-trip of %s failed: %v", g, err)
			}
			var hy, hm, hd int
			if _, err := fmt.Sscanf(h, "%d-%d-%d", &hy, &hm, &hd); err != nil {
				t.Fatalf("unparseable hijri date %q", h)
			}
			if hy != tc.year || hm != tc.month || hd != i+1 {
				t.Errorf("date %s converted to %s, want %04d-%02d-%02d", g, h, tc.year, tc.month, i+1)
			}
		}
	}
}

func TestDatesInHijriMonth_OmitsInvalidTrailingDay(t *testing.T) {
	// Safar 1420 is a 29-day month in the arithmetic calendar.
	dates := DatesInHijriMonth(1420, 2)
	if len(dates) != 29 {
		t.Errorf("expected 29 days in Safar 1420, got %d", len(dates))
	}
	if _, err := HijriToGregorian(1420, 2, 30); err == nil {
		t.Error("expected 30 Safar 1420 to be invalid")
	}
}

func TestLeapYearDhuAlHijjah(t *testing.T) {
	// 1442 is a leap year ((11*1442+14) mod 30 = 6), so month 12 has 30 days.
	if got := len(DatesInHijriMonth(1442, 12)); got != 30 {
		t.Errorf("expected 30 days in Dhu al-Hijjah 1442, got %d", got)
	}
	// 1443 is common, month 12 has 29 days.
	if got := len(DatesInHijriMonth(1443, 12)); got != 29 {
		t.Errorf("expected 29 days in Dhu al-Hijjah 1443, got %d", got)
	}
}

func TestDatesInGregorianMonth(t *testing.T) {
	feb26 := DatesInGregorianMonth(2026, 2)
	if len(feb26) != 28 {
		t.Fatalf("expected 28 dates for 2026-02, got %d", len(feb26))
	}
	if feb26[0] != "2026-02-01" || feb26[27] != "2026-02-28" {
		t.Errorf("unexpected bounds: %s .. %s", feb26[0], feb26[27])
	}

	feb24 := DatesInGregorianMonth(2024, 2)
	if len(feb24) != 29 {
		t.Errorf("expected 29 dates for leap 2024-02, got %d", len(feb24))
	}

	if DatesInGregorianMonth(2026, 13) != nil {
		t.Error("expected nil for month 13")
	}
}

func TestMonthStartWeekday_AlignsAcrossSystems(t *testing.T) {
	// 2026-02-01 is a Sunday.
	wd, err := MonthStartWeekday(2026, 2, SystemGregorian)
	if err != nil {
		t.Fatalf("MonthStartWeekday failed: %v", err)
	}
	if wd != 0 {
		t.Errorf("expected Sunday (0) for 2026-02-01, got %d", wd)
	}

	// The Hijri offset must agree with the weekday of the month's first
	// Gregorian date.
	first := DatesInHijriMonth(1447, 7)[0]
	want, err := Weekday(first)
	if err != nil {
		t.Fatalf("Weekday failed: %v", err)
	}
	got, err := MonthStartWeekday(1447, 7, SystemHijri)
	if err != nil {
		t.Fatalf("MonthStartWeekday(hijri) failed: %v", err)
	}
	if got != int(want) {
		t.Errorf("hijri month start weekday = %d, want %d", got, want)
	}
}

func TestTodayAndFuture(t *testing.T) {
	fixNow(t, "2026-03-15")

	if Today() != "2026-03-15" {
		t.Fatalf("Today() = %s", Today())
	}
	if !IsToday("2026-03-15") {
		t.Error("expected 2026-03-15 to be today")
	}
	if IsToday("2026-03-14") {
		t.Error("did not expect 2026-03-14 to be today")
	}
	if !IsFuture("2026-03-16") {
		t.Error("expected 2026-03-16 to be future")
	}
	if IsFuture("2026-03-15") || IsFuture("garbage") {
		t.Error("today and malformed input must not be future")
	}
}

func TestCurrentHijriFallback(t *testing.T) {
	// A clock before the Hijri epoch cannot convert; the default-view
	// helpers substitute the documented fallback instead of failing.
	old := Now
	Now = func() time.Time { return time.Date(600, 1, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { Now = old })

	if got := CurrentHijriYear(); got != FallbackHijriYear {
		t.Errorf("expected fallback year %d, got %d", FallbackHijriYear, got)
	}
	if got := CurrentHijriMonth(); got != FallbackHijriMonth {
		t.Errorf("expected fallback month %d, got %d", FallbackHijriMonth, got)
	}
}

func TestCurrentYearMonth(t *testing.T) {
	fixNow(t, "1999-04-17")

	if got := CurrentYear(SystemGregorian); got != 1999 {
		t.Errorf("CurrentYear(gregorian) = %d", got)
	}
	if got := CurrentMonth(SystemGregorian); got != 4 {
		t.Errorf("CurrentMonth(gregorian) = %d", got)
	}
	if got := CurrentYear(SystemHijri); got != 1420 {
		t.Errorf("CurrentYear(hijri) = %d", got)
	}
	if got := CurrentMonth(SystemHijri); got != 1 {
		t.Errorf("CurrentMonth(hijri) = %d", got)
	}
}

func TestFormatting(t *testing.T) {
	got, err := FormatGregorian("2026-01-01")
	if err != nil {
		t.Fatalf("FormatGregorian failed: %v", err)
	}
	if got != "Thursday, 1 Jan 2026" {
		t.Errorf("FormatGregorian = %q", got)
	}

	h, err := FormatHijri("1999-04-17")
	if err != nil {
		t.Fatalf("FormatHijri failed: %v", err)
	}
	if h != "1 Muharram 1420" {
		t.Errorf("FormatHijri = %q", h)
	}

	if HijriMonthName(9) != "Ramadan" || HijriMonthName(13) != "" {
		t.Error("unexpected hijri month name lookup")
	}

	if got := MonthYearDisplay(1447, 7, SystemHijri); got != "Rajab 1447" {
		t.Errorf("MonthYearDisplay(hijri) = %q", got)
	}
	if got := MonthYearDisplay(2026, 2, SystemGregorian); got != "February 2026" {
		t.Errorf("MonthYearDisplay(gregorian) = %q", got)
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-03-01", -1)
	if err != nil {
		t.Fatalf("AddDays failed: %v", err)
	}
	if got != "2026-02-28" {
		t.Errorf("AddDays = %s", got)
	}
	if _, err := AddDays("bad", 1); err == nil {
		t.Error("expected error for malformed date")
	}
}
