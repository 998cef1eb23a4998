// Package calendar maps between the Gregorian civil calendar and a tabular
// arithmetic Hijri calendar, and computes the month-grid metadata both
// systems share. All conversions are deterministic; nothing here touches
// storage.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form used everywhere in the store.
const DateLayout = "2006-01-02"

// ErrInvalidDate reports a malformed or unrepresentable date input.
var ErrInvalidDate = errors.New("invalid date")

type System int

const (
	SystemGregorian System = iota
	SystemHijri
)

// Now supplies the wall clock for today/future checks and default view
// anchors. Tests replace it.
var Now = time.Now

// ParseDate parses a strict YYYY-MM-DD Gregorian date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// Today returns the current local date in YYYY-MM-DD form.
func Today() string {
	return Now().Format(DateLayout)
}

// IsToday reports whether date is the current local day. Malformed input is
// never "today".
func IsToday(date string) bool {
	return date == Today()
}

// IsFuture reports whether date falls after the current local day,
// day granularity only.
func IsFuture(date string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	today, _ := ParseDate(Today())
	return t.After(today)
}

// AddDays shifts a date by n calendar days (n may be negative).
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// DatesInGregorianMonth enumerates every date of a Gregorian month in
// ascending order.
func DatesInGregorianMonth(year, month int) []string {
	if month < 1 || month > 12 {
		return nil
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// MonthStartWeekday returns the weekday (0 = Sunday) of the first day of a
// month in either calendar system, for grid left-padding.
func MonthStartWeekday(year, month int, system System) (int, error) {
	var first string
	if system == SystemHijri {
		var err error
		first, err = HijriToGregorian(year, month, 1)
		if err != nil {
			return 0, err
		}
	} else {
		if month < 1 || month > 12 {
			return 0, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
		}
		first = fmt.Sprintf("%04d-%02d-01", year, month)
	}
	t, err := ParseDate(first)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// FormatGregorian renders a date for display, e.g. "Thursday, 1 Jan 2026".
func FormatGregorian(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format("Monday, 2 Jan 2006"), nil
}

// MonthYearDisplay renders a month heading, e.g. "January 2026" or
// "Muharram 1447".
func MonthYearDisplay(year, month int, system System) string {
	if system == SystemHijri {
		return fmt.Sprintf("%s %d", HijriMonthName(month), year)
	}
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

// CurrentYear returns the default view anchor year for a calendar system.
// The Hijri value falls back to FallbackHijriYear rather than failing.
func CurrentYear(system System) int {
	if system == SystemHijri {
		return CurrentHijriYear()
	}
	return Now().Year()
}

// CurrentMonth returns the default view anchor month for a calendar system.
func CurrentMonth(system System) int {
	if system == SystemHijri {
		return CurrentHijriMonth()
	}
	return int(Now().Month())
}
