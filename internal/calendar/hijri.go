package calendar

import (
	"fmt"
	"time"
)

// The Hijri side uses the civil tabular ("Kuwaiti") arithmetic calendar:
// a 30-year cycle with 11 leap years (those y where (11y+14) mod 30 < 11),
// anchored at Julian Day Number 1948440 for 1 Muharram 1 AH. This is a
// deliberate approximation; real Hijri months depend on lunar sighting and
// are not algorithmically fixed. Verified anchor: 1 Muharram 1420 AH =
// 1999-04-17.
const hijriEpochJDN = 1948440

// Fallback anchor used when the wall clock converts to an out-of-range
// Hijri date; rendering a slightly wrong default view beats failing.
const (
	FallbackHijriYear  = 1447
	FallbackHijriMonth = 1
)

var hijriMonthNames = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Awwal",
	"Jumada al-Thani",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qadah",
	"Dhu al-Hijjah",
}

// HijriMonthName returns the fixed English name for a Hijri month (1-12),
// independent of runtime locale.
func HijriMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return hijriMonthNames[month-1]
}

// Fliegel-Van Flandern Gregorian <-> JDN.
func gregorianToJDN(y, m, d int) int {
	a := (m - 14) / 12
	return (1461*(y+4800+a))/4 +
		(367*(m-2-12*a))/12 -
		(3*((y+4900+a)/100))/4 +
		d - 32075
}

func jdnToGregorian(jdn int) (y, m, d int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447
	d = l - (2447*j)/80
	l = j / 11
	m = j + 2 - 12*l
	y = 100*(n-49) + i + l
	return y, m, d
}

func hijriToJDN(y, m, d int) int {
	return (11*y+3)/30 + 354*y + 30*m - (m-1)/2 + d + hijriEpochJDN - 385
}

func jdnToHijri(jdn int) (y, m, d int) {
	l := jdn - hijriEpochJDN + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	m = (24 * l) / 709
	d = l - (709*m)/24
	y = 30*n + j - 30
	return y, m, d
}

// GregorianToHijri converts a YYYY-MM-DD Gregorian date to its Hijri
// equivalent in the same shape. The result is plain ASCII digits, always.
func GregorianToHijri(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	hy, hm, hd := jdnToHijri(gregorianToJDN(t.Year(), int(t.Month()), t.Day()))
	if hy < 1 {
		return "", fmt.Errorf("%w: %q predates the Hijri epoch", ErrInvalidDate, date)
	}
	return fmt.Sprintf("%04d-%02d-%02d", hy, hm, hd), nil
}

// HijriToGregorian converts a Hijri year/month/day to the Gregorian date it
// falls on. Days that do not exist in the arithmetic calendar (a 30th in a
// 29-day month) fail with ErrInvalidDate.
func HijriToGregorian(year, month, day int) (string, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 30 {
		return "", fmt.Errorf("%w: hijri %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	jdn := hijriToJDN(year, month, day)
	// Round-trip instead of a month-length parity rule; the conversion is
	// the single source of truth for day validity.
	ry, rm, rd := jdnToHijri(jdn)
	if ry != year || rm != month || rd != day {
		return "", fmt.Errorf("%w: hijri %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	gy, gm, gd := jdnToGregorian(jdn)
	return fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd), nil
}

// DatesInHijriMonth enumerates the Gregorian dates covering a Hijri month
// (29 or 30 entries) in ascending order. Invalid trailing days are omitted.
func DatesInHijriMonth(year, month int) []string {
	var dates []string
	for day := 1; day <= 30; day++ {
		g, err := HijriToGregorian(year, month, day)
		if err != nil {
			break
		}
		dates = append(dates, g)
	}
	return dates
}

// HijriDay returns the Hijri day-of-month for a Gregorian date, for grid
// labels.
func HijriDay(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	_, _, hd := jdnToHijri(gregorianToJDN(t.Year(), int(t.Month()), t.Day()))
	return hd, nil
}

// FormatHijri renders a Gregorian date as a Hijri display string, e.g.
// "12 Rajab 1447".
func FormatHijri(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	hy, hm, hd := jdnToHijri(gregorianToJDN(t.Year(), int(t.Month()), t.Day()))
	if hy < 1 {
		return "", fmt.Errorf("%w: %q predates the Hijri epoch", ErrInvalidDate, date)
	}
	return fmt.Sprintf("%d %s %d", hd, HijriMonthName(hm), hy), nil
}

func currentHijri() (y, m int) {
	t := Now()
	hy, hm, _ := jdnToHijri(gregorianToJDN(t.Year(), int(t.Month()), t.Day()))
	return hy, hm
}

// CurrentHijriYear returns the Hijri year of the current local day, or
// FallbackHijriYear if the clock converts out of range.
func CurrentHijriYear() int {
	y, _ := currentHijri()
	if y < 1 {
		return FallbackHijriYear
	}
	return y
}

// CurrentHijriMonth returns the Hijri month of the current local day, or
// FallbackHijriMonth if the clock converts out of range.
func CurrentHijriMonth() int {
	y, m := currentHijri()
	if y < 1 || m < 1 || m > 12 {
		return FallbackHijriMonth
	}
	return m
}

// Weekday returns the weekday of a Gregorian date string.
func Weekday(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
