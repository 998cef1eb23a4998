package stats

import (
	"fmt"
	"strings"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

// GridCell is one rendered day in a month grid. Day is the day number in
// the grid's own calendar system; AltDay the number in the other system.
type GridCell struct {
	Date   string // backing Gregorian date
	Day    int
	AltDay int
	Level  DayLevel
	Today  bool
	Future bool
}

// MonthGrid is a month view for either calendar system. Offset is the
// number of leading blank cells (0 = month starts on Sunday); blank cells
// carry no status.
type MonthGrid struct {
	Title  string
	Offset int
	Cells  []GridCell
}

// BuildMonthGrid attaches day classifications to every date of a Gregorian
// or Hijri month.
func BuildMonthGrid(records []models.PrayerRecord, year, month int, system calendar.System) (MonthGrid, error) {
	var dates []string
	if system == calendar.SystemHijri {
		dates = calendar.DatesInHijriMonth(year, month)
	} else {
		dates = calendar.DatesInGregorianMonth(year, month)
	}

	offset, err := calendar.MonthStartWeekday(year, month, system)
	if err != nil {
		return MonthGrid{}, err
	}

	days := Aggregate(records)
	grid := MonthGrid{
		Title:  calendar.MonthYearDisplay(year, month, system),
		Offset: offset,
	}
	for i, date := range dates {
		cell := GridCell{
			Date:   date,
			Day:    i + 1,
			Level:  Classify(days[date]),
			Today:  calendar.IsToday(date),
			Future: calendar.IsFuture(date),
		}
		if system == calendar.SystemHijri {
			if t, err := calendar.ParseDate(date); err == nil {
				cell.AltDay = t.Day()
			}
		} else {
			if t, err := calendar.ParseDate(date); err == nil {
				cell.Day = t.Day()
			}
			if hd, err := calendar.HijriDay(date); err == nil {
				cell.AltDay = hd
			}
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid, nil
}

// YearHeatmap returns heatmap levels (1-4) keyed by date for every recorded
// day inside a Gregorian year; unlisted dates are level 0.
func YearHeatmap(records []models.PrayerRecord, year int) map[string]int {
	// Dates are zero-padded YYYY-MM-DD, so a string prefix is a year filter.
	prefix := fmt.Sprintf("%04d-", year)

	levels := make(map[string]int)
	for date, d := range Aggregate(records) {
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		if lvl := HeatmapLevel(d); lvl > 0 {
			levels[date] = lvl
		}
	}
	return levels
}
