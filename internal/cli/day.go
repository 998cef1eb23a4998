package cli

import (
	"fmt"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

// dayHeader renders the dual-calendar heading for a Gregorian date.
// Both Format helpers take the Gregorian date and convert themselves.
func dayHeader(date string) (string, error) {
	gregorianDisplay, err := calendar.FormatGregorian(date)
	if err != nil {
		return "", err
	}
	hijriDisplay, err := calendar.FormatHijri(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n%s AH\n", gregorianDisplay, hijriDisplay), nil
}

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	header, err := dayHeader(date)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", header)

	records, err := ctx.Store.GetRecordsForDate(date)
	if err != nil {
		return err
	}
	byPrayer := make(map[models.PrayerName]models.PrayerRecord, len(records))
	for _, r := range records {
		byPrayer[r.PrayerName] = r
	}

	for _, prayer := range models.PrayerNames {
		record, ok := byPrayer[prayer]
		status := "—"
		if ok && record.Status != models.StatusNone {
			status = string(record.Status)
		}
		fmt.Printf("  %-8s %s\n", prayer, status)
		if ok && record.Notes != "" {
			fmt.Printf("           Note: %s\n", record.Notes)
		}
	}
	return nil
}
