package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/salahtrack/internal/models"
)

type LogCmd struct {
	Prayer string `arg:"" help:"Prayer name (Fajr, Dhuhr, Asr, Maghrib, Isha)."`
	Status string `arg:"" help:"Status (Prayed, Jamah, Qada, Missed, Excused) or 'none' to unset."`
	Date   string `help:"Date to log (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
	Notes  string `help:"Optional note for this prayer."`
}

// canonicalize maps case-insensitive input onto the stored spelling.
func canonicalPrayer(s string) (models.PrayerName, bool) {
	for _, name := range models.PrayerNames {
		if strings.EqualFold(s, string(name)) {
			return name, true
		}
	}
	return "", false
}

func canonicalStatus(s string) (models.PrayerStatus, bool) {
	if s == "" || strings.EqualFold(s, "none") {
		return models.StatusNone, true
	}
	for _, status := range models.StatusOptions {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	prayer, ok := canonicalPrayer(c.Prayer)
	if !ok {
		return fmt.Errorf("unknown prayer %q, expected one of: %s", c.Prayer, joinPrayers())
	}
	status, ok := canonicalStatus(c.Status)
	if !ok {
		return fmt.Errorf("unknown status %q, expected one of: Prayed, Jamah, Qada, Missed, Excused, none", c.Status)
	}

	record, err := ctx.Store.UpsertRecord(date, prayer, status, c.Notes)
	if err != nil {
		return err
	}

	shown := string(record.Status)
	if record.Status == models.StatusNone {
		shown = "unset"
	}
	fmt.Printf("✓ %s on %s (%s AH): %s\n", record.PrayerName, record.GregorianDate, record.HijriDate, shown)
	return nil
}

func joinPrayers() string {
	parts := make([]string, len(models.PrayerNames))
	for i, name := range models.PrayerNames {
		parts[i] = string(name)
	}
	return strings.Join(parts, ", ")
}
