// Package stats derives display statistics from prayer records: per-day
// classification, heatmap levels, streaks, consistency, and calendar-grid
// data. Everything is pure and recomputable on demand.
package stats

import (
	"math"
	"time"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

// DayStats holds one day's status counts.
type DayStats struct {
	Date    string
	Prayed  int
	Jamah   int
	Missed  int
	Excused int
	Qada    int
	Logged  int // records with a non-empty status
}

// Relevant is the ratio denominator: logged prayers that are not Excused.
func (d DayStats) Relevant() int {
	return d.Logged - d.Excused
}

// Fulfilled counts prayers performed (Qada counts as fulfilled).
func (d DayStats) Fulfilled() int {
	return d.Prayed + d.Jamah + d.Qada
}

// Aggregate groups records into per-day counts, one pass.
func Aggregate(records []models.PrayerRecord) map[string]DayStats {
	days := make(map[string]DayStats)
	for _, r := range records {
		d := days[r.GregorianDate]
		d.Date = r.GregorianDate
		switch r.Status {
		case models.StatusPrayed:
			d.Prayed++
		case models.StatusJamah:
			d.Jamah++
		case models.StatusMissed:
			d.Missed++
		case models.StatusExcused:
			d.Excused++
		case models.StatusQada:
			d.Qada++
		case models.StatusNone:
			// Unlogged: excluded from every ratio.
		}
		if r.Status != models.StatusNone {
			d.Logged++
		}
		days[r.GregorianDate] = d
	}
	return days
}

// DayLevel is the ordinal classification behind monthly-grid coloring.
type DayLevel int

const (
	LevelEmpty DayLevel = iota
	LevelPoor
	LevelPartial
	LevelGood
	LevelExcellent
)

func (l DayLevel) String() string {
	switch l {
	case LevelPoor:
		return "poor"
	case LevelPartial:
		return "partial"
	case LevelGood:
		return "good"
	case LevelExcellent:
		return "excellent"
	default:
		return "empty"
	}
}

// Classify buckets a day by fulfilled/relevant ratio. A day with no
// relevant prayers (unlogged or all Excused) is empty.
func Classify(d DayStats) DayLevel {
	relevant := d.Relevant()
	if relevant == 0 {
		return LevelEmpty
	}
	ratio := float64(d.Fulfilled()) / float64(relevant)
	switch {
	case ratio >= 0.9:
		return LevelExcellent
	case ratio >= 0.7:
		return LevelGood
	case ratio >= 0.4:
		return LevelPartial
	default:
		return LevelPoor
	}
}

// HeatmapLevel buckets a day for the yearly overview (0 = no data, 1-4
// increasing). Unlike Classify, Qada does not count toward the numerator
// here; level 4 additionally requires at least half the fulfilled prayers
// in congregation.
func HeatmapLevel(d DayStats) int {
	total := d.Relevant()
	if total == 0 {
		return 0
	}
	prayedRatio := float64(d.Prayed+d.Jamah) / float64(total)
	jamahRatio := float64(d.Jamah) / float64(total)
	switch {
	case d.Missed > 0 && d.Missed == total:
		return 1
	case prayedRatio >= 0.8:
		if jamahRatio >= 0.5 {
			return 4
		}
		return 3
	case prayedRatio >= 0.5:
		return 2
	default:
		return 1
	}
}

// goodDay: at least one relevant prayer and nothing missed.
func goodDay(d DayStats) bool {
	return d.Relevant() > 0 && d.Missed == 0
}

// Streaks scans calendar days in descending order from the most recent
// recorded day. A day with no record at all breaks a run; an Excused-only
// day is neutral (visited, neither extends nor breaks). Current is the run
// ending at the most recent recorded day.
func Streaks(records []models.PrayerRecord) (current, best int) {
	days := Aggregate(records)
	if len(days) == 0 {
		return 0, 0
	}

	var earliest, latest time.Time
	for date := range days {
		t, err := calendar.ParseDate(date)
		if err != nil {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
		if latest.IsZero() || t.After(latest) {
			latest = t
		}
	}
	if earliest.IsZero() {
		return 0, 0
	}

	run := 0
	currentSet := false
	closeRun := func() {
		if !currentSet {
			current = run
			currentSet = true
		}
		if run > best {
			best = run
		}
		run = 0
	}

	for t := latest; !t.Before(earliest); t = t.AddDate(0, 0, -1) {
		d, ok := days[t.Format(calendar.DateLayout)]
		switch {
		case !ok:
			closeRun()
		case d.Relevant() == 0:
			// Neutral day.
		case goodDay(d):
			run++
		default:
			closeRun()
		}
	}
	closeRun()
	return current, best
}

// Consistency is round(100 * fulfilled / relevant) over a record set,
// 0 when nothing is relevant.
func Consistency(records []models.PrayerRecord) int {
	fulfilled, relevant := 0, 0
	for _, r := range records {
		switch r.Status {
		case models.StatusPrayed, models.StatusJamah, models.StatusQada:
			fulfilled++
			relevant++
		case models.StatusMissed:
			relevant++
		case models.StatusExcused, models.StatusNone:
		}
	}
	if relevant == 0 {
		return 0
	}
	return int(math.Round(100 * float64(fulfilled) / float64(relevant)))
}

// Summary is the headline statistics block.
type Summary struct {
	CurrentStreak    int
	BestStreak       int
	Consistency      int
	DaysTracked      int
	PrayersCompleted int
	QadaCount        int
}

func Summarize(records []models.PrayerRecord) Summary {
	current, best := Streaks(records)
	s := Summary{
		CurrentStreak: current,
		BestStreak:    best,
		Consistency:   Consistency(records),
		DaysTracked:   len(Aggregate(records)),
	}
	for _, r := range records {
		switch r.Status {
		case models.StatusPrayed, models.StatusJamah:
			s.PrayersCompleted++
		case models.StatusQada:
			s.PrayersCompleted++
			s.QadaCount++
		}
	}
	return s
}
