package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
	"github.com/julianstephens/salahtrack/internal/reminder"
)

type OnboardCmd struct{}

func (c *OnboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		prefs = models.DefaultPreferences()
	}
	if prefs.Onboarded {
		fmt.Println("Already onboarded. Rerunning updates your preferences.")
	}

	gender := string(prefs.Gender)
	reminderEnabled := prefs.ReminderEnabled
	reminderTime := prefs.ReminderTime
	seedSample := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should prayers be counted for you?").
				Description("This only affects wording, every prayer is tracked the same way.").
				Options(
					huh.NewOption("Male", string(models.GenderMale)),
					huh.NewOption("Female", string(models.GenderFemale)),
					huh.NewOption("Prefer not to say", ""),
				).
				Value(&gender),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable a daily logging reminder?").
				Value(&reminderEnabled),
			huh.NewInput().
				Title("Reminder time (HH:MM, 24h)").
				Value(&reminderTime).
				Validate(func(s string) error {
					_, err := reminder.New(nil).NextDelay(reminder.Settings{Enabled: true, Time: s})
					return err
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Seed two weeks of sample records?").
				Description("Handy for exploring the calendar and stats views. You can clear them later.").
				Value(&seedSample),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	prefs.Gender = models.Gender(gender)
	prefs.ReminderEnabled = reminderEnabled
	prefs.ReminderTime = reminderTime
	prefs.Onboarded = true
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return err
	}

	if seedSample {
		count, err := seedSampleData(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Seeded %d sample records\n", count)
	}

	fmt.Println("✓ Onboarding complete. Run 'salahtrack' to open the tracker.")
	if prefs.ReminderEnabled {
		fmt.Printf("Reminder set for %s daily. Run 'salahtrack remind' to keep it active.\n", prefs.ReminderTime)
	}
	return nil
}

// seedSampleData fills the previous two weeks with a plausible mix of
// statuses so the views have something to show.
func seedSampleData(ctx *Context) (int, error) {
	pattern := []models.PrayerStatus{
		models.StatusPrayed,
		models.StatusJamah,
		models.StatusPrayed,
		models.StatusMissed,
		models.StatusPrayed,
		models.StatusExcused,
	}

	count := 0
	for offset := 1; offset <= 14; offset++ {
		date, err := calendar.AddDays(calendar.Today(), -offset)
		if err != nil {
			return count, err
		}
		for i, prayer := range models.PrayerNames {
			if _, found, err := ctx.Store.GetRecord(date, prayer); err != nil {
				return count, err
			} else if found {
				continue
			}
			status := pattern[(offset+i)%len(pattern)]
			if _, err := ctx.Store.UpsertRecord(date, prayer, status, ""); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
