package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/julianstephens/salahtrack/internal/reminder"
)

type RemindCmd struct {
	Start  RemindStartCmd  `cmd:"" default:"1" help:"Run the reminder in the foreground."`
	Set    RemindSetCmd    `cmd:"" help:"Update reminder settings."`
	Status RemindStatusCmd `cmd:"" help:"Show reminder settings and runner state."`
}

// LockfileName sits next to the store and holds the runner's pid.
const LockfileName = "reminder.lock"

func lockfilePath(storePath string) string {
	return filepath.Join(filepath.Dir(storePath), LockfileName)
}

// RunnerPID reads the pid of a reminder runner, if one was recorded.
func RunnerPID(storePath string) (int, bool) {
	data, err := os.ReadFile(lockfilePath(storePath))
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

type RemindStartCmd struct{}

func (c *RemindStartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}
	if !prefs.ReminderEnabled {
		return fmt.Errorf("reminder is disabled, enable it with 'salahtrack remind set --enable'")
	}

	lock := lockfilePath(ctx.Store.GetConfigPath())
	if err := os.WriteFile(lock, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}
	defer os.Remove(lock)

	sched := reminder.New(func() {
		fmt.Printf("\a🕌 Time to log today's prayers (salahtrack log ...)\n")
	})
	settings := reminder.Settings{Enabled: true, Time: prefs.ReminderTime}
	if err := sched.Reschedule(settings); err != nil {
		return err
	}
	defer sched.Stop()

	delay, _ := sched.NextDelay(settings)
	fmt.Printf("✓ Reminder running, next nudge at %s (in %s). Ctrl-C to stop.\n",
		prefs.ReminderTime, delay.Round(time.Second))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nReminder stopped.")
	return nil
}

type RemindSetCmd struct {
	Enable  bool   `help:"Enable the daily reminder." xor:"toggle"`
	Disable bool   `help:"Disable the daily reminder." xor:"toggle"`
	Time    string `help:"Reminder time (HH:MM, 24h)."`
}

func (c *RemindSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}
	if c.Enable {
		prefs.ReminderEnabled = true
	}
	if c.Disable {
		prefs.ReminderEnabled = false
	}
	if c.Time != "" {
		if _, err := reminder.New(nil).NextDelay(reminder.Settings{Enabled: true, Time: c.Time}); err != nil {
			return err
		}
		prefs.ReminderTime = c.Time
	}

	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return err
	}
	state := "disabled"
	if prefs.ReminderEnabled {
		state = "enabled"
	}
	fmt.Printf("✓ Reminder %s at %s\n", state, prefs.ReminderTime)
	return nil
}

type RemindStatusCmd struct{}

func (c *RemindStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}
	state := "disabled"
	if prefs.ReminderEnabled {
		state = "enabled"
	}
	fmt.Printf("Reminder %s at %s\n", state, prefs.ReminderTime)

	if pid, ok := RunnerPID(ctx.Store.GetConfigPath()); ok {
		fmt.Printf("Runner lockfile present (pid %d)\n", pid)
	} else {
		fmt.Println("No runner lockfile found.")
	}
	return nil
}
