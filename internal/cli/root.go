package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// resolveDate accepts "today", "yesterday" or YYYY-MM-DD.
func resolveDate(arg string) (string, error) {
	switch strings.ToLower(arg) {
	case "", "today":
		return calendar.Today(), nil
	case "yesterday":
		return calendar.AddDays(calendar.Today(), -1)
	}
	if _, err := calendar.ParseDate(arg); err != nil {
		return "", fmt.Errorf("invalid date, use YYYY-MM-DD, 'today' or 'yesterday': %w", err)
	}
	return arg, nil
}

// confirm prompts on stdin and accepts y/yes.
func confirm(prompt string) (bool, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
