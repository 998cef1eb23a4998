package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salahtrack/internal/models"
	"github.com/julianstephens/salahtrack/internal/stats"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	todayCellStyle = lipgloss.NewStyle().Reverse(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	statusStyles = map[models.PrayerStatus]lipgloss.Style{
		models.StatusPrayed:  lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
		models.StatusJamah:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		models.StatusQada:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StatusMissed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.StatusExcused: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}

	levelStyles = map[stats.DayLevel]lipgloss.Style{
		stats.LevelEmpty:     mutedStyle,
		stats.LevelPoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		stats.LevelPartial:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		stats.LevelGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
		stats.LevelExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	}
)
