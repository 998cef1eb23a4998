package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateCalendar:
		content = m.viewCalendar()
	case StateStats:
		content = m.viewStats()
	}

	if m.err != nil {
		content += "\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Calendar", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder

	gregorian, err := calendar.FormatGregorian(m.date)
	if err != nil {
		gregorian = m.date
	}
	b.WriteString(headerStyle.Render(gregorian) + "\n")
	// FormatHijri takes the Gregorian date and converts itself.
	if display, err := calendar.FormatHijri(m.date); err == nil {
		b.WriteString(mutedStyle.Render(display+" AH") + "\n")
	}
	b.WriteString("\n")

	for i, prayer := range models.PrayerNames {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		status := m.statusOf(prayer)
		shown := mutedStyle.Render("—")
		if status != models.StatusNone {
			shown = statusStyles[status].Render(string(status))
		}
		b.WriteString(fmt.Sprintf("%s%-8s %s\n", cursor, prayer, shown))
		if r, ok := m.records[prayer]; ok && r.Notes != "" {
			b.WriteString(mutedStyle.Render("           "+r.Notes) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.grid.Title) + "\n")
	b.WriteString(mutedStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	col := 0
	for i := 0; i < m.grid.Offset; i++ {
		b.WriteString("    ")
		col++
	}
	for _, cell := range m.grid.Cells {
		label := fmt.Sprintf("%3d", cell.Day)
		switch {
		case cell.Today:
			label = todayCellStyle.Render(label)
		case cell.Future:
			label = mutedStyle.Render(label)
		default:
			label = levelStyles[cell.Level].Render(label)
		}
		b.WriteString(label + " ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Prayer statistics") + "\n\n")
	fmt.Fprintf(&b, "Current streak:    %d\n", m.summary.CurrentStreak)
	fmt.Fprintf(&b, "Best streak:       %d\n", m.summary.BestStreak)
	fmt.Fprintf(&b, "Consistency:       %d%%\n", m.summary.Consistency)
	fmt.Fprintf(&b, "Days tracked:      %d\n", m.summary.DaysTracked)
	fmt.Fprintf(&b, "Prayers completed: %d\n", m.summary.PrayersCompleted)
	if m.summary.QadaCount > 0 {
		fmt.Fprintf(&b, "Made up (Qada):    %d\n", m.summary.QadaCount)
	}
	return b.String()
}
