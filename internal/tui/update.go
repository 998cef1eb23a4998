package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		default:
			switch m.state {
			case StateToday:
				return m.updateToday(msg)
			case StateCalendar:
				return m.updateCalendar(msg)
			}
		}
	}

	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(models.PrayerNames)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevDay):
		if date, err := calendar.AddDays(m.date, -1); err == nil {
			m.date = date
			m.refresh()
		}
	case key.Matches(msg, m.keys.NextDay):
		date, err := calendar.AddDays(m.date, 1)
		// Future days cannot be logged, so don't navigate onto them.
		if err == nil && !calendar.IsFuture(date) {
			m.date = date
			m.refresh()
		}
	case key.Matches(msg, m.keys.Cycle):
		m.setStatus(nextStatus(m.statusOf(models.PrayerNames[m.cursor])))
	case key.Matches(msg, m.keys.Clear):
		m.setStatus(models.StatusNone)
	}
	return m, nil
}

func (m *Model) setStatus(status models.PrayerStatus) {
	prayer := models.PrayerNames[m.cursor]
	notes := ""
	if r, ok := m.records[prayer]; ok {
		notes = r.Notes
	}
	if _, err := m.store.UpsertRecord(m.date, prayer, status, notes); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.calMonth--
		if m.calMonth < 1 {
			m.calMonth = 12
			m.calYear--
		}
		m.refresh()
	case key.Matches(msg, m.keys.NextDay):
		m.calMonth++
		if m.calMonth > 12 {
			m.calMonth = 1
			m.calYear++
		}
		m.refresh()
	case key.Matches(msg, m.keys.Toggle):
		if m.system == calendar.SystemGregorian {
			m.system = calendar.SystemHijri
			m.calYear = calendar.CurrentHijriYear()
			m.calMonth = calendar.CurrentHijriMonth()
		} else {
			m.system = calendar.SystemGregorian
			m.calYear = calendar.CurrentYear(calendar.SystemGregorian)
			m.calMonth = calendar.CurrentMonth(calendar.SystemGregorian)
		}
		m.refresh()
	}
	return m, nil
}
