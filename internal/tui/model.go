package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
	"github.com/julianstephens/salahtrack/internal/stats"
	"github.com/julianstephens/salahtrack/internal/storage"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateStats

	tabCount = 3
)

type Model struct {
	store storage.Provider
	state SessionState
	keys  KeyMap
	help  help.Model

	// Today tab.
	date    string
	records map[models.PrayerName]models.PrayerRecord
	cursor  int

	// Calendar tab.
	system   calendar.System
	calYear  int
	calMonth int
	grid     stats.MonthGrid

	// Stats tab.
	summary stats.Summary

	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store:    store,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		date:     calendar.Today(),
		system:   calendar.SystemGregorian,
		calYear:  calendar.CurrentYear(calendar.SystemGregorian),
		calMonth: calendar.CurrentMonth(calendar.SystemGregorian),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads everything shown from the store.
func (m *Model) refresh() {
	m.err = nil

	dayRecords, err := m.store.GetRecordsForDate(m.date)
	if err != nil {
		m.err = err
		return
	}
	m.records = make(map[models.PrayerName]models.PrayerRecord, len(dayRecords))
	for _, r := range dayRecords {
		m.records[r.PrayerName] = r
	}

	all, err := m.store.GetAllRecords()
	if err != nil {
		m.err = err
		return
	}
	m.summary = stats.Summarize(all)

	grid, err := stats.BuildMonthGrid(all, m.calYear, m.calMonth, m.system)
	if err != nil {
		m.err = err
		return
	}
	m.grid = grid
}

// statusOf returns the logged status for a prayer on the shown day.
func (m Model) statusOf(prayer models.PrayerName) models.PrayerStatus {
	if r, ok := m.records[prayer]; ok {
		return r.Status
	}
	return models.StatusNone
}

// nextStatus cycles none through every status back to none.
func nextStatus(current models.PrayerStatus) models.PrayerStatus {
	if current == models.StatusNone {
		return models.StatusOptions[0]
	}
	for i, status := range models.StatusOptions {
		if status == current {
			if i == len(models.StatusOptions)-1 {
				return models.StatusNone
			}
			return models.StatusOptions[i+1]
		}
	}
	return models.StatusNone
}
