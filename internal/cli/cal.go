package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/stats"
)

type CalCmd struct {
	Hijri bool `help:"Show the Hijri month instead of the Gregorian one."`
	Year  int  `help:"Year to show (defaults to the current one)."`
	Month int  `help:"Month to show, 1-12 (defaults to the current one)."`
}

var levelStyles = map[stats.DayLevel]lipgloss.Style{
	stats.LevelEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	stats.LevelPoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	stats.LevelPartial:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	stats.LevelGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
	stats.LevelExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
}

var todayStyle = lipgloss.NewStyle().Reverse(true)

func (c *CalCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	system := calendar.SystemGregorian
	if c.Hijri {
		system = calendar.SystemHijri
	}
	year, month := c.Year, c.Month
	if year == 0 {
		year = calendar.CurrentYear(system)
	}
	if month == 0 {
		month = calendar.CurrentMonth(system)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}

	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return err
	}
	grid, err := stats.BuildMonthGrid(records, year, month, system)
	if err != nil {
		return err
	}

	fmt.Println(RenderMonthGrid(grid))
	return nil
}

// RenderMonthGrid lays a month out in Sunday-first weeks, coloring each
// day by its classification.
func RenderMonthGrid(grid stats.MonthGrid) string {
	var b strings.Builder
	b.WriteString(grid.Title + "\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := 0
	for i := 0; i < grid.Offset; i++ {
		b.WriteString("    ")
		col++
	}
	for _, cell := range grid.Cells {
		label := fmt.Sprintf("%3d", cell.Day)
		switch {
		case cell.Today:
			label = todayStyle.Render(label)
		case cell.Future:
			label = levelStyles[stats.LevelEmpty].Render(label)
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
