package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/stats"
)

type YearCmd struct {
	Year int `arg:"" optional:"" help:"Year to show (defaults to the current one)."`
}

var heatStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("112")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
}

func (c *YearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		year = calendar.CurrentYear(calendar.SystemGregorian)
	}

	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return err
	}
	heatmap := stats.YearHeatmap(records, year)

	fmt.Printf("%d\n\n", year)
	for month := 1; month <= 12; month++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%3s ", calendar.MonthYearDisplay(year, month, calendar.SystemGregorian)[:3])
		for _, date := range calendar.DatesInGregorianMonth(year, month) {
			level := heatmap[date]
			b.WriteString(heatStyles[level].Render("■"))
		}
		fmt.Println(b.String())
	}
	labels := [5]string{"none", "missed", "some", "most", "congregation"}
	var legend strings.Builder
	legend.WriteString("   ")
	for level, label := range labels {
		legend.WriteString(" " + heatStyles[level].Render("■") + " " + label)
	}
	fmt.Println()
	fmt.Println(legend.String())
	return nil
}
