package cli

import (
	"fmt"

	"github.com/julianstephens/salahtrack/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return err
	}
	summary := stats.Summarize(records)

	fmt.Println("Prayer statistics")
	fmt.Println()
	fmt.Printf("  Current streak:    %s\n", formatDays(summary.CurrentStreak))
	fmt.Printf("  Best streak:       %s\n", formatDays(summary.BestStreak))
	fmt.Printf("  Consistency:       %d%%\n", summary.Consistency)
	fmt.Printf("  Days tracked:      %d\n", summary.DaysTracked)
	fmt.Printf("  Prayers completed: %d\n", summary.PrayersCompleted)
	if summary.QadaCount > 0 {
		fmt.Printf("  Made up (Qada):    %d\n", summary.QadaCount)
	}
	return nil
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
