package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

func TestBuildMonthGrid_Gregorian(t *testing.T) {
	old := calendar.Now
	calendar.Now = func() time.Time { return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { calendar.Now = old })

	records := allFive("2026-02-03", models.StatusPrayed)
	grid, err := BuildMonthGrid(records, 2026, 2, calendar.SystemGregorian)
	if err != nil {
		t.Fatalf("BuildMonthGrid failed: %v", err)
	}

	if grid.Title != "February 2026" {
		t.Errorf("Title = %q", grid.Title)
	}
	if grid.Offset != 0 { // 2026-02-01 is a Sunday
		t.Errorf("Offset = %d, want 0", grid.Offset)
	}
	if len(grid.Cells) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(grid.Cells))
	}

	if got := grid.Cells[2]; got.Level != LevelExcellent || got.Day != 3 {
		t.Errorf("cell 3 = %+v, want excellent day 3", got)
	}
	if got := grid.Cells[0]; got.Level != LevelEmpty {
		t.Errorf("cell 1 level = %s, want empty", got.Level)
	}
	if !grid.Cells[9].Today {
		t.Error("expected 2026-02-10 to be marked today")
	}
	if !grid.Cells[10].Future || grid.Cells[9].Future {
		t.Error("future flags wrong around today")
	}
}

func TestBuildMonthGrid_Hijri(t *testing.T) {
	grid, err := BuildMonthGrid(nil, 1420, 1, calendar.SystemHijri)
	if err != nil {
		t.Fatalf("BuildMonthGrid failed: %v", err)
	}
	if grid.Title != "Muharram 1420" {
		t.Errorf("Title = %q", grid.Title)
	}
	if len(grid.Cells) != 30 {
		t.Fatalf("expected 30 cells for Muharram, got %d", len(grid.Cells))
	}
	// 1 Muharram 1420 = 1999-04-17.
	first := grid.Cells[0]
	if first.Date != "1999-04-17" || first.Day != 1 || first.AltDay != 17 {
		t.Errorf("first cell = %+v", first)
	}
	wd, err := calendar.Weekday("1999-04-17")
	if err != nil {
		t.Fatal(err)
	}
	if grid.Offset != int(wd) {
		t.Errorf("Offset = %d, want %d", grid.Offset, int(wd))
	}
}

func TestYearHeatmap_FiltersYear(t *testing.T) {
	var records []models.PrayerRecord
	records = append(records, allFive("2025-12-31", models.StatusJamah)...)
	records = append(records, allFive("2026-01-01", models.StatusJamah)...)
	records = append(records, allFive("2026-01-02", models.StatusExcused)...)

	levels := YearHeatmap(records, 2026)
	if len(levels) != 1 {
		t.Fatalf("expected 1 heatmap entry, got %d", len(levels))
	}
	if levels["2026-01-01"] != 4 {
		t.Errorf("level for 2026-01-01 = %d, want 4", levels["2026-01-01"])
	}
}
