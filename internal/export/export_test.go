package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/julianstephens/salahtrack/internal/models"
)

func TestCSVRoundTrip(t *testing.T) {
	records := []models.PrayerRecord{
		{
			ID:            "id-1",
			GregorianDate: "2026-01-10",
			HijriDate:     "1447-07-21",
			PrayerName:    models.PrayerFajr,
			Status:        models.StatusJamah,
			Notes:         `with "quotes", commas,` + "\nand a newline",
		},
		{
			ID:            "id-2",
			GregorianDate: "2026-01-10",
			PrayerName:    models.PrayerDhuhr,
			Status:        models.StatusNone, // unlogged exports as empty string
		},
		{
			ID:            "id-3",
			GregorianDate: "2026-01-11",
			HijriDate:     "1447-07-22",
			PrayerName:    models.PrayerIsha,
			Status:        models.StatusQada,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "Date (Gregorian),Date (Hijri),Prayer,Status,Notes") {
		t.Errorf("missing header: %q", buf.String()[:50])
	}

	result, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if result.Skipped != 0 {
		t.Fatalf("skipped %d rows: %v", result.Skipped, result.Warnings)
	}
	if len(result.Records) != len(records) {
		t.Fatalf("got %d records, want %d", len(result.Records), len(records))
	}

	for i, got := range result.Records {
		want := records[i]
		if got.GregorianDate != want.GregorianDate ||
			got.PrayerName != want.PrayerName ||
			got.Status != want.Status ||
			got.Notes != want.Notes {
			t.Errorf("record %d = %+v, want fields of %+v", i, got, want)
		}
		if got.ID == want.ID || got.ID == "" {
			t.Errorf("record %d: import must assign a fresh id, got %q", i, got.ID)
		}
	}

	// The blank Hijri field is rederived from the Gregorian date.
	if result.Records[1].HijriDate == "" {
		t.Error("expected derived hijri date for record with blank field")
	}
	if result.Records[1].HijriDate != result.Records[0].HijriDate {
		t.Errorf("derived hijri %q disagrees with sibling record %q",
			result.Records[1].HijriDate, result.Records[0].HijriDate)
	}
}

func TestReadCSV_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"Date (Gregorian),Date (Hijri),Prayer,Status,Notes",
		"2026-01-10,,Fajr,Prayed,ok",
		"2026-01-10,,Zuhr,Prayed,bad prayer name",
		"2026-01-10,,Dhuhr,Late,bad status",
		"10/01/2026,,Asr,Prayed,bad date shape",
		"2026-01-10,,Maghrib",
		"2026-02-30,,Isha,Prayed,unconvertible day",
		"2026-01-10,,Isha,,status may be empty",
	}, "\n")

	result, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("accepted %d records, want 2 (warnings: %v)", len(result.Records), result.Warnings)
	}
	if result.Skipped != 5 {
		t.Errorf("skipped = %d, want 5", result.Skipped)
	}
	if result.Records[0].PrayerName != models.PrayerFajr {
		t.Errorf("first accepted record = %+v", result.Records[0])
	}
	if result.Records[1].Status != models.StatusNone {
		t.Errorf("empty status should map to unset, got %q", result.Records[1].Status)
	}
}

func TestReadCSV_TruncatesLongNotes(t *testing.T) {
	long := strings.Repeat("n", 300)
	input := "Date (Gregorian),Date (Hijri),Prayer,Status,Notes\n" +
		"2026-01-10,,Fajr,Prayed," + long + "\n"

	result, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("accepted %d records, want 1", len(result.Records))
	}
	if len(result.Records[0].Notes) != models.MaxNoteLen {
		t.Errorf("notes length = %d, want %d", len(result.Records[0].Notes), models.MaxNoteLen)
	}
}

func TestReadCSV_EmptyFile(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ReadCSV(strings.NewReader("Date (Gregorian),Date (Hijri),Prayer,Status,Notes\n")); err == nil {
		t.Error("expected error for header-only input")
	}
}
