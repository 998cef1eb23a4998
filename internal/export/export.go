// Package export converts between prayer records and the flat CSV backup
// format. Import is strict: malformed rows are skipped and counted, never
// fatal, so a bad file cannot corrupt the store.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"

	"github.com/google/uuid"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

// Header is the fixed CSV header row.
var Header = []string{"Date (Gregorian)", "Date (Hijri)", "Prayer", "Status", "Notes"}

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// WriteCSV emits one row per record, header first. Quoting follows
// RFC 4180 (fields with separators, quotes or newlines are quoted with
// internal quotes doubled).
func WriteCSV(w io.Writer, records []models.PrayerRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.GregorianDate,
			r.HijriDate,
			string(r.PrayerName),
			string(r.Status),
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Result reports what an import run accepted and what it dropped.
type Result struct {
	Records  []models.PrayerRecord
	Skipped  int
	Warnings []string
}

func (r *Result) skip(line int, format string, args ...any) {
	r.Skipped++
	r.Warnings = append(r.Warnings, fmt.Sprintf("row %d: %s", line, fmt.Sprintf(format, args...)))
}

// ReadCSV parses exported rows back into records. Every accepted row gets
// a fresh id (import never matches existing ids) and, when the Hijri field
// is blank, a freshly derived Hijri date. Rows failing validation are
// skipped with a warning.
func ReadCSV(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("file is empty or has no data rows")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	result := &Result{}
	line := 1
	for {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.skip(line, "unparseable: %v", err)
			continue
		}

		if len(row) < 4 {
			result.skip(line, "insufficient columns")
			continue
		}

		gregorian := row[0]
		hijri := row[1]
		prayer := models.PrayerName(row[2])
		status := models.PrayerStatus(row[3])
		notes := ""
		if len(row) > 4 {
			notes = row[4]
		}

		if !dateShape.MatchString(gregorian) {
			result.skip(line, "invalid date format %q", gregorian)
			continue
		}
		if !models.ValidPrayerName(prayer) {
			result.skip(line, "invalid prayer name %q", prayer)
			continue
		}
		if !models.ValidStatus(status) {
			result.skip(line, "invalid status %q", status)
			continue
		}

		if hijri == "" {
			derived, err := calendar.GregorianToHijri(gregorian)
			if err != nil {
				result.skip(line, "unconvertible date %q", gregorian)
				continue
			}
			hijri = derived
		}

		result.Records = append(result.Records, models.PrayerRecord{
			ID:            uuid.NewString(),
			GregorianDate: gregorian,
			HijriDate:     hijri,
			PrayerName:    prayer,
			Status:        status,
			Notes:         models.TruncateNote(notes),
		})
	}
	if len(result.Records) == 0 && result.Skipped == 0 {
		return nil, fmt.Errorf("file is empty or has no data rows")
	}
	return result, nil
}
