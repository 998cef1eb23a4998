// Package storage maps the PrayerRecord model onto keyed persistent
// storage. Two providers exist: a flat JSON file mirroring the original
// key/value layout, and SQLite. Record keys and preference keys live in
// disjoint namespaces so they can never collide.
package storage

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/models"
)

// RecordKeyPrefix partitions record keys from bare preference keys.
const RecordKeyPrefix = "prayer_"

// RecordKey derives the storage key for a (date, prayer) pair.
func RecordKey(date string, prayer models.PrayerName) string {
	return fmt.Sprintf("%s%s_%s", RecordKeyPrefix, date, prayer)
}

// buildRecord assembles a validated record for a write. The Hijri date is
// always recomputed from the Gregorian date; it is never trusted from the
// caller. existingID is kept when the (date, prayer) pair already has a
// record.
func buildRecord(existingID, date string, prayer models.PrayerName, status models.PrayerStatus, notes string) (models.PrayerRecord, error) {
	if !models.ValidPrayerName(prayer) {
		return models.PrayerRecord{}, fmt.Errorf("unknown prayer name: %q", prayer)
	}
	if !models.ValidStatus(status) {
		return models.PrayerRecord{}, fmt.Errorf("unknown status: %q", status)
	}
	hijri, err := calendar.GregorianToHijri(date)
	if err != nil {
		return models.PrayerRecord{}, err
	}

	id := existingID
	if id == "" {
		id = uuid.NewString()
	}
	return models.PrayerRecord{
		ID:            id,
		GregorianDate: date,
		HijriDate:     hijri,
		PrayerName:    prayer,
		Status:        status,
		Notes:         models.TruncateNote(notes),
	}, nil
}

// sortRecords orders by date ascending, then canonical prayer order.
func sortRecords(records []models.PrayerRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].GregorianDate != records[j].GregorianDate {
			return records[i].GregorianDate < records[j].GregorianDate
		}
		return models.PrayerOrder(records[i].PrayerName) < models.PrayerOrder(records[j].PrayerName)
	})
}
