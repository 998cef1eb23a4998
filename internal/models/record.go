package models

type PrayerName string

const (
	PrayerFajr    PrayerName = "Fajr"
	PrayerDhuhr   PrayerName = "Dhuhr"
	PrayerAsr     PrayerName = "Asr"
	PrayerMaghrib PrayerName = "Maghrib"
	PrayerIsha    PrayerName = "Isha"
)

// PrayerNames is the canonical prayer order used for sorting and display.
var PrayerNames = []PrayerName{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

type PrayerStatus string

const (
	// StatusNone means the prayer has not been logged.
	StatusNone    PrayerStatus = ""
	StatusPrayed  PrayerStatus = "Prayed"
	StatusJamah   PrayerStatus = "Jamah"
	StatusMissed  PrayerStatus = "Missed"
	StatusExcused PrayerStatus = "Excused"
	StatusQada    PrayerStatus = "Qada"
)

// StatusOptions is the order statuses are offered in interactive surfaces.
var StatusOptions = []PrayerStatus{StatusJamah, StatusPrayed, StatusQada, StatusMissed, StatusExcused}

// MaxNoteLen caps record notes; longer notes are truncated, never rejected.
const MaxNoteLen = 255

func ValidPrayerName(name PrayerName) bool {
	switch name {
	case PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha:
		return true
	}
	return false
}

func ValidStatus(status PrayerStatus) bool {
	switch status {
	case StatusNone, StatusPrayed, StatusJamah, StatusMissed, StatusExcused, StatusQada:
		return true
	}
	return false
}

// PrayerOrder returns the canonical position of a prayer (0-4), or 5 for
// unknown names so they sort last.
func PrayerOrder(name PrayerName) int {
	for i, p := range PrayerNames {
		if p == name {
			return i
		}
	}
	return len(PrayerNames)
}

// PrayerRecord is one logged (date, prayer) entry. HijriDate is always
// derived from GregorianDate and never user-editable.
type PrayerRecord struct {
	ID            string       `json:"id"`
	GregorianDate string       `json:"gregorian_date"` // YYYY-MM-DD
	HijriDate     string       `json:"hijri_date"`     // YYYY-MM-DD (Hijri)
	PrayerName    PrayerName   `json:"prayer_name"`
	Status        PrayerStatus `json:"status"`
	Notes         string       `json:"notes,omitempty"`
}

// TruncateNote enforces MaxNoteLen on a note value.
func TruncateNote(note string) string {
	if len(note) > MaxNoteLen {
		return note[:MaxNoteLen]
	}
	return note
}
