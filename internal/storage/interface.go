package storage

import "github.com/julianstephens/salahtrack/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	UpsertRecord(date string, prayer models.PrayerName, status models.PrayerStatus, notes string) (models.PrayerRecord, error)
	GetRecord(date string, prayer models.PrayerName) (models.PrayerRecord, bool, error)
	GetRecordsForDate(date string) ([]models.PrayerRecord, error)
	GetAllRecords() ([]models.PrayerRecord, error)
	GetRecordsInRange(start, end string) ([]models.PrayerRecord, error)
	DeleteRecord(date string, prayer models.PrayerName) error
	ClearAll() error
	GetRecordedDates() ([]string, error)
	ImportRecords(records []models.PrayerRecord) (int, error)

	// Preferences (stored outside the record namespace)
	GetPreferences() (models.Preferences, error)
	SavePreferences(models.Preferences) error

	// Utils
	GetConfigPath() string
}
