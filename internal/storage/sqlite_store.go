package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/salahtrack/internal/models"
)

// schema is idempotent so opening an existing database is safe.
const schema = `
CREATE TABLE IF NOT EXISTS records (
	key            TEXT PRIMARY KEY,
	id             TEXT NOT NULL,
	gregorian_date TEXT NOT NULL,
	hijri_date     TEXT NOT NULL,
	prayer_name    TEXT NOT NULL,
	status         TEXT NOT NULL,
	notes          TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_records_date ON records(gregorian_date);
CREATE TABLE IF NOT EXISTS prefs (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.GetPreferences(); err != nil {
		if err := s.SavePreferences(models.DefaultPreferences()); err != nil {
			return fmt.Errorf("failed to save default preferences: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'salahtrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema is idempotent; applying it on load covers databases created
	// by older versions.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const recordColumns = "id, gregorian_date, hijri_date, prayer_name, status, notes"

func scanRecord(row interface{ Scan(...any) error }) (models.PrayerRecord, error) {
	var r models.PrayerRecord
	var prayer, status string
	err := row.Scan(&r.ID, &r.GregorianDate, &r.HijriDate, &prayer, &status, &r.Notes)
	if err != nil {
		return models.PrayerRecord{}, err
	}
	r.PrayerName = models.PrayerName(prayer)
	r.Status = models.PrayerStatus(status)
	return r, nil
}

func (s *SQLiteStore) writeRecord(record models.PrayerRecord) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO records (key, `+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		RecordKey(record.GregorianDate, record.PrayerName),
		record.ID, record.GregorianDate, record.HijriDate,
		string(record.PrayerName), string(record.Status), record.Notes,
	)
	return err
}

func (s *SQLiteStore) UpsertRecord(date string, prayer models.PrayerName, status models.PrayerStatus, notes string) (models.PrayerRecord, error) {
	existingID := ""
	err := s.db.QueryRow("SELECT id FROM records WHERE key = ?", RecordKey(date, prayer)).Scan(&existingID)
	if err != nil && err != sql.ErrNoRows {
		return models.PrayerRecord{}, err
	}

	record, err := buildRecord(existingID, date, prayer, status, notes)
	if err != nil {
		return models.PrayerRecord{}, err
	}
	if err := s.writeRecord(record); err != nil {
		return models.PrayerRecord{}, err
	}
	return record, nil
}

func (s *SQLiteStore) GetRecord(date string, prayer models.PrayerName) (models.PrayerRecord, bool, error) {
	row := s.db.QueryRow("SELECT "+recordColumns+" FROM records WHERE key = ?", RecordKey(date, prayer))
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return models.PrayerRecord{}, false, nil
	}
	if err != nil {
		return models.PrayerRecord{}, false, err
	}
	return record, true, nil
}

func (s *SQLiteStore) queryRecords(query string, args ...any) ([]models.PrayerRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PrayerRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortRecords(records)
	return records, nil
}

func (s *SQLiteStore) GetRecordsForDate(date string) ([]models.PrayerRecord, error) {
	return s.queryRecords("SELECT "+recordColumns+" FROM records WHERE gregorian_date = ?", date)
}

func (s *SQLiteStore) GetAllRecords() ([]models.PrayerRecord, error) {
	return s.queryRecords("SELECT " + recordColumns + " FROM records")
}

func (s *SQLiteStore) GetRecordsInRange(start, end string) ([]models.PrayerRecord, error) {
	return s.queryRecords(
		"SELECT "+recordColumns+" FROM records WHERE gregorian_date >= ? AND gregorian_date <= ?",
		start, end)
}

func (s *SQLiteStore) DeleteRecord(date string, prayer models.PrayerName) error {
	_, err := s.db.Exec("DELETE FROM records WHERE key = ?", RecordKey(date, prayer))
	return err
}

func (s *SQLiteStore) ClearAll() error {
	_, err := s.db.Exec("DELETE FROM records")
	return err
}

func (s *SQLiteStore) GetRecordedDates() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT gregorian_date FROM records ORDER BY gregorian_date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// ImportRecords bulk-writes inside one transaction; a failed row is skipped
// rather than aborting the import.
func (s *SQLiteStore) ImportRecords(records []models.PrayerRecord) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO records (key, ` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	imported := 0
	for _, r := range records {
		record, err := buildRecord(r.ID, r.GregorianDate, r.PrayerName, r.Status, r.Notes)
		if err != nil {
			continue
		}
		if _, err := stmt.Exec(
			RecordKey(record.GregorianDate, record.PrayerName),
			record.ID, record.GregorianDate, record.HijriDate,
			string(record.PrayerName), string(record.Status), record.Notes,
		); err != nil {
			return 0, err
		}
		imported++
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return imported, nil
}

func (s *SQLiteStore) GetPreferences() (models.Preferences, error) {
	rows, err := s.db.Query("SELECT key, value FROM prefs")
	if err != nil {
		return models.Preferences{}, err
	}
	defer rows.Close()

	prefs := models.DefaultPreferences()
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Preferences{}, err
		}
		switch key {
		case "user_gender":
			prefs.Gender = models.Gender(value)
		case "onboarded":
			prefs.Onboarded = value == "true"
		case "reminder_enabled":
			prefs.ReminderEnabled = value == "true"
		case "reminder_time":
			prefs.ReminderTime = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Preferences{}, err
	}
	if count == 0 {
		return models.Preferences{}, fmt.Errorf("preferences not found")
	}
	return prefs, nil
}

func (s *SQLiteStore) SavePreferences(prefs models.Preferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := [][2]string{
		{"user_gender", string(prefs.Gender)},
		{"onboarded", strconv.FormatBool(prefs.Onboarded)},
		{"reminder_enabled", strconv.FormatBool(prefs.ReminderEnabled)},
		{"reminder_time", prefs.ReminderTime},
	}
	for _, pair := range pairs {
		if _, err := stmt.Exec(pair[0], pair[1]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the handle for doctor checks.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
