package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/julianstephens/salahtrack/internal/models"
)

// jsonFile is the on-disk shape: one flat record keyspace plus the scalar
// preferences, serialized together.
type jsonFile struct {
	Version     int                            `json:"version"`
	Preferences models.Preferences             `json:"preferences"`
	Records     map[string]models.PrayerRecord `json:"records"`
}

// JSONStore keeps everything in a single JSON file. All record queries are
// full-namespace scans filtered by key prefix or record predicate; cost is
// O(total record count) per call.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version:     1,
		Preferences: models.DefaultPreferences(),
		Records:     make(map[string]models.PrayerRecord),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.file != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'salahtrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.file.Records == nil {
		s.file.Records = make(map[string]models.PrayerRecord)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) UpsertRecord(date string, prayer models.PrayerName, status models.PrayerStatus, notes string) (models.PrayerRecord, error) {
	if err := s.loaded(); err != nil {
		return models.PrayerRecord{}, err
	}

	key := RecordKey(date, prayer)
	existingID := ""
	if existing, ok := s.file.Records[key]; ok {
		existingID = existing.ID
	}

	record, err := buildRecord(existingID, date, prayer, status, notes)
	if err != nil {
		return models.PrayerRecord{}, err
	}

	s.file.Records[key] = record
	if err := s.save(); err != nil {
		return models.PrayerRecord{}, err
	}
	return record, nil
}

func (s *JSONStore) GetRecord(date string, prayer models.PrayerName) (models.PrayerRecord, bool, error) {
	if err := s.loaded(); err != nil {
		return models.PrayerRecord{}, false, err
	}
	record, ok := s.file.Records[RecordKey(date, prayer)]
	return record, ok, nil
}

func (s *JSONStore) GetRecordsForDate(date string) ([]models.PrayerRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	prefix := RecordKeyPrefix + date
	var records []models.PrayerRecord
	for key, record := range s.file.Records {
		if strings.HasPrefix(key, prefix) {
			records = append(records, record)
		}
	}
	sortRecords(records)
	return records, nil
}

func (s *JSONStore) GetAllRecords() ([]models.PrayerRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	records := make([]models.PrayerRecord, 0, len(s.file.Records))
	for _, record := range s.file.Records {
		records = append(records, record)
	}
	sortRecords(records)
	return records, nil
}

func (s *JSONStore) GetRecordsInRange(start, end string) ([]models.PrayerRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var records []models.PrayerRecord
	for _, record := range s.file.Records {
		if record.GregorianDate >= start && record.GregorianDate <= end {
			records = append(records, record)
		}
	}
	sortRecords(records)
	return records, nil
}

func (s *JSONStore) DeleteRecord(date string, prayer models.PrayerName) error {
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.file.Records, RecordKey(date, prayer))
	return s.save()
}

func (s *JSONStore) ClearAll() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.file.Records = make(map[string]models.PrayerRecord)
	return s.save()
}

func (s *JSONStore) GetRecordedDates() ([]string, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, record := range s.file.Records {
		seen[record.GregorianDate] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

// ImportRecords bulk-writes records keyed by (date, prayer), last write
// wins. The Hijri date is rederived for every row. No atomicity across
// keys: an interrupted import leaves earlier rows persisted.
func (s *JSONStore) ImportRecords(records []models.PrayerRecord) (int, error) {
	if err := s.loaded(); err != nil {
		return 0, err
	}
	imported := 0
	for _, r := range records {
		record, err := buildRecord(r.ID, r.GregorianDate, r.PrayerName, r.Status, r.Notes)
		if err != nil {
			continue
		}
		s.file.Records[RecordKey(record.GregorianDate, record.PrayerName)] = record
		imported++
	}
	if err := s.save(); err != nil {
		return 0, err
	}
	return imported, nil
}

func (s *JSONStore) GetPreferences() (models.Preferences, error) {
	if err := s.loaded(); err != nil {
		return models.Preferences{}, err
	}
	return s.file.Preferences, nil
}

func (s *JSONStore) SavePreferences(prefs models.Preferences) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.file.Preferences = prefs
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
