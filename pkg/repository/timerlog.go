package repository

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// TimerLogRepository persists the append-only log of completed timer runs
type TimerLogRepository struct {
	path   string
	notify ErrorFunc
}

// NewTimerLogRepository creates a repository bound to path
func NewTimerLogRepository(path string, notify ErrorFunc) *TimerLogRepository {
	return &TimerLogRepository{path: path, notify: notify}
}

// Load reads all recorded sessions; missing or corrupt files yield nil
func (r *TimerLogRepository) Load() []domain.TimerRecord {
	var records []domain.TimerRecord
	readJSONFile(r.path, &records, r.notify)
	return records
}

// Append reads the current log, appends one record and writes it back
func (r *TimerLogRepository) Append(record domain.TimerRecord) error {
	records := r.Load()
	records = append(records, record)
	return writeJSONFile(r.path, records, r.notify)
}
