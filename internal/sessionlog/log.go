// Package sessionlog owns the in-memory session log and persists every
// completed interval as soon as it is recorded.
package sessionlog

import (
	"fmt"
	"time"

	"github.com/Tiliavir/pomo/internal/logger"
	"github.com/Tiliavir/pomo/internal/model"
)

// Saver persists the full log.
type Saver interface {
	Save(records []model.Record) error
}

// Store loads and saves the full log.
type Store interface {
	Saver
	Load() ([]model.Record, error)
}

// Log is the append-only list of completed intervals.
type Log struct {
	saver   Saver
	records []model.Record

	// Now stamps new records. Defaults to time.Now.
	Now func() time.Time
}

// New returns a log seeded with records that persists through saver.
func New(saver Saver, records []model.Record) *Log {
	seed := make([]model.Record, len(records))
	copy(seed, records)
	return &Log{saver: saver, records: seed, Now: time.Now}
}

// Open loads the existing records from store.
func Open(store Store) (*Log, error) {
	records, err := store.Load()
	if err != nil {
		return nil, err
	}
	return New(store, records), nil
}

// Record appends a completed interval and saves the whole log. If saving
// fails the record is dropped again so memory matches disk.
func (l *Log) Record(subject string, minutes int, kind model.Kind) (model.Record, error) {
	rec, err := model.NewRecord(subject, minutes, kind, l.Now())
	if err != nil {
		return model.Record{}, err
	}

	l.records = append(l.records, rec)
	if err := l.saver.Save(l.records); err != nil {
		l.records = l.records[:len(l.records)-1]
		logger.Error("saving session failed", "subject", subject, "type", kind, "error", err)
		return model.Record{}, fmt.Errorf("saving session: %w", err)
	}

	logger.Info("session recorded", "id", rec.ID, "subject", rec.Subject, "type", rec.Type, "minutes", rec.Duration)
	return rec, nil
}

// Records returns a copy of the log in creation order.
func (l *Log) Records() []model.Record {
	out := make([]model.Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}
