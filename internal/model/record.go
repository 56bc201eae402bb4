package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes work intervals from breaks.
type Kind string

const (
	KindWork  Kind = "work"
	KindBreak Kind = "break"
)

const (
	// WorkMinutes and BreakMinutes are the two interval presets.
	WorkMinutes  = 25
	BreakMinutes = 5

	// BreakSubject is the subject stored on every break record.
	BreakSubject = "Break"

	// DateLayout is the layout of Record.Date.
	DateLayout = "2006-01-02"
)

// ErrInvalidRecord is returned when a record violates the log invariants.
var ErrInvalidRecord = errors.New("invalid record")

// Valid reports whether k is a known interval kind.
func (k Kind) Valid() bool {
	return k == KindWork || k == KindBreak
}

// Record is one completed interval. Records are never modified once created.
type Record struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Duration    int       `json:"duration"`
	Type        Kind      `json:"type"`
	CompletedAt time.Time `json:"completed_at"`
	Date        string    `json:"date"`
}

// NewRecord builds a validated record completed at the given time.
func NewRecord(subject string, minutes int, kind Kind, at time.Time) (Record, error) {
	r := Record{
		ID:          uuid.NewString(),
		Subject:     subject,
		Duration:    minutes,
		Type:        kind,
		CompletedAt: at,
		Date:        at.Format(DateLayout),
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks the invariants every stored record must satisfy.
func (r Record) Validate() error {
	if r.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidRecord, r.Duration)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, r.Type)
	}
	if r.Type == KindWork && strings.TrimSpace(r.Subject) == "" {
		return fmt.Errorf("%w: work record needs a subject", ErrInvalidRecord)
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidRecord, r.Date)
	}
	return nil
}

// IsWork reports whether r is a work interval.
func (r Record) IsWork() bool {
	return r.Type == KindWork
}
