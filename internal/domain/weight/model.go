package weight

import (
	"errors"
	"time"
)

// Plausibility bounds for a recorded body weight.
const (
	MinKg = 20.0
	MaxKg = 400.0
)

// MaxNotesLength caps the free-text notes field.
const MaxNotesLength = 1000

// Domain errors
var (
	ErrEmptyClientID   = errors.New("weight entry client ID cannot be empty")
	ErrImplausibleKg   = errors.New("weight must be between 20 and 400 kg")
	ErrMissingDate     = errors.New("measurement date is required")
	ErrNotesTooLong    = errors.New("weight notes cannot exceed 1000 characters")
	ErrFutureMeasureAt = errors.New("measurement date cannot be in the future")
)

// Entry is a single body-weight measurement for a client.
type Entry struct {
	ID         string
	ClientID   string
	Kg         float64
	MeasuredAt time.Time
	Notes      string
	PhotoURL   string // optional progress photo
	CreatedAt  time.Time
}

// Validate checks the entry's invariants against the given reference time.
// PRE: now is the caller's notion of the current time
// POST: returns nil if valid, a domain error for the first violation otherwise
func (e *Entry) Validate(now time.Time) error {
	if e.ClientID == "" {
		return ErrEmptyClientID
	}
	if e.Kg < MinKg || e.Kg > MaxKg {
		return ErrImplausibleKg
	}
	if e.MeasuredAt.IsZero() {
		return ErrMissingDate
	}
	if e.MeasuredAt.After(now) {
		return ErrFutureMeasureAt
	}
	if len(e.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// Delta returns the weight change from a previous entry in kg.
// Negative means weight lost since prev.
// PRE: prev is an earlier entry for the same client
// POST: returns e.Kg - prev.Kg
func (e *Entry) Delta(prev Entry) float64 {
	return e.Kg - prev.Kg
}
