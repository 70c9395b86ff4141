package workoutplan

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Day of week constants
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// ValidDays contains all valid day values.
var ValidDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Domain errors
var (
	ErrEmptyClientID = errors.New("workout plan client ID cannot be empty")
	ErrEmptySchedule = errors.New("workout plan must have at least one day")
	ErrInvalidDay    = errors.New("day must be a valid day of the week")
)

// Exercise is a single prescribed exercise within a workout day.
type Exercise struct {
	Name        string
	Sets        int
	Reps        int
	RestSeconds int
	Notes       string
}

// WorkoutDay is one day of a weekly workout schedule.
type WorkoutDay struct {
	Day             string // monday, tuesday, etc.
	WorkoutType     string
	DurationMinutes int
	Exercises       []Exercise
	CaloriesBurnt   int
	Notes           string
}

// Plan is a weekly workout plan assigned to a client.
// Plan generation happens on the backend; this package only models and
// validates the result.
type Plan struct {
	ID                 string
	ClientID           string
	WeeklySchedule     []WorkoutDay
	ProgressionPlan    string // markdown
	SafetyPrecautions  string // markdown
	ProfileDescription string
	GeneratedAt        time.Time
}

// Validate checks if the Plan has valid data.
// PRE: Plan struct is populated
// POST: Returns nil if valid, error describing the first violation otherwise
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.ClientID) == "" {
		return ErrEmptyClientID
	}
	if len(p.WeeklySchedule) == 0 {
		return ErrEmptySchedule
	}
	for i, d := range p.WeeklySchedule {
		if !isValidDay(d.Day) {
			return fmt.Errorf("schedule day %d: %w", i, ErrInvalidDay)
		}
		if d.DurationMinutes <= 0 {
			return fmt.Errorf("schedule day %d: duration must be positive", i)
		}
		for j, ex := range d.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return fmt.Errorf("day %d exercise %d: name cannot be empty", i, j)
			}
			if ex.Sets <= 0 || ex.Reps <= 0 {
				return fmt.Errorf("day %d exercise %d: sets and reps must be positive", i, j)
			}
		}
	}
	return nil
}

// TotalWeeklyMinutes returns the summed duration of all scheduled days.
// PRE: none
// POST: returns the total planned minutes per week
func (p *Plan) TotalWeeklyMinutes() int {
	total := 0
	for _, d := range p.WeeklySchedule {
		total += d.DurationMinutes
	}
	return total
}

func isValidDay(day string) bool {
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}
