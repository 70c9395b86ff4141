package scheduling

import (
	"math"
	"time"

	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// Statistics are the derived display aggregates for the coach dashboard
// cards. They are pure functions of the session list and are recomputed
// after every mutation.
type Statistics struct {
	TodaySessions      int // sessions whose start falls on the current calendar day
	ActiveClients      int // distinct client IDs across all sessions
	AverageDurationMin int // mean duration in whole minutes, 0 when empty
}

// Trends are week-over-week deltas: the last 7 days compared with the
// 7 days before that.
type Trends struct {
	SessionsDelta int // change in session count
	ClientsDelta  int // change in distinct client count
	DurationDelta int // change in mean duration minutes
}

// ComputeStatistics derives statistics from the given session list.
// PRE: now is the caller's notion of the current time
// POST: returns zero values for an empty list (no division by zero)
func ComputeStatistics(sessions []session.Session, now time.Time) Statistics {
	stats := Statistics{}
	today := now.Format("2006-01-02")
	clients := make(map[string]struct{})
	totalMinutes := 0

	for _, s := range sessions {
		if s.Start.In(now.Location()).Format("2006-01-02") == today {
			stats.TodaySessions++
		}
		clients[s.ClientID] = struct{}{}
		totalMinutes += s.Duration
	}

	stats.ActiveClients = len(clients)
	if len(sessions) > 0 {
		stats.AverageDurationMin = int(math.Round(float64(totalMinutes) / float64(len(sessions))))
	}
	return stats
}

// ComputeTrends compares the trailing 7-day window against the previous one.
// PRE: now is the caller's notion of the current time
// POST: returns zero deltas when both windows are empty
func ComputeTrends(sessions []session.Session, now time.Time) Trends {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	current := windowAggregate(sessions, weekAgo, now)
	previous := windowAggregate(sessions, twoWeeksAgo, weekAgo)

	return Trends{
		SessionsDelta: current.count - previous.count,
		ClientsDelta:  current.clients - previous.clients,
		DurationDelta: current.avgDuration - previous.avgDuration,
	}
}

type windowStats struct {
	count       int
	clients     int
	avgDuration int
}

// windowAggregate counts sessions starting in [from, to).
func windowAggregate(sessions []session.Session, from, to time.Time) windowStats {
	w := windowStats{}
	clients := make(map[string]struct{})
	totalMinutes := 0
	for _, s := range sessions {
		if s.Start.Before(from) || !s.Start.Before(to) {
			continue
		}
		w.count++
		clients[s.ClientID] = struct{}{}
		totalMinutes += s.Duration
	}
	w.clients = len(clients)
	if w.count > 0 {
		w.avgDuration = int(math.Round(float64(totalMinutes) / float64(w.count)))
	}
	return w
}
