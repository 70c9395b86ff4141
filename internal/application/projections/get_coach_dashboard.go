package projections

import (
	"context"
	"sort"
	"time"

	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	"github.com/azizzarr/CoachSync/internal/domain/client"
	"github.com/azizzarr/CoachSync/internal/domain/session"
	"github.com/azizzarr/CoachSync/internal/domain/weight"
)

// DashboardClientStore defines the client store interface needed by the
// dashboard projection.
type DashboardClientStore interface {
	List(ctx context.Context) ([]client.Client, error)
}

// DashboardWeightStore defines the weight store interface needed by the
// dashboard projection.
type DashboardWeightStore interface {
	ListByClientID(ctx context.Context, clientID string) ([]weight.Entry, error)
}

// GetCoachDashboardDeps holds dependencies for the dashboard projection.
type GetCoachDashboardDeps struct {
	Calendar    *scheduling.SessionStore
	ClientStore DashboardClientStore
	WeightStore DashboardWeightStore // optional: nil skips weight summaries
}

// ClientWeightSummary is one client's latest measurement and its change
// against the previous one.
type ClientWeightSummary struct {
	ClientID   string
	ClientName string
	LatestKg   float64
	DeltaKg    float64 // 0 when only one entry exists
	MeasuredAt time.Time
}

// CoachDashboardResult carries the output of the dashboard projection.
type CoachDashboardResult struct {
	Statistics scheduling.Statistics
	Trends     scheduling.Trends

	// Next scheduled sessions from now onward, soonest first.
	UpcomingSessions []session.Session

	// Latest weight per active client, clients with no entries omitted.
	WeightSummaries []ClientWeightSummary
}

// maxUpcomingSessions caps the dashboard's upcoming list.
const maxUpcomingSessions = 5

// QueryGetCoachDashboard aggregates the coach's overview: card statistics
// with week-over-week trends, the next scheduled sessions, and each active
// client's latest weight.
func QueryGetCoachDashboard(ctx context.Context, deps GetCoachDashboardDeps, now time.Time) (CoachDashboardResult, error) {
	sessions := deps.Calendar.List()

	result := CoachDashboardResult{
		Statistics: scheduling.ComputeStatistics(sessions, now),
		Trends:     scheduling.ComputeTrends(sessions, now),
	}

	for sess := range deps.Calendar.Sessions(func(s session.Session) bool {
		return s.Status == session.StatusScheduled && !s.Start.Before(now)
	}) {
		result.UpcomingSessions = append(result.UpcomingSessions, sess)
	}
	sort.Slice(result.UpcomingSessions, func(i, j int) bool {
		return result.UpcomingSessions[i].Start.Before(result.UpcomingSessions[j].Start)
	})
	if len(result.UpcomingSessions) > maxUpcomingSessions {
		result.UpcomingSessions = result.UpcomingSessions[:maxUpcomingSessions]
	}

	clients, err := deps.ClientStore.List(ctx)
	if err != nil {
		return CoachDashboardResult{}, err
	}
	if deps.WeightStore != nil {
		for _, c := range clients {
			if c.Status != client.StatusActive {
				continue
			}
			entries, err := deps.WeightStore.ListByClientID(ctx, c.ID)
			if err != nil || len(entries) == 0 {
				continue
			}
			// Entries come back newest first.
			summary := ClientWeightSummary{
				ClientID:   c.ID,
				ClientName: c.Name,
				LatestKg:   entries[0].Kg,
				MeasuredAt: entries[0].MeasuredAt,
			}
			if len(entries) > 1 {
				summary.DeltaKg = entries[0].Delta(entries[1])
			}
			result.WeightSummaries = append(result.WeightSummaries, summary)
		}
	}

	return result, nil
}
