package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/azizzarr/CoachSync/internal/domain/client"
	"github.com/azizzarr/CoachSync/internal/domain/weight"
)

// WeightStore defines the persistence interface for weight entries.
type WeightStore interface {
	Save(ctx context.Context, e weight.Entry) error
}

// ClientLookupStore defines the client store interface needed to verify
// the entry's subject exists.
type ClientLookupStore interface {
	GetByID(ctx context.Context, id string) (client.Client, error)
}

// RecordWeightInput carries a new weight measurement.
type RecordWeightInput struct {
	ClientID   string
	Kg         float64
	MeasuredAt time.Time
	Notes      string
	PhotoURL   string
	Now        time.Time // zero means time.Now
}

// RecordWeightDeps holds dependencies for ExecuteRecordWeight.
type RecordWeightDeps struct {
	WeightStore WeightStore
	ClientStore ClientLookupStore
	Notifier    Notifier // optional: nil skips messages
}

// ExecuteRecordWeight validates and persists a weight measurement for an
// existing client.
// PRE: none
// POST: on success the entry is persisted; an unknown or implausible
// measurement is rejected without side effects
func ExecuteRecordWeight(ctx context.Context, input RecordWeightInput, deps RecordWeightDeps) (weight.Entry, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	if _, err := deps.ClientStore.GetByID(ctx, input.ClientID); err != nil {
		notifyError(deps.Notifier, "Client not found")
		return weight.Entry{}, errors.New("client not found")
	}

	entry := weight.Entry{
		ID:         uuid.New().String(),
		ClientID:   input.ClientID,
		Kg:         input.Kg,
		MeasuredAt: input.MeasuredAt,
		Notes:      input.Notes,
		PhotoURL:   input.PhotoURL,
		CreatedAt:  now,
	}
	if err := entry.Validate(now); err != nil {
		notifyError(deps.Notifier, "Failed to record weight")
		return weight.Entry{}, err
	}
	if err := deps.WeightStore.Save(ctx, entry); err != nil {
		notifyError(deps.Notifier, "Failed to record weight")
		return weight.Entry{}, err
	}

	slog.Info("weight_event", "event", "weight_recorded", "client_id", input.ClientID, "kg", input.Kg)
	notifySuccess(deps.Notifier, "Weight entry recorded")
	return entry, nil
}
