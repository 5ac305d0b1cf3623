package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dartshop/internal/infra/repository"
	"dartshop/internal/pkg/clock"
	"dartshop/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	relayBatchSize = 100
	relayTick      = 2 * time.Second
)

// Event is the envelope published to subscribers. Watchers is filled in for
// events that reference items someone has on a watchlist.
type Event struct {
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	Watchers   []string        `json:"watchers,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Relay drains the notification outbox and publishes each job. Claiming and
// publishing happen in one transaction, so a failed publish rolls the claim
// back and the job is retried on the next tick.
type Relay struct {
	uow       shared.UnitOfWork
	publisher *Publisher
	clock     clock.Clock
}

func NewRelay(uow shared.UnitOfWork, publisher *Publisher, clk clock.Clock) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(relayTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.Drain(ctx); err != nil {
				slog.Error("failed to drain notification outbox", "error", err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}

func (r *Relay) Drain(ctx context.Context) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Outbox().ClaimDue(ctx, r.clock.Now(), relayBatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			event := Event{
				Kind:       job.Kind,
				Payload:    job.Payload,
				OccurredAt: job.RunAt,
			}

			if itemIDs := payloadItemIDs(job); len(itemIDs) > 0 {
				watchers, err := tx.Watchlist().Watchers(ctx, itemIDs)
				if err != nil {
					return err
				}
				event.Watchers = watchers
			}

			message, err := json.Marshal(event)
			if err != nil {
				slog.Error("failed to marshal event, dropping", "kind", job.Kind, "job_id", job.ID, "error", err.Error())
				continue
			}
			if err := r.publisher.Publish(ctx, message); err != nil {
				return err
			}
		}
		return nil
	})
}

func payloadItemIDs(job repository.Job) []uuid.UUID {
	var ref struct {
		ItemIDs []uuid.UUID `json:"item_ids"`
		ItemID  *uuid.UUID  `json:"item_id"`
	}
	if err := json.Unmarshal(job.Payload, &ref); err != nil {
		return nil
	}
	if ref.ItemID != nil {
		return append(ref.ItemIDs, *ref.ItemID)
	}
	return ref.ItemIDs
}
