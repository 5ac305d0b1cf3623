package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dartshop/internal/pkg/clock"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/shared"

	"github.com/google/uuid"
)

const EventItemsReleased = "items_released"

type releaseEventPayload struct {
	ItemIDs []uuid.UUID `json:"item_ids"`
}

type SweeperCommands interface {
	// SweepExpired releases items whose hold has outlived the TTL and
	// returns how many were released.
	SweepExpired(ctx context.Context) (int, error)
}

type sweeperUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	holdTTL time.Duration
}

func NewSweeperUseCase(uow shared.UnitOfWork, clk clock.Clock, holdTTL time.Duration) SweeperCommands {
	return &sweeperUseCaseImpl{
		uow:     uow,
		clock:   clk,
		holdTTL: holdTTL,
	}
}

// SweepExpired only touches the items: the stale order row stays behind for
// the admin to follow up on, and shows up as expired in order listings.
func (u *sweeperUseCaseImpl) SweepExpired(ctx context.Context) (int, error) {
	now := u.clock.Now()
	cutoff := now.Add(-u.holdTTL)

	var released []uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired, err := tx.Inventory().FindExpired(ctx, cutoff)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(expired) == 0 {
			return nil
		}

		released, err = tx.Inventory().Release(ctx, expired)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(releaseEventPayload{ItemIDs: released})
		if err != nil {
			return errs.Wrap(err, "failed to marshal release event")
		}
		if err := tx.Outbox().Enqueue(ctx, EventItemsReleased, payload, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(released) > 0 {
		slog.Info("released expired holds", "count", len(released))
	}
	return len(released), nil
}
