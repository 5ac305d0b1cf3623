package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/infra"
	"dartshop/internal/infra/repository"
	"dartshop/internal/pkg/clock"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/queries"
	"dartshop/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationConflictError reports which of the requested items were already
// taken. The reservation is all-or-nothing, so one taken item fails the
// whole request.
type ReservationConflictError struct {
	TakenItemIDs []uuid.UUID
}

func (e *ReservationConflictError) Error() string {
	return "some items are no longer available"
}

const (
	EventOrderReserved  = "order_reserved"
	EventOrderCompleted = "order_completed"
	EventOrderCancelled = "order_cancelled"
)

type orderEventPayload struct {
	OrderID   uuid.UUID   `json:"order_id"`
	ItemIDs   []uuid.UUID `json:"item_ids"`
	BuyerName string      `json:"buyer_name"`
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.OrderView, error)
	ConfirmSale(ctx context.Context, orderID uuid.UUID) error
	Cancel(ctx context.Context, orderID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	orderQueries queries.OrderQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:          uow,
		orderQueries: orderQueries,
		clock:        clk,
	}
}

// Reserve creates the order and claims every requested item in one
// transaction. The claim only takes items that are still available, so two
// buyers racing for the same item cannot both win; the loser gets a
// ReservationConflictError listing the items that were taken.
func (r *reservationUseCaseImpl) Reserve(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.OrderView, error) {
	orderEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrOrderValidation)
	}

	now := r.clock.Now()
	var orderID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Orders().Insert(ctx, orderEntity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		orderID = id

		if err := tx.Inventory().ConditionalClaim(ctx, orderEntity.ItemIDs(), orderID, now); err != nil {
			return err
		}

		return r.enqueueOrderEvent(ctx, tx, EventOrderReserved, orderID, orderEntity.ItemIDs(), orderEntity.BuyerName(), now)
	})
	if err != nil {
		var unavailable *repository.UnavailableItemsError
		if errors.As(err, &unavailable) {
			return nil, &ReservationConflictError{TakenItemIDs: unavailable.ItemIDs}
		}
		return nil, err
	}

	view, err := r.orderQueries.GetOrder(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ConfirmSale marks the order completed and its items sold. The pending row
// lock serializes confirm against cancel: whichever runs second finds no
// pending order and fails without touching the items.
func (r *reservationUseCaseImpl) ConfirmSale(ctx context.Context, orderID uuid.UUID) error {
	now := r.clock.Now()
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindPendingForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrOrderNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Inventory().MarkSold(ctx, o.ItemIDs()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().MarkCompleted(ctx, orderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return r.enqueueOrderEvent(ctx, tx, EventOrderCompleted, orderID, o.ItemIDs(), o.BuyerName(), now)
	})
}

// Cancel deletes the order and releases whatever items it still holds. Items
// the sweeper already released come back as a shorter Release result, which
// is fine; release is idempotent.
func (r *reservationUseCaseImpl) Cancel(ctx context.Context, orderID uuid.UUID) error {
	now := r.clock.Now()
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindPendingForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrOrderNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := tx.Inventory().Release(ctx, o.ItemIDs()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Orders().Delete(ctx, orderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return r.enqueueOrderEvent(ctx, tx, EventOrderCancelled, orderID, o.ItemIDs(), o.BuyerName(), now)
	})
}

func (r *reservationUseCaseImpl) enqueueOrderEvent(
	ctx context.Context,
	tx shared.Tx,
	kind string,
	orderID uuid.UUID,
	itemIDs []uuid.UUID,
	buyerName string,
	runAt time.Time,
) error {
	payload, err := json.Marshal(orderEventPayload{
		OrderID:   orderID,
		ItemIDs:   itemIDs,
		BuyerName: buyerName,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal order event")
	}
	if err := tx.Outbox().Enqueue(ctx, kind, payload, runAt); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
