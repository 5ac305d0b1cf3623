package commands

import (
	"context"
	"encoding/json"
	"strings"

	"dartshop/internal/domain/item"
	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/infra"
	"dartshop/internal/infra/repository"
	"dartshop/internal/pkg/clock"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/queries"
	"dartshop/internal/usecase/shared"

	"github.com/google/uuid"
)

const EventItemUpdated = "item_updated"

type itemEventPayload struct {
	ItemID   uuid.UUID `json:"item_id"`
	OldPrice *float64  `json:"old_price,omitempty"`
	NewPrice *float64  `json:"new_price,omitempty"`
}

type InventoryCommands interface {
	CreateItem(ctx context.Context, req reqdto.CreateItemRequest) (*queries.ItemView, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateItemRequest) (*queries.ItemView, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type inventoryUseCaseImpl struct {
	uow              shared.UnitOfWork
	inventoryQueries queries.InventoryQueries
	clock            clock.Clock
}

func NewInventoryUseCase(
	uow shared.UnitOfWork,
	inventoryQueries queries.InventoryQueries,
	clk clock.Clock,
) InventoryCommands {
	return &inventoryUseCaseImpl{
		uow:              uow,
		inventoryQueries: inventoryQueries,
		clock:            clk,
	}
}

func (u *inventoryUseCaseImpl) CreateItem(ctx context.Context, req reqdto.CreateItemRequest) (*queries.ItemView, error) {
	itemEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrItemValidation)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Inventory().Create(ctx, itemEntity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.inventoryQueries.GetItem(ctx, id)
}

// UpdateItem is the admin escape hatch: it can rewrite any field, including
// forcing status transitions outside the claim lifecycle. A price drop on an
// available item notifies its watchers.
func (u *inventoryUseCaseImpl) UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateItemRequest) (*queries.ItemView, error) {
	patch, err := buildUpdatePatch(req)
	if err != nil {
		return nil, err
	}

	before, err := u.inventoryQueries.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().Update(ctx, id, patch); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrItemNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if patch.Price != nil && *patch.Price < before.Price {
			payload, err := json.Marshal(itemEventPayload{
				ItemID:   id,
				OldPrice: &before.Price,
				NewPrice: patch.Price,
			})
			if err != nil {
				return errs.Wrap(err, "failed to marshal item event")
			}
			if err := tx.Outbox().Enqueue(ctx, EventItemUpdated, payload, now); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.inventoryQueries.GetItem(ctx, id)
}

func (u *inventoryUseCaseImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrItemNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func buildUpdatePatch(req reqdto.UpdateItemRequest) (repository.UpdatePatch, error) {
	var patch repository.UpdatePatch

	if req.Type != nil {
		t := item.Type(*req.Type)
		if !t.IsValid() {
			return patch, errs.Mark(item.ErrInvalidType, errs.ErrItemValidation)
		}
		patch.Type = &t
	}
	if req.Brand != nil {
		trimmed := strings.TrimSpace(*req.Brand)
		if trimmed == "" {
			return patch, errs.Mark(item.ErrBrandRequired, errs.ErrItemValidation)
		}
		patch.Brand = &trimmed
	}
	if req.Player != nil {
		trimmed := strings.TrimSpace(*req.Player)
		if trimmed == "" {
			return patch, errs.Mark(item.ErrPlayerRequired, errs.ErrItemValidation)
		}
		patch.Player = &trimmed
	}
	if req.WeightGrams != nil {
		if *req.WeightGrams < 0 {
			return patch, errs.Mark(item.ErrNegativeWeight, errs.ErrItemValidation)
		}
		patch.WeightGrams = req.WeightGrams
	}
	if req.Condition != nil {
		c := item.Condition(*req.Condition)
		if !c.IsValid() {
			return patch, errs.Mark(item.ErrInvalidCondition, errs.ErrItemValidation)
		}
		patch.Condition = &c
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return patch, errs.Mark(item.ErrNegativePrice, errs.ErrItemValidation)
		}
		patch.Price = req.Price
	}
	patch.RetailPrice = req.RetailPrice
	if req.Notes != nil {
		patch.Notes = req.Notes
	}
	if req.PhotoURLs != nil {
		patch.PhotoURLs = *req.PhotoURLs
	}
	if req.Status != nil {
		s := item.Status(*req.Status)
		if !s.IsValid() {
			return patch, errs.Mark(item.ErrInvalidStatus, errs.ErrItemValidation)
		}
		patch.Status = &s
	}

	return patch, nil
}
