package commands

import (
	"context"

	reqdto "dartshop/internal/handler/dto/request"
	"dartshop/internal/infra"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/queries"
	"dartshop/internal/usecase/shared"
)

type WatchlistCommands interface {
	Watch(ctx context.Context, req reqdto.AddWatchRequest) error
	Unwatch(ctx context.Context, req reqdto.RemoveWatchRequest) error
}

type watchlistUseCaseImpl struct {
	uow              shared.UnitOfWork
	inventoryQueries queries.InventoryQueries
}

func NewWatchlistUseCase(uow shared.UnitOfWork, inventoryQueries queries.InventoryQueries) WatchlistCommands {
	return &watchlistUseCaseImpl{
		uow:              uow,
		inventoryQueries: inventoryQueries,
	}
}

func (u *watchlistUseCaseImpl) Watch(ctx context.Context, req reqdto.AddWatchRequest) error {
	// watching a phantom item is a client error, not a dangling reference
	if _, err := u.inventoryQueries.GetItem(ctx, req.ItemID); err != nil {
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Watchlist().Add(ctx, req.BuyerName, req.ShippingAddress, req.ItemID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *watchlistUseCaseImpl) Unwatch(ctx context.Context, req reqdto.RemoveWatchRequest) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Watchlist().Remove(ctx, req.BuyerName, req.ItemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrWatchlistEntryNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
