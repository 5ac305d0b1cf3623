package shared

import (
	"context"
	"time"

	"dartshop/internal/domain/item"
	"dartshop/internal/domain/order"
	"dartshop/internal/infra/db"
	"dartshop/internal/infra/repository"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Inventory() InventoryRepository
	Orders() OrderRepository
	Watchlist() WatchlistRepository
	Outbox() OutboxRepository
	DB() db.DBTX
}

type InventoryRepository interface {
	Create(ctx context.Context, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.UpdatePatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	ConditionalClaim(ctx context.Context, ids []uuid.UUID, orderID uuid.UUID, now time.Time) error
	Release(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	MarkSold(ctx context.Context, ids []uuid.UUID) error
	FindExpired(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, o *order.Order) (uuid.UUID, error)
	FindPendingForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WatchlistRepository interface {
	Add(ctx context.Context, buyerName, shippingAddress string, itemID uuid.UUID) error
	Remove(ctx context.Context, buyerName string, itemID uuid.UUID) error
	Watchers(ctx context.Context, itemIDs []uuid.UUID) ([]string, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, kind string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]repository.Job, error)
}
