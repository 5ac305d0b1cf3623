//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"dartshop/internal/domain/item"
	"dartshop/internal/domain/order"
	"dartshop/internal/infra"
	"dartshop/internal/infra/db"
	"dartshop/internal/infra/repository"
	"dartshop/internal/pkg/errs"
	"dartshop/internal/usecase/queries"
	"dartshop/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows in result set")

type fakeItemRow struct {
	status       item.Status
	pendingSince *time.Time
	claimedBy    *uuid.UUID
	price        float64
}

type fakeOrderRow struct {
	order  *order.Order
	status order.Status
}

type fakeWatch struct {
	buyerName       string
	shippingAddress string
	itemID          uuid.UUID
}

type fakeState struct {
	items   map[uuid.UUID]*fakeItemRow
	orders  map[uuid.UUID]*fakeOrderRow
	watches []fakeWatch
	jobs    []repository.Job
}

func newFakeState() *fakeState {
	return &fakeState{
		items:  make(map[uuid.UUID]*fakeItemRow),
		orders: make(map[uuid.UUID]*fakeOrderRow),
	}
}

func (s *fakeState) addAvailableItem(id uuid.UUID) {
	s.items[id] = &fakeItemRow{status: item.StatusAvailable, price: 59.99}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for id, row := range s.items {
		cp := *row
		c.items[id] = &cp
	}
	for id, row := range s.orders {
		cp := *row
		c.orders[id] = &cp
	}
	c.watches = append(c.watches, s.watches...)
	c.jobs = append(c.jobs, s.jobs...)
	return c
}

// fakeUoW runs the transactional closure against a copy of the state and
// commits it only on success, which mirrors rollback-on-error.
type fakeUoW struct {
	state *fakeState
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newFakeState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	working := u.state.clone()
	if err := fn(ctx, &fakeTx{state: working}); err != nil {
		return err
	}
	u.state = working
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Inventory() shared.InventoryRepository { return &fakeInventoryRepo{state: t.state} }
func (t *fakeTx) Orders() shared.OrderRepository        { return &fakeOrderRepo{state: t.state} }
func (t *fakeTx) Watchlist() shared.WatchlistRepository { return &fakeWatchlistRepo{state: t.state} }
func (t *fakeTx) Outbox() shared.OutboxRepository       { return &fakeOutboxRepo{state: t.state} }
func (t *fakeTx) DB() db.DBTX                           { return nil }

type fakeInventoryRepo struct {
	state *fakeState
}

func (r *fakeInventoryRepo) Create(_ context.Context, it *item.Item) (uuid.UUID, error) {
	r.state.items[it.ID()] = &fakeItemRow{status: item.StatusAvailable, price: it.Price()}
	return it.ID(), nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, id uuid.UUID, patch repository.UpdatePatch) error {
	row, ok := r.state.items[id]
	if !ok {
		return infra.WrapRepoErr("item not found", errNoRows, infra.KindNotFound)
	}
	if patch.Price != nil {
		row.price = *patch.Price
	}
	if patch.Status != nil {
		row.status = *patch.Status
		if *patch.Status != item.StatusPending {
			row.pendingSince = nil
		}
		if *patch.Status == item.StatusAvailable {
			row.claimedBy = nil
		}
	}
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.items[id]; !ok {
		return infra.WrapRepoErr("item not found", errNoRows, infra.KindNotFound)
	}
	delete(r.state.items, id)
	return nil
}

func (r *fakeInventoryRepo) ConditionalClaim(_ context.Context, ids []uuid.UUID, orderID uuid.UUID, now time.Time) error {
	for _, id := range ids {
		row, ok := r.state.items[id]
		if !ok || row.status != item.StatusAvailable {
			continue
		}
		since := now
		claimant := orderID
		row.status = item.StatusPending
		row.pendingSince = &since
		row.claimedBy = &claimant
	}

	var taken []uuid.UUID
	for _, id := range ids {
		row, ok := r.state.items[id]
		if !ok || row.status != item.StatusPending || row.claimedBy == nil || *row.claimedBy != orderID {
			taken = append(taken, id)
		}
	}
	if len(taken) > 0 {
		sort.Slice(taken, func(i, j int) bool { return taken[i].String() < taken[j].String() })
		return infra.WrapRepoErr("items not claimable", &repository.UnavailableItemsError{ItemIDs: taken}, infra.KindConflict)
	}
	return nil
}

func (r *fakeInventoryRepo) Release(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var released []uuid.UUID
	for _, id := range ids {
		row, ok := r.state.items[id]
		if !ok || row.status != item.StatusPending {
			continue
		}
		row.status = item.StatusAvailable
		row.pendingSince = nil
		row.claimedBy = nil
		released = append(released, id)
	}
	return released, nil
}

func (r *fakeInventoryRepo) MarkSold(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		row, ok := r.state.items[id]
		if !ok {
			continue
		}
		row.status = item.StatusSold
		row.pendingSince = nil
	}
	return nil
}

func (r *fakeInventoryRepo) FindExpired(_ context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	var expired []uuid.UUID
	for id, row := range r.state.items {
		if row.status == item.StatusPending && row.pendingSince != nil && row.pendingSince.Before(cutoff) {
			expired = append(expired, id)
		}
	}
	return expired, nil
}

type fakeOrderRepo struct {
	state *fakeState
}

func (r *fakeOrderRepo) Insert(_ context.Context, o *order.Order) (uuid.UUID, error) {
	r.state.orders[o.ID()] = &fakeOrderRow{order: o, status: order.StatusPending}
	return o.ID(), nil
}

func (r *fakeOrderRepo) FindPendingForUpdate(_ context.Context, id uuid.UUID) (*order.Order, error) {
	row, ok := r.state.orders[id]
	if !ok || row.status != order.StatusPending {
		return nil, infra.WrapRepoErr("pending order not found", errNoRows, infra.KindNotFound)
	}
	return row.order, nil
}

func (r *fakeOrderRepo) MarkCompleted(_ context.Context, id uuid.UUID) error {
	row, ok := r.state.orders[id]
	if !ok {
		return infra.WrapRepoErr("order not found", errNoRows, infra.KindNotFound)
	}
	row.status = order.StatusCompleted
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.orders[id]; !ok {
		return infra.WrapRepoErr("order not found", errNoRows, infra.KindNotFound)
	}
	delete(r.state.orders, id)
	return nil
}

type fakeWatchlistRepo struct {
	state *fakeState
}

func (r *fakeWatchlistRepo) Add(_ context.Context, buyerName, shippingAddress string, itemID uuid.UUID) error {
	for i, w := range r.state.watches {
		if w.buyerName == buyerName && w.itemID == itemID {
			r.state.watches[i].shippingAddress = shippingAddress
			return nil
		}
	}
	r.state.watches = append(r.state.watches, fakeWatch{
		buyerName:       buyerName,
		shippingAddress: shippingAddress,
		itemID:          itemID,
	})
	return nil
}

func (r *fakeWatchlistRepo) Remove(_ context.Context, buyerName string, itemID uuid.UUID) error {
	for i, w := range r.state.watches {
		if w.buyerName == buyerName && w.itemID == itemID {
			r.state.watches = append(r.state.watches[:i], r.state.watches[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("watchlist entry not found", errNoRows, infra.KindNotFound)
}

func (r *fakeWatchlistRepo) Watchers(_ context.Context, itemIDs []uuid.UUID) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, w := range r.state.watches {
		for _, id := range itemIDs {
			if w.itemID != id {
				continue
			}
			if _, ok := seen[w.buyerName]; !ok {
				seen[w.buyerName] = struct{}{}
				names = append(names, w.buyerName)
			}
		}
	}
	return names, nil
}

type fakeOutboxRepo struct {
	state *fakeState
}

func (r *fakeOutboxRepo) Enqueue(_ context.Context, kind string, payload []byte, runAt time.Time) error {
	r.state.jobs = append(r.state.jobs, repository.Job{
		ID:      int64(len(r.state.jobs) + 1),
		Kind:    kind,
		Payload: payload,
		RunAt:   runAt,
	})
	return nil
}

func (r *fakeOutboxRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]repository.Job, error) {
	var due []repository.Job
	for _, j := range r.state.jobs {
		if !j.RunAt.After(now) && len(due) < limit {
			due = append(due, j)
		}
	}
	return due, nil
}

// fakeInventoryQueries serves the read-before/after-write lookups in the
// inventory and watchlist use cases.
type fakeInventoryQueries struct {
	uow *fakeUoW
}

func (q *fakeInventoryQueries) GetItem(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, ok := q.uow.state.items[id]
	if !ok {
		return nil, errs.Mark(errNoRows, errs.ErrItemNotFound)
	}
	return &queries.ItemView{
		ID:           id,
		Price:        row.price,
		Status:       row.status.String(),
		PendingSince: row.pendingSince,
		ClaimedBy:    row.claimedBy,
	}, nil
}

func (q *fakeInventoryQueries) ListItems(ctx context.Context, _ queries.ItemFilter) ([]*queries.ItemView, error) {
	var views []*queries.ItemView
	for id := range q.uow.state.items {
		v, err := q.GetItem(ctx, id)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// fakeOrderQueries serves the read-after-write lookup in Reserve.
type fakeOrderQueries struct {
	uow *fakeUoW
}

func (q *fakeOrderQueries) GetOrder(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, ok := q.uow.state.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	o := row.order
	expired := row.status == order.StatusPending
	for _, itemID := range o.ItemIDs() {
		if it, ok := q.uow.state.items[itemID]; ok && it.claimedBy != nil && *it.claimedBy == id && it.status == item.StatusPending {
			expired = false
		}
	}
	return &queries.OrderView{
		ID:              o.ID(),
		ItemIDs:         o.ItemIDs(),
		BuyerName:       o.BuyerName(),
		ShippingAddress: o.ShippingAddress(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentHandle:   o.PaymentHandle(),
		Status:          row.status.String(),
		Expired:         expired,
	}, nil
}

func (q *fakeOrderQueries) ListOrders(ctx context.Context) ([]*queries.OrderView, error) {
	var views []*queries.OrderView
	for id := range q.uow.state.orders {
		v, err := q.GetOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
