package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"dartshop/internal/domain/item"
	"dartshop/internal/infra"
	"dartshop/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UnavailableItemsError reports which ids blocked a conditional claim so the
// buyer can be told exactly what to drop from the cart.
type UnavailableItemsError struct {
	ItemIDs []uuid.UUID
}

func (e *UnavailableItemsError) Error() string {
	ids := make([]string, len(e.ItemIDs))
	for i, id := range e.ItemIDs {
		ids[i] = id.String()
	}
	return "items not available: " + strings.Join(ids, ", ")
}

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

func (r *InventoryRepository) Create(ctx context.Context, it *item.Item) (uuid.UUID, error) {
	const stmt = `
INSERT INTO inventory (id, type, brand, player, weight, condition, price, retail_price, notes, photo_urls, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, stmt,
		it.ID(),
		it.Type().String(),
		it.Brand(),
		it.Player(),
		it.WeightGrams(),
		it.Condition().String(),
		it.Price(),
		it.RetailPrice(),
		it.Notes(),
		it.PhotoURLs(),
		it.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}

	return id, nil
}

// UpdatePatch carries the admin edit fields. Every field is optional; the
// status fields bypass the claim state machine on purpose (admin escape
// hatch), so setting Status here also normalizes pending_since.
type UpdatePatch struct {
	Type        *item.Type
	Brand       *string
	Player      *string
	WeightGrams *float64
	Condition   *item.Condition
	Price       *float64
	RetailPrice *float64
	Notes       *string
	PhotoURLs   []string
	Status      *item.Status
}

func (r *InventoryRepository) Update(ctx context.Context, id uuid.UUID, patch UpdatePatch) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Type != nil {
		add("type", patch.Type.String())
	}
	if patch.Brand != nil {
		add("brand", *patch.Brand)
	}
	if patch.Player != nil {
		add("player", *patch.Player)
	}
	if patch.WeightGrams != nil {
		add("weight", *patch.WeightGrams)
	}
	if patch.Condition != nil {
		add("condition", patch.Condition.String())
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.RetailPrice != nil {
		add("retail_price", *patch.RetailPrice)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.PhotoURLs != nil {
		add("photo_urls", patch.PhotoURLs)
	}
	if patch.Status != nil {
		add("status", patch.Status.String())
		switch *patch.Status {
		case item.StatusPending:
			sets = append(sets, "pending_since = COALESCE(pending_since, now())")
		default:
			sets = append(sets, "pending_since = NULL")
		}
		if *patch.Status == item.StatusAvailable {
			sets = append(sets, "claimed_by = NULL")
		}
	}

	stmt := "UPDATE inventory SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	tag, err := r.db.Exec(ctx, stmt, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// ConditionalClaim transitions every id from available to pending in a single
// conditional UPDATE. If any id is missing or not available the whole
// statement is short a row; the caller's transaction must then roll back,
// which undoes the rows that did match. The error carries the blocking ids.
func (r *InventoryRepository) ConditionalClaim(ctx context.Context, ids []uuid.UUID, orderID uuid.UUID, now time.Time) error {
	const stmt = `
UPDATE inventory
SET status = 'pending', pending_since = $3, claimed_by = $2, updated_at = now()
WHERE id = ANY($1) AND status = 'available'`

	tag, err := r.db.Exec(ctx, stmt, ids, orderID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to claim items", err)
	}

	if tag.RowsAffected() == int64(len(ids)) {
		return nil
	}

	taken, err := r.findUnclaimable(ctx, ids, orderID)
	if err != nil {
		return err
	}
	return infra.WrapRepoErr("claim lost the race", &UnavailableItemsError{ItemIDs: taken}, infra.KindConflict)
}

// ids that did not flip to this order: claimed by someone else, sold, or gone
func (r *InventoryRepository) findUnclaimable(ctx context.Context, ids []uuid.UUID, orderID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
SELECT id FROM inventory
WHERE id = ANY($1) AND (claimed_by IS DISTINCT FROM $2 OR status <> 'pending')`

	rows, err := r.db.Query(ctx, query, ids, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to inspect conflicting items", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting item id", err)
		}
		found[id] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read conflicting items", rows.Err())
	}

	// ids absent from the table entirely are conflicts too
	taken := make([]uuid.UUID, 0, len(found))
	for id := range found {
		taken = append(taken, id)
	}
	existing, err := r.existingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			taken = append(taken, id)
		}
	}
	sort.Slice(taken, func(i, j int) bool { return taken[i].String() < taken[j].String() })

	return taken, nil
}

func (r *InventoryRepository) existingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM inventory WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to look up item ids", err)
	}
	defer rows.Close()

	existing := make(map[uuid.UUID]struct{}, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item id", err)
		}
		existing[id] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read item ids", rows.Err())
	}
	return existing, nil
}

// Release puts pending items back on the shelf. Ids that are already
// available (or sold, or gone) are left untouched; calling it twice is safe.
func (r *InventoryRepository) Release(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	const stmt = `
UPDATE inventory
SET status = 'available', pending_since = NULL, claimed_by = NULL, updated_at = now()
WHERE id = ANY($1) AND status = 'pending'
RETURNING id`

	rows, err := r.db.Query(ctx, stmt, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to release items", err)
	}
	defer rows.Close()

	var released []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan released item id", err)
		}
		released = append(released, id)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read released items", rows.Err())
	}

	return released, nil
}

// MarkSold requires no prior pending state (admin override path); it is
// idempotent on items already sold. claimed_by is kept as the audit trail.
func (r *InventoryRepository) MarkSold(ctx context.Context, ids []uuid.UUID) error {
	const stmt = `
UPDATE inventory
SET status = 'sold', pending_since = NULL, updated_at = now()
WHERE id = ANY($1)`

	if _, err := r.db.Exec(ctx, stmt, ids); err != nil {
		return infra.WrapRepoErr("failed to mark items sold", err)
	}
	return nil
}

func (r *InventoryRepository) FindExpired(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	const query = `
SELECT id FROM inventory
WHERE status = 'pending' AND pending_since < $1
ORDER BY pending_since`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find expired holds", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired item id", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read expired holds", rows.Err())
	}

	return ids, nil
}
