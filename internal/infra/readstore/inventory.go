package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dartshop/internal/infra"
	"dartshop/internal/infra/db"
	"dartshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const itemColumns = `id, type, brand, player, weight, condition, price, retail_price, notes, photo_urls, status, pending_since, claimed_by, created_at, updated_at`

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (r *InventoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory WHERE id = $1`

	view, err := scanItemView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}

	return view, nil
}

func (r *InventoryReadStore) Search(ctx context.Context, filter queries.ItemFilter) ([]*queries.ItemView, error) {
	query, args, err := buildSearchQuery(filter)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid item filter", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	var views []*queries.ItemView
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", rows.Err())
	}

	return views, nil
}

// buildSearchQuery combines the filter predicates conjunctively. The sort
// column comes from the filter's whitelist, never raw input.
func buildSearchQuery(filter queries.ItemFilter) (string, []any, error) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(filter.Types) > 0 {
		add("type = ANY($%d)", filter.Types)
	}
	if len(filter.Conditions) > 0 {
		add("condition = ANY($%d)", filter.Conditions)
	}
	if len(filter.Statuses) > 0 {
		add("status = ANY($%d)", filter.Statuses)
	}
	if filter.Brand != "" {
		add("brand ILIKE $%d", "%"+filter.Brand+"%")
	}
	if filter.MinWeight != nil {
		add("weight >= $%d", *filter.MinWeight)
	}
	if filter.MaxWeight != nil {
		add("weight <= $%d", *filter.MaxWeight)
	}
	if filter.MinPrice != nil {
		add("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= $%d", *filter.MaxPrice)
	}

	query := `SELECT ` + itemColumns + ` FROM inventory`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	sortCol, err := filter.SortColumn()
	if err != nil {
		return "", nil, err
	}
	direction := "ASC"
	if filter.SortDescending() {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id", sortCol, direction)

	return query, args, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var v queries.ItemView
	err := row.Scan(
		&v.ID,
		&v.Type,
		&v.Brand,
		&v.Player,
		&v.WeightGrams,
		&v.Condition,
		&v.Price,
		&v.RetailPrice,
		&v.Notes,
		&v.PhotoURLs,
		&v.Status,
		&v.PendingSince,
		&v.ClaimedBy,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
