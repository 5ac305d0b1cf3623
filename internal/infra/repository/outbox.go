package repository

import (
	"context"
	"time"

	"dartshop/internal/infra"
	"dartshop/internal/infra/db"
)

// Job is one undelivered event row. Jobs are written in the same transaction
// as the state change they describe, so an event exists iff the change
// committed.
type Job struct {
	ID      int64
	Kind    string
	Payload []byte
	RunAt   time.Time
}

type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, kind string, payload []byte, runAt time.Time) error {
	const stmt = `
INSERT INTO notification_jobs (kind, payload, run_at)
VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, stmt, kind, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

// ClaimDue marks up to limit due jobs done and returns them. SKIP LOCKED
// keeps concurrent relay instances from double-delivering.
func (r *OutboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]Job, error) {
	const stmt = `
UPDATE notification_jobs
SET done_at = $1
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE done_at IS NULL AND run_at <= $1
    ORDER BY run_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, payload, run_at`

	rows, err := r.db.Query(ctx, stmt, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Kind, &j.Payload, &j.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", rows.Err())
	}

	return jobs, nil
}
