package postgres

import (
	"context"
	"fmt"

	"xrpl-escrow-agent/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository. The table is append-only;
// there is deliberately no update or delete here.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create appends one audit entry.
func (r *AuditRepo) Create(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO audit_log
		(id, action, record_id, actor_context, before_state, after_state, sensitive, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Action, e.RecordID, e.ActorContext, e.Before, e.After, e.Sensitive, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByRecordID returns the newest entries for a record, newest first.
func (r *AuditRepo) ListByRecordID(ctx context.Context, recordID string, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, action, record_id, actor_context, before_state, after_state, sensitive, created_at
		FROM audit_log WHERE record_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, recordID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(
			&e.ID, &e.Action, &e.RecordID, &e.ActorContext, &e.Before, &e.After, &e.Sensitive, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
