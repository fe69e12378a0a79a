package postgres

import (
	"context"
	"fmt"

	"xrpl-escrow-agent/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// FundingRepo implements ports.FundingRepository.
type FundingRepo struct {
	pool Pool
}

// NewFundingRepo creates a new FundingRepo.
func NewFundingRepo(pool Pool) *FundingRepo {
	return &FundingRepo{pool: pool}
}

// Create records a reserve transfer. Runs inside the caller's transaction
// so the record commits together with the wallet activity bump.
func (r *FundingRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.FundingRecord) error {
	query := `INSERT INTO funding_records (id, client_id, amount_drops, wire_ref, tx_hash, funded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		rec.ID, rec.ClientID, rec.AmountDrops, rec.WireRef, rec.TxHash, rec.FundedAt,
	)
	if err != nil {
		return fmt.Errorf("insert funding record: %w", err)
	}
	return nil
}

// ListByClientID returns a client's funding history, newest first.
func (r *FundingRepo) ListByClientID(ctx context.Context, clientID string) ([]domain.FundingRecord, error) {
	query := `SELECT id, client_id, amount_drops, wire_ref, tx_hash, funded_at
		FROM funding_records WHERE client_id = $1
		ORDER BY funded_at DESC`

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list funding records: %w", err)
	}
	defer rows.Close()

	var records []domain.FundingRecord
	for rows.Next() {
		var rec domain.FundingRecord
		if err := rows.Scan(
			&rec.ID, &rec.ClientID, &rec.AmountDrops, &rec.WireRef, &rec.TxHash, &rec.FundedAt,
		); err != nil {
			return nil, fmt.Errorf("scan funding record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate funding records: %w", err)
	}
	return records, nil
}
