package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// EscrowRepo implements ports.EscrowRepository.
type EscrowRepo struct {
	pool Pool
}

// NewEscrowRepo creates a new EscrowRepo.
func NewEscrowRepo(pool Pool) *EscrowRepo {
	return &EscrowRepo{pool: pool}
}

// Create inserts a new escrow. A partial unique index on milestone_id
// WHERE status = 'locked' enforces at most one live escrow per milestone.
func (r *EscrowRepo) Create(ctx context.Context, e *domain.Escrow) error {
	query := `INSERT INTO escrows
		(client_id, milestone_id, escrow_sequence, tx_hash, client_wallet_address, vendor_address,
		 amount_drops, currency, condition, encrypted_fulfillment, cancel_after, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		e.ClientID, e.MilestoneID, e.EscrowSequence, e.TxHash, e.ClientWalletAddress, e.VendorAddress,
		e.AmountDrops, e.Currency, e.Condition, e.EncryptedFulfillment, e.CancelAfter, e.Status, e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.ErrDuplicateEscrow(e.MilestoneID)
		}
		return fmt.Errorf("insert escrow: %w", err)
	}
	return nil
}

// GetByMilestoneID fetches an escrow by milestone ID. Returns nil, nil
// when none exists.
func (r *EscrowRepo) GetByMilestoneID(ctx context.Context, milestoneID string) (*domain.Escrow, error) {
	query := `SELECT client_id, milestone_id, escrow_sequence, tx_hash, client_wallet_address, vendor_address,
		amount_drops, currency, condition, encrypted_fulfillment, cancel_after, status,
		final_tx_hash, finalized_at, created_at
		FROM escrows WHERE milestone_id = $1
		ORDER BY created_at DESC LIMIT 1`

	e := &domain.Escrow{}
	err := r.pool.QueryRow(ctx, query, milestoneID).Scan(
		&e.ClientID, &e.MilestoneID, &e.EscrowSequence, &e.TxHash, &e.ClientWalletAddress, &e.VendorAddress,
		&e.AmountDrops, &e.Currency, &e.Condition, &e.EncryptedFulfillment, &e.CancelAfter, &e.Status,
		&e.FinalTxHash, &e.FinalizedAt, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get escrow by milestone id: %w", err)
	}
	return e, nil
}

// Finalize transitions a locked escrow to a terminal status. The status
// guard in the WHERE clause makes the transition single-shot: a
// concurrent finalization affects zero rows and reports false.
func (r *EscrowRepo) Finalize(ctx context.Context, milestoneID string, status domain.EscrowStatus, finalTxHash string, at time.Time) (bool, error) {
	query := `UPDATE escrows
		SET status = $1, final_tx_hash = $2, finalized_at = $3
		WHERE milestone_id = $4 AND status = 'locked'`

	tag, err := r.pool.Exec(ctx, query, status, finalTxHash, at, milestoneID)
	if err != nil {
		return false, fmt.Errorf("finalize escrow: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
