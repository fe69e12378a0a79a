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

// uniqueViolation is the PostgreSQL error code for a unique constraint
// breach.
const uniqueViolation = "23505"

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new segregated wallet. The unique index on client_id
// enforces one wallet per client; a violation surfaces as a duplicate
// wallet error.
func (r *WalletRepo) Create(ctx context.Context, w *domain.SegregatedWallet) error {
	query := `INSERT INTO segregated_wallets
		(client_id, project_id, master_address, master_public_key, encrypted_master_seed,
		 delegate_address, delegation_enabled, network, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		w.ClientID, w.ProjectID, w.MasterAddress, w.MasterPublicKey, w.EncryptedMasterSeed,
		w.DelegateAddress, w.DelegationEnabled, w.Network, w.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.ErrDuplicateWallet(w.ClientID)
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByClientID fetches a wallet by client ID. Returns nil, nil when no
// wallet exists.
func (r *WalletRepo) GetByClientID(ctx context.Context, clientID string) (*domain.SegregatedWallet, error) {
	query := `SELECT client_id, project_id, master_address, master_public_key, encrypted_master_seed,
		delegate_address, delegation_enabled, network, created_at, last_activity_at
		FROM segregated_wallets WHERE client_id = $1`

	w := &domain.SegregatedWallet{}
	err := r.pool.QueryRow(ctx, query, clientID).Scan(
		&w.ClientID, &w.ProjectID, &w.MasterAddress, &w.MasterPublicKey, &w.EncryptedMasterSeed,
		&w.DelegateAddress, &w.DelegationEnabled, &w.Network, &w.CreatedAt, &w.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by client id: %w", err)
	}
	return w, nil
}

// UpdateDelegation flips the delegation flag after the corresponding
// ledger transaction validated.
func (r *WalletRepo) UpdateDelegation(ctx context.Context, clientID string, enabled bool) error {
	query := `UPDATE segregated_wallets
		SET delegation_enabled = $1, last_activity_at = NOW()
		WHERE client_id = $2`

	tag, err := r.pool.Exec(ctx, query, enabled, clientID)
	if err != nil {
		return fmt.Errorf("update delegation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", clientID)
	}
	return nil
}

// TouchActivity bumps the wallet's activity timestamp within a
// transaction.
func (r *WalletRepo) TouchActivity(ctx context.Context, tx pgx.Tx, clientID string, at time.Time) error {
	query := `UPDATE segregated_wallets SET last_activity_at = $1 WHERE client_id = $2`

	tag, err := tx.Exec(ctx, query, at, clientID)
	if err != nil {
		return fmt.Errorf("touch wallet activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", clientID)
	}
	return nil
}
