package ports

import (
	"context"
	"time"

	"xrpl-escrow-agent/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for segregated wallets.
// One wallet per client identity; rows are never deleted.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.SegregatedWallet) error
	GetByClientID(ctx context.Context, clientID string) (*domain.SegregatedWallet, error)
	UpdateDelegation(ctx context.Context, clientID string, enabled bool) error
	TouchActivity(ctx context.Context, tx pgx.Tx, clientID string, at time.Time) error
}

// EscrowRepository defines persistence operations for escrows. At most
// one locked escrow may exist per milestone.
type EscrowRepository interface {
	Create(ctx context.Context, escrow *domain.Escrow) error
	GetByMilestoneID(ctx context.Context, milestoneID string) (*domain.Escrow, error)
	// Finalize transitions a locked escrow to a terminal status. It must
	// affect zero rows when the escrow is no longer locked, so a
	// concurrent finalization loses cleanly.
	Finalize(ctx context.Context, milestoneID string, status domain.EscrowStatus, finalTxHash string, at time.Time) (bool, error)
}

// AuditRepository is the append-only custody trail. There is deliberately
// no update or delete operation.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListByRecordID(ctx context.Context, recordID string, limit int) ([]domain.AuditEntry, error)
}

// FundingRepository records reserve transfers from the gas account.
type FundingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.FundingRecord) error
	ListByClientID(ctx context.Context, clientID string) ([]domain.FundingRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
