package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]domain.SegregatedWallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[string]domain.SegregatedWallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.SegregatedWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.ClientID]; ok {
		return apperror.ErrDuplicateWallet(w.ClientID)
	}
	r.wallets[w.ClientID] = *w
	return nil
}

func (r *inMemoryWalletRepo) GetByClientID(ctx context.Context, clientID string) (*domain.SegregatedWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[clientID]
	if !ok {
		return nil, nil
	}
	copied := w
	return &copied, nil
}

func (r *inMemoryWalletRepo) UpdateDelegation(ctx context.Context, clientID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[clientID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	now := time.Now().UTC()
	w.DelegationEnabled = enabled
	w.LastActivityAt = &now
	r.wallets[clientID] = w
	return nil
}

func (r *inMemoryWalletRepo) TouchActivity(ctx context.Context, tx pgx.Tx, clientID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[clientID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.LastActivityAt = &at
	r.wallets[clientID] = w
	return nil
}

// --- In-Memory Escrow Repo ---

type inMemoryEscrowRepo struct {
	mu      sync.RWMutex
	escrows map[string]domain.Escrow
}

func newInMemoryEscrowRepo() *inMemoryEscrowRepo {
	return &inMemoryEscrowRepo{escrows: make(map[string]domain.Escrow)}
}

func (r *inMemoryEscrowRepo) Create(ctx context.Context, e *domain.Escrow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.escrows[e.MilestoneID]; ok && existing.Status == domain.EscrowStatusLocked {
		return apperror.ErrDuplicateEscrow(e.MilestoneID)
	}
	r.escrows[e.MilestoneID] = *e
	return nil
}

func (r *inMemoryEscrowRepo) GetByMilestoneID(ctx context.Context, milestoneID string) (*domain.Escrow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.escrows[milestoneID]
	if !ok {
		return nil, nil
	}
	copied := e
	return &copied, nil
}

func (r *inMemoryEscrowRepo) Finalize(ctx context.Context, milestoneID string, status domain.EscrowStatus, finalTxHash string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.escrows[milestoneID]
	if !ok || e.Status != domain.EscrowStatusLocked {
		return false, nil
	}
	e.Status = status
	e.FinalTxHash = &finalTxHash
	e.FinalizedAt = &at
	r.escrows[milestoneID] = e
	return true, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryAuditRepo) ListByRecordID(ctx context.Context, recordID string, limit int) ([]domain.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 {
		limit = 50
	}
	var out []domain.AuditEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].RecordID == recordID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

// --- In-Memory Funding Repo ---

type inMemoryFundingRepo struct {
	mu      sync.RWMutex
	records []domain.FundingRecord
}

func newInMemoryFundingRepo() *inMemoryFundingRepo {
	return &inMemoryFundingRepo{}
}

func (r *inMemoryFundingRepo) Create(ctx context.Context, tx pgx.Tx, record *domain.FundingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *inMemoryFundingRepo) ListByClientID(ctx context.Context, clientID string) ([]domain.FundingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.FundingRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].ClientID == clientID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

// --- In-Memory Transactor ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *noopTx) Conn() *pgx.Conn                                               { return nil }
