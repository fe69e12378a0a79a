package ports

import (
	"context"
	"time"

	"xrpl-escrow-agent/internal/adapter/ledger"
	"xrpl-escrow-agent/internal/core/domain"
)

// EncryptionService protects long-lived secrets at rest (master seeds,
// escrow fulfillments) with AES-256-GCM.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	// Decrypt fails on a malformed envelope or wrong key; it never
	// returns a plausible-looking wrong plaintext.
	Decrypt(envelope string) (string, error)
}

// ConditionGenerator produces and checks PREIMAGE-SHA-256 crypto
// conditions for conditional payments.
type ConditionGenerator interface {
	// Generate returns a publishable condition and its secret
	// fulfillment, both uppercase hex.
	Generate() (condition, fulfillment string, err error)
	// Verify reports whether the fulfillment's preimage hashes to the
	// condition.
	Verify(condition, fulfillment string) bool
}

// AuditService appends custody-trail entries synchronously. A custody
// operation whose audit write fails did not fully succeed.
type AuditService interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
}

// ApprovalVerifier is the external 2FA collaborator gating master-key
// export. Verify fails unless the token proves the client approved the
// export.
type ApprovalVerifier interface {
	Verify(ctx context.Context, clientID, token string) error
}

// BalanceCache holds recently fetched validated balances for the read
// API. Custody operations never consult it.
type BalanceCache interface {
	Get(ctx context.Context, address string) (*domain.Balance, error)
	Set(ctx context.Context, balance *domain.Balance, ttl time.Duration) error
}

// DeployGuard rejects concurrent escrow deployments for the same
// milestone before the database unique index has to.
type DeployGuard interface {
	// Acquire returns false when another deployment holds the milestone.
	Acquire(ctx context.Context, milestoneID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, milestoneID string) error
}

// DelegatedSigner signs and submits a ledger transaction on a client's
// behalf using the service's delegate key. The transaction's Account must
// be the client's own address: the delegate proves authorization, it
// never becomes the owner.
type DelegatedSigner interface {
	DelegatedSign(ctx context.Context, clientID string, tx ledger.Transaction) (*ledger.SubmitResult, error)
}

// --- Service Ports (Business Logic) ---

// MasterKeyExport is the result of an approved key export.
type MasterKeyExport struct {
	ClientID   string `json:"client_id"`
	MasterSeed string `json:"master_seed"`
	Address    string `json:"address"`
}

// FundResult reports a funding operation. Transferred is false when the
// wallet already met the reserve target and no payment was made.
type FundResult struct {
	TxHash       string `json:"tx_hash,omitempty"`
	Transferred  bool   `json:"transferred"`
	BalanceDrops int64  `json:"balance_drops"`
}

// WalletService is the custody core: wallet lifecycle, delegation, and
// delegated signing.
type WalletService interface {
	DelegatedSigner

	CreateWallet(ctx context.Context, clientID string, projectID *string) (*domain.SegregatedWallet, error)
	FundWallet(ctx context.Context, clientID string, reserveDrops int64, wireRef string) (*FundResult, error)
	EnableDelegation(ctx context.Context, clientID string) (string, error)
	RevokeDelegation(ctx context.Context, clientID string) (string, error)
	ExportMasterKey(ctx context.Context, clientID, approvalToken string) (*MasterKeyExport, error)
	GetBalance(ctx context.Context, address string) (*domain.Balance, error)
}

// DeployEscrowRequest holds validated input for escrow deployment.
type DeployEscrowRequest struct {
	ClientID      string
	VendorAddress string
	AmountDrops   int64
	MilestoneID   string
	Description   string
}

// EscrowService is the conditional-payment core.
type EscrowService interface {
	DeployEscrow(ctx context.Context, req DeployEscrowRequest) (*domain.Escrow, error)
	ReleaseEscrow(ctx context.Context, clientID, milestoneID string) (string, error)
	CancelEscrow(ctx context.Context, clientID, milestoneID string) (string, error)
	GetEscrowStatus(ctx context.Context, milestoneID string) (*domain.Escrow, error)
}
