package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction enumerates custody-relevant actions. Every one of them
// writes an entry as part of the operation's success contract.
type AuditAction string

const (
	AuditActionWalletCreate     AuditAction = "WALLET_CREATE"
	AuditActionWalletFund       AuditAction = "WALLET_FUND"
	AuditActionDelegationEnable AuditAction = "DELEGATION_ENABLE"
	AuditActionDelegationRevoke AuditAction = "DELEGATION_REVOKE"
	AuditActionEscrowDeploy     AuditAction = "ESCROW_DEPLOY"
	AuditActionEscrowRelease    AuditAction = "ESCROW_RELEASE"
	AuditActionEscrowCancel     AuditAction = "ESCROW_CANCEL"
	AuditActionMasterKeyExport  AuditAction = "MASTER_KEY_EXPORT"
)

// AuditEntry is one row of the append-only custody trail. Entries are
// never updated or deleted.
type AuditEntry struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	RecordID     string      `json:"record_id"` // client or milestone id
	ActorContext string      `json:"actor_context"`
	Before       *string     `json:"before,omitempty"` // JSON snapshot
	After        *string     `json:"after,omitempty"`  // JSON snapshot
	Sensitive    bool        `json:"sensitive"`
	CreatedAt    time.Time   `json:"created_at"`
}
