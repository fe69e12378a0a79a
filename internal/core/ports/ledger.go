package ports

import (
	"context"

	"xrpl-escrow-agent/internal/adapter/ledger"
)

// LedgerClient is the XRPL network collaborator. Implementations submit
// signed transactions, wait for finality, and read validated state only.
type LedgerClient interface {
	// Connect is idempotent; Close tears down cleanly.
	Connect(ctx context.Context) error
	Close()

	// SubmitAndWait blocks until the transaction reaches a validated
	// ledger. Success requires a tesSUCCESS engine result; any other
	// validated result is a definite failure, not a retry candidate.
	SubmitAndWait(ctx context.Context, tx ledger.Transaction, seed string) (*ledger.SubmitResult, error)

	// Tx looks up a transaction by hash, for reconciling submissions
	// whose outcome is unknown after a timeout.
	Tx(ctx context.Context, hash string) (*ledger.TxResult, error)

	AccountInfo(ctx context.Context, address string) (*ledger.AccountInfo, error)
	AccountLines(ctx context.Context, address string) ([]ledger.TrustLine, error)
}
