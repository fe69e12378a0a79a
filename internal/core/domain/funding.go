package domain

import (
	"time"

	"github.com/google/uuid"
)

// FundingRecord logs a reserve transfer from the operational gas account
// to a client wallet, tied back to the off-ledger wire reference that
// triggered it.
type FundingRecord struct {
	ID          uuid.UUID `json:"id"`
	ClientID    string    `json:"client_id"`
	AmountDrops int64     `json:"amount_drops"`
	WireRef     string    `json:"wire_ref,omitempty"`
	TxHash      string    `json:"tx_hash"`
	FundedAt    time.Time `json:"funded_at"`
}
