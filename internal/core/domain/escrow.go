package domain

import "time"

// EscrowStatus is the lifecycle state of an on-ledger escrow.
// locked -> released or locked -> cancelled, terminal either way. The
// ledger enforces single use of the owner+sequence pair, so exactly one
// of the two transitions can ever succeed.
type EscrowStatus string

const (
	EscrowStatusLocked    EscrowStatus = "locked"
	EscrowStatusReleased  EscrowStatus = "released"
	EscrowStatusCancelled EscrowStatus = "cancelled"
)

// Escrow is a conditional payment hold deployed from a client's
// segregated wallet. It is identified on-ledger by the owner address plus
// the sequence number of the creating transaction, and in this system by
// its milestone ID (at most one locked escrow per milestone).
type Escrow struct {
	ClientID             string       `json:"client_id"`
	MilestoneID          string       `json:"milestone_id"`
	EscrowSequence       uint32       `json:"escrow_sequence"`
	TxHash               string       `json:"tx_hash"`
	ClientWalletAddress  string       `json:"client_wallet_address"`
	VendorAddress        string       `json:"vendor_address"`
	AmountDrops          int64        `json:"amount_drops"`
	Currency             string       `json:"currency"`
	Condition            string       `json:"condition"`
	EncryptedFulfillment string       `json:"-"` // revealing the preimage releases funds
	CancelAfter          *time.Time   `json:"cancel_after,omitempty"`
	Status               EscrowStatus `json:"status"`
	FinalTxHash          *string      `json:"final_tx_hash,omitempty"`
	FinalizedAt          *time.Time   `json:"finalized_at,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
}

// IsFinal reports whether the escrow has reached a terminal state.
func (e *Escrow) IsFinal() bool {
	return e.Status != EscrowStatusLocked
}
