package domain

import "time"

// Network identifies the target XRPL environment. Every operation on a
// wallet must run against the network the wallet was created on.
type Network string

const (
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"
)

// SegregatedWallet is a client-owned XRPL account under the agent model:
// the master key belongs to the client (seed stored encrypted at rest),
// while the service holds a single regular key authorized to sign on the
// account's behalf. Rows are never deleted; disabling delegation
// deactivates the wallet logically.
type SegregatedWallet struct {
	ClientID            string     `json:"client_id"`
	ProjectID           *string    `json:"project_id,omitempty"`
	MasterAddress       string     `json:"master_address"`
	MasterPublicKey     string     `json:"master_public_key"`
	EncryptedMasterSeed string     `json:"-"` // AES-256-GCM envelope, never expose
	DelegateAddress     string     `json:"delegate_address"`
	DelegationEnabled   bool       `json:"delegation_enabled"`
	Network             Network    `json:"network"`
	CreatedAt           time.Time  `json:"created_at"`
	LastActivityAt      *time.Time `json:"last_activity_at,omitempty"`
}

// CanDelegateSign reports whether the service may sign on this wallet's
// behalf. Callers must re-read the wallet immediately before checking:
// the client can revoke delegation on-ledger at any time.
func (w *SegregatedWallet) CanDelegateSign() bool {
	return w.DelegationEnabled
}

// Balance is a point-in-time view of a wallet's validated ledger state.
type Balance struct {
	Address            string    `json:"address"`
	NativeDrops        int64     `json:"native_drops"`
	SettlementBalance  string    `json:"settlement_balance"`
	SettlementCurrency string    `json:"settlement_currency"`
	FetchedAt          time.Time `json:"fetched_at"`
}
