package ledger

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Transaction is a ledger transaction of a specific kind. Each variant
// carries exactly the fields its kind requires and validates them at
// construction time, instead of leaving malformed submissions for the
// network to reject.
type Transaction interface {
	// TxJSON renders the transaction for the submit call.
	TxJSON() (map[string]any, error)
	// Account returns the address the transaction acts on.
	Account() string
}

// rippleEpoch is the offset between Unix time and ledger time.
var rippleEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func rippleTime(t time.Time) int64 {
	return int64(t.Sub(rippleEpoch) / time.Second)
}

// PaymentTx moves native drops between accounts.
type PaymentTx struct {
	From        string
	Destination string
	AmountDrops int64
}

func (t PaymentTx) Account() string { return t.From }

func (t PaymentTx) TxJSON() (map[string]any, error) {
	if t.From == "" || t.Destination == "" {
		return nil, fmt.Errorf("payment requires source and destination")
	}
	if t.AmountDrops <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %d", t.AmountDrops)
	}
	return map[string]any{
		"TransactionType": "Payment",
		"Account":         t.From,
		"Destination":     t.Destination,
		"Amount":          strconv.FormatInt(t.AmountDrops, 10),
	}, nil
}

// TrustSetTx declares acceptance of an issued currency.
type TrustSetTx struct {
	From     string
	Currency string
	Issuer   string
	Limit    string
}

func (t TrustSetTx) Account() string { return t.From }

func (t TrustSetTx) TxJSON() (map[string]any, error) {
	if t.From == "" || t.Currency == "" || t.Issuer == "" {
		return nil, fmt.Errorf("trust set requires account, currency and issuer")
	}
	limit := t.Limit
	if limit == "" {
		limit = "1000000000"
	}
	return map[string]any{
		"TransactionType": "TrustSet",
		"Account":         t.From,
		"LimitAmount": map[string]any{
			"currency": t.Currency,
			"issuer":   t.Issuer,
			"value":    limit,
		},
	}, nil
}

// SetRegularKeyTx grants or revokes delegated signing rights. An empty
// RegularKey revokes the delegation.
type SetRegularKeyTx struct {
	From       string
	RegularKey string
}

func (t SetRegularKeyTx) Account() string { return t.From }

func (t SetRegularKeyTx) TxJSON() (map[string]any, error) {
	if t.From == "" {
		return nil, fmt.Errorf("set regular key requires an account")
	}
	tx := map[string]any{
		"TransactionType": "SetRegularKey",
		"Account":         t.From,
	}
	if t.RegularKey != "" {
		tx["RegularKey"] = t.RegularKey
	}
	return tx, nil
}

// EscrowCreateTx locks funds behind a hash condition and an optional
// expiry after which only cancellation is possible.
type EscrowCreateTx struct {
	From        string
	Destination string
	AmountDrops int64
	Condition   string
	CancelAfter *time.Time
	Memo        string
}

func (t EscrowCreateTx) Account() string { return t.From }

func (t EscrowCreateTx) TxJSON() (map[string]any, error) {
	if t.From == "" || t.Destination == "" {
		return nil, fmt.Errorf("escrow create requires source and destination")
	}
	if t.AmountDrops <= 0 {
		return nil, fmt.Errorf("escrow amount must be positive, got %d", t.AmountDrops)
	}
	if t.Condition == "" {
		return nil, fmt.Errorf("escrow create requires a condition")
	}
	tx := map[string]any{
		"TransactionType": "EscrowCreate",
		"Account":         t.From,
		"Destination":     t.Destination,
		"Amount":          strconv.FormatInt(t.AmountDrops, 10),
		"Condition":       t.Condition,
	}
	if t.CancelAfter != nil {
		tx["CancelAfter"] = rippleTime(*t.CancelAfter)
	}
	if t.Memo != "" {
		tx["Memos"] = memos(t.Memo)
	}
	return tx, nil
}

// EscrowFinishTx releases a held escrow by revealing the fulfillment.
// The ledger, not this service, verifies the fulfillment matches the
// condition before moving funds.
type EscrowFinishTx struct {
	From          string
	Owner         string
	OfferSequence uint32
	Condition     string
	Fulfillment   string
	Memo          string
}

func (t EscrowFinishTx) Account() string { return t.From }

func (t EscrowFinishTx) TxJSON() (map[string]any, error) {
	if t.From == "" || t.Owner == "" {
		return nil, fmt.Errorf("escrow finish requires account and owner")
	}
	if t.OfferSequence == 0 {
		return nil, fmt.Errorf("escrow finish requires the creating transaction sequence")
	}
	if t.Condition == "" || t.Fulfillment == "" {
		return nil, fmt.Errorf("escrow finish requires condition and fulfillment")
	}
	tx := map[string]any{
		"TransactionType": "EscrowFinish",
		"Account":         t.From,
		"Owner":           t.Owner,
		"OfferSequence":   t.OfferSequence,
		"Condition":       t.Condition,
		"Fulfillment":     t.Fulfillment,
	}
	if t.Memo != "" {
		tx["Memos"] = memos(t.Memo)
	}
	return tx, nil
}

// EscrowCancelTx returns expired escrowed funds to the owner. The ledger
// rejects cancellation before CancelAfter has passed.
type EscrowCancelTx struct {
	From          string
	Owner         string
	OfferSequence uint32
}

func (t EscrowCancelTx) Account() string { return t.From }

func (t EscrowCancelTx) TxJSON() (map[string]any, error) {
	if t.From == "" || t.Owner == "" {
		return nil, fmt.Errorf("escrow cancel requires account and owner")
	}
	if t.OfferSequence == 0 {
		return nil, fmt.Errorf("escrow cancel requires the creating transaction sequence")
	}
	return map[string]any{
		"TransactionType": "EscrowCancel",
		"Account":         t.From,
		"Owner":           t.Owner,
		"OfferSequence":   t.OfferSequence,
	}, nil
}

func memos(data string) []map[string]any {
	return []map[string]any{
		{"Memo": map[string]any{
			"MemoData": hex.EncodeToString([]byte(data)),
		}},
	}
}
