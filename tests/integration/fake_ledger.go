package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"xrpl-escrow-agent/internal/adapter/ledger"
	"xrpl-escrow-agent/pkg/apperror"
)

// fakeLedger simulates a validated XRPL in memory: balances, regular
// keys, and escrow objects. It enforces the same authorization rules the
// network does, so the delegation and hash-lock semantics are exercised
// end-to-end rather than mocked away.
type fakeLedger struct {
	mu          sync.Mutex
	balances    map[string]int64
	regularKeys map[string]string // master address -> authorized regular key
	sequences   map[string]uint32
	escrows     map[string]*heldEscrow // "owner/sequence"
	txs         map[string]*ledger.TxResult
	txCounter   int
	now         func() time.Time
}

type heldEscrow struct {
	destination string
	amountDrops int64
	condition   string
	cancelAfter *time.Time
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		balances:    make(map[string]int64),
		regularKeys: make(map[string]string),
		sequences:   make(map[string]uint32),
		escrows:     make(map[string]*heldEscrow),
		txs:         make(map[string]*ledger.TxResult),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (f *fakeLedger) fund(address string, drops int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[address] += drops
}

func (f *fakeLedger) balanceOf(address string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[address]
}

func (f *fakeLedger) Connect(ctx context.Context) error { return nil }
func (f *fakeLedger) Close()                            {}

func (f *fakeLedger) SubmitAndWait(ctx context.Context, tx ledger.Transaction, seed string) (*ledger.SubmitResult, error) {
	if _, err := tx.TxJSON(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	kp, err := ledger.KeyPairFromSeed(seed)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.txCounter++
	hash := fmt.Sprintf("%064X", f.txCounter)
	f.sequences[tx.Account()]++
	seq := f.sequences[tx.Account()]

	// A signer that is not the account holder must be that account's
	// registered regular key.
	if kp.Address != tx.Account() && f.regularKeys[tx.Account()] != kp.Address {
		return nil, f.reject(hash, seq, "tefBAD_AUTH")
	}

	switch t := tx.(type) {
	case ledger.PaymentTx:
		if f.balances[t.From] < t.AmountDrops {
			return nil, f.reject(hash, seq, "tecUNFUNDED_PAYMENT")
		}
		f.balances[t.From] -= t.AmountDrops
		f.balances[t.Destination] += t.AmountDrops

	case ledger.SetRegularKeyTx:
		if t.RegularKey == "" {
			delete(f.regularKeys, t.From)
		} else {
			f.regularKeys[t.From] = t.RegularKey
		}

	case ledger.TrustSetTx:
		// Trust lines are tracked implicitly; nothing to apply.

	case ledger.EscrowCreateTx:
		if f.balances[t.From] < t.AmountDrops {
			return nil, f.reject(hash, seq, "tecUNFUNDED")
		}
		f.balances[t.From] -= t.AmountDrops
		f.escrows[escrowKey(t.From, seq)] = &heldEscrow{
			destination: t.Destination,
			amountDrops: t.AmountDrops,
			condition:   t.Condition,
			cancelAfter: t.CancelAfter,
		}

	case ledger.EscrowFinishTx:
		held, ok := f.escrows[escrowKey(t.Owner, t.OfferSequence)]
		if !ok {
			return nil, f.reject(hash, seq, "tecNO_TARGET")
		}
		if !fulfillmentMatches(t.Fulfillment, held.condition) {
			return nil, f.reject(hash, seq, "tecCRYPTOCONDITION_ERROR")
		}
		f.balances[held.destination] += held.amountDrops
		delete(f.escrows, escrowKey(t.Owner, t.OfferSequence))

	case ledger.EscrowCancelTx:
		held, ok := f.escrows[escrowKey(t.Owner, t.OfferSequence)]
		if !ok {
			return nil, f.reject(hash, seq, "tecNO_TARGET")
		}
		if held.cancelAfter != nil && f.now().Before(*held.cancelAfter) {
			return nil, f.reject(hash, seq, "tecNO_PERMISSION")
		}
		f.balances[t.Owner] += held.amountDrops
		delete(f.escrows, escrowKey(t.Owner, t.OfferSequence))

	default:
		return nil, apperror.InternalError(fmt.Errorf("unsupported transaction type %T", tx))
	}

	f.txs[hash] = &ledger.TxResult{Hash: hash, Validated: true, EngineResult: "tesSUCCESS", Sequence: seq}
	return &ledger.SubmitResult{Hash: hash, EngineResult: "tesSUCCESS", Sequence: seq, Validated: true}, nil
}

// reject records a validated failure and returns the engine error,
// mirroring what a real validated non-tes result produces.
func (f *fakeLedger) reject(hash string, seq uint32, engineResult string) error {
	f.txs[hash] = &ledger.TxResult{Hash: hash, Validated: true, EngineResult: engineResult, Sequence: seq}
	return apperror.ErrLedgerEngine(engineResult, hash)
}

func (f *fakeLedger) Tx(ctx context.Context, hash string) (*ledger.TxResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.txs[hash]
	if !ok {
		return &ledger.TxResult{Hash: hash, Validated: false}, nil
	}
	return res, nil
}

func (f *fakeLedger) AccountInfo(ctx context.Context, address string) (*ledger.AccountInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	balance, ok := f.balances[address]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return &ledger.AccountInfo{Address: address, BalanceDrops: balance, Sequence: f.sequences[address]}, nil
}

func (f *fakeLedger) AccountLines(ctx context.Context, address string) ([]ledger.TrustLine, error) {
	return nil, nil
}

func escrowKey(owner string, sequence uint32) string {
	return fmt.Sprintf("%s/%d", owner, sequence)
}

// fulfillmentMatches applies the PREIMAGE-SHA-256 rule: the preimage
// inside the fulfillment envelope must hash to the condition.
func fulfillmentMatches(fulfillment, condition string) bool {
	raw, err := hex.DecodeString(fulfillment)
	if err != nil || len(raw) <= 2 {
		return false
	}
	digest := sha256.Sum256(raw[2:])
	return strings.EqualFold(hex.EncodeToString(digest[:]), condition)
}
