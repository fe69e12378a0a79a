package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"xrpl-escrow-agent/config"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/rs/zerolog"
)

// ErrAccountNotFound is returned by account queries when the address has
// no funded account on the validated ledger yet.
var ErrAccountNotFound = errors.New("account not found on validated ledger")

// SubmitResult is the outcome of a submitted-and-validated transaction.
type SubmitResult struct {
	Hash         string
	EngineResult string
	Sequence     uint32 // account sequence consumed by the transaction
	Validated    bool
}

// AccountInfo is validated account state.
type AccountInfo struct {
	Address      string
	BalanceDrops int64
	Sequence     uint32
}

// TrustLine is one issued-currency balance on an account.
type TrustLine struct {
	Currency string
	Issuer   string
	Balance  string
}

// TxResult is a validated-transaction lookup, used for reconciliation
// after a submission timeout.
type TxResult struct {
	Hash         string
	Validated    bool
	EngineResult string
	Sequence     uint32
}

// Client talks to an XRPL node over its JSON-RPC HTTP API. A single
// shared client is used for all submissions; per-account serialization is
// the caller's responsibility.
type Client struct {
	cfg  config.LedgerConfig
	http *http.Client
	log  zerolog.Logger

	mu        sync.Mutex
	connected bool
}

// NewClient creates a ledger client for the configured endpoint.
func NewClient(cfg config.LedgerConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
		log:  log,
	}
}

// Connect verifies connectivity with a server_info call. It is a no-op
// when already connected.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return nil
	}

	var info struct {
		Info struct {
			BuildVersion string `json:"build_version"`
		} `json:"info"`
	}
	if err := c.call(ctx, "server_info", map[string]any{}, &info); err != nil {
		return err
	}

	c.connected = true
	c.log.Info().
		Str("endpoint", c.cfg.URL()).
		Str("network", c.cfg.Network).
		Str("server_version", info.Info.BuildVersion).
		Msg("ledger connection established")
	return nil
}

// Close tears the client down. Safe to call repeatedly.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return
	}
	c.http.CloseIdleConnections()
	c.connected = false
}

// SubmitAndWait submits a transaction in sign-and-submit mode and blocks
// until the network reports a validated result or the validation budget
// lapses. A tesSUCCESS engine result on the validated transaction is the
// only success outcome; any other validated code is a definite failure.
func (c *Client) SubmitAndWait(ctx context.Context, tx Transaction, seed string) (*SubmitResult, error) {
	txJSON, err := tx.TxJSON()
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var submitted struct {
		EngineResult string `json:"engine_result"`
		TxJSON       struct {
			Hash     string `json:"hash"`
			Sequence uint32 `json:"Sequence"`
		} `json:"tx_json"`
	}
	err = c.call(ctx, "submit", map[string]any{
		"tx_json": txJSON,
		"secret":  seed,
	}, &submitted)
	if err != nil {
		return nil, err
	}

	hash := submitted.TxJSON.Hash
	engine := submitted.EngineResult

	// tes = applied, ter = retriable by the network itself (kept in the
	// queue); both may still validate. Everything else burned the attempt.
	if !strings.HasPrefix(engine, "tes") && !strings.HasPrefix(engine, "ter") {
		return nil, apperror.ErrLedgerEngine(engine, hash)
	}

	return c.awaitValidation(ctx, hash, submitted.TxJSON.Sequence)
}

// awaitValidation polls tx until the transaction appears in a validated
// ledger. A timeout is surfaced as LGR_003 with the hash: the caller must
// reconcile, not resubmit blindly.
func (c *Client) awaitValidation(ctx context.Context, hash string, sequence uint32) (*SubmitResult, error) {
	deadline := time.Now().Add(c.cfg.ValidationWait)
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		res, err := c.Tx(ctx, hash)
		if err == nil && res.Validated {
			if res.EngineResult != "tesSUCCESS" {
				return nil, apperror.ErrLedgerEngine(res.EngineResult, hash)
			}
			seq := res.Sequence
			if seq == 0 {
				seq = sequence
			}
			return &SubmitResult{
				Hash:         hash,
				EngineResult: res.EngineResult,
				Sequence:     seq,
				Validated:    true,
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, apperror.ErrLedgerTimeout(hash)
		}

		select {
		case <-ctx.Done():
			return nil, apperror.ErrLedgerTimeout(hash)
		case <-ticker.C:
		}
	}
}

// Tx looks up a transaction by hash. Used by SubmitAndWait and by callers
// reconciling an unknown-outcome submission.
func (c *Client) Tx(ctx context.Context, hash string) (*TxResult, error) {
	var res struct {
		Hash      string `json:"hash"`
		Sequence  uint32 `json:"Sequence"`
		Validated bool   `json:"validated"`
		Meta      struct {
			TransactionResult string `json:"TransactionResult"`
		} `json:"meta"`
	}
	err := c.call(ctx, "tx", map[string]any{
		"transaction": hash,
		"binary":      false,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &TxResult{
		Hash:         res.Hash,
		Validated:    res.Validated,
		EngineResult: res.Meta.TransactionResult,
		Sequence:     res.Sequence,
	}, nil
}

// AccountInfo reads validated account state (never speculative).
func (c *Client) AccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	var res struct {
		AccountData struct {
			Balance  string `json:"Balance"`
			Sequence uint32 `json:"Sequence"`
		} `json:"account_data"`
	}
	err := c.call(ctx, "account_info", map[string]any{
		"account":      address,
		"ledger_index": "validated",
	}, &res)
	if err != nil {
		return nil, err
	}

	drops, err := strconv.ParseInt(res.AccountData.Balance, 10, 64)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parsing balance %q: %w", res.AccountData.Balance, err))
	}
	return &AccountInfo{
		Address:      address,
		BalanceDrops: drops,
		Sequence:     res.AccountData.Sequence,
	}, nil
}

// AccountLines reads validated trust-line balances.
func (c *Client) AccountLines(ctx context.Context, address string) ([]TrustLine, error) {
	var res struct {
		Lines []struct {
			Account  string `json:"account"`
			Currency string `json:"currency"`
			Balance  string `json:"balance"`
		} `json:"lines"`
	}
	err := c.call(ctx, "account_lines", map[string]any{
		"account":      address,
		"ledger_index": "validated",
	}, &res)
	if err != nil {
		return nil, err
	}

	lines := make([]TrustLine, 0, len(res.Lines))
	for _, l := range res.Lines {
		lines = append(lines, TrustLine{
			Currency: l.Currency,
			Issuer:   l.Account,
			Balance:  l.Balance,
		})
	}
	return lines, nil
}

type rpcRequest struct {
	Method string           `json:"method"`
	Params [1]map[string]any `json:"params"`
}

type rpcResult struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// call posts one JSON-RPC request and decodes result into out. Transport
// failures are surfaced as LGR_002 (retryable), node-reported errors as
// non-retryable failures so callers never replay a rejected request
// verbatim.
func (c *Client) call(ctx context.Context, method string, params map[string]any, out any) error {
	body, err := json.Marshal(rpcRequest{Method: method, Params: [1]map[string]any{params}})
	if err != nil {
		return apperror.InternalError(fmt.Errorf("marshal %s request: %w", method, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL(), bytes.NewReader(body))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build %s request: %w", method, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.ErrLedgerTransport(fmt.Errorf("%s: %w", method, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperror.ErrLedgerTransport(fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return apperror.ErrLedgerTransport(fmt.Errorf("%s: decoding response: %w", method, err))
	}

	var status rpcResult
	if err := json.Unmarshal(envelope.Result, &status); err != nil {
		return apperror.ErrLedgerTransport(fmt.Errorf("%s: decoding result: %w", method, err))
	}
	if status.Status == "error" || status.Error != "" {
		if status.Error == "actNotFound" {
			return ErrAccountNotFound
		}
		if status.Error == "txnNotFound" {
			return errTxNotFound
		}
		msg := status.ErrorMessage
		if msg == "" {
			msg = status.Error
		}
		return apperror.Wrap("LGR_004", fmt.Sprintf("%s rejected by node: %s", method, msg), http.StatusBadGateway, nil)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return apperror.ErrLedgerTransport(fmt.Errorf("%s: decoding result payload: %w", method, err))
		}
	}
	return nil
}

// errTxNotFound keeps validation polling going: a just-submitted hash may
// not be queryable for a few ledgers.
var errTxNotFound = errors.New("transaction not found yet")
