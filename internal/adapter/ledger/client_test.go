package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xrpl-escrow-agent/config"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode scripts JSON-RPC responses per method.
type fakeNode struct {
	t        *testing.T
	handlers map[string]func(params map[string]any) map[string]any
	calls    map[string]int
}

func newFakeNode(t *testing.T) *fakeNode {
	return &fakeNode{
		t:        t,
		handlers: make(map[string]func(map[string]any) map[string]any),
		calls:    make(map[string]int),
	}
}

func (f *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string           `json:"method"`
		Params []map[string]any `json:"params"`
	}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
	f.calls[req.Method]++

	handler, ok := f.handlers[req.Method]
	if !ok {
		f.t.Fatalf("unexpected RPC method %s", req.Method)
	}
	var params map[string]any
	if len(req.Params) > 0 {
		params = req.Params[0]
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"result": handler(params)})
}

func testClient(t *testing.T, node *fakeNode) *Client {
	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)
	return NewClient(config.LedgerConfig{
		Network:        "testnet",
		Endpoint:       srv.URL,
		RequestTimeout: 2 * time.Second,
		ValidationWait: 500 * time.Millisecond,
		PollInterval:   10 * time.Millisecond,
	}, zerolog.Nop())
}

func TestConnect_Idempotent(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["server_info"] = func(map[string]any) map[string]any {
		return map[string]any{"status": "success", "info": map[string]any{"build_version": "2.0.0"}}
	}
	c := testClient(t, node)

	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.Connect(context.Background()))
	assert.Equal(t, 1, node.calls["server_info"], "second connect must be a no-op")

	c.Close()
	c.Close()
}

func TestSubmitAndWait_Success(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["submit"] = func(params map[string]any) map[string]any {
		assert.NotEmpty(t, params["secret"])
		return map[string]any{
			"status":        "success",
			"engine_result": "tesSUCCESS",
			"tx_json":       map[string]any{"hash": "HASH1", "Sequence": 42},
		}
	}
	node.handlers["tx"] = func(map[string]any) map[string]any {
		return map[string]any{
			"status":    "success",
			"hash":      "HASH1",
			"Sequence":  42,
			"validated": true,
			"meta":      map[string]any{"TransactionResult": "tesSUCCESS"},
		}
	}
	c := testClient(t, node)

	res, err := c.SubmitAndWait(context.Background(), PaymentTx{From: "rA", Destination: "rB", AmountDrops: 10}, "sEdSeed")
	require.NoError(t, err)
	assert.Equal(t, "HASH1", res.Hash)
	assert.Equal(t, uint32(42), res.Sequence)
	assert.True(t, res.Validated)
}

func TestSubmitAndWait_EngineFailure(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["submit"] = func(map[string]any) map[string]any {
		return map[string]any{
			"status":        "success",
			"engine_result": "tecNO_PERMISSION",
			"tx_json":       map[string]any{"hash": "HASH2", "Sequence": 7},
		}
	}
	c := testClient(t, node)

	_, err := c.SubmitAndWait(context.Background(), PaymentTx{From: "rA", Destination: "rB", AmountDrops: 10}, "sEdSeed")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
	assert.Contains(t, appErr.Message, "tecNO_PERMISSION")
	assert.False(t, appErr.Retryable)
	assert.Equal(t, 0, node.calls["tx"], "definite engine failure must not poll for validation")
}

func TestSubmitAndWait_ValidatedFailure(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["submit"] = func(map[string]any) map[string]any {
		return map[string]any{
			"status":        "success",
			"engine_result": "terQUEUED",
			"tx_json":       map[string]any{"hash": "HASH3", "Sequence": 9},
		}
	}
	node.handlers["tx"] = func(map[string]any) map[string]any {
		return map[string]any{
			"status":    "success",
			"hash":      "HASH3",
			"validated": true,
			"meta":      map[string]any{"TransactionResult": "tecEXPIRED"},
		}
	}
	c := testClient(t, node)

	_, err := c.SubmitAndWait(context.Background(), PaymentTx{From: "rA", Destination: "rB", AmountDrops: 10}, "sEdSeed")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_001", appErr.Code)
	assert.Contains(t, appErr.Message, "tecEXPIRED")
}

func TestSubmitAndWait_ValidationTimeout(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["submit"] = func(map[string]any) map[string]any {
		return map[string]any{
			"status":        "success",
			"engine_result": "tesSUCCESS",
			"tx_json":       map[string]any{"hash": "HASH4", "Sequence": 3},
		}
	}
	node.handlers["tx"] = func(map[string]any) map[string]any {
		// Never validates within the wait budget.
		return map[string]any{"status": "error", "error": "txnNotFound"}
	}
	c := testClient(t, node)

	_, err := c.SubmitAndWait(context.Background(), PaymentTx{From: "rA", Destination: "rB", AmountDrops: 10}, "sEdSeed")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_003", appErr.Code)
	assert.Contains(t, appErr.Message, "HASH4", "timeout must carry the hash for reconciliation")
	assert.True(t, appErr.Retryable)
}

func TestSubmitAndWait_TransportError(t *testing.T) {
	c := NewClient(config.LedgerConfig{
		Network:        "testnet",
		Endpoint:       "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: 200 * time.Millisecond,
		ValidationWait: time.Second,
		PollInterval:   50 * time.Millisecond,
	}, zerolog.Nop())

	_, err := c.SubmitAndWait(context.Background(), PaymentTx{From: "rA", Destination: "rB", AmountDrops: 10}, "sEdSeed")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LGR_002", appErr.Code)
	assert.True(t, appErr.Retryable)
}

func TestAccountInfo(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["account_info"] = func(params map[string]any) map[string]any {
		assert.Equal(t, "validated", params["ledger_index"], "reads must target the validated ledger")
		return map[string]any{
			"status": "success",
			"account_data": map[string]any{
				"Balance":  "12000000",
				"Sequence": 17,
			},
		}
	}
	c := testClient(t, node)

	info, err := c.AccountInfo(context.Background(), "rSome")
	require.NoError(t, err)
	assert.Equal(t, int64(12_000_000), info.BalanceDrops)
	assert.Equal(t, uint32(17), info.Sequence)
}

func TestAccountInfo_NotFound(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["account_info"] = func(map[string]any) map[string]any {
		return map[string]any{"status": "error", "error": "actNotFound"}
	}
	c := testClient(t, node)

	_, err := c.AccountInfo(context.Background(), "rUnfunded")
	assert.True(t, errors.Is(err, ErrAccountNotFound))
}

func TestAccountLines(t *testing.T) {
	node := newFakeNode(t)
	node.handlers["account_lines"] = func(params map[string]any) map[string]any {
		assert.Equal(t, "validated", params["ledger_index"])
		return map[string]any{
			"status": "success",
			"lines": []map[string]any{
				{"account": "rIssuer", "currency": "RLUSD", "balance": "250.5"},
			},
		}
	}
	c := testClient(t, node)

	lines, err := c.AccountLines(context.Background(), "rSome")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "RLUSD", lines[0].Currency)
	assert.Equal(t, "250.5", lines[0].Balance)
	assert.Equal(t, "rIssuer", lines[0].Issuer)
}
