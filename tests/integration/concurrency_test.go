package integration

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"xrpl-escrow-agent/internal/adapter/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentDeploys fires parallel deployments for the same
// milestone. The deploy guard plus the one-locked-escrow-per-milestone
// rule must let exactly one through.
func TestConcurrentDeploys(t *testing.T) {
	app := newTestApp(t)

	setupFundedWallet(t, app, "client-1")
	enableDelegation(t, app, "client-1")

	vendor, err := ledger.GenerateKeyPair()
	require.NoError(t, err)

	const attempts = 20
	var created, conflicted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPost, "/api/v1/escrows", map[string]any{
				"client_id":      "client-1",
				"vendor_address": vendor.Address,
				"amount_drops":   1_000_000,
				"milestone_id":   "milestone-1",
			})
			switch code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load(), "exactly one deployment must win")
	assert.Equal(t, int32(attempts-1), conflicted.Load())
}

// TestConcurrentReleases races release attempts for one locked escrow.
// The guarded state transition must pay the vendor exactly once.
func TestConcurrentReleases(t *testing.T) {
	app := newTestApp(t)

	setupFundedWallet(t, app, "client-1")
	enableDelegation(t, app, "client-1")

	vendor, err := ledger.GenerateKeyPair()
	require.NoError(t, err)

	code, _ := app.do(t, http.MethodPost, "/api/v1/escrows", map[string]any{
		"client_id":      "client-1",
		"vendor_address": vendor.Address,
		"amount_drops":   5_000_000,
		"milestone_id":   "milestone-1",
	})
	require.Equal(t, http.StatusCreated, code)

	const attempts = 10
	var released atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := app.do(t, http.MethodPost, "/api/v1/escrows/milestone-1/release",
				map[string]any{"client_id": "client-1"})
			if code == http.StatusOK {
				released.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), released.Load(), "exactly one release must win")
	assert.Equal(t, int64(5_000_000), app.ledger.balanceOf(vendor.Address))
}

// TestConcurrentFunding races funding calls for one unfunded wallet.
// The per-wallet check-and-pay serialization must charge the gas account
// for the shortfall exactly once.
func TestConcurrentFunding(t *testing.T) {
	app := newTestApp(t)

	code, resp := app.do(t, http.MethodPost, "/api/v1/wallets", map[string]any{"client_id": "client-1"})
	require.Equal(t, http.StatusCreated, code)
	addr := data(t, resp)["master_address"].(string)

	const attempts = 10
	var transferred atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, resp := app.do(t, http.MethodPost, "/api/v1/wallets/client-1/fund", map[string]any{})
			if code == http.StatusOK {
				if d, ok := resp["data"].(map[string]any); ok && d["transferred"] == true {
					transferred.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), transferred.Load(), "exactly one funding call must transfer")
	assert.Equal(t, int64(12_000_000), app.ledger.balanceOf(addr))
	assert.Equal(t, gasStartingBalance-12_000_000, app.ledger.balanceOf(app.gas.Address))

	// Exactly one funding record was written.
	code, resp = app.do(t, http.MethodGet, "/api/v1/wallets/client-1/funding", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["data"].([]any), 1)
}

// TestConcurrentWalletCreation checks that per-client uniqueness holds
// when many clients are onboarded in parallel.
func TestConcurrentWalletCreation(t *testing.T) {
	app := newTestApp(t)

	const clients = 25
	var wg sync.WaitGroup
	codes := make([]int, clients)
	addrs := make([]string, clients)

	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("client-%d", n)
			code, resp := app.do(t, http.MethodPost, "/api/v1/wallets", map[string]any{"client_id": clientID})
			codes[n] = code
			if d, ok := resp["data"].(map[string]any); ok {
				addrs[n], _ = d["master_address"].(string)
			}
		}(i)
	}
	wg.Wait()

	// Every client got its own key pair.
	seen := make(map[string]bool, clients)
	for i := 0; i < clients; i++ {
		require.Equal(t, http.StatusCreated, codes[i])
		require.NotEmpty(t, addrs[i])
		assert.False(t, seen[addrs[i]], "address %s issued twice", addrs[i])
		seen[addrs[i]] = true
	}
}
