package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/internal/core/ports"
	"xrpl-escrow-agent/internal/core/ports/mocks"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

func init() {
	gin.SetMode(gin.TestMode)
}

type routerTestDeps struct {
	router      *gin.Engine
	walletSvc   *mocks.MockWalletService
	escrowSvc   *mocks.MockEscrowService
	fundingRepo *mocks.MockFundingRepository
	auditRepo   *mocks.MockAuditRepository
	ctrl        *gomock.Controller
}

func setupRouter(t *testing.T) *routerTestDeps {
	ctrl := gomock.NewController(t)
	d := &routerTestDeps{
		walletSvc:   mocks.NewMockWalletService(ctrl),
		escrowSvc:   mocks.NewMockEscrowService(ctrl),
		fundingRepo: mocks.NewMockFundingRepository(ctrl),
		auditRepo:   mocks.NewMockAuditRepository(ctrl),
		ctrl:        ctrl,
	}
	d.router = SetupRouter(RouterDeps{
		WalletSvc:   d.walletSvc,
		EscrowSvc:   d.escrowSvc,
		FundingRepo: d.fundingRepo,
		AuditRepo:   d.auditRepo,
		APIKey:      testAPIKey,
		Logger:      zerolog.Nop(),
	})
	return d
}

func doRequest(router *gin.Engine, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("X-API-Key", testAPIKey)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets", gin.H{"client_id": "c1"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_003", resp["error_code"])
}

func TestRouter_PropagatesRequestID(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestCreateWallet_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.walletSvc.EXPECT().CreateWallet(gomock.Any(), "client-1", gomock.Nil()).
		Return(&domain.SegregatedWallet{
			ClientID:        "client-1",
			MasterAddress:   "rMASTER",
			DelegateAddress: "rDELEGATE",
			Network:         domain.NetworkTestnet,
		}, nil)

	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets", gin.H{"client_id": "client-1"}, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "rMASTER", data["master_address"])
	// The encrypted seed never crosses the API boundary.
	assert.NotContains(t, w.Body.String(), "encrypted")
}

func TestCreateWallet_ValidationError(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets", gin.H{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWallet_Duplicate(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.walletSvc.EXPECT().CreateWallet(gomock.Any(), "client-1", gomock.Nil()).
		Return(nil, apperror.ErrDuplicateWallet("client-1"))

	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets", gin.H{"client_id": "client-1"}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WAL_001", resp["error_code"])
}

func TestFundWallet_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.walletSvc.EXPECT().FundWallet(gomock.Any(), "client-1", int64(12_000_000), "WIRE-42").
		Return(&ports.FundResult{TxHash: "FUNDHASH", Transferred: true, BalanceDrops: 12_000_000}, nil)

	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets/client-1/fund",
		gin.H{"reserve_drops": 12_000_000, "wire_ref": "WIRE-42"}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, true, data["transferred"])
	assert.Equal(t, "FUNDHASH", data["tx_hash"])
}

func TestDelegation_EnableAndRevoke(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.walletSvc.EXPECT().EnableDelegation(gomock.Any(), "client-1").Return("SRKHASH", nil)
	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets/client-1/delegation", gin.H{}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	d.walletSvc.EXPECT().RevokeDelegation(gomock.Any(), "client-1").Return("REVOKEHASH", nil)
	w = doRequest(d.router, http.MethodDelete, "/api/v1/wallets/client-1/delegation", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, false, data["delegation_enabled"])
}

func TestExportMasterKey_Denied(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.walletSvc.EXPECT().ExportMasterKey(gomock.Any(), "client-1", "bad").
		Return(nil, apperror.ErrApprovalRequired("client-1"))

	w := doRequest(d.router, http.MethodPost, "/api/v1/wallets/client-1/export-key",
		gin.H{"approval_token": "bad"}, true)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WAL_005", resp["error_code"])
}

func TestGetBalance_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.walletSvc.EXPECT().GetBalance(gomock.Any(), "rMASTER").
		Return(&domain.Balance{
			Address:            "rMASTER",
			NativeDrops:        15_000_000,
			SettlementBalance:  "250.5",
			SettlementCurrency: "RLUSD",
			FetchedAt:          time.Now().UTC(),
		}, nil)

	w := doRequest(d.router, http.MethodGet, "/api/v1/balances/rMASTER", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(15_000_000), data["native_drops"])
}

func TestDeployEscrow_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.escrowSvc.EXPECT().DeployEscrow(gomock.Any(), ports.DeployEscrowRequest{
		ClientID:      "client-1",
		VendorAddress: "rVENDOR",
		AmountDrops:   500_000_000,
		MilestoneID:   "m1",
		Description:   "design phase",
	}).Return(&domain.Escrow{
		ClientID:       "client-1",
		MilestoneID:    "m1",
		EscrowSequence: 7,
		TxHash:         "CREATEHASH",
		Status:         domain.EscrowStatusLocked,
	}, nil)

	w := doRequest(d.router, http.MethodPost, "/api/v1/escrows", gin.H{
		"client_id":      "client-1",
		"vendor_address": "rVENDOR",
		"amount_drops":   500_000_000,
		"milestone_id":   "m1",
		"description":    "design phase",
	}, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "locked", data["status"])
	// Condition stays server-side until release reveals the fulfillment.
	assert.NotContains(t, w.Body.String(), "fulfillment")
}

func TestReleaseEscrow_AlreadyFinalized(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.escrowSvc.EXPECT().ReleaseEscrow(gomock.Any(), "client-1", "m1").
		Return("", apperror.ErrAlreadyFinalized("m1", "released"))

	w := doRequest(d.router, http.MethodPost, "/api/v1/escrows/m1/release",
		gin.H{"client_id": "client-1"}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ESC_002", resp["error_code"])
}

func TestCancelEscrow_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.escrowSvc.EXPECT().CancelEscrow(gomock.Any(), "client-1", "m1").Return("CANCELHASH", nil)

	w := doRequest(d.router, http.MethodPost, "/api/v1/escrows/m1/cancel",
		gin.H{"client_id": "client-1"}, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetEscrowStatus_NotFound(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.escrowSvc.EXPECT().GetEscrowStatus(gomock.Any(), "ghost").
		Return(nil, apperror.ErrEscrowNotFound("ghost"))

	w := doRequest(d.router, http.MethodGet, "/api/v1/escrows/ghost", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRetryableFlagExposed(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.escrowSvc.EXPECT().ReleaseEscrow(gomock.Any(), "client-1", "m1").
		Return("", apperror.ErrLedgerTransport(errors.New("connection refused")))

	w := doRequest(d.router, http.MethodPost, "/api/v1/escrows/m1/release",
		gin.H{"client_id": "client-1"}, true)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "LGR_002", resp["error_code"])
	assert.Equal(t, true, resp["retryable"])
}

func TestListAudit_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.auditRepo.EXPECT().ListByRecordID(gomock.Any(), "m1", 50).
		Return([]domain.AuditEntry{{Action: domain.AuditActionEscrowDeploy, RecordID: "m1"}}, nil)

	w := doRequest(d.router, http.MethodGet, "/api/v1/audit/m1", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth_Unauthenticated(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := doRequest(d.router, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

type failingChecker struct{}

func (failingChecker) Ping(context.Context) error { return errors.New("down") }
func (failingChecker) Name() string               { return "postgresql" }

func TestHealth_DegradedDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := SetupRouter(RouterDeps{
		WalletSvc:      mocks.NewMockWalletService(ctrl),
		EscrowSvc:      mocks.NewMockEscrowService(ctrl),
		FundingRepo:    mocks.NewMockFundingRepository(ctrl),
		AuditRepo:      mocks.NewMockAuditRepository(ctrl),
		HealthCheckers: []ports.HealthChecker{failingChecker{}},
		APIKey:         testAPIKey,
		Logger:         zerolog.Nop(),
	})

	w := doRequest(router, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}
