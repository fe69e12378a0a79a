package handler

import (
	"net/http"

	"xrpl-escrow-agent/internal/adapter/http/middleware"
	"xrpl-escrow-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	EscrowSvc      ports.EscrowService
	FundingRepo    ports.FundingRepository
	AuditRepo      ports.AuditRepository
	HealthCheckers []ports.HealthChecker
	APIKey         string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis + ledger)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.FundingRepo)
	escrowHandler := NewEscrowHandler(deps.EscrowSvc, deps.AuditRepo)

	// The only caller is the trusted outer layer, authenticated with a
	// static key.
	v1 := r.Group("/api/v1", middleware.APIKeyAuth(deps.APIKey))

	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.CreateWallet)
		wallets.POST("/:client_id/fund", walletHandler.FundWallet)
		wallets.GET("/:client_id/funding", walletHandler.ListFunding)
		wallets.POST("/:client_id/delegation", walletHandler.EnableDelegation)
		wallets.DELETE("/:client_id/delegation", walletHandler.RevokeDelegation)
		wallets.POST("/:client_id/export-key", walletHandler.ExportMasterKey)
	}

	v1.GET("/balances/:address", walletHandler.GetBalance)

	escrows := v1.Group("/escrows")
	{
		escrows.POST("", escrowHandler.DeployEscrow)
		escrows.GET("/:milestone_id", escrowHandler.GetEscrowStatus)
		escrows.POST("/:milestone_id/release", escrowHandler.ReleaseEscrow)
		escrows.POST("/:milestone_id/cancel", escrowHandler.CancelEscrow)
	}

	v1.GET("/audit/:record_id", escrowHandler.ListAudit)

	return r
}

// HealthCheck returns a handler reporting per-dependency health.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
