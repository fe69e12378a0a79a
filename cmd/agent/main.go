package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xrpl-escrow-agent/config"
	httpHandler "xrpl-escrow-agent/internal/adapter/http/handler"
	"xrpl-escrow-agent/internal/adapter/ledger"
	pgStorage "xrpl-escrow-agent/internal/adapter/storage/postgres"
	redisStorage "xrpl-escrow-agent/internal/adapter/storage/redis"
	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/internal/core/ports"
	"xrpl-escrow-agent/internal/service"
	"xrpl-escrow-agent/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("network", cfg.Ledger.Network).
		Int("port", cfg.Server.Port).
		Msg("Starting XRPL Escrow Agent")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize ledger client
	ledgerClient := ledger.NewClient(cfg.Ledger, log)
	if err := ledgerClient.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to reach ledger endpoint")
	}
	defer ledgerClient.Close()
	log.Info().Str("endpoint", cfg.Ledger.URL()).Msg("Ledger reachable")

	// Derive the service signing identities from their seeds. A
	// configured address that disagrees with the derived one means the
	// wrong seed was deployed.
	delegate, err := signerIdentity(cfg.Custody.DelegateSeed, cfg.Custody.DelegateAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid delegate key material")
	}
	gas, err := signerIdentity(cfg.Custody.GasSeed, cfg.Custody.GasAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gas account key material")
	}
	log.Info().
		Str("delegate_address", delegate.Address).
		Str("gas_address", gas.Address).
		Msg("Signing identities derived")

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	escrowRepo := pgStorage.NewEscrowRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	fundingRepo := pgStorage.NewFundingRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	balanceCache := redisStorage.NewBalanceCache(rdb)
	deployGuard := redisStorage.NewDeployGuard(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.Custody.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	auditSvc := service.NewAuditService(auditRepo, log)
	conditionSvc := service.NewConditionService()
	approvalSvc := service.NewJWTApprovalVerifier(cfg.Approval.Secret, cfg.Approval.Issuer)

	// Initialize business services
	walletSvc := service.NewWalletService(
		walletRepo,
		fundingRepo,
		transactor,
		ledgerClient,
		encSvc,
		auditSvc,
		approvalSvc,
		balanceCache,
		delegate,
		gas,
		cfg.Custody,
		domain.Network(cfg.Ledger.Network),
		log,
	)
	escrowSvc := service.NewEscrowService(
		escrowRepo,
		walletRepo,
		walletSvc,
		conditionSvc,
		encSvc,
		auditSvc,
		deployGuard,
		ledgerClient,
		cfg.Custody,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)
	ledgerHealth := ledger.NewHealthCheck(ledgerClient)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		EscrowSvc:      escrowSvc,
		FundingRepo:    fundingRepo,
		AuditRepo:      auditRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, ledgerHealth},
		APIKey:         cfg.API.Key,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// signerIdentity derives a signing identity from a seed, cross-checking
// the optionally configured address.
func signerIdentity(seed, configuredAddr string) (service.SignerIdentity, error) {
	kp, err := ledger.KeyPairFromSeed(seed)
	if err != nil {
		return service.SignerIdentity{}, err
	}
	if configuredAddr != "" && configuredAddr != kp.Address {
		return service.SignerIdentity{}, fmt.Errorf("configured address %s does not match seed-derived address %s", configuredAddr, kp.Address)
	}
	return service.SignerIdentity{Seed: seed, Address: kp.Address}, nil
}
