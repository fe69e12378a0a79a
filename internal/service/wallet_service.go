package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"xrpl-escrow-agent/config"
	"xrpl-escrow-agent/internal/adapter/ledger"
	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/internal/core/ports"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const balanceCacheTTL = 30 * time.Second

// SignerIdentity is a process-wide signing identity (the delegate regular
// key or the operational gas account), loaded once at startup and
// read-only thereafter.
type SignerIdentity struct {
	Seed    string
	Address string
}

// WalletServiceImpl implements ports.WalletService: wallet lifecycle,
// delegation, and delegated signing under the agent model.
type WalletServiceImpl struct {
	walletRepo   ports.WalletRepository
	fundingRepo  ports.FundingRepository
	transactor   ports.DBTransactor
	ledgerClient ports.LedgerClient
	encSvc       ports.EncryptionService
	auditSvc     ports.AuditService
	approval     ports.ApprovalVerifier
	balances     ports.BalanceCache

	delegate SignerIdentity
	gas      SignerIdentity
	custody  config.CustodyConfig
	network  domain.Network

	locks *accountLocks
	log   zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	fundingRepo ports.FundingRepository,
	transactor ports.DBTransactor,
	ledgerClient ports.LedgerClient,
	encSvc ports.EncryptionService,
	auditSvc ports.AuditService,
	approval ports.ApprovalVerifier,
	balances ports.BalanceCache,
	delegate SignerIdentity,
	gas SignerIdentity,
	custody config.CustodyConfig,
	network domain.Network,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:   walletRepo,
		fundingRepo:  fundingRepo,
		transactor:   transactor,
		ledgerClient: ledgerClient,
		encSvc:       encSvc,
		auditSvc:     auditSvc,
		approval:     approval,
		balances:     balances,
		delegate:     delegate,
		gas:          gas,
		custody:      custody,
		network:      network,
		locks:        newAccountLocks(),
		log:          log,
	}
}

// CreateWallet generates a fresh master key pair entirely locally and
// persists it with delegation disabled. The seed is encrypted before it
// touches storage and the plaintext never leaves this call.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, clientID string, projectID *string) (*domain.SegregatedWallet, error) {
	if clientID == "" {
		return nil, apperror.Validation("client id is required")
	}

	existing, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet(clientID)
	}

	master, err := ledger.GenerateKeyPair()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate master key: %w", err))
	}

	encryptedSeed, err := s.encSvc.Encrypt(master.Seed)
	if err != nil {
		return nil, err
	}

	wallet := &domain.SegregatedWallet{
		ClientID:            clientID,
		ProjectID:           projectID,
		MasterAddress:       master.Address,
		MasterPublicKey:     master.PublicKey,
		EncryptedMasterSeed: encryptedSeed,
		DelegateAddress:     s.delegate.Address,
		DelegationEnabled:   false,
		Network:             s.network,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("client_id", clientID).
		Str("master_address", wallet.MasterAddress).
		Str("delegate_address", wallet.DelegateAddress).
		Msg("segregated wallet created")

	if err := s.audit(ctx, domain.AuditActionWalletCreate, clientID, nil, walletSnapshot(wallet), false); err != nil {
		return wallet, err
	}
	return wallet, nil
}

// FundWallet tops the client's master address up to the reserve target
// from the operational gas account and declares the settlement-currency
// trust line. Re-invoking on a sufficiently funded wallet transfers
// nothing.
func (s *WalletServiceImpl) FundWallet(ctx context.Context, clientID string, reserveDrops int64, wireRef string) (*ports.FundResult, error) {
	if reserveDrops <= 0 {
		reserveDrops = s.custody.ReserveDrops
	}

	wallet, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(clientID)
	}

	// The balance check and the transfer must not interleave across
	// concurrent funding calls, or both would observe the same shortfall
	// and the gas account would pay it twice.
	unlockWallet := s.locks.Lock(wallet.MasterAddress)

	before, err := s.nativeBalance(ctx, wallet.MasterAddress)
	if err != nil {
		unlockWallet()
		return nil, err
	}

	// Idempotency: never double-fund a wallet that already meets the
	// reserve target.
	if before >= reserveDrops {
		unlockWallet()
		return &ports.FundResult{Transferred: false, BalanceDrops: before}, nil
	}

	shortfall := reserveDrops - before

	unlockGas := s.locks.Lock(s.gas.Address)
	res, err := s.ledgerClient.SubmitAndWait(ctx, ledger.PaymentTx{
		From:        s.gas.Address,
		Destination: wallet.MasterAddress,
		AmountDrops: shortfall,
	}, s.gas.Seed)
	unlockGas()
	unlockWallet()
	if err != nil {
		return nil, err
	}

	if err := s.ensureTrustLine(ctx, wallet); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.FundingRecord{
		ID:          uuid.New(),
		ClientID:    clientID,
		AmountDrops: shortfall,
		WireRef:     wireRef,
		TxHash:      res.Hash,
		FundedAt:    now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.fundingRepo.Create(ctx, dbTx, record); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("save funding record: %w", err))
	}
	if err := s.walletRepo.TouchActivity(ctx, dbTx, clientID, now); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("touch wallet activity: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("client_id", clientID).
		Int64("amount_drops", shortfall).
		Str("tx_hash", res.Hash).
		Msg("wallet funded")

	result := &ports.FundResult{TxHash: res.Hash, Transferred: true, BalanceDrops: before + shortfall}
	beforeJSON := fmt.Sprintf(`{"balance_drops":%d}`, before)
	afterJSON := fmt.Sprintf(`{"balance_drops":%d,"tx_hash":%q}`, before+shortfall, res.Hash)
	if err := s.audit(ctx, domain.AuditActionWalletFund, clientID, &beforeJSON, &afterJSON, false); err != nil {
		return result, err
	}
	return result, nil
}

// EnableDelegation authorizes the service's delegate key on the client's
// account. This and RevokeDelegation are the only non-export paths that
// decrypt the master seed; the plaintext stays function-local.
func (s *WalletServiceImpl) EnableDelegation(ctx context.Context, clientID string) (string, error) {
	return s.setDelegation(ctx, clientID, true)
}

// RevokeDelegation removes the delegate's signing rights using only the
// master key and the ledger: revocation never depends on the delegate's
// cooperation.
func (s *WalletServiceImpl) RevokeDelegation(ctx context.Context, clientID string) (string, error) {
	return s.setDelegation(ctx, clientID, false)
}

func (s *WalletServiceImpl) setDelegation(ctx context.Context, clientID string, enable bool) (string, error) {
	wallet, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("lookup wallet: %w", err))
	}
	if wallet == nil {
		return "", apperror.ErrWalletNotFound(clientID)
	}

	masterSeed, err := s.encSvc.Decrypt(wallet.EncryptedMasterSeed)
	if err != nil {
		return "", err
	}

	tx := ledger.SetRegularKeyTx{From: wallet.MasterAddress}
	if enable {
		tx.RegularKey = s.delegate.Address
	}

	unlock := s.locks.Lock(wallet.MasterAddress)
	res, err := s.ledgerClient.SubmitAndWait(ctx, tx, masterSeed)
	unlock()
	masterSeed = "" //nolint:ineffassign // drop the plaintext reference immediately
	if err != nil {
		return "", err
	}

	if err := s.walletRepo.UpdateDelegation(ctx, clientID, enable); err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("update delegation: %w", err))
	}

	action := domain.AuditActionDelegationEnable
	if !enable {
		action = domain.AuditActionDelegationRevoke
	}
	s.log.Info().
		Str("client_id", clientID).
		Bool("delegation_enabled", enable).
		Str("tx_hash", res.Hash).
		Msg("delegation updated")

	beforeJSON := fmt.Sprintf(`{"delegation_enabled":%t}`, wallet.DelegationEnabled)
	afterJSON := fmt.Sprintf(`{"delegation_enabled":%t,"tx_hash":%q}`, enable, res.Hash)
	if err := s.audit(ctx, action, clientID, &beforeJSON, &afterJSON, false); err != nil {
		return res.Hash, err
	}
	return res.Hash, nil
}

// DelegatedSign signs and submits a transaction with the delegate key on
// the client's behalf. The wallet is re-read first: delegation may have
// been revoked on-ledger since the caller last looked.
func (s *WalletServiceImpl) DelegatedSign(ctx context.Context, clientID string, tx ledger.Transaction) (*ledger.SubmitResult, error) {
	wallet, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(clientID)
	}
	if !wallet.CanDelegateSign() {
		return nil, apperror.ErrDelegationNotEnabled(clientID)
	}
	// The delegate proves authorization; it never becomes the owner. A
	// transaction acting on any other account is a caller bug.
	if tx.Account() != wallet.MasterAddress {
		return nil, apperror.ErrAccountMismatch(clientID)
	}

	unlock := s.locks.Lock(wallet.MasterAddress)
	defer unlock()

	res, err := s.ledgerClient.SubmitAndWait(ctx, tx, s.delegate.Seed)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("client_id", clientID).
		Str("account", wallet.MasterAddress).
		Str("tx_hash", res.Hash).
		Msg("transaction signed on client's behalf")
	return res, nil
}

// ExportMasterKey returns the decrypted master seed for client recovery.
// The export is gated by the external approval verifier and always
// audited as sensitive, approved or not.
func (s *WalletServiceImpl) ExportMasterKey(ctx context.Context, clientID, approvalToken string) (*ports.MasterKeyExport, error) {
	if err := s.approval.Verify(ctx, clientID, approvalToken); err != nil {
		outcome := `{"outcome":"denied"}`
		if auditErr := s.audit(ctx, domain.AuditActionMasterKeyExport, clientID, nil, &outcome, true); auditErr != nil {
			return nil, auditErr
		}
		return nil, err
	}

	wallet, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(clientID)
	}

	seed, err := s.encSvc.Decrypt(wallet.EncryptedMasterSeed)
	if err != nil {
		return nil, err
	}

	s.log.Warn().Str("client_id", clientID).Msg("master key exported")

	outcome := `{"outcome":"approved"}`
	export := &ports.MasterKeyExport{ClientID: clientID, MasterSeed: seed, Address: wallet.MasterAddress}
	if err := s.audit(ctx, domain.AuditActionMasterKeyExport, clientID, nil, &outcome, true); err != nil {
		return export, err
	}
	return export, nil
}

// GetBalance returns validated ledger balances for an address, through a
// short-lived cache. Custody operations read the ledger directly and
// never consult this cache.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, address string) (*domain.Balance, error) {
	if cached, err := s.balances.Get(ctx, address); err == nil && cached != nil {
		return cached, nil
	}

	native, err := s.nativeBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	settlement := "0"
	if native > 0 {
		lines, err := s.ledgerClient.AccountLines(ctx, address)
		if err != nil && !errors.Is(err, ledger.ErrAccountNotFound) {
			return nil, err
		}
		for _, line := range lines {
			if line.Currency == s.custody.SettlementCurrency {
				settlement = line.Balance
				break
			}
		}
	}

	balance := &domain.Balance{
		Address:            address,
		NativeDrops:        native,
		SettlementBalance:  settlement,
		SettlementCurrency: s.custody.SettlementCurrency,
		FetchedAt:          time.Now().UTC(),
	}
	if err := s.balances.Set(ctx, balance, balanceCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("balance cache write failed")
	}
	return balance, nil
}

// nativeBalance reads the validated native balance; an unfunded account
// counts as zero.
func (s *WalletServiceImpl) nativeBalance(ctx context.Context, address string) (int64, error) {
	info, err := s.ledgerClient.AccountInfo(ctx, address)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return info.BalanceDrops, nil
}

// ensureTrustLine declares the settlement currency on the wallet if not
// already declared. Trust lines are account configuration, so like the
// delegation toggle this is a master-key action.
func (s *WalletServiceImpl) ensureTrustLine(ctx context.Context, wallet *domain.SegregatedWallet) error {
	if s.custody.SettlementIssuer == "" {
		return nil
	}

	lines, err := s.ledgerClient.AccountLines(ctx, wallet.MasterAddress)
	if err != nil && !errors.Is(err, ledger.ErrAccountNotFound) {
		return err
	}
	for _, line := range lines {
		if line.Currency == s.custody.SettlementCurrency && line.Issuer == s.custody.SettlementIssuer {
			return nil
		}
	}

	masterSeed, err := s.encSvc.Decrypt(wallet.EncryptedMasterSeed)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(wallet.MasterAddress)
	_, err = s.ledgerClient.SubmitAndWait(ctx, ledger.TrustSetTx{
		From:     wallet.MasterAddress,
		Currency: s.custody.SettlementCurrency,
		Issuer:   s.custody.SettlementIssuer,
		Limit:    s.custody.TrustLineLimit,
	}, masterSeed)
	unlock()
	return err
}

func (s *WalletServiceImpl) audit(ctx context.Context, action domain.AuditAction, recordID string, before, after *string, sensitive bool) error {
	err := s.auditSvc.Record(ctx, &domain.AuditEntry{
		Action:       action,
		RecordID:     recordID,
		ActorContext: "wallet-service",
		Before:       before,
		After:        after,
		Sensitive:    sensitive,
	})
	if err != nil {
		return apperror.ErrAuditWrite(string(action), err)
	}
	return nil
}

// walletSnapshot renders an audit snapshot of a wallet. The encrypted
// seed is excluded even in ciphertext form.
func walletSnapshot(w *domain.SegregatedWallet) *string {
	snap, err := json.Marshal(map[string]any{
		"master_address":     w.MasterAddress,
		"delegate_address":   w.DelegateAddress,
		"delegation_enabled": w.DelegationEnabled,
		"network":            w.Network,
	})
	if err != nil {
		return nil
	}
	s := string(snap)
	return &s
}
