package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xrpl-escrow-agent/config"
	"xrpl-escrow-agent/internal/adapter/ledger"
	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/internal/core/ports"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/rs/zerolog"
)

const deployGuardTTL = 2 * time.Minute

// EscrowServiceImpl implements ports.EscrowService: hash-locked
// conditional payments deployed from client wallets via delegated
// signing.
type EscrowServiceImpl struct {
	escrowRepo ports.EscrowRepository
	walletRepo ports.WalletRepository
	signer     ports.DelegatedSigner
	conditions ports.ConditionGenerator
	encSvc     ports.EncryptionService
	auditSvc   ports.AuditService
	guard      ports.DeployGuard
	ledger     ports.LedgerClient
	custody    config.CustodyConfig
	log        zerolog.Logger
}

// NewEscrowService creates a new EscrowServiceImpl.
func NewEscrowService(
	escrowRepo ports.EscrowRepository,
	walletRepo ports.WalletRepository,
	signer ports.DelegatedSigner,
	conditions ports.ConditionGenerator,
	encSvc ports.EncryptionService,
	auditSvc ports.AuditService,
	guard ports.DeployGuard,
	ledgerClient ports.LedgerClient,
	custody config.CustodyConfig,
	log zerolog.Logger,
) *EscrowServiceImpl {
	return &EscrowServiceImpl{
		escrowRepo: escrowRepo,
		walletRepo: walletRepo,
		signer:     signer,
		conditions: conditions,
		encSvc:     encSvc,
		auditSvc:   auditSvc,
		guard:      guard,
		ledger:     ledgerClient,
		custody:    custody,
		log:        log,
	}
}

// DeployEscrow locks funds from the client's wallet under a fresh
// PREIMAGE-SHA-256 condition. The fulfillment is generated here, stored
// encrypted, and revealed only on release.
func (s *EscrowServiceImpl) DeployEscrow(ctx context.Context, req ports.DeployEscrowRequest) (*domain.Escrow, error) {
	if err := validateDeployRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.escrowRepo.GetByMilestoneID(ctx, req.MilestoneID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup escrow: %w", err))
	}
	if existing != nil && !existing.IsFinal() {
		return nil, apperror.ErrDuplicateEscrow(req.MilestoneID)
	}

	wallet, err := s.walletRepo.GetByClientID(ctx, req.ClientID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(req.ClientID)
	}
	if !wallet.CanDelegateSign() {
		return nil, apperror.ErrDelegationNotEnabled(req.ClientID)
	}

	acquired, err := s.guard.Acquire(ctx, req.MilestoneID, deployGuardTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deploy guard: %w", err))
	}
	if !acquired {
		return nil, apperror.ErrDuplicateEscrow(req.MilestoneID)
	}
	defer func() {
		if relErr := s.guard.Release(ctx, req.MilestoneID); relErr != nil {
			s.log.Warn().Err(relErr).Str("milestone_id", req.MilestoneID).Msg("deploy guard release failed")
		}
	}()

	condition, fulfillment, err := s.conditions.Generate()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate condition: %w", err))
	}

	encryptedFulfillment, err := s.encSvc.Encrypt(fulfillment)
	if err != nil {
		return nil, err
	}

	cancelAfter := time.Now().UTC().Add(s.custody.EscrowCancelAfter)
	tx := ledger.EscrowCreateTx{
		From:        wallet.MasterAddress,
		Destination: req.VendorAddress,
		AmountDrops: req.AmountDrops,
		Condition:   condition,
		CancelAfter: &cancelAfter,
		Memo:        req.Description,
	}

	res, err := s.signer.DelegatedSign(ctx, req.ClientID, tx)
	if err != nil {
		res, err = s.reconcileTimeout(ctx, err)
		if err != nil {
			return nil, err
		}
	}

	escrow := &domain.Escrow{
		ClientID:             req.ClientID,
		MilestoneID:          req.MilestoneID,
		EscrowSequence:       res.Sequence,
		TxHash:               res.Hash,
		ClientWalletAddress:  wallet.MasterAddress,
		VendorAddress:        req.VendorAddress,
		AmountDrops:          req.AmountDrops,
		Currency:             s.custody.SettlementCurrency,
		Condition:            condition,
		EncryptedFulfillment: encryptedFulfillment,
		CancelAfter:          &cancelAfter,
		Status:               domain.EscrowStatusLocked,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.escrowRepo.Create(ctx, escrow); err != nil {
		// The escrow is live on-ledger but not recorded. Surface loudly;
		// recovery needs the tx hash and owner sequence from this log.
		s.log.Error().Err(err).
			Str("milestone_id", req.MilestoneID).
			Str("tx_hash", res.Hash).
			Uint32("escrow_sequence", res.Sequence).
			Msg("escrow deployed on-ledger but persistence failed")
		return nil, err
	}

	s.log.Info().
		Str("client_id", req.ClientID).
		Str("milestone_id", req.MilestoneID).
		Int64("amount_drops", req.AmountDrops).
		Str("tx_hash", res.Hash).
		Uint32("escrow_sequence", res.Sequence).
		Msg("escrow deployed")

	after := fmt.Sprintf(`{"status":"locked","tx_hash":%q,"escrow_sequence":%d,"amount_drops":%d}`,
		res.Hash, res.Sequence, req.AmountDrops)
	if err := s.audit(ctx, domain.AuditActionEscrowDeploy, req.MilestoneID, nil, &after); err != nil {
		return escrow, err
	}
	return escrow, nil
}

// reconcileTimeout handles a submission whose outcome is unknown after a
// validation timeout: the transaction may still have landed. One lookup
// by hash decides it; anything else propagates unchanged.
func (s *EscrowServiceImpl) reconcileTimeout(ctx context.Context, submitErr error) (*ledger.SubmitResult, error) {
	var appErr *apperror.AppError
	if !errors.As(submitErr, &appErr) || appErr.Code != "LGR_003" {
		return nil, submitErr
	}

	hash := appErr.TxHash
	if hash == "" {
		return nil, submitErr
	}

	found, err := s.ledger.Tx(ctx, hash)
	if err != nil || found == nil || !found.Validated {
		return nil, submitErr
	}
	if found.EngineResult != "tesSUCCESS" {
		return nil, apperror.ErrLedgerEngine(found.EngineResult, found.Hash)
	}

	s.log.Info().Str("tx_hash", hash).Msg("timed-out submission reconciled as validated")
	return &ledger.SubmitResult{
		Hash:         found.Hash,
		EngineResult: found.EngineResult,
		Sequence:     found.Sequence,
		Validated:    true,
	}, nil
}

// ReleaseEscrow reveals the stored fulfillment on-ledger, paying the
// vendor. The database transition is row-guarded so a concurrent release
// or cancel loses cleanly.
func (s *EscrowServiceImpl) ReleaseEscrow(ctx context.Context, clientID, milestoneID string) (string, error) {
	escrow, err := s.loadLockedEscrow(ctx, clientID, milestoneID)
	if err != nil {
		return "", err
	}

	fulfillment, err := s.encSvc.Decrypt(escrow.EncryptedFulfillment)
	if err != nil {
		return "", err
	}

	tx := ledger.EscrowFinishTx{
		From:          escrow.ClientWalletAddress,
		Owner:         escrow.ClientWalletAddress,
		OfferSequence: escrow.EscrowSequence,
		Condition:     escrow.Condition,
		Fulfillment:   fulfillment,
	}
	res, err := s.signer.DelegatedSign(ctx, clientID, tx)
	if err != nil {
		// The finish may still have validated; leaving the row locked
		// after a revealed fulfillment would strand the record.
		res, err = s.reconcileTimeout(ctx, err)
		if err != nil {
			return "", err
		}
	}

	return s.finalize(ctx, escrow, domain.EscrowStatusReleased, domain.AuditActionEscrowRelease, res.Hash)
}

// CancelEscrow voids the escrow after its expiry, returning funds to the
// client wallet. A premature cancel is rejected by the ledger and the
// engine error surfaces as-is.
func (s *EscrowServiceImpl) CancelEscrow(ctx context.Context, clientID, milestoneID string) (string, error) {
	escrow, err := s.loadLockedEscrow(ctx, clientID, milestoneID)
	if err != nil {
		return "", err
	}

	tx := ledger.EscrowCancelTx{
		From:          escrow.ClientWalletAddress,
		Owner:         escrow.ClientWalletAddress,
		OfferSequence: escrow.EscrowSequence,
	}
	res, err := s.signer.DelegatedSign(ctx, clientID, tx)
	if err != nil {
		res, err = s.reconcileTimeout(ctx, err)
		if err != nil {
			return "", err
		}
	}

	return s.finalize(ctx, escrow, domain.EscrowStatusCancelled, domain.AuditActionEscrowCancel, res.Hash)
}

// GetEscrowStatus returns the stored escrow for a milestone.
func (s *EscrowServiceImpl) GetEscrowStatus(ctx context.Context, milestoneID string) (*domain.Escrow, error) {
	escrow, err := s.escrowRepo.GetByMilestoneID(ctx, milestoneID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup escrow: %w", err))
	}
	if escrow == nil {
		return nil, apperror.ErrEscrowNotFound(milestoneID)
	}
	return escrow, nil
}

func (s *EscrowServiceImpl) loadLockedEscrow(ctx context.Context, clientID, milestoneID string) (*domain.Escrow, error) {
	escrow, err := s.escrowRepo.GetByMilestoneID(ctx, milestoneID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup escrow: %w", err))
	}
	if escrow == nil {
		return nil, apperror.ErrEscrowNotFound(milestoneID)
	}
	if escrow.ClientID != clientID {
		return nil, apperror.ErrEscrowNotFound(milestoneID)
	}
	if escrow.IsFinal() {
		return nil, apperror.ErrAlreadyFinalized(milestoneID, string(escrow.Status))
	}
	return escrow, nil
}

func (s *EscrowServiceImpl) finalize(ctx context.Context, escrow *domain.Escrow, status domain.EscrowStatus, action domain.AuditAction, txHash string) (string, error) {
	updated, err := s.escrowRepo.Finalize(ctx, escrow.MilestoneID, status, txHash, time.Now().UTC())
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("finalize escrow: %w", err))
	}
	if !updated {
		// The ledger transition succeeded but another finalization got to
		// the row first. The terminal state on record is authoritative.
		s.log.Warn().
			Str("milestone_id", escrow.MilestoneID).
			Str("tx_hash", txHash).
			Msg("escrow already finalized concurrently")
		return "", apperror.ErrAlreadyFinalized(escrow.MilestoneID, string(status))
	}

	s.log.Info().
		Str("client_id", escrow.ClientID).
		Str("milestone_id", escrow.MilestoneID).
		Str("status", string(status)).
		Str("tx_hash", txHash).
		Msg("escrow finalized")

	before := fmt.Sprintf(`{"status":"locked","tx_hash":%q}`, escrow.TxHash)
	after := fmt.Sprintf(`{"status":%q,"final_tx_hash":%q}`, status, txHash)
	if err := s.audit(ctx, action, escrow.MilestoneID, &before, &after); err != nil {
		return txHash, err
	}
	return txHash, nil
}

func (s *EscrowServiceImpl) audit(ctx context.Context, action domain.AuditAction, recordID string, before, after *string) error {
	err := s.auditSvc.Record(ctx, &domain.AuditEntry{
		Action:       action,
		RecordID:     recordID,
		ActorContext: "escrow-service",
		Before:       before,
		After:        after,
	})
	if err != nil {
		return apperror.ErrAuditWrite(string(action), err)
	}
	return nil
}

func validateDeployRequest(req ports.DeployEscrowRequest) error {
	switch {
	case req.ClientID == "":
		return apperror.Validation("client id is required")
	case req.MilestoneID == "":
		return apperror.Validation("milestone id is required")
	case req.VendorAddress == "":
		return apperror.Validation("vendor address is required")
	case req.AmountDrops <= 0:
		return apperror.Validation(fmt.Sprintf("escrow amount must be positive, got %d", req.AmountDrops))
	}
	return nil
}
