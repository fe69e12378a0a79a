package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Retryable  bool   `json:"-"` // safe to retry after a state re-check
	TxHash     string `json:"-"` // ledger tx hash for reconciliation, when known
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet preconditions (WAL) ----

func ErrDuplicateWallet(clientID string) *AppError {
	return New("WAL_001", fmt.Sprintf("wallet already exists for client %q", clientID), http.StatusConflict)
}

func ErrWalletNotFound(clientID string) *AppError {
	return New("WAL_002", fmt.Sprintf("wallet not found for client %q", clientID), http.StatusNotFound)
}

func ErrDelegationNotEnabled(clientID string) *AppError {
	return New("WAL_003", fmt.Sprintf("delegation not enabled for client %q wallet", clientID), http.StatusPreconditionFailed)
}

func ErrAccountMismatch(clientID string) *AppError {
	return New("WAL_004", fmt.Sprintf("transaction account is not client %q master address", clientID), http.StatusBadRequest)
}

func ErrApprovalRequired(clientID string) *AppError {
	return New("WAL_005", fmt.Sprintf("client approval required to export master key for %q", clientID), http.StatusForbidden)
}

// ---- Escrow preconditions (ESC) ----

func ErrEscrowNotFound(milestoneID string) *AppError {
	return New("ESC_001", fmt.Sprintf("escrow not found for milestone %q", milestoneID), http.StatusNotFound)
}

func ErrAlreadyFinalized(milestoneID, status string) *AppError {
	return New("ESC_002", fmt.Sprintf("escrow for milestone %q already %s", milestoneID, status), http.StatusConflict)
}

func ErrDuplicateEscrow(milestoneID string) *AppError {
	return New("ESC_003", fmt.Sprintf("a locked escrow already exists for milestone %q", milestoneID), http.StatusConflict)
}

// ---- Ledger (LGR) ----

// ErrLedgerEngine marks a transaction the network validated and rejected.
// The engine code is definite: replaying the same sequence-bound
// transaction cannot succeed, so the error is never retryable as-is.
func ErrLedgerEngine(engineResult, txHash string) *AppError {
	return New("LGR_001",
		fmt.Sprintf("ledger rejected transaction %s with engine result %s", txHash, engineResult),
		http.StatusBadGateway)
}

// ErrLedgerTransport marks a network-level failure before the ledger saw
// (or acknowledged) the transaction. Retryable after a state re-check.
func ErrLedgerTransport(err error) *AppError {
	e := Wrap("LGR_002", "ledger transport failure", http.StatusBadGateway, err)
	e.Retryable = true
	return e
}

// ErrLedgerTimeout marks a submission whose final outcome is unknown: the
// transaction may still land. Callers must reconcile ledger state before
// resubmitting.
func ErrLedgerTimeout(txHash string) *AppError {
	e := New("LGR_003",
		fmt.Sprintf("timed out waiting for validation of transaction %s; reconcile before retrying", txHash),
		http.StatusGatewayTimeout)
	e.Retryable = true
	e.TxHash = txHash
	return e
}

// ---- Cryptography (CRY) ----

// ErrDecryption marks a failure to open a stored secret envelope. This is
// a data-integrity incident, never an empty secret.
func ErrDecryption(err error) *AppError {
	return Wrap("CRY_001", "failed to decrypt stored secret", http.StatusInternalServerError, err)
}

func ErrEncryption(err error) *AppError {
	return Wrap("CRY_002", "encryption failure", http.StatusInternalServerError, err)
}

// ---- Audit (AUD) ----

// ErrAuditWrite marks a degraded success: the primary ledger action
// committed but its audit entry could not be written. Requires
// reconciliation, must not be swallowed.
func ErrAuditWrite(action string, err error) *AppError {
	return Wrap("AUD_001",
		fmt.Sprintf("ledger action succeeded but audit write for %s failed; reconciliation required", action),
		http.StatusInternalServerError, err)
}

// ---- Configuration (CFG) ----

func ErrConfig(field string) *AppError {
	return New("CFG_001", fmt.Sprintf("missing or invalid configuration: %s", field), http.StatusInternalServerError)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}

func ErrUnauthorized() *AppError {
	return New("SYS_003", "invalid or missing API key", http.StatusUnauthorized)
}
