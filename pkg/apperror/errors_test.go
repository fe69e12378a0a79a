package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := ErrDuplicateWallet("proj-1")
	assert.Equal(t, "WAL_001", e.Code)
	assert.Equal(t, http.StatusConflict, e.HTTPStatus)
	assert.Contains(t, e.Error(), "proj-1")

	inner := errors.New("boom")
	wrapped := ErrLedgerTransport(inner)
	assert.Contains(t, wrapped.Error(), "boom")
	assert.ErrorIs(t, wrapped, inner)
}

func TestAppError_Retryability(t *testing.T) {
	// Engine failures are definite: the sequence is burned.
	assert.False(t, ErrLedgerEngine("tecNO_PERMISSION", "HASH").Retryable)

	// Transport and timeout failures are retryable after state re-check.
	assert.True(t, ErrLedgerTransport(errors.New("conn reset")).Retryable)
	assert.True(t, ErrLedgerTimeout("HASH").Retryable)

	// Precondition failures are for the caller to fix, not retry.
	assert.False(t, ErrDelegationNotEnabled("proj-1").Retryable)
	assert.False(t, ErrAlreadyFinalized("m1", "released").Retryable)
}

func TestAppError_MessagesCarryEntityAndState(t *testing.T) {
	e := ErrAlreadyFinalized("m1", "released")
	assert.Contains(t, e.Message, "m1")
	assert.Contains(t, e.Message, "released")

	d := ErrDelegationNotEnabled("proj-9")
	assert.Contains(t, d.Message, "proj-9")
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	e := ErrAuditWrite("ESCROW_DEPLOY", inner)
	assert.Equal(t, inner, errors.Unwrap(e))
	assert.Contains(t, e.Message, "reconciliation")
}
