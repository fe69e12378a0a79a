package postgres

import (
	"context"
	"testing"
	"time"

	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEscrow() *domain.Escrow {
	cancelAfter := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Microsecond)
	return &domain.Escrow{
		ClientID:             "client-1",
		MilestoneID:          "m1",
		EscrowSequence:       7,
		TxHash:               "CREATEHASH",
		ClientWalletAddress:  "rMASTERxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		VendorAddress:        "rVENDORxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		AmountDrops:          500_000_000,
		Currency:             "RLUSD",
		Condition:            "CONDHEX",
		EncryptedFulfillment: "aabb:ccdd",
		CancelAfter:          &cancelAfter,
		Status:               domain.EscrowStatusLocked,
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}
}

func escrowColumns() []string {
	return []string{
		"client_id", "milestone_id", "escrow_sequence", "tx_hash", "client_wallet_address", "vendor_address",
		"amount_drops", "currency", "condition", "encrypted_fulfillment", "cancel_after", "status",
		"final_tx_hash", "finalized_at", "created_at",
	}
}

func escrowRow(e *domain.Escrow) *pgxmock.Rows {
	return pgxmock.NewRows(escrowColumns()).AddRow(
		e.ClientID, e.MilestoneID, e.EscrowSequence, e.TxHash, e.ClientWalletAddress, e.VendorAddress,
		e.AmountDrops, e.Currency, e.Condition, e.EncryptedFulfillment, e.CancelAfter, e.Status,
		e.FinalTxHash, e.FinalizedAt, e.CreatedAt,
	)
}

func TestEscrowRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	e := newTestEscrow()

	mock.ExpectExec("INSERT INTO escrows").
		WithArgs(e.ClientID, e.MilestoneID, e.EscrowSequence, e.TxHash, e.ClientWalletAddress, e.VendorAddress,
			e.AmountDrops, e.Currency, e.Condition, e.EncryptedFulfillment, e.CancelAfter, e.Status, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), e)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowRepo_Create_DuplicateLocked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	e := newTestEscrow()

	mock.ExpectExec("INSERT INTO escrows").
		WithArgs(e.ClientID, e.MilestoneID, e.EscrowSequence, e.TxHash, e.ClientWalletAddress, e.VendorAddress,
			e.AmountDrops, e.Currency, e.Condition, e.EncryptedFulfillment, e.CancelAfter, e.Status, e.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "escrows_milestone_locked_idx"})

	err = repo.Create(context.Background(), e)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ESC_003", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowRepo_GetByMilestoneID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	e := newTestEscrow()

	mock.ExpectQuery("SELECT .+ FROM escrows WHERE milestone_id").
		WithArgs(e.MilestoneID).
		WillReturnRows(escrowRow(e))

	result, err := repo.GetByMilestoneID(context.Background(), e.MilestoneID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint32(7), result.EscrowSequence)
	assert.Equal(t, domain.EscrowStatusLocked, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowRepo_GetByMilestoneID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM escrows WHERE milestone_id").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows(escrowColumns()))

	result, err := repo.GetByMilestoneID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowRepo_Finalize(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectExec("UPDATE escrows").
		WithArgs(domain.EscrowStatusReleased, "FINISHHASH", now, "m1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.Finalize(context.Background(), "m1", domain.EscrowStatusReleased, "FINISHHASH", now)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscrowRepo_Finalize_AlreadyFinal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEscrowRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	// Status guard matches no rows once the escrow left 'locked'.
	mock.ExpectExec("UPDATE escrows").
		WithArgs(domain.EscrowStatusCancelled, "CANCELHASH", now, "m1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := repo.Finalize(context.Background(), "m1", domain.EscrowStatusCancelled, "CANCELHASH", now)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
