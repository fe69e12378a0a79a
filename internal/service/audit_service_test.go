package service

import (
	"context"
	"errors"
	"testing"

	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_RecordFillsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.AuditEntry) error {
			assert.NotEqual(t, uuid.Nil, e.ID)
			assert.False(t, e.CreatedAt.IsZero())
			return nil
		})

	entry := &domain.AuditEntry{
		Action:   domain.AuditActionWalletCreate,
		RecordID: "client-1",
	}
	require.NoError(t, svc.Record(context.Background(), entry))
}

func TestAuditService_RecordPropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(repo, zerolog.Nop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	err := svc.Record(context.Background(), &domain.AuditEntry{
		Action:   domain.AuditActionEscrowRelease,
		RecordID: "m1",
	})
	assert.Error(t, err)
}
