package service

import (
	"context"
	"time"

	"xrpl-escrow-agent/internal/core/domain"
	"xrpl-escrow-agent/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates the custody audit service. Record is
// synchronous: the audit entry is part of the calling operation's success
// contract, so failures propagate instead of being dropped in a
// background goroutine.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record appends one audit entry, filling in id and timestamp.
func (s *auditService) Record(ctx context.Context, entry *domain.AuditEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("action", string(entry.Action)).
			Str("record_id", entry.RecordID).
			Msg("audit write failed")
		return err
	}

	s.log.Info().
		Str("action", string(entry.Action)).
		Str("record_id", entry.RecordID).
		Bool("sensitive", entry.Sensitive).
		Msg("audit")
	return nil
}
