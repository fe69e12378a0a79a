package handler

import (
	"xrpl-escrow-agent/internal/core/ports"
	"xrpl-escrow-agent/pkg/apperror"
	"xrpl-escrow-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

// EscrowHandler exposes the conditional-payment operations.
type EscrowHandler struct {
	escrowSvc ports.EscrowService
	auditRepo ports.AuditRepository
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(escrowSvc ports.EscrowService, auditRepo ports.AuditRepository) *EscrowHandler {
	return &EscrowHandler{escrowSvc: escrowSvc, auditRepo: auditRepo}
}

type deployEscrowRequest struct {
	ClientID      string `json:"client_id" binding:"required"`
	VendorAddress string `json:"vendor_address" binding:"required"`
	AmountDrops   int64  `json:"amount_drops" binding:"required,gt=0"`
	MilestoneID   string `json:"milestone_id" binding:"required"`
	Description   string `json:"description"`
}

// DeployEscrow handles POST /api/v1/escrows.
func (h *EscrowHandler) DeployEscrow(c *gin.Context) {
	var req deployEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	escrow, err := h.escrowSvc.DeployEscrow(c.Request.Context(), ports.DeployEscrowRequest{
		ClientID:      req.ClientID,
		VendorAddress: req.VendorAddress,
		AmountDrops:   req.AmountDrops,
		MilestoneID:   req.MilestoneID,
		Description:   req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, escrow)
}

type finalizeEscrowRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

// ReleaseEscrow handles POST /api/v1/escrows/:milestone_id/release.
func (h *EscrowHandler) ReleaseEscrow(c *gin.Context) {
	var req finalizeEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	hash, err := h.escrowSvc.ReleaseEscrow(c.Request.Context(), req.ClientID, c.Param("milestone_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"tx_hash": hash, "status": "released"})
}

// CancelEscrow handles POST /api/v1/escrows/:milestone_id/cancel.
func (h *EscrowHandler) CancelEscrow(c *gin.Context) {
	var req finalizeEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	hash, err := h.escrowSvc.CancelEscrow(c.Request.Context(), req.ClientID, c.Param("milestone_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"tx_hash": hash, "status": "cancelled"})
}

// GetEscrowStatus handles GET /api/v1/escrows/:milestone_id.
func (h *EscrowHandler) GetEscrowStatus(c *gin.Context) {
	escrow, err := h.escrowSvc.GetEscrowStatus(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, escrow)
}

// ListAudit handles GET /api/v1/audit/:record_id.
func (h *EscrowHandler) ListAudit(c *gin.Context) {
	entries, err := h.auditRepo.ListByRecordID(c.Request.Context(), c.Param("record_id"), 50)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, entries)
}
