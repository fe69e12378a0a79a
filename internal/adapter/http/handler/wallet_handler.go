package handler

import (
	"xrpl-escrow-agent/internal/core/ports"
	"xrpl-escrow-agent/pkg/apperror"
	"xrpl-escrow-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the custody wallet operations.
type WalletHandler struct {
	walletSvc   ports.WalletService
	fundingRepo ports.FundingRepository
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, fundingRepo ports.FundingRepository) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, fundingRepo: fundingRepo}
}

type createWalletRequest struct {
	ClientID  string  `json:"client_id" binding:"required"`
	ProjectID *string `json:"project_id"`
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req createWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), req.ClientID, req.ProjectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wallet)
}

type fundWalletRequest struct {
	ReserveDrops int64  `json:"reserve_drops"`
	WireRef      string `json:"wire_ref"`
}

// FundWallet handles POST /api/v1/wallets/:client_id/fund.
func (h *WalletHandler) FundWallet(c *gin.Context) {
	var req fundWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.FundWallet(c.Request.Context(), c.Param("client_id"), req.ReserveDrops, req.WireRef)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// EnableDelegation handles POST /api/v1/wallets/:client_id/delegation.
func (h *WalletHandler) EnableDelegation(c *gin.Context) {
	hash, err := h.walletSvc.EnableDelegation(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"tx_hash": hash, "delegation_enabled": true})
}

// RevokeDelegation handles DELETE /api/v1/wallets/:client_id/delegation.
func (h *WalletHandler) RevokeDelegation(c *gin.Context) {
	hash, err := h.walletSvc.RevokeDelegation(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"tx_hash": hash, "delegation_enabled": false})
}

type exportKeyRequest struct {
	ApprovalToken string `json:"approval_token" binding:"required"`
}

// ExportMasterKey handles POST /api/v1/wallets/:client_id/export-key.
func (h *WalletHandler) ExportMasterKey(c *gin.Context) {
	var req exportKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	export, err := h.walletSvc.ExportMasterKey(c.Request.Context(), c.Param("client_id"), req.ApprovalToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, export)
}

// GetBalance handles GET /api/v1/balances/:address.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletSvc.GetBalance(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, balance)
}

// ListFunding handles GET /api/v1/wallets/:client_id/funding.
func (h *WalletHandler) ListFunding(c *gin.Context) {
	records, err := h.fundingRepo.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.OK(c, records)
}
