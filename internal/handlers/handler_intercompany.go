package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
)

// intercompanyHandler handles HTTP requests for intercompany transactions,
// balances and reconciliation.
type intercompanyHandler struct {
	intercompanyService   portssvc.IntercompanySvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newIntercompanyHandler(ic portssvc.IntercompanySvcFacade, rec portssvc.ReconciliationSvcFacade) *intercompanyHandler {
	return &intercompanyHandler{
		intercompanyService:   ic,
		reconciliationService: rec,
	}
}

// registerIntercompanyRoutes wires the intercompany routes into the v1 group.
func registerIntercompanyRoutes(group *gin.RouterGroup, ic portssvc.IntercompanySvcFacade, rec portssvc.ReconciliationSvcFacade) {
	h := newIntercompanyHandler(ic, rec)

	intercompany := group.Group("/intercompany")
	intercompany.POST("/invoices", h.recordInvoice)
	intercompany.POST("/payments", h.recordPayment)
	intercompany.GET("/balances/:fromCompanyID/:toCompanyID", h.getBalance)
	intercompany.POST("/reconcile", h.autoReconcile)
	intercompany.POST("/reconcile/manual", h.manualReconcile)
}

func (h *intercompanyHandler) recordInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.RecordIntercompanyInvoiceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownLeg, counterpartLeg, err := h.intercompanyService.RecordInvoice(c.Request.Context(), req)
	if err != nil {
		// The first leg may already be on the books; the matcher heals the
		// missing mirror later, so the caller gets the partial result too.
		if ownLeg != nil {
			logger.Error("Intercompany invoice mirrored partially",
				slog.String("txn_id", ownLeg.TxnID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusAccepted, gin.H{
				"ownLeg": dto.ToIntercompanyTxnResponse(ownLeg),
				"error":  "counterpart leg not recorded",
			})
			return
		}
		logger.Error("Failed to record intercompany invoice", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MirrorPairResponse{
		OwnLeg:         dto.ToIntercompanyTxnResponse(ownLeg),
		CounterpartLeg: dto.ToIntercompanyTxnResponse(counterpartLeg),
	})
}

func (h *intercompanyHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.RecordIntercompanyPaymentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownLeg, counterpartLeg, err := h.intercompanyService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		if ownLeg != nil {
			logger.Error("Intercompany payment mirrored partially",
				slog.String("txn_id", ownLeg.TxnID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusAccepted, gin.H{
				"ownLeg": dto.ToIntercompanyTxnResponse(ownLeg),
				"error":  "counterpart leg not recorded",
			})
			return
		}
		logger.Error("Failed to record intercompany payment", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MirrorPairResponse{
		OwnLeg:         dto.ToIntercompanyTxnResponse(ownLeg),
		CounterpartLeg: dto.ToIntercompanyTxnResponse(counterpartLeg),
	})
}

func (h *intercompanyHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCompanyID := c.Param("fromCompanyID")
	toCompanyID := c.Param("toCompanyID")

	balance, err := h.intercompanyService.BalanceBetween(c.Request.Context(), fromCompanyID, toCompanyID)
	if err != nil {
		logger.Error("Failed to get intercompany balance",
			slog.String("from_company_id", fromCompanyID),
			slog.String("to_company_id", toCompanyID),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

func (h *intercompanyHandler) autoReconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Query("companyID")

	count, err := h.reconciliationService.AutoReconcile(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Auto reconciliation failed", slog.String("company_id", companyID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AutoReconcileResponse{Reconciled: count})
}

func (h *intercompanyHandler) manualReconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.ManualReconcileRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ManualReconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.reconciliationService.ManualReconcile(c.Request.Context(), req.TxnID, req.CounterpartTxnID, req.ReconciledBy)
	if err != nil {
		logger.Error("Manual reconciliation failed",
			slog.String("txn_id", req.TxnID),
			slog.String("counterpart_txn_id", req.CounterpartTxnID),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reconciled"})
}
