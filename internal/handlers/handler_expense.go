package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
)

// expenseHandler journalizes approved expense reimbursements.
type expenseHandler struct {
	expenseService portssvc.ExpensePostingSvc
}

func newExpenseHandler(expenseService portssvc.ExpensePostingSvc) *expenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
	}
}

// registerExpenseRoutes wires the expense posting routes into the v1 group.
func registerExpenseRoutes(group *gin.RouterGroup, expenseService portssvc.ExpensePostingSvc) {
	h := newExpenseHandler(expenseService)

	expenses := group.Group("/expenses")
	expenses.POST("/:expenseID/post", h.postReimbursement)
}

func (h *expenseHandler) postReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	req := dto.PostExpenseReimbursementRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for PostReimbursement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	req.ExpenseID = expenseID

	entry, err := h.expenseService.PostReimbursement(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to post expense reimbursement",
			slog.String("expense_id", expenseID),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
