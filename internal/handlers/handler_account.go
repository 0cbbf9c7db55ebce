package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
)

// accountHandler maintains the chart of accounts.
type accountHandler struct {
	accountService portssvc.ChartOfAccountSvc
}

func newAccountHandler(accountService portssvc.ChartOfAccountSvc) *accountHandler {
	return &accountHandler{
		accountService: accountService,
	}
}

// registerAccountRoutes wires the chart-of-accounts routes into the v1 group.
func registerAccountRoutes(group *gin.RouterGroup, accountService portssvc.ChartOfAccountSvc) {
	h := newAccountHandler(accountService)

	companies := group.Group("/companies")
	companies.POST("/:companyID/accounts", h.createAccount)
}

func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	req := dto.CreateAccountRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), companyID, req)
	if err != nil {
		logger.Error("Failed to create account",
			slog.String("company_id", companyID),
			slog.String("account_code", req.AccountCode),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}
