package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
)

// accountService maintains the chart of accounts that the posting core
// resolves codes against.
type accountService struct {
	accountRepo portsrepo.ChartOfAccountRepositoryFacade
	now         func() time.Time
	newID       func() string
}

// AccountOption overrides clock or ID generation, mainly for tests.
type AccountOption func(*accountService)

// WithAccountClock substitutes the wall clock.
func WithAccountClock(now func() time.Time) AccountOption {
	return func(s *accountService) { s.now = now }
}

// WithAccountIDSource substitutes the unique ID generator.
func WithAccountIDSource(newID func() string) AccountOption {
	return func(s *accountService) { s.newID = newID }
}

// NewAccountService creates a new ChartOfAccountService.
func NewAccountService(accountRepo portsrepo.ChartOfAccountRepositoryFacade, opts ...AccountOption) portssvc.ChartOfAccountSvc {
	s := &accountService{
		accountRepo: accountRepo,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ChartOfAccountSvc = (*accountService)(nil)

// CreateAccount validates and persists a new active chart-of-accounts row.
// Duplicate (companyID, accountCode) pairs surface as apperrors.ErrDuplicate
// from the unique index underneath.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if companyID == "" {
		return nil, fmt.Errorf("%w: companyID is required", apperrors.ErrValidation)
	}
	accountType, err := parseAccountType(req.AccountType)
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := domain.ChartOfAccount{
		AccountID:   s.newID(),
		CompanyID:   companyID,
		AccountCode: req.AccountCode,
		AccountName: req.AccountName,
		AccountType: accountType,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Created chart-of-accounts row",
		slog.String("company_id", companyID),
		slog.String("account_code", account.AccountCode),
		slog.String("account_id", account.AccountID))
	return &account, nil
}

func parseAccountType(raw string) (domain.AccountType, error) {
	switch domain.AccountType(strings.ToUpper(raw)) {
	case domain.Asset:
		return domain.Asset, nil
	case domain.Liability:
		return domain.Liability, nil
	case domain.Equity:
		return domain.Equity, nil
	case domain.Revenue:
		return domain.Revenue, nil
	case domain.Expense:
		return domain.Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, raw)
	}
}
