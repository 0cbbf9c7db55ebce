package pgsql

import (
	"context"
	"errors"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	"github.com/himanshudhami/InvoiceX-sub016/internal/models"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChartOfAccountRepository struct {
	BaseRepository
}

// newPgxChartOfAccountRepository creates a new repository for chart of
// accounts data.
func newPgxChartOfAccountRepository(pool *pgxpool.Pool) portsrepo.ChartOfAccountRepositoryFacade {
	return &PgxChartOfAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxChartOfAccountRepository implements portsrepo.ChartOfAccountRepositoryFacade
var _ portsrepo.ChartOfAccountRepositoryFacade = (*PgxChartOfAccountRepository)(nil)

// ResolveAccount maps (companyID, accountCode) to an active chart row.
// Inactive and foreign codes both resolve to ErrNotFound; the posting core
// decides whether that is fatal.
func (r *PgxChartOfAccountRepository) ResolveAccount(ctx context.Context, companyID, accountCode string) (*domain.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := r.Pool.QueryRow(ctx, `
		SELECT account_id, company_id, account_code, account_name, account_type, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM chart_of_accounts
		WHERE company_id = $1 AND account_code = $2 AND is_active = TRUE;
	`, companyID, accountCode).Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.AccountCode,
		&m.AccountName,
		&m.AccountType,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to resolve account "+accountCode+" for company "+companyID, err)
	}
	account := mapping.ToDomainChartOfAccount(m)
	return &account, nil
}

// SaveAccount persists a new chart-of-accounts row.
func (r *PgxChartOfAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelChartOfAccount(account)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO chart_of_accounts (
			account_id, company_id, account_code, account_name, account_type, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		m.AccountID,
		m.CompanyID,
		m.AccountCode,
		m.AccountName,
		m.AccountType,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountCode, err)
	}
	return nil
}
