package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	"github.com/himanshudhami/InvoiceX-sub016/internal/models"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxIntercompanyRepository struct {
	BaseRepository
}

// newPgxIntercompanyRepository creates a new repository for intercompany
// transaction and balance data.
func newPgxIntercompanyRepository(pool *pgxpool.Pool) portsrepo.IntercompanyRepositoryFacade {
	return &PgxIntercompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxIntercompanyRepository implements portsrepo.IntercompanyRepositoryFacade
var _ portsrepo.IntercompanyRepositoryFacade = (*PgxIntercompanyRepository)(nil)

const intercompanyTxnColumns = `
	txn_id, company_id, counterparty_company_id, txn_date, financial_year,
	txn_type, direction, source_doc_type, source_doc_id, source_doc_number,
	amount, currency_code, amount_inr, counterpart_txn_id,
	reconciled, reconciled_by, reconciled_at,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveTransaction persists one leg of a cross-company event.
func (r *PgxIntercompanyRepository) SaveTransaction(ctx context.Context, txn domain.IntercompanyTransaction) error {
	m := mapping.ToModelIntercompanyTxn(txn)
	query := `
		INSERT INTO intercompany_transactions (` + intercompanyTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TxnID,
		m.CompanyID,
		m.CounterpartyCompanyID,
		m.TxnDate,
		m.FinancialYear,
		m.TxnType,
		m.Direction,
		m.SourceDocType,
		m.SourceDocID,
		m.SourceDocNumber,
		m.Amount,
		m.CurrencyCode,
		m.AmountINR,
		m.CounterpartTxnID,
		m.Reconciled,
		m.ReconciledBy,
		m.ReconciledAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert intercompany transaction "+m.TxnID, err)
	}
	return nil
}

// SetCounterpart links a leg to its mirror on the other company's books.
func (r *PgxIntercompanyRepository) SetCounterpart(ctx context.Context, txnID, counterpartTxnID string, updatedByUserID string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE intercompany_transactions
		SET counterpart_txn_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE txn_id = $1;
	`, txnID, counterpartTxnID, updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link counterpart for transaction "+txnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkReconciled sets the reconciled flag on one leg. The counterpart link is
// written with COALESCE so an already-linked leg keeps its original link.
func (r *PgxIntercompanyRepository) MarkReconciled(ctx context.Context, txnID string, counterpartTxnID *string, reconciledBy string, reconciledAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE intercompany_transactions
		SET reconciled = TRUE,
		    reconciled_by = $2,
		    reconciled_at = $3,
		    counterpart_txn_id = COALESCE(counterpart_txn_id, $4),
		    last_updated_at = $3,
		    last_updated_by = $2
		WHERE txn_id = $1;
	`, txnID, reconciledBy, reconciledAt, counterpartTxnID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark transaction reconciled "+txnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a single intercompany leg.
func (r *PgxIntercompanyRepository) FindTransactionByID(ctx context.Context, txnID string) (*domain.IntercompanyTransaction, error) {
	query := `SELECT ` + intercompanyTxnColumns + ` FROM intercompany_transactions WHERE txn_id = $1;`
	var m models.IntercompanyTransaction
	err := r.scanTxn(r.Pool.QueryRow(ctx, query, txnID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find intercompany transaction "+txnID, err)
	}
	txn := mapping.ToDomainIntercompanyTxn(m)
	return &txn, nil
}

// FindUnreconciled retrieves unreconciled legs in creation order. An empty
// companyID selects across all companies.
func (r *PgxIntercompanyRepository) FindUnreconciled(ctx context.Context, companyID string) ([]domain.IntercompanyTransaction, error) {
	query := `
		SELECT ` + intercompanyTxnColumns + `
		FROM intercompany_transactions
		WHERE reconciled = FALSE AND ($1 = '' OR company_id = $1)
		ORDER BY created_at, txn_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query unreconciled transactions", err)
	}
	defer rows.Close()

	txns := []models.IntercompanyTransaction{}
	for rows.Next() {
		var m models.IntercompanyTransaction
		if err := r.scanTxn(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan intercompany transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating intercompany transaction rows", err)
	}

	return mapping.ToDomainIntercompanyTxnSlice(txns), nil
}

// UpsertBalance applies delta to the (from, to) pair position as one atomic
// statement, so concurrent postings against the same pair cannot lose updates.
func (r *PgxIntercompanyRepository) UpsertBalance(ctx context.Context, fromCompanyID, toCompanyID string, delta decimal.Decimal, txnDate time.Time) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO intercompany_balances (from_company_id, to_company_id, balance, last_txn_date, txn_count)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (from_company_id, to_company_id)
		DO UPDATE SET
			balance = intercompany_balances.balance + EXCLUDED.balance,
			last_txn_date = GREATEST(intercompany_balances.last_txn_date, EXCLUDED.last_txn_date),
			txn_count = intercompany_balances.txn_count + 1;
	`, fromCompanyID, toCompanyID, delta, txnDate)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert balance "+fromCompanyID+" -> "+toCompanyID, err)
	}
	return nil
}

// FindBalance retrieves the running position from one company to another.
// A pair with no recorded transactions yields a zero balance.
func (r *PgxIntercompanyRepository) FindBalance(ctx context.Context, fromCompanyID, toCompanyID string) (*domain.IntercompanyBalance, error) {
	var m models.IntercompanyBalance
	err := r.Pool.QueryRow(ctx, `
		SELECT from_company_id, to_company_id, balance, last_txn_date, txn_count
		FROM intercompany_balances
		WHERE from_company_id = $1 AND to_company_id = $2;
	`, fromCompanyID, toCompanyID).Scan(
		&m.FromCompanyID,
		&m.ToCompanyID,
		&m.Balance,
		&m.LastTxnDate,
		&m.TxnCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.IntercompanyBalance{
				FromCompanyID: fromCompanyID,
				ToCompanyID:   toCompanyID,
				Balance:       decimal.Zero,
			}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find balance "+fromCompanyID+" -> "+toCompanyID, err)
	}
	balance := mapping.ToDomainIntercompanyBalance(m)
	return &balance, nil
}

func (r *PgxIntercompanyRepository) scanTxn(row pgx.Row, m *models.IntercompanyTransaction) error {
	return row.Scan(
		&m.TxnID,
		&m.CompanyID,
		&m.CounterpartyCompanyID,
		&m.TxnDate,
		&m.FinancialYear,
		&m.TxnType,
		&m.Direction,
		&m.SourceDocType,
		&m.SourceDocID,
		&m.SourceDocNumber,
		&m.Amount,
		&m.CurrencyCode,
		&m.AmountINR,
		&m.CounterpartTxnID,
		&m.Reconciled,
		&m.ReconciledBy,
		&m.ReconciledAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}
