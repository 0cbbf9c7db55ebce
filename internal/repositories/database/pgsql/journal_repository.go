package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	"github.com/himanshudhami/InvoiceX-sub016/internal/models"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/mapping"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalEntryColumns = `
	entry_id, company_id, journal_number, idempotency_key, journal_date,
	financial_year, period_month, entry_type, source_type, source_id,
	source_number, description, narration, status, posted_at,
	total_debit, total_credit, original_entry_id, reversing_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveEntry persists an entry and its lines within one DB transaction,
// assigning the next journal number for the company and financial year.
// The unique index on idempotency_key is the concurrency guard: the loser
// of a racing double-post gets apperrors.ErrDuplicate.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Per-company, per-FY sequence; the upsert keeps the increment atomic.
	var seq int64
	err = tx.QueryRow(ctx, `
		INSERT INTO journal_sequences (company_id, financial_year, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, financial_year)
		DO UPDATE SET last_number = journal_sequences.last_number + 1
		RETURNING last_number;
	`, entry.CompanyID, entry.FinancialYear).Scan(&seq)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate journal number", err)
	}
	entry.JournalNumber = fmt.Sprintf("JV/%s/%05d", entry.FinancialYear, seq)

	modelEntry := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.CompanyID,
		modelEntry.JournalNumber,
		modelEntry.IdempotencyKey,
		modelEntry.JournalDate,
		modelEntry.FinancialYear,
		modelEntry.PeriodMonth,
		modelEntry.EntryType,
		modelEntry.SourceType,
		modelEntry.SourceID,
		modelEntry.SourceNumber,
		modelEntry.Description,
		modelEntry.Narration,
		modelEntry.Status,
		modelEntry.PostedAt,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.OriginalEntryID,
		modelEntry.ReversingEntryID,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: idempotency key %s", apperrors.ErrDuplicate, modelEntry.IdempotencyKey)
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (
			line_id, entry_id, account_id, debit, credit, description,
			currency_code, exchange_rate, subledger_type, subledger_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountID,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
			modelLine.CurrencyCode,
			modelLine.ExchangeRate,
			modelLine.SubledgerType,
			modelLine.SubledgerID,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for entry "+modelEntry.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainJournalEntry(modelEntry)
	saved.Lines = lines
	return &saved, nil
}

// FindEntryByID retrieves a journal entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	return r.scanEntry(r.Pool.QueryRow(ctx, query, entryID), "entry "+entryID)
}

// FindEntryByIdempotencyKey retrieves the entry posted under the given key.
func (r *PgxJournalRepository) FindEntryByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE idempotency_key = $1;`
	return r.scanEntry(r.Pool.QueryRow(ctx, query, idempotencyKey), "idempotency key "+idempotencyKey)
}

// FindEntriesBySource retrieves all entries posted for a source business event.
func (r *PgxJournalRepository) FindEntriesBySource(ctx context.Context, sourceType, sourceID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE source_type = $1 AND source_id = $2
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, sourceType, sourceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for source "+sourceType+"/"+sourceID, err)
	}
	defer rows.Close()
	return r.collectEntries(rows)
}

// ListEntriesByCompany retrieves a keyset-paginated list of a company's entries,
// newest first.
func (r *PgxJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []interface{}{companyID, limit + 1}
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE company_id = $1
	`
	if nextToken != nil && *nextToken != "" {
		journalDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (journal_date, created_at) < ($3, $4)`
		args = append(args, journalDate, createdAt)
	}
	query += ` ORDER BY journal_date DESC, created_at DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list entries for company "+companyID, err)
	}
	defer rows.Close()

	entries, err := r.collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// FindLinesByEntryID retrieves all lines belonging to a journal entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, debit, credit, description,
		       currency_code, exchange_rate, subledger_type, subledger_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.AccountID,
			&l.Debit,
			&l.Credit,
			&l.Description,
			&l.CurrencyCode,
			&l.ExchangeRate,
			&l.SubledgerType,
			&l.SubledgerID,
			&l.CreatedAt,
			&l.CreatedBy,
			&l.LastUpdatedAt,
			&l.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

// MarkEntryReversed flips the entry to REVERSED and links the reversing entry.
// Only POSTED entries can transition; anything else is a conflict.
func (r *PgxJournalRepository) MarkEntryReversed(ctx context.Context, entryID string, reversingEntryID string, updatedByUserID string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE journal_entries
		SET status = $2, reversing_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1 AND status = $6;
	`, entryID, models.Reversed, reversingEntryID, updatedAt, updatedByUserID, models.Posted)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark entry reversed "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not in POSTED status", apperrors.ErrConflict, entryID)
	}
	return nil
}

// scanEntry scans one entry row, mapping pgx.ErrNoRows to ErrNotFound.
func (r *PgxJournalRepository) scanEntry(row pgx.Row, what string) (*domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.JournalNumber,
		&m.IdempotencyKey,
		&m.JournalDate,
		&m.FinancialYear,
		&m.PeriodMonth,
		&m.EntryType,
		&m.SourceType,
		&m.SourceID,
		&m.SourceNumber,
		&m.Description,
		&m.Narration,
		&m.Status,
		&m.PostedAt,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.OriginalEntryID,
		&m.ReversingEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by "+what, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

func (r *PgxJournalRepository) collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := r.scanEntry(rows, "row")
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return entries, nil
}
