package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/models"
)

type PgxEntryRepository struct {
	pool *pgxpool.Pool
}

// newPgxEntryRepository creates a new repository for journal entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepository {
	return &PgxEntryRepository{pool: pool}
}

var _ portsrepo.EntryRepository = (*PgxEntryRepository)(nil)

func toModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		EntryDate:     d.Date,
		Source:        string(d.Source),
		AccountCode:   d.AccountCode,
		AccountName:   d.AccountName,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Description:   d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		Date:          m.EntryDate,
		Source:        domain.EntrySource(m.Source),
		AccountCode:   m.AccountCode,
		AccountName:   m.AccountName,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Description:   m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveEntries writes all entries of one posting in a single database
// transaction; either every line lands or none do.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO journal_entries (entry_id, transaction_id, entry_date, source, account_code, account_name, debit, credit, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := toModelEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.TransactionID,
			m.EntryDate,
			m.Source,
			m.AccountCode,
			m.AccountName,
			m.Debit,
			m.Credit,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert journal entry: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close entry batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entries: %w", err)
	}
	return nil
}

const entryColumns = `entry_id, transaction_id, entry_date, source, account_code, account_name, debit, credit, description, created_at, created_by, last_updated_at, last_updated_by`

func scanEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.EntryDate,
			&m.Source,
			&m.AccountCode,
			&m.AccountName,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	return entries, rows.Err()
}

func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter portsrepo.ListEntriesFilter) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	var conditions []string
	var args []interface{}

	if filter.Source != "" {
		args = append(args, string(filter.Source))
		conditions = append(conditions, "source = $"+strconv.Itoa(len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, "entry_date >= $"+strconv.Itoa(len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, "entry_date <= $"+strconv.Itoa(len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, filter.Limit)
	query += " ORDER BY entry_date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return scanEntries(rows)
}

func (r *PgxEntryRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE transaction_id = $1 ORDER BY created_at ASC, entry_id ASC`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entries for transaction %s: %w", transactionID, err)
	}
	return scanEntries(rows)
}

func (r *PgxEntryRepository) SummarizeBySource(ctx context.Context, from, to time.Time) ([]domain.SourceSummary, error) {
	query := `
		SELECT source, COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0), COUNT(*)
		FROM journal_entries
		WHERE ($1::timestamptz IS NULL OR entry_date >= $1)
		  AND ($2::timestamptz IS NULL OR entry_date <= $2)
		GROUP BY source
		ORDER BY source;
	`

	var fromArg, toArg interface{}
	if !from.IsZero() {
		fromArg = from
	}
	if !to.IsZero() {
		toArg = to
	}

	rows, err := r.pool.Query(ctx, query, fromArg, toArg)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize journal entries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.SourceSummary
	for rows.Next() {
		var s domain.SourceSummary
		var source string
		if err := rows.Scan(&source, &s.TotalDebit, &s.TotalCredit, &s.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		s.Source = domain.EntrySource(source)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
