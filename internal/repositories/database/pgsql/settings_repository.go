package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/models"
)

// settingsRowID is the fixed primary key of the singleton settings row,
// seeded by the initial migration.
const settingsRowID = 1

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for business settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT company_name, currency_symbol, created_at, created_by, last_updated_at, last_updated_by FROM settings WHERE id = $1`

	var m models.Settings
	err := r.pool.QueryRow(ctx, query, settingsRowID).Scan(
		&m.CompanyName,
		&m.CurrencySymbol,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: settings row missing", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	s := domain.Settings{
		CompanyName:    m.CompanyName,
		CurrencySymbol: m.CurrencySymbol,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &s, nil
}

func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	query := `
		UPDATE settings
		SET company_name = $2, currency_symbol = $3, last_updated_at = $4, last_updated_by = $5
		WHERE id = $1;
	`

	tag, err := r.pool.Exec(ctx, query,
		settingsRowID,
		settings.CompanyName,
		settings.CurrencySymbol,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: settings row missing", apperrors.ErrNotFound)
	}
	return nil
}
