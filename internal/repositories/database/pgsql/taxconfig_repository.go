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

type PgxTaxConfigRepository struct {
	pool *pgxpool.Pool
}

// newPgxTaxConfigRepository creates a new repository for tax configuration.
func newPgxTaxConfigRepository(pool *pgxpool.Pool) portsrepo.TaxConfigRepository {
	return &PgxTaxConfigRepository{pool: pool}
}

var _ portsrepo.TaxConfigRepository = (*PgxTaxConfigRepository)(nil)

func toDomainTaxConfig(m models.TaxConfig) domain.TaxConfig {
	return domain.TaxConfig{
		TaxConfigID: m.TaxConfigID,
		Name:        m.Name,
		Percentage:  m.Percentage,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const taxConfigColumns = `tax_config_id, name, percentage, is_active, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxTaxConfigRepository) SaveTaxConfig(ctx context.Context, tax domain.TaxConfig) error {
	query := `
		INSERT INTO tax_configs (` + taxConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.pool.Exec(ctx, query,
		tax.TaxConfigID,
		tax.Name,
		tax.Percentage,
		tax.IsActive,
		tax.CreatedAt,
		tax.CreatedBy,
		tax.LastUpdatedAt,
		tax.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tax config %s: %w", tax.Name, err)
	}
	return nil
}

func (r *PgxTaxConfigRepository) FindTaxConfigByID(ctx context.Context, taxConfigID string) (*domain.TaxConfig, error) {
	query := `SELECT ` + taxConfigColumns + ` FROM tax_configs WHERE tax_config_id = $1`

	var m models.TaxConfig
	err := r.pool.QueryRow(ctx, query, taxConfigID).Scan(
		&m.TaxConfigID,
		&m.Name,
		&m.Percentage,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: tax config %s", apperrors.ErrNotFound, taxConfigID)
		}
		return nil, fmt.Errorf("failed to find tax config %s: %w", taxConfigID, err)
	}

	tax := toDomainTaxConfig(m)
	return &tax, nil
}

func (r *PgxTaxConfigRepository) ListTaxConfigs(ctx context.Context, onlyActive bool) ([]domain.TaxConfig, error) {
	query := `SELECT ` + taxConfigColumns + ` FROM tax_configs WHERE ($1 = FALSE OR is_active = TRUE) ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax configs: %w", err)
	}
	defer rows.Close()

	var taxes []domain.TaxConfig
	for rows.Next() {
		var m models.TaxConfig
		if err := rows.Scan(
			&m.TaxConfigID,
			&m.Name,
			&m.Percentage,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax config: %w", err)
		}
		taxes = append(taxes, toDomainTaxConfig(m))
	}
	return taxes, rows.Err()
}

func (r *PgxTaxConfigRepository) UpdateTaxConfig(ctx context.Context, tax domain.TaxConfig) error {
	query := `
		UPDATE tax_configs
		SET name = $2, percentage = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tax_config_id = $1;
	`

	tag, err := r.pool.Exec(ctx, query,
		tax.TaxConfigID,
		tax.Name,
		tax.Percentage,
		tax.IsActive,
		tax.LastUpdatedAt,
		tax.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tax config %s: %w", tax.TaxConfigID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: tax config %s", apperrors.ErrNotFound, tax.TaxConfigID)
	}
	return nil
}

func (r *PgxTaxConfigRepository) DeleteTaxConfig(ctx context.Context, taxConfigID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tax_configs WHERE tax_config_id = $1`, taxConfigID)
	if err != nil {
		return fmt.Errorf("failed to delete tax config %s: %w", taxConfigID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: tax config %s", apperrors.ErrNotFound, taxConfigID)
	}
	return nil
}
