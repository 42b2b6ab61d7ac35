package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/repositories"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/models"
)

type PgxThirdPartyRepository struct {
	pool *pgxpool.Pool
}

// newPgxThirdPartyRepository creates a new repository for third-party balances.
func newPgxThirdPartyRepository(pool *pgxpool.Pool) portsrepo.ThirdPartyRepository {
	return &PgxThirdPartyRepository{pool: pool}
}

var _ portsrepo.ThirdPartyRepository = (*PgxThirdPartyRepository)(nil)

func toDomainThirdParty(m models.ThirdParty) domain.ThirdParty {
	return domain.ThirdParty{
		ThirdPartyID: m.ThirdPartyID,
		Name:         m.Name,
		Role:         domain.ThirdPartyRole(m.Role),
		Balance:      m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// UpsertBalance creates the third party with the delta as opening balance, or
// adds the delta to the existing balance. name+role is the business key.
func (r *PgxThirdPartyRepository) UpsertBalance(ctx context.Context, name string, role domain.ThirdPartyRole, delta decimal.Decimal, updatedBy string) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO third_parties (third_party_id, name, role, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $5, $6)
		ON CONFLICT (name, role) DO UPDATE
		SET balance = third_parties.balance + EXCLUDED.balance,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.pool.Exec(ctx, query, uuid.NewString(), name, string(role), delta, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert balance for %s %s: %w", role, name, err)
	}
	return nil
}

const thirdPartyColumns = `third_party_id, name, role, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanThirdParty(row pgx.Row) (*domain.ThirdParty, error) {
	var m models.ThirdParty
	err := row.Scan(
		&m.ThirdPartyID,
		&m.Name,
		&m.Role,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	tp := toDomainThirdParty(m)
	return &tp, nil
}

func (r *PgxThirdPartyRepository) ListThirdParties(ctx context.Context, role domain.ThirdPartyRole, limit, offset int) ([]domain.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE ($1 = '' OR role = $1) ORDER BY name ASC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, string(role), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list third parties: %w", err)
	}
	defer rows.Close()

	var parties []domain.ThirdParty
	for rows.Next() {
		var m models.ThirdParty
		if err := rows.Scan(
			&m.ThirdPartyID,
			&m.Name,
			&m.Role,
			&m.Balance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan third party: %w", err)
		}
		parties = append(parties, toDomainThirdParty(m))
	}
	return parties, rows.Err()
}

func (r *PgxThirdPartyRepository) FindThirdPartyByID(ctx context.Context, thirdPartyID string) (*domain.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE third_party_id = $1`

	tp, err := scanThirdParty(r.pool.QueryRow(ctx, query, thirdPartyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: third party %s", apperrors.ErrNotFound, thirdPartyID)
		}
		return nil, fmt.Errorf("failed to find third party %s: %w", thirdPartyID, err)
	}
	return tp, nil
}
