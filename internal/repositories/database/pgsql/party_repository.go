package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/models"
	"github.com/gobooks/books_backend/internal/utils/mapping"
)

type PgxPartyRepository struct {
	pool *pgxpool.Pool
}

// newPgxPartyRepository creates a new repository for customer and vendor data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{pool: pool}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, kind, name, gstin, place_of_supply, opening_balance, email, phone, billing_address, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Kind,
		&m.Name,
		&m.GSTIN,
		&m.PlaceOfSupply,
		&m.OpeningBalance,
		&m.Email,
		&m.Phone,
		&m.BillingAddress,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveParty inserts a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PartyID,
		m.Kind,
		m.Name,
		m.GSTIN,
		m.PlaceOfSupply,
		m.OpeningBalance,
		m.Email,
		m.Phone,
		m.BillingAddress,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`
	m, err := scanParty(r.pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find party by ID "+partyID, err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// ListParties retrieves parties of one kind with limit/offset pagination.
func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind, includeInactive bool, limit, offset int) ([]domain.Party, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE kind = $1 AND ($2 OR is_active)
		ORDER BY name ASC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.pool.Query(ctx, query, string(kind), includeInactive, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query parties", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan party row", err)
		}
		parties = append(parties, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating party rows", err)
	}
	return mapping.ToDomainPartySlice(parties), nil
}

// UpdateParty updates mutable party fields.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2, gstin = $3, place_of_supply = $4, opening_balance = $5,
		    email = $6, phone = $7, billing_address = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE party_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.GSTIN,
		m.PlaceOfSupply,
		m.OpeningBalance,
		m.Email,
		m.Phone,
		m.BillingAddress,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update party "+m.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateParty marks a party inactive. Existing documents keep
// referencing it.
func (r *PgxPartyRepository) DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error {
	query := `
		UPDATE parties
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE party_id = $1 AND is_active;
	`
	tag, err := r.pool.Exec(ctx, query, partyID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate party "+partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
