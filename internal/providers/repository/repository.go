package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"salonhub_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// Provider is the tenant record owning categories, services, and requests.
type Provider struct {
	ID            uuid.UUID
	FullName      string
	Email         string
	Phone         string
	PasswordHash  string
	CompanyName   string
	LicenseNumber string
	Slug          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const providerColumns = `id, full_name, email, phone, password_hash, company_name, license_number, slug, created_at, updated_at`

func scanProvider(row pgx.Row) (Provider, error) {
	var p Provider
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.Email,
		&p.Phone,
		&p.PasswordHash,
		&p.CompanyName,
		&p.LicenseNumber,
		&p.Slug,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// CreateProvider inserts a new provider. Uniqueness of email, license number,
// and slug is enforced by the database; violations surface as Conflict.
func (r *Repository) CreateProvider(ctx context.Context, fullName, email, phone, passwordHash, companyName, licenseNumber, slug string) (Provider, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO providers (full_name, email, phone, password_hash, company_name, license_number, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+providerColumns+`
	`, fullName, email, phone, passwordHash, companyName, licenseNumber, slug)

	p, err := scanProvider(row)
	if err != nil {
		return Provider{}, mapUniqueViolation(err)
	}
	return p, nil
}

// GetByEmail looks up a provider by normalized email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (Provider, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+providerColumns+` FROM providers WHERE email = $1
	`, email)

	p, err := scanProvider(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Provider{}, apperr.NotFound("Provider not found")
	}
	if err != nil {
		return Provider{}, err
	}
	return p, nil
}

// GetByID looks up a provider by its UUID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Provider, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+providerColumns+` FROM providers WHERE id = $1
	`, id)

	p, err := scanProvider(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Provider{}, apperr.NotFound("Provider not found")
	}
	if err != nil {
		return Provider{}, err
	}
	return p, nil
}

// GetBySlug looks up a provider by its public catalog slug.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (Provider, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+providerColumns+` FROM providers WHERE slug = $1
	`, slug)

	p, err := scanProvider(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Provider{}, apperr.NotFound("Provider not found")
	}
	if err != nil {
		return Provider{}, err
	}
	return p, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return apperr.Conflict("Email already registered")
	case strings.Contains(pgErr.ConstraintName, "license"):
		return apperr.Conflict("License number already registered")
	case strings.Contains(pgErr.ConstraintName, "slug"):
		return apperr.Conflict("Company name already taken")
	default:
		return apperr.Conflict("Provider already exists")
	}
}
