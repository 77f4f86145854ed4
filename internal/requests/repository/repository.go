package repository

import (
	"context"
	"errors"
	"fmt"

	"salonhub_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestNotFoundMessage = "Request not found"

// Repo implements the requests repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new requests repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const requestColumns = `id, provider_id, customer_name, customer_phone, customer_note, service_ids, status, created_at`

func scanRequest(row pgx.Row) (Request, error) {
	var r Request
	err := row.Scan(
		&r.ID, &r.ProviderID, &r.CustomerName, &r.CustomerPhone,
		&r.CustomerNote, &r.ServiceIDs, &r.Status, &r.CreatedAt,
	)
	return r, err
}

// CreateRequest records a new request. The provider id and service ids are
// stored verbatim; existence is not checked here (intake trust boundary).
func (r *Repo) CreateRequest(ctx context.Context, params CreateRequestParams) (Request, error) {
	query := `
		INSERT INTO requests (provider_id, customer_name, customer_phone, customer_note, service_ids, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + requestColumns

	req, err := scanRequest(r.pool.QueryRow(ctx, query,
		params.ProviderID, params.CustomerName, params.CustomerPhone,
		params.CustomerNote, params.ServiceIDs, StatusPending,
	))
	if err != nil {
		return Request{}, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

// ListByProvider returns a provider's requests, newest first.
func (r *Repo) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]Request, error) {
	query := `
		SELECT ` + requestColumns + ` FROM requests
		WHERE provider_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	items := make([]Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		items = append(items, req)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate requests: %w", rows.Err())
	}

	return items, nil
}

// UpdateStatus sets a request's status. The query is scoped to the owning
// provider, so a foreign request reads as not found.
func (r *Repo) UpdateStatus(ctx context.Context, id, providerID uuid.UUID, status string) (Request, error) {
	query := `
		UPDATE requests
		SET status = $3
		WHERE id = $1 AND provider_id = $2
		RETURNING ` + requestColumns

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id, providerID, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, apperr.NotFound(requestNotFoundMessage)
	}
	if err != nil {
		return Request{}, fmt.Errorf("update request status: %w", err)
	}
	return req, nil
}
