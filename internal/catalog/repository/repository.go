package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"salonhub_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoryNotFoundMessage = "Category not found"
	serviceNotFoundMessage  = "Service not found"
)

// Repo implements the catalog repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const categoryColumns = `id, provider_id, title, description, image, status, created_at, updated_at`

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(
		&c.ID, &c.ProviderID, &c.Title, &c.Description, &c.Image, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateCategory creates a category.
func (r *Repo) CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error) {
	query := `
		INSERT INTO categories (provider_id, title, description, image, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.pool.QueryRow(ctx, query,
		params.ProviderID, params.Title, params.Description, params.Image, params.Status,
	))
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// GetCategoryByID retrieves a category by ID, unscoped.
func (r *Repo) GetCategoryByID(ctx context.Context, id uuid.UUID) (Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, apperr.NotFound(categoryNotFoundMessage)
	}
	if err != nil {
		return Category{}, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// UpdateCategory updates a category in place. Nil params keep current values.
func (r *Repo) UpdateCategory(ctx context.Context, params UpdateCategoryParams) (Category, error) {
	query := `
		UPDATE categories
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			image = COALESCE($4, image),
			status = COALESCE($5, status),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.pool.QueryRow(ctx, query,
		params.ID, params.Title, params.Description, params.Image, params.Status,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, apperr.NotFound(categoryNotFoundMessage)
	}
	if err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// DeleteCategory removes a category. Hard delete; services keep their
// category reference (no cascade).
func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(categoryNotFoundMessage)
	}
	return nil
}

// ListCategories lists a provider's categories with optional title search,
// newest first.
func (r *Repo) ListCategories(ctx context.Context, params ListCategoriesParams) ([]Category, int, error) {
	whereClauses := []string{"provider_id = $1"}
	args := []interface{}{params.ProviderID}
	argIdx := 2

	if params.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("title ILIKE $%d", argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM categories WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM categories
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, categoryColumns, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("iterate categories: %w", rows.Err())
	}

	return items, total, nil
}

// ListActiveCategories returns a provider's active categories for the public
// catalog, newest first.
func (r *Repo) ListActiveCategories(ctx context.Context, providerID uuid.UUID) ([]Category, error) {
	query := `
		SELECT ` + categoryColumns + ` FROM categories
		WHERE provider_id = $1 AND status = $2
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, providerID, StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	defer rows.Close()

	items := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate categories: %w", rows.Err())
	}

	return items, nil
}

const serviceColumns = `id, provider_id, category_id, service_name, base_price, vat_percent, discount_amount, image, created_at, updated_at`

func scanService(row pgx.Row) (Service, error) {
	var s Service
	err := row.Scan(
		&s.ID, &s.ProviderID, &s.CategoryID, &s.ServiceName, &s.BasePrice,
		&s.VATPercent, &s.DiscountAmount, &s.Image, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// CreateService creates a service.
func (r *Repo) CreateService(ctx context.Context, params CreateServiceParams) (Service, error) {
	query := `
		INSERT INTO services (provider_id, category_id, service_name, base_price, vat_percent, discount_amount, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + serviceColumns

	s, err := scanService(r.pool.QueryRow(ctx, query,
		params.ProviderID, params.CategoryID, params.ServiceName,
		params.BasePrice, params.VATPercent, params.DiscountAmount, params.Image,
	))
	if err != nil {
		return Service{}, fmt.Errorf("create service: %w", err)
	}
	return s, nil
}

// GetServiceByID retrieves a service by ID, unscoped.
func (r *Repo) GetServiceByID(ctx context.Context, id uuid.UUID) (Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	s, err := scanService(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Service{}, apperr.NotFound(serviceNotFoundMessage)
	}
	if err != nil {
		return Service{}, fmt.Errorf("get service by id: %w", err)
	}
	return s, nil
}

// UpdateService updates a service in place. Nil params keep current values.
func (r *Repo) UpdateService(ctx context.Context, params UpdateServiceParams) (Service, error) {
	query := `
		UPDATE services
		SET category_id = COALESCE($2, category_id),
			service_name = COALESCE($3, service_name),
			base_price = COALESCE($4, base_price),
			vat_percent = COALESCE($5, vat_percent),
			discount_amount = COALESCE($6, discount_amount),
			image = COALESCE($7, image),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + serviceColumns

	s, err := scanService(r.pool.QueryRow(ctx, query,
		params.ID, params.CategoryID, params.ServiceName,
		params.BasePrice, params.VATPercent, params.DiscountAmount, params.Image,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Service{}, apperr.NotFound(serviceNotFoundMessage)
	}
	if err != nil {
		return Service{}, fmt.Errorf("update service: %w", err)
	}
	return s, nil
}

// DeleteService removes a service. Hard delete; existing request snapshots
// keep the service id and tolerate the gap at aggregation time.
func (r *Repo) DeleteService(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(serviceNotFoundMessage)
	}
	return nil
}

// ListServices lists a provider's services with optional name search and
// category filter, newest first.
func (r *Repo) ListServices(ctx context.Context, params ListServicesParams) ([]Service, int, error) {
	whereClauses := []string{"provider_id = $1"}
	args := []interface{}{params.ProviderID}
	argIdx := 2

	if params.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("service_name ILIKE $%d", argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}
	if params.CategoryID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("category_id = $%d", argIdx))
		args = append(args, *params.CategoryID)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM services WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s FROM services
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, serviceColumns, whereClause, argIdx, argIdx+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	items := make([]Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, s)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("iterate services: %w", rows.Err())
	}

	return items, total, nil
}

// ListServicesByProvider returns all of a provider's services for the public
// catalog, newest first.
func (r *Repo) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]Service, error) {
	query := `
		SELECT ` + serviceColumns + ` FROM services
		WHERE provider_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("list services by provider: %w", err)
	}
	defer rows.Close()

	items := make([]Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate services: %w", rows.Err())
	}

	return items, nil
}

// GetServicesByIDs resolves a set of service ids, unscoped. Missing ids are
// simply absent from the result; request aggregation relies on this.
func (r *Repo) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]Service, error) {
	if len(ids) == 0 {
		return []Service{}, nil
	}

	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get services by ids: %w", err)
	}
	defer rows.Close()

	items := make([]Service, 0, len(ids))
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate services: %w", rows.Err())
	}

	return items, nil
}
