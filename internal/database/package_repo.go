package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/farehaven/travelfront/internal/models"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrDuplicateSlug   = errors.New("slug already in use")
)

const packageColumns = `id, slug, title, description, excerpt, category, tags, whats_included,
	highlights, price, currency, duration, display_order, is_published, created_at, updated_at`

func scanPackage(row pgx.Row) (*models.Package, error) {
	pkg := &models.Package{}
	err := row.Scan(
		&pkg.ID, &pkg.Slug, &pkg.Title, &pkg.Description, &pkg.Excerpt, &pkg.Category,
		&pkg.Tags, &pkg.WhatsIncluded, &pkg.Highlights, &pkg.Price, &pkg.Currency,
		&pkg.Duration, &pkg.DisplayOrder, &pkg.IsPublished, &pkg.CreatedAt, &pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if pkg.Tags == nil {
		pkg.Tags = []string{}
	}
	if pkg.WhatsIncluded == nil {
		pkg.WhatsIncluded = []string{}
	}
	if pkg.Highlights == nil {
		pkg.Highlights = []string{}
	}
	return pkg, nil
}

// ListPackages returns a paginated list of packages with optional filtering
func (db *DB) ListPackages(ctx context.Context, params *models.PackageListParams) ([]*models.Package, int, error) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if params.PublishedOnly {
		whereClauses = append(whereClauses, "is_published = TRUE")
	}

	if params.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(title ILIKE $%d OR excerpt ILIKE $%d)", argIndex, argIndex,
		))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	if params.Category != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("LOWER(category) = LOWER($%d)", argIndex))
		args = append(args, params.Category)
		argIndex++
	}

	if params.Tag != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest(tags) t WHERE LOWER(t) = LOWER($%d))", argIndex,
		))
		args = append(args, params.Tag)
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM packages %s", whereClause)
	if err := db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM packages
		%s
		ORDER BY display_order ASC NULLS LAST, updated_at DESC
		LIMIT $%d OFFSET $%d
	`, packageColumns, whereClause, argIndex, argIndex+1)

	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, 0, err
		}
		packages = append(packages, pkg)
	}

	return packages, total, nil
}

// ListPublishedPackages returns every published package, the full input
// set the aggregation core consumes. Fetched fresh per request; caching is
// deliberately not this layer's concern.
func (db *DB) ListPublishedPackages(ctx context.Context) ([]*models.Package, error) {
	query := fmt.Sprintf("SELECT %s FROM packages WHERE is_published = TRUE ORDER BY id ASC", packageColumns)
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}

// GetPackageBySlug retrieves a package by its URL slug
func (db *DB) GetPackageBySlug(ctx context.Context, slug string) (*models.Package, error) {
	query := fmt.Sprintf("SELECT %s FROM packages WHERE slug = $1", packageColumns)
	pkg, err := scanPackage(db.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// GetPackageByID retrieves a package by ID
func (db *DB) GetPackageByID(ctx context.Context, id int) (*models.Package, error) {
	query := fmt.Sprintf("SELECT %s FROM packages WHERE id = $1", packageColumns)
	pkg, err := scanPackage(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// CreatePackage creates a new package
func (db *DB) CreatePackage(ctx context.Context, req *models.CreatePackageRequest) (*models.Package, error) {
	currency := req.Currency
	if currency == "" {
		currency = "GBP"
	}

	query := fmt.Sprintf(`
		INSERT INTO packages (slug, title, description, excerpt, category, tags, whats_included,
			highlights, price, currency, duration, display_order, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s
	`, packageColumns)

	pkg, err := scanPackage(db.Pool.QueryRow(ctx, query,
		req.Slug, req.Title, req.Description, req.Excerpt, req.Category,
		req.Tags, req.WhatsIncluded, req.Highlights, req.Price, currency,
		req.Duration, req.DisplayOrder, req.IsPublished,
	))
	if err != nil {
		if strings.Contains(err.Error(), "packages_slug_key") {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return pkg, nil
}

// UpdatePackage updates an existing package
func (db *DB) UpdatePackage(ctx context.Context, id int, req *models.UpdatePackageRequest) (*models.Package, error) {
	query := fmt.Sprintf(`
		UPDATE packages
		SET slug = COALESCE($2, slug),
		    title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    excerpt = COALESCE($5, excerpt),
		    category = COALESCE($6, category),
		    tags = COALESCE($7, tags),
		    whats_included = COALESCE($8, whats_included),
		    highlights = COALESCE($9, highlights),
		    price = COALESCE($10, price),
		    currency = COALESCE($11, currency),
		    duration = COALESCE($12, duration),
		    display_order = COALESCE($13, display_order),
		    is_published = COALESCE($14, is_published),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, packageColumns)

	pkg, err := scanPackage(db.Pool.QueryRow(ctx, query,
		id, req.Slug, req.Title, req.Description, req.Excerpt, req.Category,
		req.Tags, req.WhatsIncluded, req.Highlights, req.Price, req.Currency,
		req.Duration, req.DisplayOrder, req.IsPublished,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		if strings.Contains(err.Error(), "packages_slug_key") {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return pkg, nil
}

// DeletePackage deletes a package by ID
func (db *DB) DeletePackage(ctx context.Context, id int) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// GetPackageStats returns aggregate statistics for the catalog
func (db *DB) GetPackageStats(ctx context.Context) (*models.PackageStats, error) {
	stats := &models.PackageStats{}

	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*) as total_packages,
			COUNT(*) FILTER (WHERE is_published = TRUE) as published_count,
			COUNT(*) FILTER (WHERE price IS NOT NULL AND price > 0) as with_price,
			COUNT(DISTINCT category) FILTER (WHERE category <> '') as categories
		FROM packages
	`).Scan(&stats.TotalPackages, &stats.PublishedCount, &stats.WithPrice, &stats.Categories)

	if err != nil {
		return nil, err
	}

	return stats, nil
}

// SearchPackages performs a fuzzy search on published packages
func (db *DB) SearchPackages(ctx context.Context, query string, limit int) ([]*models.Package, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM packages
		WHERE is_published = TRUE AND (title ILIKE $1 OR category ILIKE $1)
		ORDER BY
			CASE WHEN title ILIKE $2 || '%%' THEN 0 ELSE 1 END,
			title
		LIMIT $3
	`, packageColumns)

	rows, err := db.Pool.Query(ctx, sql, "%"+query+"%", query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}
