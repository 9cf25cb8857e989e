package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/farehaven/travelfront/internal/models"
)

var ErrPageNotFound = errors.New("page not found")

const pageColumns = `id, slug, title, body, meta_description, is_published, created_at, updated_at`

func scanPage(row pgx.Row) (*models.Page, error) {
	p := &models.Page{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Body, &p.MetaDescription,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPages returns all content pages, optionally restricted to published ones
func (db *DB) ListPages(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	query := fmt.Sprintf("SELECT %s FROM pages", pageColumns)
	if publishedOnly {
		query += " WHERE is_published = TRUE"
	}
	query += " ORDER BY slug ASC"

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, nil
}

// GetPageBySlug retrieves a content page by slug
func (db *DB) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	query := fmt.Sprintf("SELECT %s FROM pages WHERE slug = $1", pageColumns)
	p, err := scanPage(db.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreatePage creates a content page
func (db *DB) CreatePage(ctx context.Context, req *models.CreatePageRequest) (*models.Page, error) {
	query := fmt.Sprintf(`
		INSERT INTO pages (slug, title, body, meta_description, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s
	`, pageColumns)

	p, err := scanPage(db.Pool.QueryRow(ctx, query,
		req.Slug, req.Title, req.Body, req.MetaDescription, req.IsPublished,
	))
	if err != nil {
		if strings.Contains(err.Error(), "pages_slug_key") {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return p, nil
}

// UpdatePage updates a content page
func (db *DB) UpdatePage(ctx context.Context, id int, req *models.UpdatePageRequest) (*models.Page, error) {
	query := fmt.Sprintf(`
		UPDATE pages
		SET slug = COALESCE($2, slug),
		    title = COALESCE($3, title),
		    body = COALESCE($4, body),
		    meta_description = COALESCE($5, meta_description),
		    is_published = COALESCE($6, is_published),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, pageColumns)

	p, err := scanPage(db.Pool.QueryRow(ctx, query,
		id, req.Slug, req.Title, req.Body, req.MetaDescription, req.IsPublished,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return p, nil
}

// DeletePage deletes a content page by ID
func (db *DB) DeletePage(ctx context.Context, id int) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrPageNotFound
	}

	return nil
}
