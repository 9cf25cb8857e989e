package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/farehaven/travelfront/internal/models"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

const enquiryColumns = `id, reference, name, email, phone, message, package_slug, status, created_at, updated_at`

func scanEnquiry(row pgx.Row) (*models.Enquiry, error) {
	e := &models.Enquiry{}
	err := row.Scan(
		&e.ID, &e.Reference, &e.Name, &e.Email, &e.Phone, &e.Message,
		&e.PackageSlug, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEnquiry records a customer enquiry and assigns it a reference code
func (db *DB) CreateEnquiry(ctx context.Context, req *models.CreateEnquiryRequest) (*models.Enquiry, error) {
	reference := uuid.New().String()

	query := fmt.Sprintf(`
		INSERT INTO enquiries (reference, name, email, phone, message, package_slug, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'new', NOW(), NOW())
		RETURNING %s
	`, enquiryColumns)

	return scanEnquiry(db.Pool.QueryRow(ctx, query,
		reference, req.Name, req.Email, req.Phone, req.Message, req.PackageSlug,
	))
}

// ListEnquiries returns a paginated list of enquiries, optionally filtered by status
func (db *DB) ListEnquiries(ctx context.Context, params *models.EnquiryListParams) ([]*models.Enquiry, int, error) {
	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if params.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, params.Status)
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM enquiries %s", whereClause)
	if err := db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM enquiries
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, enquiryColumns, whereClause, argIndex, argIndex+1)

	args = append(args, params.Limit, params.Offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var enquiries []*models.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, 0, err
		}
		enquiries = append(enquiries, e)
	}

	return enquiries, total, nil
}

// UpdateEnquiryStatus transitions an enquiry to a new status
func (db *DB) UpdateEnquiryStatus(ctx context.Context, id int, status models.EnquiryStatus) (*models.Enquiry, error) {
	query := fmt.Sprintf(`
		UPDATE enquiries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, enquiryColumns)

	e, err := scanEnquiry(db.Pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return e, nil
}
