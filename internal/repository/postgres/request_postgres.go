package postgres

import (
	"context"
	"database/sql"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// RequestPostgres is a PostgreSQL implementation of repository.RequestRepository.
type RequestPostgres struct {
	db *sql.DB
}

// NewRequestPostgres creates a new RequestPostgres repository.
func NewRequestPostgres(db *sql.DB) *RequestPostgres {
	return &RequestPostgres{db: db}
}

var _ repository.RequestRepository = (*RequestPostgres)(nil)

const requestCols = `id, recipient_id, title, description, amount, location, address, type,
	photo, status, remarks, created_at, updated_at`

func scanRequest(s scanner) (*model.Request, error) {
	var req model.Request
	if err := s.Scan(
		&req.ID,
		&req.RecipientID,
		&req.Title,
		&req.Description,
		&req.Amount,
		&req.Location,
		&req.Address,
		&req.Type,
		&req.Photo,
		&req.Status,
		&req.Remarks,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestPostgres) queryRequests(ctx context.Context, q string, args ...any) ([]model.Request, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new request row. A duplicate title comes back as
// *repository.DuplicateError.
func (r *RequestPostgres) Create(ctx context.Context, req *model.Request) (*model.Request, error) {
	const q = `
		INSERT INTO requests (recipient_id, title, description, amount, location, address, type, photo, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + requestCols
	row := r.db.QueryRowContext(ctx, q,
		req.RecipientID, req.Title, req.Description, req.Amount, req.Location,
		req.Address, req.Type, req.Photo, req.Status, req.Remarks,
	)
	out, err := scanRequest(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (r *RequestPostgres) FindByID(ctx context.Context, id int64) (*model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, q, id))
}

func (r *RequestPostgres) FindAll(ctx context.Context) ([]model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests ORDER BY id`
	return r.queryRequests(ctx, q)
}

func (r *RequestPostgres) Update(ctx context.Context, id int64, req *model.Request) (bool, error) {
	const q = `
		UPDATE requests
		SET recipient_id = $1, title = $2, description = $3, amount = $4, location = $5,
			address = $6, type = $7, status = $8, remarks = $9, updated_at = now()
		WHERE id = $10`
	res, err := r.db.ExecContext(ctx, q,
		req.RecipientID, req.Title, req.Description, req.Amount, req.Location,
		req.Address, req.Type, req.Status, req.Remarks, id,
	)
	if err != nil {
		return false, translateErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RequestPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM requests WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RequestPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *RequestPostgres) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM requests`
	var n int64
	err := r.db.QueryRowContext(ctx, q).Scan(&n)
	return n, err
}

// Search matches title or description, case-insensitive substring.
func (r *RequestPostgres) Search(ctx context.Context, query string) ([]model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests
		WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryRequests(ctx, q, query)
}

func (r *RequestPostgres) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Request, error) {
	const q = `UPDATE requests SET status = $1, remarks = $2, updated_at = now() WHERE id = $3
		RETURNING ` + requestCols
	return scanRequest(r.db.QueryRowContext(ctx, q, status, remarks, id))
}

func (r *RequestPostgres) FindByStatus(ctx context.Context, status string) ([]model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests WHERE LOWER(status) = LOWER($1) ORDER BY id`
	return r.queryRequests(ctx, q, status)
}

func (r *RequestPostgres) CountByStatus(ctx context.Context, status string) (int64, error) {
	const q = `SELECT COUNT(*) FROM requests WHERE LOWER(status) = LOWER($1)`
	var n int64
	err := r.db.QueryRowContext(ctx, q, status).Scan(&n)
	return n, err
}

func (r *RequestPostgres) FindByRecipientID(ctx context.Context, recipientID int64) ([]model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests WHERE recipient_id = $1 ORDER BY id`
	return r.queryRequests(ctx, q, recipientID)
}

func (r *RequestPostgres) FindByLocation(ctx context.Context, location string) ([]model.Request, error) {
	const q = `SELECT ` + requestCols + ` FROM requests WHERE location ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryRequests(ctx, q, location)
}

func (r *RequestPostgres) SetPhoto(ctx context.Context, id int64, photo string) (*model.Request, error) {
	const q = `UPDATE requests SET photo = $1, updated_at = now() WHERE id = $2
		RETURNING ` + requestCols
	return scanRequest(r.db.QueryRowContext(ctx, q, photo, id))
}
