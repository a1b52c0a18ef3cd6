package postgres

import (
	"context"
	"database/sql"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// DonationPostgres is a PostgreSQL implementation of repository.DonationRepository.
type DonationPostgres struct {
	db *sql.DB
}

// NewDonationPostgres creates a new DonationPostgres repository.
func NewDonationPostgres(db *sql.DB) *DonationPostgres {
	return &DonationPostgres{db: db}
}

var _ repository.DonationRepository = (*DonationPostgres)(nil)

const donationCols = `id, donor_id, title, description, photo, location, type,
	status, remarks, created_at, updated_at`

func scanDonation(s scanner) (*model.Donation, error) {
	var d model.Donation
	if err := s.Scan(
		&d.ID,
		&d.DonorID,
		&d.Title,
		&d.Description,
		&d.Photo,
		&d.Location,
		&d.Type,
		&d.Status,
		&d.Remarks,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonationPostgres) queryDonations(ctx context.Context, q string, args ...any) ([]model.Donation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DonationPostgres) Create(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	const q = `
		INSERT INTO donations (donor_id, title, description, photo, location, type, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + donationCols
	row := r.db.QueryRowContext(ctx, q,
		d.DonorID, d.Title, d.Description, d.Photo, d.Location, d.Type, d.Status, d.Remarks,
	)
	out, err := scanDonation(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (r *DonationPostgres) FindByID(ctx context.Context, id int64) (*model.Donation, error) {
	const q = `SELECT ` + donationCols + ` FROM donations WHERE id = $1`
	return scanDonation(r.db.QueryRowContext(ctx, q, id))
}

func (r *DonationPostgres) FindAll(ctx context.Context) ([]model.Donation, error) {
	const q = `SELECT ` + donationCols + ` FROM donations ORDER BY id`
	return r.queryDonations(ctx, q)
}

func (r *DonationPostgres) Update(ctx context.Context, id int64, d *model.Donation) (bool, error) {
	const q = `
		UPDATE donations
		SET donor_id = $1, title = $2, description = $3, location = $4, type = $5,
			status = $6, remarks = $7, updated_at = now()
		WHERE id = $8`
	res, err := r.db.ExecContext(ctx, q,
		d.DonorID, d.Title, d.Description, d.Location, d.Type, d.Status, d.Remarks, id,
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

func (r *DonationPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM donations WHERE id = $1`
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

func (r *DonationPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM donations WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *DonationPostgres) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM donations`
	var n int64
	err := r.db.QueryRowContext(ctx, q).Scan(&n)
	return n, err
}

func (r *DonationPostgres) Search(ctx context.Context, query string) ([]model.Donation, error) {
	const q = `SELECT ` + donationCols + ` FROM donations
		WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryDonations(ctx, q, query)
}

func (r *DonationPostgres) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Donation, error) {
	const q = `UPDATE donations SET status = $1, remarks = $2, updated_at = now() WHERE id = $3
		RETURNING ` + donationCols
	return scanDonation(r.db.QueryRowContext(ctx, q, status, remarks, id))
}

func (r *DonationPostgres) FindByStatus(ctx context.Context, status string) ([]model.Donation, error) {
	const q = `SELECT ` + donationCols + ` FROM donations WHERE LOWER(status) = LOWER($1) ORDER BY id`
	return r.queryDonations(ctx, q, status)
}

func (r *DonationPostgres) CountByStatus(ctx context.Context, status string) (int64, error) {
	const q = `SELECT COUNT(*) FROM donations WHERE LOWER(status) = LOWER($1)`
	var n int64
	err := r.db.QueryRowContext(ctx, q, status).Scan(&n)
	return n, err
}

func (r *DonationPostgres) FindByDonorID(ctx context.Context, donorID int64) ([]model.Donation, error) {
	const q = `SELECT ` + donationCols + ` FROM donations WHERE donor_id = $1 ORDER BY id`
	return r.queryDonations(ctx, q, donorID)
}

func (r *DonationPostgres) FindByLocation(ctx context.Context, location string) ([]model.Donation, error) {
	const q = `SELECT ` + donationCols + ` FROM donations WHERE location ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryDonations(ctx, q, location)
}

func (r *DonationPostgres) SetPhoto(ctx context.Context, id int64, photo string) (*model.Donation, error) {
	const q = `UPDATE donations SET photo = $1, updated_at = now() WHERE id = $2
		RETURNING ` + donationCols
	return scanDonation(r.db.QueryRowContext(ctx, q, photo, id))
}
