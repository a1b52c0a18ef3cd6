package postgres

import (
	"context"
	"database/sql"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// DonorPostgres is a PostgreSQL implementation of repository.DonorRepository.
type DonorPostgres struct {
	db *sql.DB
}

// NewDonorPostgres creates a new DonorPostgres repository.
func NewDonorPostgres(db *sql.DB) *DonorPostgres {
	return &DonorPostgres{db: db}
}

var _ repository.DonorRepository = (*DonorPostgres)(nil)

// donorCols is the select list shared by every donor query. Nullable unique
// columns (pan, aadhaar, phone) are stored as NULL when empty so that absent
// values never collide on the unique index.
const donorCols = `id, user_id, name, age, address, organization_name, organization_certificate_id,
	COALESCE(pan, ''), COALESCE(aadhaar, ''), COALESCE(phone, ''), email, location,
	organization_certificate, photo, signature, status, remarks, created_at, updated_at`

func scanDonor(s scanner) (*model.Donor, error) {
	var d model.Donor
	if err := s.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Age,
		&d.Address,
		&d.OrganizationName,
		&d.OrganizationCertificateID,
		&d.PAN,
		&d.Aadhaar,
		&d.Phone,
		&d.Email,
		&d.Location,
		&d.OrganizationCertificate,
		&d.Photo,
		&d.Signature,
		&d.Status,
		&d.Remarks,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DonorPostgres) queryDonors(ctx context.Context, q string, args ...any) ([]model.Donor, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Donor, 0)
	for rows.Next() {
		d, err := scanDonor(rows)
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

// Create inserts a new donor row and returns the stored record. A unique
// index violation (email, phone, aadhaar, pan) comes back as *repository.DuplicateError.
func (r *DonorPostgres) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	const q = `
		INSERT INTO donors (user_id, name, age, address, organization_name, organization_certificate_id,
			pan, aadhaar, phone, email, location, organization_certificate, photo, signature, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + donorCols
	row := r.db.QueryRowContext(ctx, q,
		d.UserID, d.Name, d.Age, d.Address, d.OrganizationName, d.OrganizationCertificateID,
		d.PAN, d.Aadhaar, d.Phone, d.Email, d.Location,
		d.OrganizationCertificate, d.Photo, d.Signature, d.Status, d.Remarks,
	)
	out, err := scanDonor(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

// FindByID fetches a single donor by id.
func (r *DonorPostgres) FindByID(ctx context.Context, id int64) (*model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors WHERE id = $1`
	return scanDonor(r.db.QueryRowContext(ctx, q, id))
}

// FindAll returns every donor row in insertion order.
func (r *DonorPostgres) FindAll(ctx context.Context) ([]model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors ORDER BY id`
	return r.queryDonors(ctx, q)
}

// Update overwrites all mutable fields of the row and touches updated_at.
// Returns false if the id is absent.
func (r *DonorPostgres) Update(ctx context.Context, id int64, d *model.Donor) (bool, error) {
	const q = `
		UPDATE donors
		SET user_id = $1, name = $2, age = $3, address = $4, organization_name = $5,
			organization_certificate_id = $6, pan = NULLIF($7, ''), aadhaar = NULLIF($8, ''),
			phone = NULLIF($9, ''), email = $10, location = $11, status = $12, remarks = $13,
			updated_at = now()
		WHERE id = $14`
	res, err := r.db.ExecContext(ctx, q,
		d.UserID, d.Name, d.Age, d.Address, d.OrganizationName, d.OrganizationCertificateID,
		d.PAN, d.Aadhaar, d.Phone, d.Email, d.Location, d.Status, d.Remarks, id,
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

// Delete removes a donor by id. Returns false if the row did not exist.
func (r *DonorPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM donors WHERE id = $1`
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

func (r *DonorPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM donors WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *DonorPostgres) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM donors`
	var n int64
	err := r.db.QueryRowContext(ctx, q).Scan(&n)
	return n, err
}

// Search matches name or email, case-insensitive substring.
func (r *DonorPostgres) Search(ctx context.Context, query string) ([]model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors
		WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryDonors(ctx, q, query)
}

// UpdateStatus overwrites status and remarks and returns the updated row.
func (r *DonorPostgres) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Donor, error) {
	const q = `UPDATE donors SET status = $1, remarks = $2, updated_at = now() WHERE id = $3
		RETURNING ` + donorCols
	return scanDonor(r.db.QueryRowContext(ctx, q, status, remarks, id))
}

func (r *DonorPostgres) FindByStatus(ctx context.Context, status string) ([]model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors WHERE LOWER(status) = LOWER($1) ORDER BY id`
	return r.queryDonors(ctx, q, status)
}

func (r *DonorPostgres) CountByStatus(ctx context.Context, status string) (int64, error) {
	const q = `SELECT COUNT(*) FROM donors WHERE LOWER(status) = LOWER($1)`
	var n int64
	err := r.db.QueryRowContext(ctx, q, status).Scan(&n)
	return n, err
}

func (r *DonorPostgres) FindByUserID(ctx context.Context, userID int64) (*model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors WHERE user_id = $1`
	return scanDonor(r.db.QueryRowContext(ctx, q, userID))
}

func (r *DonorPostgres) FindByLocation(ctx context.Context, location string) ([]model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors WHERE location ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryDonors(ctx, q, location)
}

func (r *DonorPostgres) FindByOrganization(ctx context.Context, name string) ([]model.Donor, error) {
	const q = `SELECT ` + donorCols + ` FROM donors WHERE organization_name ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryDonors(ctx, q, name)
}

// SetAttachments overwrites the stored attachment paths. Nil pointers leave
// the corresponding column untouched.
func (r *DonorPostgres) SetAttachments(ctx context.Context, id int64, photo, certificate, signature *string) (*model.Donor, error) {
	const q = `
		UPDATE donors
		SET photo = COALESCE($1, photo),
			organization_certificate = COALESCE($2, organization_certificate),
			signature = COALESCE($3, signature),
			updated_at = now()
		WHERE id = $4
		RETURNING ` + donorCols
	return scanDonor(r.db.QueryRowContext(ctx, q, photo, certificate, signature, id))
}
