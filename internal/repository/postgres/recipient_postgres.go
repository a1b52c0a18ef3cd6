package postgres

import (
	"context"
	"database/sql"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// RecipientPostgres is a PostgreSQL implementation of repository.RecipientRepository.
type RecipientPostgres struct {
	db *sql.DB
}

// NewRecipientPostgres creates a new RecipientPostgres repository.
func NewRecipientPostgres(db *sql.DB) *RecipientPostgres {
	return &RecipientPostgres{db: db}
}

var _ repository.RecipientRepository = (*RecipientPostgres)(nil)

const recipientCols = `id, user_id, name, age, address, organization_name, organization_certificate_id,
	COALESCE(pan, ''), COALESCE(aadhaar, ''), COALESCE(phone, ''), email, location,
	organization_certificate, photo, signature, status, remarks, created_at, updated_at`

func scanRecipient(s scanner) (*model.Recipient, error) {
	var rec model.Recipient
	if err := s.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Name,
		&rec.Age,
		&rec.Address,
		&rec.OrganizationName,
		&rec.OrganizationCertificateID,
		&rec.PAN,
		&rec.Aadhaar,
		&rec.Phone,
		&rec.Email,
		&rec.Location,
		&rec.OrganizationCertificate,
		&rec.Photo,
		&rec.Signature,
		&rec.Status,
		&rec.Remarks,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecipientPostgres) queryRecipients(ctx context.Context, q string, args ...any) ([]model.Recipient, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Recipient, 0)
	for rows.Next() {
		rec, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RecipientPostgres) Create(ctx context.Context, rec *model.Recipient) (*model.Recipient, error) {
	const q = `
		INSERT INTO recipients (user_id, name, age, address, organization_name, organization_certificate_id,
			pan, aadhaar, phone, email, location, organization_certificate, photo, signature, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + recipientCols
	row := r.db.QueryRowContext(ctx, q,
		rec.UserID, rec.Name, rec.Age, rec.Address, rec.OrganizationName, rec.OrganizationCertificateID,
		rec.PAN, rec.Aadhaar, rec.Phone, rec.Email, rec.Location,
		rec.OrganizationCertificate, rec.Photo, rec.Signature, rec.Status, rec.Remarks,
	)
	out, err := scanRecipient(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (r *RecipientPostgres) FindByID(ctx context.Context, id int64) (*model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients WHERE id = $1`
	return scanRecipient(r.db.QueryRowContext(ctx, q, id))
}

func (r *RecipientPostgres) FindAll(ctx context.Context) ([]model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients ORDER BY id`
	return r.queryRecipients(ctx, q)
}

func (r *RecipientPostgres) Update(ctx context.Context, id int64, rec *model.Recipient) (bool, error) {
	const q = `
		UPDATE recipients
		SET user_id = $1, name = $2, age = $3, address = $4, organization_name = $5,
			organization_certificate_id = $6, pan = NULLIF($7, ''), aadhaar = NULLIF($8, ''),
			phone = NULLIF($9, ''), email = $10, location = $11, status = $12, remarks = $13,
			updated_at = now()
		WHERE id = $14`
	res, err := r.db.ExecContext(ctx, q,
		rec.UserID, rec.Name, rec.Age, rec.Address, rec.OrganizationName, rec.OrganizationCertificateID,
		rec.PAN, rec.Aadhaar, rec.Phone, rec.Email, rec.Location, rec.Status, rec.Remarks, id,
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

func (r *RecipientPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM recipients WHERE id = $1`
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

func (r *RecipientPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM recipients WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *RecipientPostgres) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM recipients`
	var n int64
	err := r.db.QueryRowContext(ctx, q).Scan(&n)
	return n, err
}

func (r *RecipientPostgres) Search(ctx context.Context, query string) ([]model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients
		WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryRecipients(ctx, q, query)
}

func (r *RecipientPostgres) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Recipient, error) {
	const q = `UPDATE recipients SET status = $1, remarks = $2, updated_at = now() WHERE id = $3
		RETURNING ` + recipientCols
	return scanRecipient(r.db.QueryRowContext(ctx, q, status, remarks, id))
}

func (r *RecipientPostgres) FindByStatus(ctx context.Context, status string) ([]model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients WHERE LOWER(status) = LOWER($1) ORDER BY id`
	return r.queryRecipients(ctx, q, status)
}

func (r *RecipientPostgres) CountByStatus(ctx context.Context, status string) (int64, error) {
	const q = `SELECT COUNT(*) FROM recipients WHERE LOWER(status) = LOWER($1)`
	var n int64
	err := r.db.QueryRowContext(ctx, q, status).Scan(&n)
	return n, err
}

func (r *RecipientPostgres) FindByUserID(ctx context.Context, userID int64) (*model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients WHERE user_id = $1`
	return scanRecipient(r.db.QueryRowContext(ctx, q, userID))
}

func (r *RecipientPostgres) FindByLocation(ctx context.Context, location string) ([]model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients WHERE location ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryRecipients(ctx, q, location)
}

func (r *RecipientPostgres) FindByOrganization(ctx context.Context, name string) ([]model.Recipient, error) {
	const q = `SELECT ` + recipientCols + ` FROM recipients WHERE organization_name ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryRecipients(ctx, q, name)
}

func (r *RecipientPostgres) SetAttachments(ctx context.Context, id int64, photo, certificate, signature *string) (*model.Recipient, error) {
	const q = `
		UPDATE recipients
		SET photo = COALESCE($1, photo),
			organization_certificate = COALESCE($2, organization_certificate),
			signature = COALESCE($3, signature),
			updated_at = now()
		WHERE id = $4
		RETURNING ` + recipientCols
	return scanRecipient(r.db.QueryRowContext(ctx, q, photo, certificate, signature, id))
}
