package postgres

import (
	"context"
	"database/sql"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// VolunteerPostgres is a PostgreSQL implementation of repository.VolunteerRepository.
type VolunteerPostgres struct {
	db *sql.DB
}

// NewVolunteerPostgres creates a new VolunteerPostgres repository.
func NewVolunteerPostgres(db *sql.DB) *VolunteerPostgres {
	return &VolunteerPostgres{db: db}
}

var _ repository.VolunteerRepository = (*VolunteerPostgres)(nil)

const volunteerCols = `id, user_id, name, email, COALESCE(phone, ''), address, location,
	COALESCE(aadhaar, ''), COALESCE(pan, ''), availability, skills, reason,
	emergency_contact_phone, photo, status, remarks, created_at, updated_at`

func scanVolunteer(s scanner) (*model.Volunteer, error) {
	var v model.Volunteer
	if err := s.Scan(
		&v.ID,
		&v.UserID,
		&v.Name,
		&v.Email,
		&v.Phone,
		&v.Address,
		&v.Location,
		&v.Aadhaar,
		&v.PAN,
		&v.Availability,
		&v.Skills,
		&v.Reason,
		&v.EmergencyContactPhone,
		&v.Photo,
		&v.Status,
		&v.Remarks,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VolunteerPostgres) queryVolunteers(ctx context.Context, q string, args ...any) ([]model.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Volunteer, 0)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *VolunteerPostgres) Create(ctx context.Context, v *model.Volunteer) (*model.Volunteer, error) {
	const q = `
		INSERT INTO volunteers (user_id, name, email, phone, address, location, aadhaar, pan,
			availability, skills, reason, emergency_contact_phone, photo, status, remarks)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), NULLIF($8, ''),
			$9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + volunteerCols
	row := r.db.QueryRowContext(ctx, q,
		v.UserID, v.Name, v.Email, v.Phone, v.Address, v.Location, v.Aadhaar, v.PAN,
		v.Availability, v.Skills, v.Reason, v.EmergencyContactPhone, v.Photo, v.Status, v.Remarks,
	)
	out, err := scanVolunteer(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (r *VolunteerPostgres) FindByID(ctx context.Context, id int64) (*model.Volunteer, error) {
	const q = `SELECT ` + volunteerCols + ` FROM volunteers WHERE id = $1`
	return scanVolunteer(r.db.QueryRowContext(ctx, q, id))
}

func (r *VolunteerPostgres) FindAll(ctx context.Context) ([]model.Volunteer, error) {
	const q = `SELECT ` + volunteerCols + ` FROM volunteers ORDER BY id`
	return r.queryVolunteers(ctx, q)
}

func (r *VolunteerPostgres) Update(ctx context.Context, id int64, v *model.Volunteer) (bool, error) {
	const q = `
		UPDATE volunteers
		SET user_id = $1, name = $2, email = $3, phone = NULLIF($4, ''), address = $5,
			location = $6, aadhaar = NULLIF($7, ''), pan = NULLIF($8, ''), availability = $9,
			skills = $10, reason = $11, emergency_contact_phone = $12, status = $13, remarks = $14,
			updated_at = now()
		WHERE id = $15`
	res, err := r.db.ExecContext(ctx, q,
		v.UserID, v.Name, v.Email, v.Phone, v.Address, v.Location, v.Aadhaar, v.PAN,
		v.Availability, v.Skills, v.Reason, v.EmergencyContactPhone, v.Status, v.Remarks, id,
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

func (r *VolunteerPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM volunteers WHERE id = $1`
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

func (r *VolunteerPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM volunteers WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *VolunteerPostgres) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM volunteers`
	var n int64
	err := r.db.QueryRowContext(ctx, q).Scan(&n)
	return n, err
}

func (r *VolunteerPostgres) Search(ctx context.Context, query string) ([]model.Volunteer, error) {
	const q = `SELECT ` + volunteerCols + ` FROM volunteers
		WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryVolunteers(ctx, q, query)
}

func (r *VolunteerPostgres) UpdateStatus(ctx context.Context, id int64, status, remarks string) (*model.Volunteer, error) {
	const q = `UPDATE volunteers SET status = $1, remarks = $2, updated_at = now() WHERE id = $3
		RETURNING ` + volunteerCols
	return scanVolunteer(r.db.QueryRowContext(ctx, q, status, remarks, id))
}

func (r *VolunteerPostgres) FindByStatus(ctx context.Context, status string) ([]model.Volunteer, error) {
	const q = `SELECT ` + volunteerCols + ` FROM volunteers WHERE LOWER(status) = LOWER($1) ORDER BY id`
	return r.queryVolunteers(ctx, q, status)
}

func (r *VolunteerPostgres) CountByStatus(ctx context.Context, status string) (int64, error) {
	const q = `SELECT COUNT(*) FROM volunteers WHERE LOWER(status) = LOWER($1)`
	var n int64
	err := r.db.QueryRowContext(ctx, q, status).Scan(&n)
	return n, err
}

func (r *VolunteerPostgres) FindByUserID(ctx context.Context, userID int64) (*model.Volunteer, error) {
	const q = `SELECT ` + volunteerCols + ` FROM volunteers WHERE user_id = $1`
	return scanVolunteer(r.db.QueryRowContext(ctx, q, userID))
}

func (r *VolunteerPostgres) FindByLocation(ctx context.Context, location string) ([]model.Volunteer, error) {
	const q = `SELECT ` + volunteerCols + ` FROM volunteers WHERE location ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryVolunteers(ctx, q, location)
}

func (r *VolunteerPostgres) SetPhoto(ctx context.Context, id int64, photo string) (*model.Volunteer, error) {
	const q = `UPDATE volunteers SET photo = $1, updated_at = now() WHERE id = $2
		RETURNING ` + volunteerCols
	return scanVolunteer(r.db.QueryRowContext(ctx, q, photo, id))
}
