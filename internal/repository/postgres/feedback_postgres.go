package postgres

import (
	"context"
	"database/sql"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"
)

// FeedbackPostgres is a PostgreSQL implementation of repository.FeedbackRepository.
type FeedbackPostgres struct {
	db *sql.DB
}

// NewFeedbackPostgres creates a new FeedbackPostgres repository.
func NewFeedbackPostgres(db *sql.DB) *FeedbackPostgres {
	return &FeedbackPostgres{db: db}
}

var _ repository.FeedbackRepository = (*FeedbackPostgres)(nil)

const feedbackCols = `id, user_id, message, star, created_at, updated_at`

func scanFeedback(s scanner) (*model.Feedback, error) {
	var f model.Feedback
	if err := s.Scan(
		&f.ID,
		&f.UserID,
		&f.Message,
		&f.Star,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackPostgres) queryFeedback(ctx context.Context, q string, args ...any) ([]model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FeedbackPostgres) Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	const q = `
		INSERT INTO feedbacks (user_id, message, star)
		VALUES ($1, $2, $3)
		RETURNING ` + feedbackCols
	row := r.db.QueryRowContext(ctx, q, f.UserID, f.Message, f.Star)
	out, err := scanFeedback(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (r *FeedbackPostgres) FindByID(ctx context.Context, id int64) (*model.Feedback, error) {
	const q = `SELECT ` + feedbackCols + ` FROM feedbacks WHERE id = $1`
	return scanFeedback(r.db.QueryRowContext(ctx, q, id))
}

func (r *FeedbackPostgres) FindAll(ctx context.Context) ([]model.Feedback, error) {
	const q = `SELECT ` + feedbackCols + ` FROM feedbacks ORDER BY id`
	return r.queryFeedback(ctx, q)
}

func (r *FeedbackPostgres) Update(ctx context.Context, id int64, f *model.Feedback) (bool, error) {
	const q = `UPDATE feedbacks SET user_id = $1, message = $2, star = $3, updated_at = now() WHERE id = $4`
	res, err := r.db.ExecContext(ctx, q, f.UserID, f.Message, f.Star, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FeedbackPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM feedbacks WHERE id = $1`
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

func (r *FeedbackPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM feedbacks WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&exists)
	return exists, err
}

func (r *FeedbackPostgres) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM feedbacks`
	var n int64
	err := r.db.QueryRowContext(ctx, q).Scan(&n)
	return n, err
}

// Search matches the message text, case-insensitive substring.
func (r *FeedbackPostgres) Search(ctx context.Context, query string) ([]model.Feedback, error) {
	const q = `SELECT ` + feedbackCols + ` FROM feedbacks WHERE message ILIKE '%' || $1 || '%' ORDER BY id`
	return r.queryFeedback(ctx, q, query)
}

func (r *FeedbackPostgres) FindByUserID(ctx context.Context, userID int64) ([]model.Feedback, error) {
	const q = `SELECT ` + feedbackCols + ` FROM feedbacks WHERE user_id = $1 ORDER BY id`
	return r.queryFeedback(ctx, q, userID)
}

func (r *FeedbackPostgres) FindByStar(ctx context.Context, star int) ([]model.Feedback, error) {
	const q = `SELECT ` + feedbackCols + ` FROM feedbacks WHERE star = $1 ORDER BY id`
	return r.queryFeedback(ctx, q, star)
}

func (r *FeedbackPostgres) AverageStar(ctx context.Context) (float64, error) {
	const q = `SELECT COALESCE(AVG(star), 0) FROM feedbacks`
	var avg float64
	err := r.db.QueryRowContext(ctx, q).Scan(&avg)
	return avg, err
}
