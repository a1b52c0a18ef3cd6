package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"foodbridge/internal/model"
	"foodbridge/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var donorColNames = []string{
	"id", "user_id", "name", "age", "address", "organization_name", "organization_certificate_id",
	"pan", "aadhaar", "phone", "email", "location",
	"organization_certificate", "photo", "signature", "status", "remarks", "created_at", "updated_at",
}

func donorRow(d *model.Donor) *sqlmock.Rows {
	return sqlmock.NewRows(donorColNames).AddRow(
		d.ID, d.UserID, d.Name, d.Age, d.Address, d.OrganizationName, d.OrganizationCertificateID,
		d.PAN, d.Aadhaar, d.Phone, d.Email, d.Location,
		d.OrganizationCertificate, d.Photo, d.Signature, d.Status, d.Remarks, d.CreatedAt, d.UpdatedAt,
	)
}

func TestDonorPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	d := &model.Donor{
		ID:        1,
		UserID:    7,
		Name:      "Asha",
		Age:       30,
		Email:     "asha@example.com",
		Location:  "Pune",
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO donors").
			WithArgs(d.UserID, d.Name, d.Age, d.Address, d.OrganizationName, d.OrganizationCertificateID,
				d.PAN, d.Aadhaar, d.Phone, d.Email, d.Location,
				d.OrganizationCertificate, d.Photo, d.Signature, d.Status, d.Remarks).
			WillReturnRows(donorRow(d))

		result, err := repo.Create(ctx, d)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation becomes DuplicateError", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO donors").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_donors_email"})

		result, err := repo.Create(ctx, d)

		assert.Nil(t, result)
		var dup *repository.DuplicateError
		assert.True(t, errors.As(err, &dup))
		assert.Equal(t, "email", dup.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDonorPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM donors WHERE id = ?").
			WithArgs(int64(5)).
			WillReturnRows(donorRow(&model.Donor{ID: 5, Name: "Asha"}))

		d, err := repo.FindByID(ctx, 5)

		assert.NoError(t, err)
		assert.Equal(t, "Asha", d.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM donors WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		d, err := repo.FindByID(ctx, 404)

		assert.Nil(t, d)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestDonorPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("UPDATE donors SET status").
		WithArgs("verified", "documents checked", int64(5)).
		WillReturnRows(donorRow(&model.Donor{ID: 5, Status: "verified", Remarks: "documents checked"}))

	d, err := repo.UpdateStatus(ctx, 5, "verified", "documents checked")

	assert.NoError(t, err)
	assert.Equal(t, "verified", d.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonorPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorPostgres(db)
	ctx := context.Background()

	d := &model.Donor{Name: "Asha", Email: "asha@example.com"}

	t.Run("row updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE donors").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Update(ctx, 5, d)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("row missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE donors").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Update(ctx, 404, d)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDonorPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorPostgres(db)
	ctx := context.Background()

	t.Run("row removed", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM donors WHERE id = ?").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(ctx, 5)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("row missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM donors WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(ctx, 404)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDonorPostgres_SetAttachments(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonorPostgres(db)
	ctx := context.Background()

	photo := "/uploads/donors/7/photo_1.jpg"
	mock.ExpectQuery("UPDATE donors").
		WithArgs(photo, nil, nil, int64(5)).
		WillReturnRows(donorRow(&model.Donor{ID: 5, Photo: photo}))

	d, err := repo.SetAttachments(ctx, 5, &photo, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, photo, d.Photo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
