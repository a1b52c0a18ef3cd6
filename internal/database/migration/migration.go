package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Unique constraints follow the uq_<table>_<field> naming scheme; the
// repository layer derives the duplicate field name from the constraint when
// a write is rejected with SQLSTATE 23505. Nullable unique columns (phone,
// aadhaar, pan) store NULL for absent values so they never collide on the
// index.
var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  username   TEXT        NOT NULL CONSTRAINT uq_users_username UNIQUE,
  email      TEXT        NOT NULL CONSTRAINT uq_users_email UNIQUE,
  password   TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_donors",
		SQL: `CREATE TABLE IF NOT EXISTS donors (
  id                          BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  user_id                     BIGINT      NOT NULL DEFAULT 0,
  name                        TEXT        NOT NULL DEFAULT '',
  age                         INT         NOT NULL DEFAULT 0,
  address                     TEXT        NOT NULL DEFAULT '',
  organization_name           TEXT        NOT NULL DEFAULT '',
  organization_certificate_id TEXT        NOT NULL DEFAULT '',
  pan                         TEXT        CONSTRAINT uq_donors_pan UNIQUE,
  aadhaar                     TEXT        CONSTRAINT uq_donors_aadhaar UNIQUE,
  phone                       TEXT        CONSTRAINT uq_donors_phone UNIQUE,
  email                       TEXT        NOT NULL CONSTRAINT uq_donors_email UNIQUE,
  location                    TEXT        NOT NULL DEFAULT '',
  organization_certificate    TEXT        NOT NULL DEFAULT '',
  photo                       TEXT        NOT NULL DEFAULT '',
  signature                   TEXT        NOT NULL DEFAULT '',
  status                      TEXT        NOT NULL DEFAULT 'pending',
  remarks                     TEXT        NOT NULL DEFAULT '',
  created_at                  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at                  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_recipients",
		SQL: `CREATE TABLE IF NOT EXISTS recipients (
  id                          BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  user_id                     BIGINT      NOT NULL DEFAULT 0,
  name                        TEXT        NOT NULL DEFAULT '',
  age                         INT         NOT NULL DEFAULT 0,
  address                     TEXT        NOT NULL DEFAULT '',
  organization_name           TEXT        NOT NULL DEFAULT '',
  organization_certificate_id TEXT        NOT NULL DEFAULT '',
  pan                         TEXT        CONSTRAINT uq_recipients_pan UNIQUE,
  aadhaar                     TEXT        CONSTRAINT uq_recipients_aadhaar UNIQUE,
  phone                       TEXT        CONSTRAINT uq_recipients_phone UNIQUE,
  email                       TEXT        NOT NULL CONSTRAINT uq_recipients_email UNIQUE,
  location                    TEXT        NOT NULL DEFAULT '',
  organization_certificate    TEXT        NOT NULL DEFAULT '',
  photo                       TEXT        NOT NULL DEFAULT '',
  signature                   TEXT        NOT NULL DEFAULT '',
  status                      TEXT        NOT NULL DEFAULT 'pending',
  remarks                     TEXT        NOT NULL DEFAULT '',
  created_at                  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at                  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_volunteers",
		SQL: `CREATE TABLE IF NOT EXISTS volunteers (
  id                      BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  user_id                 BIGINT      NOT NULL DEFAULT 0,
  name                    TEXT        NOT NULL DEFAULT '',
  email                   TEXT        NOT NULL CONSTRAINT uq_volunteers_email UNIQUE,
  phone                   TEXT        CONSTRAINT uq_volunteers_phone UNIQUE,
  address                 TEXT        NOT NULL DEFAULT '',
  location                TEXT        NOT NULL DEFAULT '',
  aadhaar                 TEXT        CONSTRAINT uq_volunteers_aadhaar UNIQUE,
  pan                     TEXT        CONSTRAINT uq_volunteers_pan UNIQUE,
  availability            TEXT        NOT NULL DEFAULT '',
  skills                  TEXT        NOT NULL DEFAULT '',
  reason                  TEXT        NOT NULL DEFAULT '',
  emergency_contact_phone TEXT        NOT NULL DEFAULT '',
  photo                   TEXT        NOT NULL DEFAULT '',
  status                  TEXT        NOT NULL DEFAULT 'pending',
  remarks                 TEXT        NOT NULL DEFAULT '',
  created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_requests",
		SQL: `CREATE TABLE IF NOT EXISTS requests (
  id           BIGINT           GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  recipient_id BIGINT           NOT NULL,
  title        TEXT             NOT NULL CONSTRAINT uq_requests_title UNIQUE,
  description  TEXT             NOT NULL DEFAULT '',
  amount       DOUBLE PRECISION NOT NULL DEFAULT 0,
  location     TEXT             NOT NULL DEFAULT '',
  address      TEXT             NOT NULL DEFAULT '',
  type         TEXT             NOT NULL DEFAULT '',
  photo        TEXT             NOT NULL DEFAULT '',
  status       TEXT             NOT NULL DEFAULT 'pending',
  remarks      TEXT             NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_donations",
		SQL: `CREATE TABLE IF NOT EXISTS donations (
  id          BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  donor_id    BIGINT      NOT NULL DEFAULT 0,
  title       TEXT        NOT NULL DEFAULT '',
  description TEXT        NOT NULL DEFAULT '',
  photo       TEXT        NOT NULL DEFAULT '',
  location    TEXT        NOT NULL DEFAULT '',
  type        TEXT        NOT NULL DEFAULT '',
  status      TEXT        NOT NULL DEFAULT 'pending',
  remarks     TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_feedbacks",
		SQL: `CREATE TABLE IF NOT EXISTS feedbacks (
  id         BIGINT      GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  user_id    BIGINT      NOT NULL DEFAULT 0,
  message    TEXT        NOT NULL DEFAULT '',
  star       INT         NOT NULL DEFAULT 0 CHECK (star BETWEEN 0 AND 5),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_donors_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_donors_status ON donors (LOWER(status));`,
	},
	{
		Name: "create_index_recipients_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_recipients_status ON recipients (LOWER(status));`,
	},
	{
		Name: "create_index_volunteers_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_volunteers_status ON volunteers (LOWER(status));`,
	},
	{
		Name: "create_index_requests_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_requests_status ON requests (LOWER(status));`,
	},
	{
		Name: "create_index_requests_recipient_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_requests_recipient_id ON requests (recipient_id);`,
	},
	{
		Name: "create_index_donations_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_donations_status ON donations (LOWER(status));`,
	},
	{
		Name: "create_index_donations_donor_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_donations_donor_id ON donations (donor_id);`,
	},
	{
		Name: "create_index_feedbacks_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_feedbacks_user_id ON feedbacks (user_id);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
