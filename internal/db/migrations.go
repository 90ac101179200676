package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'manager', 'user')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS assets (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    manufacturer TEXT,
    model        TEXT,
    type         TEXT,
    owned_count  INTEGER NOT NULL DEFAULT 0 CHECK (owned_count >= 0),
    image        BLOB,
    image_mime   TEXT,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at   DATETIME
);

CREATE TABLE IF NOT EXISTS asset_sets (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at  DATETIME
);

CREATE TABLE IF NOT EXISTS set_assets (
    set_id   TEXT NOT NULL REFERENCES asset_sets(id),
    asset_id TEXT NOT NULL REFERENCES assets(id),
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (set_id, asset_id)
);

CREATE TABLE IF NOT EXISTS jobs (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    customer   TEXT,
    start_time DATETIME NOT NULL,
    end_time   DATETIME NOT NULL,
    confirmed  INTEGER NOT NULL DEFAULT 0,
    notes      TEXT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS job_assets (
    job_id        TEXT NOT NULL REFERENCES jobs(id),
    asset_id      TEXT NOT NULL REFERENCES assets(id),
    quantity      INTEGER NOT NULL CHECK (quantity > 0),
    days_override INTEGER,
    PRIMARY KEY (job_id, asset_id)
);

CREATE TABLE IF NOT EXISTS job_sets (
    job_id        TEXT NOT NULL REFERENCES jobs(id),
    set_id        TEXT NOT NULL REFERENCES asset_sets(id),
    quantity      INTEGER NOT NULL CHECK (quantity > 0),
    days_override INTEGER,
    PRIMARY KEY (job_id, set_id)
);

CREATE INDEX IF NOT EXISTS idx_jobs_window
    ON jobs(start_time, end_time) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations []string

// Migrate creates the schema and runs any pending migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
