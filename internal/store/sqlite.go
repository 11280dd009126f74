// Package store provides the SQLite-backed campaign archive: the
// append-only choice log and the record of concluded campaigns. Live
// session state never lives here; the archive is reporting data only.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaV1 defines the initial database schema.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS choice_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	seq_no      INTEGER NOT NULL,
	phase       INTEGER NOT NULL,
	option_id   INTEGER NOT NULL,
	result      TEXT NOT NULL DEFAULT '',
	ledger_json TEXT NOT NULL DEFAULT '{}',
	created_at  INTEGER NOT NULL,
	UNIQUE(session_id, seq_no)
);
CREATE INDEX IF NOT EXISTS idx_choice_events_session_seq ON choice_events(session_id, seq_no);

CREATE TABLE IF NOT EXISTS campaign_records (
	session_id       TEXT PRIMARY KEY,
	commander_name   TEXT NOT NULL,
	outcome          TEXT NOT NULL,
	final_phase      INTEGER NOT NULL,
	reputation       INTEGER NOT NULL DEFAULT 0,
	force_points     INTEGER NOT NULL DEFAULT 0,
	credits          INTEGER NOT NULL DEFAULT 0,
	ships_available  INTEGER NOT NULL DEFAULT 0,
	pilots_available INTEGER NOT NULL DEFAULT 0,
	created_at       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_campaign_records_outcome ON campaign_records(outcome);
`

// NewDB opens a SQLite database at the given path with recommended pragmas
// and runs the V1 schema migration.
func NewDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Limit connections to 1 for SQLite (WAL allows concurrent reads but single writer).
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), schemaV1)
	return err
}
