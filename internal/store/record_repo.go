package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// RecordRepo handles persistence for CampaignRecord rows.
type RecordRepo struct{}

// Insert stores the final mission report for a concluded session.
func (r *RecordRepo) Insert(ctx context.Context, db *sql.DB, rec domain.CampaignRecord) error {
	const q = `INSERT INTO campaign_records (session_id, commander_name, outcome, final_phase, reputation, force_points, credits, ships_available, pilots_available, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q,
		rec.SessionID,
		rec.CommanderName,
		string(rec.Outcome),
		int(rec.FinalPhase),
		rec.Reputation,
		rec.ForcePoints,
		rec.Credits,
		rec.ShipsAvailable,
		rec.PilotsAvailable,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign record: %w", err)
	}
	return nil
}

// List returns concluded campaigns, newest first.
func (r *RecordRepo) List(ctx context.Context, db *sql.DB) ([]domain.CampaignRecord, error) {
	const q = `SELECT session_id, commander_name, outcome, final_phase, reputation, force_points, credits, ships_available, pilots_available, created_at
FROM campaign_records
ORDER BY created_at DESC, session_id DESC`

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list campaign records: %w", err)
	}
	defer rows.Close()

	var records []domain.CampaignRecord
	for rows.Next() {
		var rec domain.CampaignRecord
		var outcome string
		var phase int
		if err := rows.Scan(&rec.SessionID, &rec.CommanderName, &outcome, &phase,
			&rec.Reputation, &rec.ForcePoints, &rec.Credits,
			&rec.ShipsAvailable, &rec.PilotsAvailable, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campaign record: %w", err)
		}
		rec.Outcome = domain.Outcome(outcome)
		rec.FinalPhase = domain.Phase(phase)
		records = append(records, rec)
	}
	return records, rows.Err()
}
