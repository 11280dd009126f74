package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// ChoiceRepo handles persistence for ChoiceEvent records.
type ChoiceRepo struct{}

// Append inserts a choice event.
func (r *ChoiceRepo) Append(ctx context.Context, db *sql.DB, ev domain.ChoiceEvent) error {
	const q = `INSERT INTO choice_events (session_id, seq_no, phase, option_id, result, ledger_json, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q,
		ev.SessionID,
		ev.SeqNo,
		int(ev.Phase),
		ev.OptionID,
		ev.Result,
		ev.LedgerJSON,
		ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append choice event: %w", err)
	}
	return nil
}

// ListBySession returns a session's choice events ordered by sequence
// number ascending.
func (r *ChoiceRepo) ListBySession(ctx context.Context, db *sql.DB, sessionID string) ([]domain.ChoiceEvent, error) {
	const q = `SELECT id, session_id, seq_no, phase, option_id, result, ledger_json, created_at
FROM choice_events
WHERE session_id = ?
ORDER BY seq_no ASC`

	rows, err := db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list choice events: %w", err)
	}
	defer rows.Close()

	var events []domain.ChoiceEvent
	for rows.Next() {
		var e domain.ChoiceEvent
		var phase int
		if err := rows.Scan(&e.ID, &e.SessionID, &e.SeqNo, &phase, &e.OptionID, &e.Result, &e.LedgerJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan choice event: %w", err)
		}
		e.Phase = domain.Phase(phase)
		events = append(events, e)
	}
	return events, rows.Err()
}
