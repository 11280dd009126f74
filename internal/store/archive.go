package store

import (
	"context"
	"database/sql"

	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// Archive bundles the database handle with its repos and satisfies the
// session store's ChoiceLog.
type Archive struct {
	DB         *sql.DB
	ChoiceRepo *ChoiceRepo
	RecordRepo *RecordRepo
}

// NewArchive opens (or creates) the archive database at path.
func NewArchive(path string) (*Archive, error) {
	db, err := NewDB(path)
	if err != nil {
		return nil, domain.WrapEngineError(domain.ErrStoreInit.Code, domain.ErrStoreInit.Message, err)
	}
	return &Archive{
		DB:         db,
		ChoiceRepo: &ChoiceRepo{},
		RecordRepo: &RecordRepo{},
	}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.DB.Close()
}

// AppendChoice records one applied choice.
func (a *Archive) AppendChoice(ctx context.Context, ev domain.ChoiceEvent) error {
	return a.ChoiceRepo.Append(ctx, a.DB, ev)
}

// RecordCampaign records the final mission report of a concluded
// session.
func (a *Archive) RecordCampaign(ctx context.Context, rec domain.CampaignRecord) error {
	return a.RecordRepo.Insert(ctx, a.DB, rec)
}

// History returns the archived choice events for one session.
func (a *Archive) History(ctx context.Context, sessionID string) ([]domain.ChoiceEvent, error) {
	return a.ChoiceRepo.ListBySession(ctx, a.DB, sessionID)
}

// Records returns the concluded-campaign records, newest first.
func (a *Archive) Records(ctx context.Context) ([]domain.CampaignRecord, error) {
	return a.RecordRepo.List(ctx, a.DB)
}
