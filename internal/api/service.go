package api

import (
	"context"

	"github.com/anthropics/rebel-command-engine/internal/catalog"
	"github.com/anthropics/rebel-command-engine/internal/domain"
	"github.com/anthropics/rebel-command-engine/internal/session"
)

// Service is the engine's surface toward the transport layer: plain
// function calls with JSON-serializable results.
type Service struct {
	Store   *session.Store
	Catalog *catalog.Catalog
}

// NewService creates a Service over the given store and catalog.
func NewService(store *session.Store, cat *catalog.Catalog) *Service {
	return &Service{Store: store, Catalog: cat}
}

// CreateGame starts a new campaign for the named commander.
func (s *Service) CreateGame(ctx context.Context, commanderName string) (*GameState, error) {
	sess, err := s.Store.Create(ctx, commanderName)
	if err != nil {
		return nil, err
	}
	return stateFor(sess, s.Catalog), nil
}

// GetGame returns the current state of a session.
func (s *Service) GetGame(ctx context.Context, gameID string) (*GameState, error) {
	sess, err := s.Store.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return stateFor(sess, s.Catalog), nil
}

// MakeChoice applies one option choice to a session and returns the
// resulting state.
func (s *Service) MakeChoice(ctx context.Context, gameID string, optionID int) (*GameState, error) {
	sess, err := s.Store.Apply(ctx, gameID, optionID)
	if err != nil {
		return nil, err
	}
	return stateFor(sess, s.Catalog), nil
}

// Ok wraps a state in a success envelope.
func Ok(state *GameState) Envelope {
	return Envelope{Success: true, Data: state}
}

// Fail wraps an error message in a failure envelope.
func Fail(err error) Envelope {
	msg := err.Error()
	if engErr, ok := err.(*domain.EngineError); ok {
		msg = engErr.Message
	}
	return Envelope{Success: false, Error: &msg}
}
