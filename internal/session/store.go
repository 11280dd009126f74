// Package session provides the keyed registry of live campaign
// sessions with exclusive per-session mutation.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/anthropics/rebel-command-engine/internal/campaign"
	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// MaxCommanderNameLen bounds the commander name at creation.
const MaxCommanderNameLen = 30

// ChoiceLog records applied choices and concluded campaigns to the
// archive. Recording is write-behind observability: the engine never
// reads it back to drive session state.
type ChoiceLog interface {
	AppendChoice(ctx context.Context, ev domain.ChoiceEvent) error
	RecordCampaign(ctx context.Context, rec domain.CampaignRecord) error
}

// entry pairs a live session with its own mutex so applies on one
// session queue in arrival order while distinct sessions proceed
// independently.
type entry struct {
	mu   sync.Mutex
	sess *domain.Session
}

// Store is the in-memory session registry. The registry lock guards
// the map and the in-flight count; each session mutates under its own
// lock. The cap counts only sessions still in play: concluded sessions
// stay retrievable but free their slot.
type Store struct {
	resolver    *campaign.Resolver
	log         ChoiceLog
	maxSessions int

	mu       sync.RWMutex
	sessions map[string]*entry
	inFlight int
}

// New creates a Store. log may be nil to disable archiving;
// maxSessions <= 0 disables the session cap.
func New(resolver *campaign.Resolver, log ChoiceLog, maxSessions int) *Store {
	return &Store{
		resolver:    resolver,
		log:         log,
		maxSessions: maxSessions,
		sessions:    make(map[string]*entry),
	}
}

// Create registers a new session for the given commander and returns a
// snapshot of its initial state.
func (s *Store) Create(ctx context.Context, commanderName string) (*domain.Session, error) {
	name := strings.TrimSpace(commanderName)
	if name == "" || utf8.RuneCountInString(name) > MaxCommanderNameLen {
		return nil, domain.ErrInvalidInput
	}

	sess := &domain.Session{
		ID:            uuid.NewString(),
		CommanderName: name,
	}
	s.resolver.Seed(sess)

	s.mu.Lock()
	if s.maxSessions > 0 && s.inFlight >= s.maxSessions {
		s.mu.Unlock()
		return nil, domain.ErrSessionLimit
	}
	s.sessions[sess.ID] = &entry{sess: sess}
	s.inFlight++
	s.mu.Unlock()

	return sess.Clone(), nil
}

// Get returns a snapshot of a session's current state.
func (s *Store) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.Clone(), nil
}

// Apply resolves one choice on a session and returns the post-state
// snapshot. Applies on the same session are serialized in arrival
// order; rejected choices leave the session untouched.
func (s *Store) Apply(ctx context.Context, sessionID string, optionID int) (*domain.Session, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sess
	phase := sess.Phase
	if err := s.resolver.Apply(sess, optionID); err != nil {
		return nil, err
	}

	sess.ChoiceSeq++
	if sess.GameOver {
		// Terminal is absorbing, so this runs at most once per session.
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}
	s.record(ctx, sess, phase, optionID)

	return sess.Clone(), nil
}

func (s *Store) lookup(sessionID string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e, nil
}

// record archives the applied choice, and the final mission report when
// the campaign just concluded. phase is the phase the choice was made
// in, before any advancement. Archive failures never fail the apply.
func (s *Store) record(ctx context.Context, sess *domain.Session, phase domain.Phase, optionID int) {
	if s.log == nil {
		return
	}

	now := time.Now().Unix()
	snapshot, _ := json.Marshal(sess.Ledger)
	_ = s.log.AppendChoice(ctx, domain.ChoiceEvent{
		SessionID:  sess.ID,
		SeqNo:      sess.ChoiceSeq,
		Phase:      phase,
		OptionID:   optionID,
		Result:     sess.LastResult,
		LedgerJSON: string(snapshot),
		CreatedAt:  now,
	})

	if sess.GameOver {
		_ = s.log.RecordCampaign(ctx, domain.CampaignRecord{
			SessionID:       sess.ID,
			CommanderName:   sess.CommanderName,
			Outcome:         sess.Outcome,
			FinalPhase:      sess.Phase,
			Reputation:      sess.Ledger.Reputation,
			ForcePoints:     sess.Ledger.ForcePoints,
			Credits:         sess.Ledger.Credits,
			ShipsAvailable:  sess.Ledger.ShipsAvailable,
			PilotsAvailable: sess.Ledger.PilotsAvailable,
			CreatedAt:       now,
		})
	}
}
