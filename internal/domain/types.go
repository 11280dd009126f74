// Package domain defines the core types for the Rebel Command engine.
package domain

// Phase represents campaign phases 1 through 4. Phase 5 denotes a
// completed mission and never offers options.
type Phase int

const (
	PhaseRescue   Phase = 1
	PhaseDecode   Phase = 2
	PhasePrepare  Phase = 3
	PhaseAssault  Phase = 4
	PhaseComplete Phase = 5
)

// Starting ledger values, fixed at session creation.
const (
	StartingReputation  = 50
	StartingForcePoints = 10
	StartingCredits     = 100
	StartingShips       = 5
	StartingPilots      = 8

	// MaxReputation is the upper clamp bound for reputation.
	MaxReputation = 100
)

// Ledger holds the mutable resource state of one session. Numeric
// fields stay non-negative; reputation additionally stays within
// [0, MaxReputation]. The flags are one-way: LeiaRescued and
// DeathStarPlans only transition false->true, MentorAlive only
// true->false.
type Ledger struct {
	Reputation       int
	ForcePoints      int
	Credits          int
	ShipsAvailable   int
	PilotsAvailable  int
	LeiaRescued      bool
	DeathStarPlans   bool
	MentorAlive      bool
	PreparationsMade int
}

// NewLedger returns the fixed starting ledger for a fresh session.
func NewLedger() Ledger {
	return Ledger{
		Reputation:      StartingReputation,
		ForcePoints:     StartingForcePoints,
		Credits:         StartingCredits,
		ShipsAvailable:  StartingShips,
		PilotsAvailable: StartingPilots,
		MentorAlive:     true,
	}
}

// GainReputation raises reputation, clamped to MaxReputation.
func (l *Ledger) GainReputation(n int) {
	l.Reputation += n
	if l.Reputation > MaxReputation {
		l.Reputation = MaxReputation
	}
}

// LoseReputation lowers reputation, clamped to zero.
func (l *Ledger) LoseReputation(n int) {
	l.Reputation -= n
	if l.Reputation < 0 {
		l.Reputation = 0
	}
}

// Validate checks the ledger invariants. A failure here is an internal
// defect (a mis-authored catalog effect), never a player-triggerable
// state.
func (l Ledger) Validate() error {
	if l.Reputation < 0 || l.Reputation > MaxReputation {
		return ErrLedgerInvariant
	}
	if l.ForcePoints < 0 || l.Credits < 0 || l.ShipsAvailable < 0 ||
		l.PilotsAvailable < 0 || l.PreparationsMade < 0 {
		return ErrLedgerInvariant
	}
	return nil
}

// Option is a player-selectable action as offered to one session:
// the immutable catalog template annotated with per-session
// availability. Cost is a credit cost; zero means free. Requirement
// is the human-readable reason shown when the predicate gates the
// option; empty means unconditional.
type Option struct {
	ID          int
	Text        string
	Description string
	Icon        string
	Cost        int
	Requirement string
	Available   bool
}

// Outcome is the tagged classification of a concluded campaign. The
// display text is derived from the tag, never parsed back from it.
type Outcome string

const (
	OutcomeNone            Outcome = ""
	OutcomeHeroicSacrifice Outcome = "heroic_sacrifice"
	OutcomeDefeat          Outcome = "defeat"
	OutcomeLegendary       Outcome = "legendary_force_victory"
	OutcomePerfect         Outcome = "perfect_victory"
	OutcomeCostly          Outcome = "costly_victory"
	OutcomeVictory         Outcome = "victory"
)

// Session is one commander's playthrough. Phase only increases.
// Options is empty exactly when GameOver is true.
type Session struct {
	ID            string
	CommanderName string
	Ledger        Ledger
	Phase         Phase
	GameOver      bool
	Outcome       Outcome
	LastResult    string
	Options       []Option
	ChoiceSeq     int64
}

// Clone returns a deep copy safe to hand to callers while the live
// session keeps mutating under its own lock.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Options = append([]Option(nil), s.Options...)
	return &cp
}

// ChoiceEvent is one applied choice, recorded to the campaign archive
// in apply order.
type ChoiceEvent struct {
	ID         int64
	SessionID  string
	SeqNo      int64
	Phase      Phase
	OptionID   int
	Result     string
	LedgerJSON string
	CreatedAt  int64
}

// CampaignRecord is the final mission report for a concluded session.
type CampaignRecord struct {
	SessionID       string
	CommanderName   string
	Outcome         Outcome
	FinalPhase      Phase
	Reputation      int
	ForcePoints     int
	Credits         int
	ShipsAvailable  int
	PilotsAvailable int
	CreatedAt       int64
}
