// Package api exposes the engine's three logical operations and the
// wire shapes the presentation layer pattern-matches on. Field names
// and presence/absence semantics are a compatibility surface.
package api

import (
	"github.com/anthropics/rebel-command-engine/internal/catalog"
	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// GameState is the wire snapshot of one session.
type GameState struct {
	GameID           string       `json:"game_id"`
	CommanderName    string       `json:"commander_name"`
	Reputation       int          `json:"reputation"`
	ForcePoints      int          `json:"force_points"`
	Credits          int          `json:"credits"`
	ShipsAvailable   int          `json:"ships_available"`
	PilotsAvailable  int          `json:"pilots_available"`
	CurrentPhase     int          `json:"current_phase"`
	LeiaRescued      bool         `json:"leia_rescued"`
	DeathStarPlans   bool         `json:"death_star_plans"`
	ObiWanAlive      bool         `json:"obi_wan_alive"`
	GameOver         bool         `json:"game_over"`
	PreparationsMade int          `json:"preparations_made"`
	CurrentOptions   []OptionView `json:"current_options"`
	PhaseDescription string       `json:"phase_description"`
	LastActionResult *string      `json:"last_action_result,omitempty"`
}

// OptionView is one offered option. Cost and requirement are present
// only when applicable.
type OptionView struct {
	ID          int     `json:"id"`
	Text        string  `json:"text"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Cost        *int    `json:"cost,omitempty"`
	Requirement *string `json:"requirement,omitempty"`
	Available   bool    `json:"available"`
}

// Envelope wraps every response. Error carries the engine error
// message when Success is false.
type Envelope struct {
	Success bool       `json:"success"`
	Data    *GameState `json:"data,omitempty"`
	Error   *string    `json:"error,omitempty"`
}

// stateFor maps a session snapshot to its wire shape.
func stateFor(sess *domain.Session, cat *catalog.Catalog) *GameState {
	// The client renders options in declaration order; always emit an
	// array, never null.
	options := make([]OptionView, 0, len(sess.Options))
	for _, o := range sess.Options {
		v := OptionView{
			ID:          o.ID,
			Text:        o.Text,
			Description: o.Description,
			Icon:        o.Icon,
			Available:   o.Available,
		}
		if o.Cost > 0 {
			cost := o.Cost
			v.Cost = &cost
		}
		if o.Requirement != "" {
			req := o.Requirement
			v.Requirement = &req
		}
		options = append(options, v)
	}

	descPhase := sess.Phase
	if sess.GameOver {
		descPhase = domain.PhaseComplete
	}

	gs := &GameState{
		GameID:           sess.ID,
		CommanderName:    sess.CommanderName,
		Reputation:       sess.Ledger.Reputation,
		ForcePoints:      sess.Ledger.ForcePoints,
		Credits:          sess.Ledger.Credits,
		ShipsAvailable:   sess.Ledger.ShipsAvailable,
		PilotsAvailable:  sess.Ledger.PilotsAvailable,
		CurrentPhase:     int(sess.Phase),
		LeiaRescued:      sess.Ledger.LeiaRescued,
		DeathStarPlans:   sess.Ledger.DeathStarPlans,
		ObiWanAlive:      sess.Ledger.MentorAlive,
		GameOver:         sess.GameOver,
		PreparationsMade: sess.Ledger.PreparationsMade,
		CurrentOptions:   options,
		PhaseDescription: cat.DescriptionFor(descPhase, sess.Ledger),
	}
	if sess.LastResult != "" {
		result := sess.LastResult
		gs.LastActionResult = &result
	}
	return gs
}
