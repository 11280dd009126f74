package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/anthropics/rebel-command-engine/internal/campaign"
	"github.com/anthropics/rebel-command-engine/internal/catalog"
	"github.com/anthropics/rebel-command-engine/internal/domain"
	"github.com/anthropics/rebel-command-engine/internal/session"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat := catalog.New()
	store := session.New(campaign.NewResolver(cat), nil, 0)
	return NewService(store, cat)
}

func TestCreateGame_InitialState(t *testing.T) {
	svc := newTestService(t)

	state, err := svc.CreateGame(context.Background(), "Luke")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if state.GameID == "" {
		t.Error("expected a game id")
	}
	if state.Reputation != 50 || state.ForcePoints != 10 || state.Credits != 100 {
		t.Errorf("starting resources = %d/%d/%d", state.Reputation, state.ForcePoints, state.Credits)
	}
	if state.CurrentPhase != 1 || state.GameOver {
		t.Errorf("phase = %d, over = %v", state.CurrentPhase, state.GameOver)
	}
	if !state.ObiWanAlive {
		t.Error("mentor starts alive")
	}
	if state.LastActionResult != nil {
		t.Error("fresh session carries no last action result")
	}
	if len(state.CurrentOptions) != 4 {
		t.Errorf("got %d options, want 4", len(state.CurrentOptions))
	}
	if state.PhaseDescription == "" {
		t.Error("expected a phase description")
	}
}

func TestCreateGame_InvalidName(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CreateGame(context.Background(), "   "); err != domain.ErrInvalidInput {
		t.Errorf("CreateGame = %v, want ErrInvalidInput", err)
	}
}

// cost and requirement are emitted only where applicable; available is
// always present.
func TestState_OptionFieldPresence(t *testing.T) {
	svc := newTestService(t)

	state, err := svc.CreateGame(context.Background(), "Luke")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	byID := map[int]OptionView{}
	for _, o := range state.CurrentOptions {
		byID[o.ID] = o
	}

	// Disguise: requirement, no cost.
	if o := byID[1]; o.Cost != nil || o.Requirement == nil {
		t.Errorf("option 1 = %+v", o)
	}
	// Hire Han: cost, no requirement.
	if o := byID[2]; o.Cost == nil || *o.Cost != 50 || o.Requirement != nil {
		t.Errorf("option 2 = %+v", o)
	}
	// Check intel: neither.
	if o := byID[4]; o.Cost != nil || o.Requirement != nil || !o.Available {
		t.Errorf("option 4 = %+v", o)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, `"last_action_result"`) {
		t.Error("last_action_result serialized on a fresh session")
	}
	for _, key := range []string{`"game_id"`, `"obi_wan_alive"`, `"current_options"`, `"preparations_made"`} {
		if !strings.Contains(body, key) {
			t.Errorf("wire state missing %s", key)
		}
	}
}

func TestMakeChoice_StateProgression(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, "Luke")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	state, err := svc.MakeChoice(ctx, created.GameID, 2)
	if err != nil {
		t.Fatalf("MakeChoice: %v", err)
	}
	if state.Credits != 50 || !state.LeiaRescued || state.CurrentPhase != 2 {
		t.Errorf("post-choice state = credits %d, leia %v, phase %d",
			state.Credits, state.LeiaRescued, state.CurrentPhase)
	}
	if state.LastActionResult == nil {
		t.Fatal("expected a last action result")
	}
	if !strings.Contains(*state.LastActionResult, "Han") {
		t.Errorf("LastActionResult = %q", *state.LastActionResult)
	}
}

func TestMakeChoice_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.MakeChoice(ctx, "missing", 1); err != domain.ErrSessionNotFound {
		t.Errorf("unknown game = %v, want ErrSessionNotFound", err)
	}

	created, err := svc.CreateGame(ctx, "Luke")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	_, err = svc.MakeChoice(ctx, created.GameID, 42)
	engErr, ok := err.(*domain.EngineError)
	if !ok || engErr.Code != domain.ErrInvalidChoice.Code {
		t.Errorf("unknown option = %v, want invalid choice", err)
	}
}

func TestState_TerminalSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, "Luke")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	var state *GameState
	for _, id := range []int{2, 1, 1, 3, 1} {
		state, err = svc.MakeChoice(ctx, created.GameID, id)
		if err != nil {
			t.Fatalf("MakeChoice(%d): %v", id, err)
		}
	}

	if !state.GameOver {
		t.Fatal("expected game over")
	}
	if state.CurrentOptions == nil || len(state.CurrentOptions) != 0 {
		t.Errorf("terminal options = %#v, want empty array", state.CurrentOptions)
	}
	if state.LastActionResult == nil || !strings.Contains(*state.LastActionResult, "PERFECT VICTORY") {
		t.Errorf("LastActionResult = %v", state.LastActionResult)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"current_options":[]`) {
		t.Error("terminal current_options must serialize as an empty array")
	}
}

func TestEnvelopes(t *testing.T) {
	ok := Ok(&GameState{GameID: "g1"})
	if !ok.Success || ok.Data == nil || ok.Error != nil {
		t.Errorf("Ok envelope = %+v", ok)
	}

	fail := Fail(domain.ErrSessionNotFound)
	if fail.Success || fail.Data != nil || fail.Error == nil {
		t.Fatalf("Fail envelope = %+v", fail)
	}
	if *fail.Error != domain.ErrSessionNotFound.Message {
		t.Errorf("error message = %q", *fail.Error)
	}

	raw, err := json.Marshal(fail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"data"`) {
		t.Error("failure envelope must omit data")
	}
}
