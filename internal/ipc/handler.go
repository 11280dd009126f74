// Package ipc provides the HTTP API for the Rebel Command engine.
package ipc

import (
	"encoding/json"
	"net/http"

	"github.com/anthropics/rebel-command-engine/internal/api"
	"github.com/anthropics/rebel-command-engine/internal/domain"
	"github.com/anthropics/rebel-command-engine/internal/store"
)

// Handler holds all dependencies for the HTTP handlers. Archive may be
// nil when archiving is disabled; history and record endpoints then
// return empty lists.
type Handler struct {
	Service *api.Service
	Archive *store.Archive
}

// CreateGameRequest is the body for POST /api/game/create.
type CreateGameRequest struct {
	CommanderName string `json:"commander_name"`
}

// MakeChoiceRequest is the body for POST /api/game/{gameID}/choice.
type MakeChoiceRequest struct {
	Choice int `json:"choice"`
}

// envelope is the generic response wrapper for non-GameState payloads.
type envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Test handles GET /api/test.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    "API is working! Use POST /api/game/create to start",
	})
}

// CreateGame handles POST /api/game/create.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.Service.CreateGame(r.Context(), req.CommanderName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.Ok(state))
}

// GetGame handles GET /api/game/{gameID}.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	state, err := h.Service.GetGame(r.Context(), r.PathValue("gameID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.Ok(state))
}

// MakeChoice handles POST /api/game/{gameID}/choice.
func (h *Handler) MakeChoice(w http.ResponseWriter, r *http.Request) {
	var req MakeChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.Service.MakeChoice(r.Context(), r.PathValue("gameID"), req.Choice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.Ok(state))
}

// historyEntry is one archived choice on the wire.
type historyEntry struct {
	Seq      int64  `json:"seq"`
	Phase    int    `json:"phase"`
	OptionID int    `json:"option_id"`
	Result   string `json:"result"`
	MadeAt   int64  `json:"made_at"`
}

// History handles GET /api/game/{gameID}/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries := []historyEntry{}
	if h.Archive != nil {
		events, err := h.Archive.History(r.Context(), r.PathValue("gameID"))
		if err != nil {
			writeError(w, err)
			return
		}
		for _, ev := range events {
			entries = append(entries, historyEntry{
				Seq:      ev.SeqNo,
				Phase:    int(ev.Phase),
				OptionID: ev.OptionID,
				Result:   ev.Result,
				MadeAt:   ev.CreatedAt,
			})
		}
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: entries})
}

// recordEntry is one concluded campaign on the wire.
type recordEntry struct {
	GameID          string `json:"game_id"`
	CommanderName   string `json:"commander_name"`
	Outcome         string `json:"outcome"`
	FinalPhase      int    `json:"final_phase"`
	Reputation      int    `json:"reputation"`
	ForcePoints     int    `json:"force_points"`
	Credits         int    `json:"credits"`
	ShipsAvailable  int    `json:"ships_available"`
	PilotsAvailable int    `json:"pilots_available"`
	ConcludedAt     int64  `json:"concluded_at"`
}

// Records handles GET /api/records.
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	entries := []recordEntry{}
	if h.Archive != nil {
		records, err := h.Archive.Records(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		for _, rec := range records {
			entries = append(entries, recordEntry{
				GameID:          rec.SessionID,
				CommanderName:   rec.CommanderName,
				Outcome:         string(rec.Outcome),
				FinalPhase:      int(rec.FinalPhase),
				Reputation:      rec.Reputation,
				ForcePoints:     rec.ForcePoints,
				Credits:         rec.Credits,
				ShipsAvailable:  rec.ShipsAvailable,
				PilotsAvailable: rec.PilotsAvailable,
				ConcludedAt:     rec.CreatedAt,
			})
		}
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: entries})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: &msg})
}

// writeError maps engine errors to HTTP statuses while keeping the
// response envelope the presentation layer expects.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if engErr, ok := err.(*domain.EngineError); ok {
		switch engErr.Code {
		case domain.ErrInvalidInput.Code:
			status = http.StatusBadRequest
		case domain.ErrSessionNotFound.Code:
			status = http.StatusNotFound
		case domain.ErrInvalidChoice.Code, domain.ErrInsufficientCredits.Code:
			status = http.StatusUnprocessableEntity
		case domain.ErrGameAlreadyOver.Code:
			status = http.StatusConflict
		case domain.ErrSessionLimit.Code:
			status = http.StatusTooManyRequests
		}
	}
	writeJSON(w, status, api.Fail(err))
}
