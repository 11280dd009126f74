package ipc

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Server wraps an HTTP server with engine-specific routing.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server that binds to the given address.
func NewServer(h *Handler, listenAddr string) *Server {
	mux := http.NewServeMux()

	// Liveness endpoint.
	mux.HandleFunc("GET /api/test", h.Test)

	// Game endpoints.
	mux.HandleFunc("POST /api/game/create", h.CreateGame)
	mux.HandleFunc("GET /api/game/{gameID}", h.GetGame)
	mux.HandleFunc("POST /api/game/{gameID}/choice", h.MakeChoice)

	// Archive endpoints.
	mux.HandleFunc("GET /api/game/{gameID}/history", h.History)
	mux.HandleFunc("GET /api/records", h.Records)

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: corsMiddleware(mux),
	}

	return &Server{
		httpServer: srv,
	}
}

// Start begins listening for HTTP connections. Blocks until the server stops.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// FormatListenURL renders a printable URL for a listen address.
func FormatListenURL(listenAddr string) string {
	if strings.HasPrefix(listenAddr, ":") {
		return fmt.Sprintf("http://localhost%s", listenAddr)
	}
	return fmt.Sprintf("http://%s", listenAddr)
}

// corsMiddleware adds CORS headers for the browser frontend.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
