// Package server exposes the store and the scoring engine over a small
// JSON API. Navigation, forms and confirmation prompts live entirely in
// the client; this layer only maps HTTP onto store operations.
package server

import (
	"net/http"

	"tarot-scores/internal/config"
	"tarot-scores/internal/store"
)

type Server struct {
	store *store.Store
	cfg   config.Config
}

func New(st *store.Store, cfg config.Config) *Server {
	return &Server{
		store: st,
		cfg:   cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/{id}", s.handleGetGame)
	mux.HandleFunc("PATCH /api/games/{id}", s.handleRenameGame)
	mux.HandleFunc("DELETE /api/games/{id}", s.handleRemoveGame)
	mux.HandleFunc("PUT /api/games/{id}/players", s.handleSetPlayers)
	mux.HandleFunc("POST /api/games/{id}/rounds", s.handleSetRound)
	return mux
}
