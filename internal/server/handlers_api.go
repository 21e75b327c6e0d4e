package server

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"tarot-scores/internal/db"
	"tarot-scores/internal/scoring"
	"tarot-scores/internal/store"
)

type renameRequest struct {
	Name string `json:"name"`
}

type playersRequest struct {
	Names []string `json:"names"`
}

type roundRequest struct {
	ID            uint   `json:"id"`
	Attacker      uint   `json:"attacker"`
	Called        *uint  `json:"called"`
	Contract      string `json:"contract"`
	AttackOudlers int    `json:"attack_oudlers"`
	AttackScore   int    `json:"attack_score"`
}

type gameResponse struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

type playerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type roundResponse struct {
	ID            uint   `json:"id"`
	Attacker      uint   `json:"attacker"`
	Called        *uint  `json:"called,omitempty"`
	Contract      string `json:"contract"`
	AttackOudlers int    `json:"attack_oudlers"`
	AttackScore   int    `json:"attack_score"`
	Target        int    `json:"target"`
	Score         int    `json:"score"`
}

func toGameResponse(game db.Game) gameResponse {
	return gameResponse{
		ID:       game.ID,
		Name:     game.Name,
		Created:  game.Created,
		Modified: game.Modified,
	}
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.store.ListGames(r.Context())
	if err != nil {
		log.Printf("list games failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list games")
		return
	}
	resp := make([]gameResponse, 0, len(games))
	for _, game := range games {
		resp = append(resp, toGameResponse(game))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.store.CreateGame(r.Context())
	if err != nil {
		log.Printf("create game failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}
	log.Printf("game created game_id=%d", game.ID)
	writeJSON(w, http.StatusCreated, toGameResponse(game))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	aggregate, err := s.store.GetGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no such game")
			return
		}
		log.Printf("get game failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}

	totals := scoring.Totals(aggregate.Players, aggregate.Rounds)
	players := make([]playerResponse, 0, len(aggregate.Players))
	for _, player := range aggregate.Players {
		players = append(players, playerResponse{
			ID:    player.ID,
			Name:  player.Name,
			Total: totals[player.ID],
		})
	}
	rounds := make([]roundResponse, 0, len(aggregate.Rounds))
	for _, round := range aggregate.Rounds {
		rounds = append(rounds, roundResponse{
			ID:            round.ID,
			Attacker:      round.Attacker,
			Called:        round.Called,
			Contract:      round.Contract,
			AttackOudlers: round.AttackOudlers,
			AttackScore:   round.AttackScore,
			Target:        scoring.Target(round.AttackOudlers),
			Score:         scoring.Score(round),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game":    toGameResponse(aggregate.Game),
		"players": players,
		"rounds":  rounds,
	})
}

func (s *Server) handleRenameGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var req renameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := s.store.RenameGame(r.Context(), id, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no such game")
			return
		}
		log.Printf("rename game failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to rename game")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	// Confirmation is the client's business; the delete itself is
	// unconditional.
	if err := s.store.RemoveGame(r.Context(), id); err != nil {
		log.Printf("remove game failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to remove game")
		return
	}
	log.Printf("game removed game_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetPlayers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var req playersRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	names := make([]string, 0, len(req.Names))
	for _, name := range req.Names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			writeError(w, http.StatusBadRequest, "player names must not be empty")
			return
		}
		names = append(names, trimmed)
	}
	if len(names) < 3 || len(names) > 5 {
		writeError(w, http.StatusBadRequest, "a game needs between 3 and 5 players")
		return
	}
	players, err := s.store.SetPlayers(r.Context(), id, names)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no such game")
			return
		}
		log.Printf("set players failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to set players")
		return
	}
	resp := make([]playerResponse, 0, len(players))
	for _, player := range players {
		resp = append(resp, playerResponse{ID: player.ID, Name: player.Name})
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSetRound(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var req roundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	round := db.Round{
		ID:            req.ID,
		GameID:        id,
		Attacker:      req.Attacker,
		Called:        req.Called,
		Contract:      req.Contract,
		AttackOudlers: req.AttackOudlers,
		AttackScore:   req.AttackScore,
	}
	roundID, err := s.store.SetRound(r.Context(), round)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "no such game")
		case errors.Is(err, store.ErrInvalidRound):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("set round failed game_id=%d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to save round")
		}
		return
	}
	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]uint{"round_id": roundID})
}
