package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
	"fairychess/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	if m == nil {
		m = game.NewManager()
	}
	return &Handler{games: m}
}

func (h *Handler) Manager() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/variants" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, VariantsResponse{Variants: fairy.VariantNames()})
		return
	}

	var handle func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		handle = h.handleNewGame
	case "/api/state":
		handle = h.handleState
	case "/api/play":
		handle = h.handlePlay
	case "/api/undo":
		handle = h.handleUndo
	case "/api/legal":
		handle = h.handleLegal
	case "/api/ai_move":
		handle = h.handleAiMove
	case "/api/export":
		handle = h.handleExport
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	handle(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decode(w, r, &req) {
		return
	}
	level := h.games.Level
	if req.Difficulty != "" {
		var err error
		if level, err = engine.ParseDifficulty(req.Difficulty); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	s, err := h.games.NewGame(req.Variant, req.Position, level)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("new game %s variant=%s level=%s", s.ID, s.Variant, level)
	writeJSON(w, stateToDTO(s.Snapshot()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateToDTO(s.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	mv, err := dtoToMove(req.Move, s.Snapshot().Size)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.Play(mv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateToDTO(snap))
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req UndoRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.Undo(req.Plies)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateToDTO(snap))
}

func (h *Handler) handleLegal(w http.ResponseWriter, r *http.Request) {
	var req LegalRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	size := s.Snapshot().Size
	sq, err := fairy.ParseSquare(req.Square, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, LegalResponse{
		Square: sq.Notation(size),
		Moves:  movesToDTO(s.LegalFrom(sq), size),
	})
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	var cfg engine.SearchConfig
	if req.MaxDepth > 0 || req.TimeMs > 0 {
		cfg.MaxDepth = req.MaxDepth
		cfg.TimeLimit = time.Duration(req.TimeMs) * time.Millisecond
	}
	mv, res, snap, err := s.AIMove(cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("ai move %s: %s score=%d depth=%d nodes=%d hits=%d time=%v",
		s.ID, mv.Coord(snap.Size), res.Score, res.Depth, res.Nodes, res.CacheHits, res.TimeUsed)
	writeJSON(w, aiToDTO(mv, res, snap))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	pos, record := s.Export()
	writeJSON(w, ExportResponse{GameID: s.ID, Position: pos, Record: record})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

// statusFor 把领域错误映射成 HTTP 状态码。
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fairy.ErrGameOver), errors.Is(err, fairy.ErrNoHistory):
		return http.StatusConflict
	case errors.Is(err, fairy.ErrIllegalMove),
		errors.Is(err, fairy.ErrWrongTurn),
		errors.Is(err, fairy.ErrNoPiece),
		errors.Is(err, fairy.ErrUnknownVariant),
		errors.Is(err, fairy.ErrUnknownPiece),
		errors.Is(err, fairy.ErrInvalidFEN),
		errors.Is(err, fairy.ErrInvalidSquare):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Println("request failed:", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
