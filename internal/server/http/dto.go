package httpserver

import (
	"fmt"
	"strings"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
	"fairychess/internal/server/game"
)

// 前端用的招法结构：格子用代数记法，升变用小写字母。
type MoveDTO struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	Capture   bool   `json:"capture,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
}

func moveToDTO(m fairy.Move, size int) MoveDTO {
	d := MoveDTO{
		From:    m.From.Notation(size),
		To:      m.To.Notation(size),
		Capture: m.Capture,
		Castle:  m.Castle,
	}
	if m.Promotion != fairy.KindNone {
		d.Promotion = strings.ToLower(string(m.Promotion.Info().Code))
	}
	return d
}

func movesToDTO(ms []fairy.Move, size int) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m, size)
	}
	return out
}

func dtoToMove(d MoveDTO, size int) (fairy.Move, error) {
	from, err := fairy.ParseSquare(d.From, size)
	if err != nil {
		return fairy.Move{}, err
	}
	to, err := fairy.ParseSquare(d.To, size)
	if err != nil {
		return fairy.Move{}, err
	}
	m := fairy.Move{From: from, To: to}
	if d.Promotion != "" {
		if len(d.Promotion) != 1 {
			return fairy.Move{}, fmt.Errorf("%w: promotion %q", fairy.ErrUnknownPiece, d.Promotion)
		}
		k, err := fairy.KindByCode(d.Promotion[0])
		if err != nil {
			return fairy.Move{}, err
		}
		m.Promotion = k
	}
	return m, nil
}

type PieceDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func piecesToDTO(ps []fairy.Piece) []PieceDTO {
	out := make([]PieceDTO, len(ps))
	for i, p := range ps {
		out[i] = PieceDTO{Code: string(p.Code()), Name: p.Name()}
	}
	return out
}

// NewGame 请求
type NewGameRequest struct {
	Variant    string `json:"variant"`
	Position   string `json:"position,omitempty"` // 可选的起始局面
	Difficulty string `json:"difficulty,omitempty"`
}

// 只带 game_id 的请求：state / export
type GameRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type UndoRequest struct {
	GameID string `json:"game_id"`
	Plies  int    `json:"plies"` // 人机对局通常一次悔两步
}

type LegalRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

type LegalResponse struct {
	Square string    `json:"square"`
	Moves  []MoveDTO `json:"moves"`
}

// AiMoveRequest 让电脑替当前走子方走一步。深度和时间都不给时按对局难度。
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	MaxDepth int    `json:"max_depth,omitempty"`
	TimeMs   int64  `json:"time_ms,omitempty"`
}

type AiMoveResponse struct {
	BestMove  MoveDTO       `json:"best_move"`
	Score     int           `json:"score"` // 白方视角
	Depth     int           `json:"depth"`
	Nodes     int64         `json:"nodes"`
	CacheHits int64         `json:"cache_hits"`
	TimeMs    int64         `json:"time_ms"`
	State     StateResponse `json:"state"` // 落子后的局面
}

// 对局状态，new_game / play / undo / state 共用
type StateResponse struct {
	GameID     string        `json:"game_id"`
	Variant    string        `json:"variant"`
	Size       int           `json:"size"`
	Position   string        `json:"position"`
	ToMove     string        `json:"to_move"`
	Status     string        `json:"status"` // ongoing / white_wins / black_wins / draw / stalemate
	Result     string        `json:"result"` // 1-0 / 0-1 / 1/2-1/2 / *
	InCheck    bool          `json:"in_check"`
	LegalMoves []MoveDTO     `json:"legal_moves"`
	History    []string      `json:"history"`
	Captured   [2][]PieceDTO `json:"captured"` // [白方吃掉的, 黑方吃掉的]
	CanUndo    bool          `json:"can_undo"`
	Light      [][]bool      `json:"light_squares"` // 按行从上到下
}

func stateToDTO(s game.Snapshot) StateResponse {
	history := s.SAN
	if history == nil {
		history = []string{}
	}
	return StateResponse{
		GameID:     s.ID,
		Variant:    s.Variant,
		Size:       s.Size,
		Position:   s.Position,
		ToMove:     s.Turn.String(),
		Status:     s.Result.String(),
		Result:     s.Result.Code(),
		InCheck:    s.InCheck,
		LegalMoves: movesToDTO(s.Legal, s.Size),
		History:    history,
		Captured:   [2][]PieceDTO{piecesToDTO(s.Captures[fairy.White]), piecesToDTO(s.Captures[fairy.Black])},
		CanUndo:    s.CanUndo,
		Light:      s.Light,
	}
}

func aiToDTO(m fairy.Move, res engine.SearchResult, s game.Snapshot) AiMoveResponse {
	return AiMoveResponse{
		BestMove:  moveToDTO(m, s.Size),
		Score:     res.Score,
		Depth:     res.Depth,
		Nodes:     res.Nodes,
		CacheHits: res.CacheHits,
		TimeMs:    res.TimeUsed.Milliseconds(),
		State:     stateToDTO(s),
	}
}

type ExportResponse struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	Record   string `json:"record"`
}

type VariantsResponse struct {
	Variants []string `json:"variants"`
}
