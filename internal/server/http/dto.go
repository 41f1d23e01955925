package httpserver

import (
	"qirkat/internal/qirkat"
	"qirkat/internal/server/game"
)

// NewGame 请求；Position 为空时用初始局面
type NewGameRequest struct {
	Position string `json:"position"` // SetContents 格式，25 个 b/w/-
	ToMove   string `json:"to_move"`  // "white" / "black"
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求
type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"` // 例如 "c2-c3" 或 "a1-c1-c3"
}

// SetPosition 请求
type SetPositionRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	ToMove   string `json:"to_move"`
}

// AiMove / Undo 请求
type GameRequest struct {
	GameID string `json:"game_id"`
}

// 所有返回都带这一份局面
type StateResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`
	Board      string   `json:"board"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"` // "ongoing" / "game_over"
	Winner     string   `json:"winner,omitempty"`
	Plies      int      `json:"plies"`
}

type AiMoveResponse struct {
	StateResponse
	BestMove string `json:"best_move"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func sideToString(c qirkat.PieceColor) string {
	switch c {
	case qirkat.White:
		return "white"
	case qirkat.Black:
		return "black"
	}
	return ""
}

func stateToDTO(st game.State) StateResponse {
	status := "ongoing"
	if st.GameOver {
		status = "game_over"
	}
	legal := st.LegalMoves
	if legal == nil {
		legal = []string{}
	}
	return StateResponse{
		GameID:     st.ID,
		Position:   st.Position,
		Board:      st.Board,
		ToMove:     sideToString(st.ToMove),
		LegalMoves: legal,
		Status:     status,
		Winner:     sideToString(st.Winner),
		Plies:      st.Plies,
	}
}
