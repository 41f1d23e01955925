package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"qirkat/internal/qirkat"
	"qirkat/internal/server/game"
)

// Handler 把 /api/* 请求转给 game.Manager
type Handler struct {
	games *game.Manager
	log   *zap.SugaredLogger
}

func NewHandler(games *game.Manager, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{games: games, log: log}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空请求体表示从初始局面开始
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	next := qirkat.White
	if req.Position != "" {
		c, err := qirkat.ParseColor(req.ToMove)
		if err != nil {
			h.fail(w, err)
			return
		}
		next = c
	}

	st, err := h.games.NewGame(req.Position, next)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, stateToDTO(st))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	st, err := h.games.State(req.GameID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, stateToDTO(st))
}

func (h *Handler) handleSetPosition(w http.ResponseWriter, r *http.Request) {
	var req SetPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	next, err := qirkat.ParseColor(req.ToMove)
	if err != nil {
		h.fail(w, err)
		return
	}
	st, err := h.games.SetPosition(req.GameID, req.Position, next)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, stateToDTO(st))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	st, err := h.games.Play(req.GameID, req.Move)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, stateToDTO(st))
}

// handleAiMove 让 AI 替当前走子方想一步并直接落子
func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	st, res, err := h.games.AIMove(req.GameID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, AiMoveResponse{
		StateResponse: stateToDTO(st),
		BestMove:      res.Move.String(),
		Score:         res.Score,
		Depth:         res.Depth,
		Nodes:         res.Nodes,
		TimeMs:        res.TimeUsed.Milliseconds(),
	})
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	st, err := h.games.Undo(req.GameID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, stateToDTO(st))
}

// fail 把领域错误映射成 HTTP 状态码
func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, qirkat.ErrInvalidConfig),
		errors.Is(err, qirkat.ErrMalformedMove),
		errors.Is(err, qirkat.ErrIllegalMove):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrNoMoves),
		errors.Is(err, game.ErrNothingToUndo):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.log.Errorw("request failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
