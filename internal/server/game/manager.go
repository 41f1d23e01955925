package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"qirkat/internal/engine"
	"qirkat/internal/qirkat"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrNoMoves        = errors.New("no legal moves")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrEngineRejected = errors.New("engine produced an illegal move")
)

// Manager 管理内存里的所有对局。每盘棋一把锁，AI 在棋盘副本上搜索，
// 结果回到权威棋盘前会再校验一次。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	eng *engine.Engine
	log *zap.SugaredLogger
}

func NewManager(eng *engine.Engine, log *zap.SugaredLogger) *Manager {
	if eng == nil {
		eng = engine.NewEngine()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		games: make(map[string]*GameState),
		eng:   eng,
		log:   log,
	}
}

// NewGame 开一盘新棋。position 为空时用初始局面，否则按 SetContents 摆棋。
func (m *Manager) NewGame(position string, next qirkat.PieceColor) (State, error) {
	b := qirkat.NewBoard()
	if position != "" {
		if err := b.SetContents(position, next); err != nil {
			return State{}, err
		}
	}

	g := newGameState(uuid.NewString(), b)

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.log.Infow("new game", "game_id", g.ID, "to_move", b.WhoseMove())

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot(), nil
}

func (m *Manager) get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// with 在持有对局锁时执行 fn，并返回之后的局面
func (m *Manager) with(id string, fn func(g *GameState) error) (State, error) {
	g, err := m.get(id)
	if err != nil {
		return State{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := fn(g); err != nil {
		return State{}, err
	}
	return g.snapshot(), nil
}

// State 返回当前局面
func (m *Manager) State(id string) (State, error) {
	return m.with(id, func(*GameState) error { return nil })
}

// SetPosition 替换局面并清空悔棋栈
func (m *Manager) SetPosition(id, position string, next qirkat.PieceColor) (State, error) {
	return m.with(id, func(g *GameState) error {
		return g.Board.SetContents(position, next)
	})
}

// Play 走一步人类的着法（文本格式）
func (m *Manager) Play(id, moveText string) (State, error) {
	mv, err := qirkat.ParseMove(moveText)
	if err != nil {
		return State{}, err
	}
	return m.with(id, func(g *GameState) error {
		if !g.Board.MakeMove(mv) {
			return fmt.Errorf("%w: %s", qirkat.ErrIllegalMove, mv)
		}
		return nil
	})
}

// AIMove 让引擎替当前走子方走一步
func (m *Manager) AIMove(id string) (State, engine.SearchResult, error) {
	var res engine.SearchResult
	st, err := m.with(id, func(g *GameState) error {
		if g.Board.GameOver() {
			return ErrNoMoves
		}
		side := g.Board.WhoseMove()
		res = m.eng.Search(g.Board.ConstantView(), side)
		if res.Move == nil {
			return ErrNoMoves
		}
		if !g.Board.LegalMove(res.Move) || !g.Board.MakeMove(res.Move) {
			m.log.Errorw("engine move rejected", "game_id", g.ID, "move", res.Move.String())
			return fmt.Errorf("%w: %s", ErrEngineRejected, res.Move)
		}
		m.log.Infow("ai move",
			"game_id", g.ID,
			"side", side,
			"move", res.Move.String(),
			"score", res.Score,
			"nodes", res.Nodes,
		)
		return nil
	})
	return st, res, err
}

// Undo 悔一步
func (m *Manager) Undo(id string) (State, error) {
	return m.with(id, func(g *GameState) error {
		if g.Board.HistoryLen() == 0 {
			return ErrNothingToUndo
		}
		g.Board.Undo()
		return nil
	})
}

// Delete 删除对局并取消监听
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	g, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	g.mu.Lock()
	g.cancel()
	g.mu.Unlock()
	return nil
}

// Len 是当前对局数
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
