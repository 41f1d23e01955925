package game

import (
	"sync"
	"time"

	"qirkat/internal/qirkat"
)

// GameState 是一盘棋的权威棋盘。Board 只能在持有 mu 时访问。
type GameState struct {
	ID        string
	Board     *qirkat.Board
	CreatedAt time.Time
	UpdatedAt time.Time

	mu     sync.Mutex
	cancel func()
}

// State 是某一时刻的局面快照，可以在锁外随便用
type State struct {
	ID         string
	Position   string // SetContents 格式
	Board      string // 带坐标的文本棋盘
	ToMove     qirkat.PieceColor
	LegalMoves []string
	GameOver   bool
	Winner     qirkat.PieceColor
	Plies      int
	UpdatedAt  time.Time
}

func newGameState(id string, b *qirkat.Board) *GameState {
	now := time.Now()
	g := &GameState{
		ID:        id,
		Board:     b,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// 每次局面变动都刷新 UpdatedAt；回调总在持有 mu 时触发
	g.cancel = b.Subscribe(func(qirkat.Snapshot) {
		g.UpdatedAt = time.Now()
	})
	return g
}

// snapshot 调用方必须持有 g.mu
func (g *GameState) snapshot() State {
	moves := g.Board.Moves()
	legal := make([]string, len(moves))
	for i, m := range moves {
		legal[i] = m.String()
	}
	return State{
		ID:         g.ID,
		Position:   g.Board.Contents(),
		Board:      g.Board.Render(true),
		ToMove:     g.Board.WhoseMove(),
		LegalMoves: legal,
		GameOver:   g.Board.GameOver(),
		Winner:     g.Board.Winner(),
		Plies:      g.Board.HistoryLen(),
		UpdatedAt:  g.UpdatedAt,
	}
}
