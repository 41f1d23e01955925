package engine

import (
	"math"
	"time"

	"qirkat/internal/qirkat"
)

// 搜索配置
type SearchConfig struct {
	MaxDepth int // 固定搜索深度（ply）
}

// 搜索结果
type SearchResult struct {
	Move     *qirkat.Move  // 最佳着法；无棋可走时为 nil
	Score    int           // 评估分（白方棋子数）
	Depth    int           // 搜索深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
}

// searcher 是一次搜索的私有状态
type searcher struct {
	nodes int64
}

// ChooseMove 为 side 选一步；无棋可走时返回 nil。传进来的棋盘不会被修改。
func (e *Engine) ChooseMove(b qirkat.Reader, side qirkat.PieceColor) *qirkat.Move {
	return e.Search(b, side).Move
}

// Search 在 b 的副本上做固定深度的 alpha-beta
func (e *Engine) Search(b qirkat.Reader, side qirkat.PieceColor) SearchResult {
	depth := e.cfg.MaxDepth
	if depth <= 0 {
		depth = DefaultDepth
	}
	start := time.Now()

	work := b.Copy()
	s := &searcher{}
	score, best := s.alphaBeta(work, depth, senseOf(side), math.MinInt, math.MaxInt)

	res := SearchResult{
		Move:     best,
		Score:    score,
		Depth:    depth,
		Nodes:    s.nodes,
		TimeUsed: time.Since(start),
	}
	e.log.Debugw("search finished",
		"side", side,
		"move", res.Move.String(),
		"score", res.Score,
		"depth", res.Depth,
		"nodes", res.Nodes,
		"elapsed", res.TimeUsed,
	)
	return res
}

// alphaBeta：sense=+1 为极大层，-1 为极小层。
// 着法按生成顺序搜索，只有严格更好才替换，所以同分时取先出现的。
func (s *searcher) alphaBeta(b *qirkat.Board, depth, sense, alpha, beta int) (int, *qirkat.Move) {
	s.nodes++

	if depth == 0 {
		return Evaluate(b), nil
	}
	moves := b.Moves()
	if len(moves) == 0 {
		return Evaluate(b), nil
	}

	var bestMove *qirkat.Move
	if sense > 0 {
		bestScore := math.MinInt
		for _, m := range moves {
			score := s.child(b, m, depth, sense, alpha, beta)
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if beta <= alpha {
				break
			}
		}
		return bestScore, bestMove
	}

	bestScore := math.MaxInt
	for _, m := range moves {
		score := s.child(b, m, depth, sense, alpha, beta)
		if score < bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore < beta {
			beta = bestScore
		}
		if beta <= alpha {
			break
		}
	}
	return bestScore, bestMove
}

// child 走 m、往下搜、再悔棋；悔棋放在 defer 里保证一定恢复
func (s *searcher) child(b *qirkat.Board, m *qirkat.Move, depth, sense, alpha, beta int) int {
	if !b.MakeMove(m) {
		panic("engine: generated move rejected: " + m.String())
	}
	defer b.Undo()
	score, _ := s.alphaBeta(b, depth-1, -sense, alpha, beta)
	return score
}

// Minimax 是不剪枝的穷举搜索，只返回分数。用来校验 alpha-beta。
func Minimax(b qirkat.Reader, depth, sense int) int {
	return minimax(b.Copy(), depth, sense)
}

func minimax(b *qirkat.Board, depth, sense int) int {
	if depth == 0 {
		return Evaluate(b)
	}
	moves := b.Moves()
	if len(moves) == 0 {
		return Evaluate(b)
	}
	best := math.MinInt
	if sense < 0 {
		best = math.MaxInt
	}
	for _, m := range moves {
		b.MakeMove(m)
		v := minimax(b, depth-1, -sense)
		b.Undo()
		if (sense > 0 && v > best) || (sense < 0 && v < best) {
			best = v
		}
	}
	return best
}
