package selfplay

import (
	"fmt"

	"go.uber.org/zap"

	"qirkat/internal/engine"
	"qirkat/internal/qirkat"
)

// PlayerConfig 是对战的一方
type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// Result 是一盘棋的结果；Winner 为 Empty 表示步数用完算和
type Result struct {
	Winner qirkat.PieceColor
	Plies  int
	Moves  []string
	Nodes  int64
}

// Options 控制一盘自对弈
type Options struct {
	MaxPlies int
	// Verify 为真时每一步都用不剪枝的 minimax 校验 alpha-beta 的分数
	Verify bool
}

// PlayGame 从初始局面下一盘，white/black 各用自己的搜索配置
func PlayGame(e *engine.Engine, white, black PlayerConfig, opts Options, log *zap.SugaredLogger) (Result, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	engines := map[qirkat.PieceColor]*engine.Engine{
		qirkat.White: e.WithConfig(white.Cfg),
		qirkat.Black: e.WithConfig(black.Cfg),
	}

	b := qirkat.NewBoard()
	var res Result
	for res.Plies < opts.MaxPlies && !b.GameOver() {
		side := b.WhoseMove()
		eng := engines[side]
		sr := eng.Search(b.ConstantView(), side)
		if sr.Move == nil {
			return res, fmt.Errorf("no move found for %s at ply %d", side, res.Plies)
		}
		if opts.Verify {
			sense := 1
			if side == qirkat.Black {
				sense = -1
			}
			if want := engine.Minimax(b, eng.Config().MaxDepth, sense); want != sr.Score {
				return res, fmt.Errorf("ply %d: alpha-beta score %d, minimax %d", res.Plies, sr.Score, want)
			}
		}
		if !b.MakeMove(sr.Move) {
			return res, fmt.Errorf("%w: %s at ply %d", qirkat.ErrIllegalMove, sr.Move, res.Plies)
		}
		res.Moves = append(res.Moves, sr.Move.String())
		res.Nodes += sr.Nodes
		res.Plies++
		log.Debugw("ply", "n", res.Plies, "side", side, "move", sr.Move.String(), "score", sr.Score)
	}
	res.Winner = b.Winner()
	return res, nil
}

// Tally 统计一组对局里两个玩家的胜负；A 在偶数局执白
type Tally struct {
	AWins, BWins, Draws int
}

func (t *Tally) Add(game int, winner qirkat.PieceColor) {
	aIsWhite := game%2 == 0
	switch {
	case winner == qirkat.Empty:
		t.Draws++
	case (winner == qirkat.White) == aIsWhite:
		t.AWins++
	default:
		t.BWins++
	}
}
