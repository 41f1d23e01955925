package engine

import (
	"qirkat/internal/qirkat"
)

// Evaluate 是静态评估：白方（极大方）的棋子数。
// 分数总是从白方视角看，调用时根据 sense 决定取大还是取小。
func Evaluate(b qirkat.Reader) int {
	return b.Pieces(qirkat.White)
}

// senseOf：白方 +1（取大），黑方 -1（取小）
func senseOf(side qirkat.PieceColor) int {
	if side == qirkat.White {
		return 1
	}
	return -1
}
