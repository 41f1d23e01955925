package qirkat

// canJump：k 上是走子方的棋子，沿 d 方向隔着对方棋子且落点为空
func (b *Board) canJump(k Square, d direction) bool {
	mid, dst := geo.step[k][d], geo.jump[k][d]
	if mid == NoSquare || dst == NoSquare {
		return false
	}
	return b.cells[k] == b.whoseMove &&
		b.cells[mid] == b.whoseMove.Opposite() &&
		b.cells[dst] == Empty
}

// JumpPossibleAt 判断 k 上的棋子现在能否吃子
func (b *Board) JumpPossibleAt(k Square) bool {
	mustValid(k)
	if b.cells[k] != b.whoseMove {
		return false
	}
	for _, d := range jumpOrder {
		if b.canJump(k, d) {
			return true
		}
	}
	return false
}

// JumpPossible 判断走子方是否有任何吃子
func (b *Board) JumpPossible() bool {
	for k := Square(0); k <= MaxIndex; k++ {
		if b.JumpPossibleAt(k) {
			return true
		}
	}
	return false
}

// Moves 生成当前局面所有合法走法。有吃必吃：存在吃子时只返回（连）跳。
func (b *Board) Moves() []*Move {
	if b.gameOver {
		return nil
	}
	var moves []*Move
	if b.JumpPossible() {
		for k := Square(0); k <= MaxIndex; k++ {
			moves = append(moves, b.jumpsFrom(k)...)
		}
		return moves
	}
	for k := Square(0); k <= MaxIndex; k++ {
		moves = b.appendSteps(moves, k)
	}
	return moves
}

func (b *Board) appendSteps(moves []*Move, k Square) []*Move {
	if b.cells[k] != b.whoseMove {
		return moves
	}
	for d := direction(0); d < numDirs; d++ {
		dst := geo.step[k][d]
		if dst == NoSquare || b.cells[dst] != Empty {
			continue
		}
		m := &Move{from: k, to: dst}
		if b.legalStep(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// jumpsFrom 从 k 出发递归找所有连跳：每一段先在棋盘上走掉、往下找、再恢复。
// 某段之后无法继续时，这一段本身就是一条完整走法。
func (b *Board) jumpsFrom(k Square) []*Move {
	var out []*Move
	for _, d := range jumpOrder {
		if !b.canJump(k, d) {
			continue
		}
		leg := &Move{from: k, to: geo.jump[k][d]}
		var tails []*Move
		b.withLeg(leg, func() {
			tails = b.jumpsFrom(leg.to)
		})
		if len(tails) == 0 {
			out = append(out, leg)
			continue
		}
		for _, t := range tails {
			out = append(out, Chain(leg, t))
		}
	}
	return out
}

// anyMove 比 len(Moves()) > 0 便宜：找到一个就停
func (b *Board) anyMove() bool {
	if b.JumpPossible() {
		return true
	}
	for k := Square(0); k <= MaxIndex; k++ {
		if len(b.appendSteps(nil, k)) > 0 {
			return true
		}
	}
	return false
}
