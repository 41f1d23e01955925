package qirkat

// LegalMove 判断 m 在当前局面是否合法：
// 终局后一律非法；有吃必吃；普通走法只能向前或平移，底线不能再走，受方向锁限制；
// 跳吃要求每一段都隔着对方棋子落到空格，允许未跳完的连跳。
func (b *Board) LegalMove(m *Move) bool {
	if m == nil || b.gameOver {
		return false
	}
	if !m.from.Valid() || !m.to.Valid() {
		return false
	}
	if m.IsJump() {
		return b.CheckJump(m, true)
	}
	if m.next != nil || b.JumpPossible() {
		return false
	}
	return b.legalStep(m)
}

// legalStep 只看普通走法本身，不检查别处是否有吃子
func (b *Board) legalStep(m *Move) bool {
	d, dist, ok := directionOf(m.from, m.to)
	if !ok || dist != 1 || geo.step[m.from][d] != m.to {
		return false
	}
	side := b.whoseMove
	if b.cells[m.from] != side || b.cells[m.to] != Empty {
		return false
	}
	fromRow, toRow := m.from.row(), m.to.row()
	switch side {
	case White:
		if fromRow == Side-1 || toRow < fromRow {
			return false
		}
	case Black:
		if fromRow == 0 || toRow > fromRow {
			return false
		}
	default:
		return false
	}
	if m.IsLeftMove() && b.lockRight[m.from] {
		return false
	}
	if m.IsRightMove() && b.lockLeft[m.from] {
		return false
	}
	return true
}

// CheckJump 判断 m 是否是从当前局面出发的有效连跳；m 为 nil 时为真。
// allowPartial 为假时还要求最后一段之后无法再跳。
func (b *Board) CheckJump(m *Move, allowPartial bool) bool {
	if m == nil {
		return true
	}
	if !m.from.Valid() || !m.to.Valid() || !m.IsJump() {
		return false
	}
	d, _, _ := directionOf(m.from, m.to)
	if geo.jump[m.from][d] != m.to || !b.canJump(m.from, d) {
		return false
	}
	ok := false
	b.withLeg(m, func() {
		if m.next == nil {
			ok = allowPartial || !b.JumpPossibleAt(m.to)
			return
		}
		if m.next.from != m.to {
			return
		}
		ok = b.CheckJump(m.next, allowPartial)
	})
	return ok
}
