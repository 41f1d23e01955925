package qirkat

// snapshot 是走子前的格子和方向锁；走子方靠翻转恢复
type snapshot struct {
	cells     [NumSquares]PieceColor
	lockRight [NumSquares]bool
	lockLeft  [NumSquares]bool
}

// Snapshot 是推给监听者的只读局面
type Snapshot struct {
	Cells     [NumSquares]PieceColor
	WhoseMove PieceColor
	GameOver  bool
	Plies     int
}

// Listener 在每次修改局面之后被调用
type Listener func(Snapshot)

type listenerEntry struct {
	id int
	fn Listener
}

// Subscribe 注册监听者，返回取消函数
func (b *Board) Subscribe(fn Listener) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) notify() {
	if len(b.listeners) == 0 {
		return
	}
	s := Snapshot{
		Cells:     b.cells,
		WhoseMove: b.whoseMove,
		GameOver:  b.gameOver,
		Plies:     len(b.history),
	}
	for _, l := range b.listeners {
		l.fn(s)
	}
}

func (b *Board) pushHistory() {
	b.history = append(b.history, snapshot{
		cells:     b.cells,
		lockRight: b.lockRight,
		lockLeft:  b.lockLeft,
	})
}

func (b *Board) popHistory() {
	n := len(b.history)
	if n == 0 {
		panic("qirkat: undo with empty history")
	}
	s := b.history[n-1]
	b.history = b.history[:n-1]
	b.cells = s.cells
	b.lockRight = s.lockRight
	b.lockLeft = s.lockLeft
}

func (b *Board) clearLocks(k Square) {
	b.lockRight[k] = false
	b.lockLeft[k] = false
}

// applyStep 普通走一格，维护方向锁
func (b *Board) applyStep(m *Move) {
	b.cells[m.to] = b.cells[m.from]
	b.cells[m.from] = Empty
	b.clearLocks(m.from)
	b.clearLocks(m.to)
	switch {
	case m.IsRightMove():
		b.lockRight[m.to] = true
	case m.IsLeftMove():
		b.lockLeft[m.to] = true
	}
}

// applyLeg 执行一段跳吃（不看 tail）
func (b *Board) applyLeg(m *Move) {
	mid := m.JumpedSquare()
	b.cells[m.to] = b.cells[m.from]
	b.cells[m.from] = Empty
	b.cells[mid] = Empty
	b.clearLocks(m.from)
	b.clearLocks(mid)
	b.clearLocks(m.to)
}

// withLeg 在活动棋盘上临时走一段跳吃，执行 fn 后无论如何都恢复原状。
// 不切换走子方，也不通知监听者。
func (b *Board) withLeg(leg *Move, fn func()) {
	b.pushHistory()
	defer b.popHistory()
	b.applyLeg(leg)
	fn()
}

// MakeMove 执行合法走法并返回 true；非法时什么也不改，返回 false。
// 一整条连跳只压一次悔棋栈。
func (b *Board) MakeMove(m *Move) bool {
	if !b.LegalMove(m) {
		return false
	}
	b.pushHistory()
	if m.IsJump() {
		for leg := m; leg != nil; leg = leg.next {
			b.applyLeg(leg)
		}
	} else {
		b.applyStep(m)
	}
	b.whoseMove = b.whoseMove.Opposite()
	b.gameOver = !b.anyMove()
	b.notify()
	return true
}

// Undo 撤销最近一步；悔棋栈为空时 panic
func (b *Board) Undo() {
	b.popHistory()
	b.whoseMove = b.whoseMove.Opposite()
	b.gameOver = false
	b.notify()
}
