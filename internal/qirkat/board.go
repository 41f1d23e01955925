package qirkat

// 方向：前四个是横竖，后四个是斜线。顺序就是普通走法的生成顺序。
type direction int8

const (
	dirLeft direction = iota
	dirUp
	dirRight
	dirDown
	dirUpRight
	dirUpLeft
	dirDownRight
	dirDownLeft
	numDirs
)

var dirDelta = [numDirs][2]int{
	dirLeft:      {-1, 0},
	dirUp:        {0, 1},
	dirRight:     {1, 0},
	dirDown:      {0, -1},
	dirUpRight:   {1, 1},
	dirUpLeft:    {-1, 1},
	dirDownRight: {1, -1},
	dirDownLeft:  {-1, -1},
}

// 吃子的生成顺序和走子不同
var jumpOrder = [numDirs]direction{
	dirLeft, dirRight, dirUp, dirDown,
	dirUpRight, dirDownRight, dirUpLeft, dirDownLeft,
}

func (d direction) diagonal() bool { return d >= dirUpRight }

// 只有偶数下标的格子连着斜线
func hasDiagonals(sq Square) bool { return sq%2 == 0 }

// geometry 是按行列算出来的邻接表：step 走一格，jump 跳两格；NoSquare 表示出界或无斜线
type geometry struct {
	step [NumSquares][numDirs]Square
	jump [NumSquares][numDirs]Square
}

var geo = buildGeometry()

func buildGeometry() geometry {
	var g geometry
	for sq := Square(0); sq <= MaxIndex; sq++ {
		c, r := sq.col(), sq.row()
		for d := direction(0); d < numDirs; d++ {
			g.step[sq][d] = NoSquare
			g.jump[sq][d] = NoSquare
			if d.diagonal() && !hasDiagonals(sq) {
				continue
			}
			dc, dr := dirDelta[d][0], dirDelta[d][1]
			if onBoard(c+dc, r+dr) {
				g.step[sq][d] = squareAt(c+dc, r+dr)
			}
			if onBoard(c+2*dc, r+2*dr) {
				g.jump[sq][d] = squareAt(c+2*dc, r+2*dr)
			}
		}
	}
	return g
}

// directionOf 找出 from -> to 所在的方向以及距离（1 或 2）。
// 不在同一条线上时 ok=false；不检查斜线是否存在。
func directionOf(from, to Square) (d direction, dist int, ok bool) {
	dc, dr := to.col()-from.col(), to.row()-from.row()
	dist = max(abs(dc), abs(dr))
	if dist == 0 || dist > 2 {
		return 0, 0, false
	}
	if (dc != 0 && abs(dc) != dist) || (dr != 0 && abs(dr) != dist) {
		return 0, 0, false
	}
	for k := direction(0); k < numDirs; k++ {
		if dirDelta[k][0] == sign(dc) && dirDelta[k][1] == sign(dr) {
			return k, dist, true
		}
	}
	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// 初始局面，从第 1 行（白方底线）开始
const initialBoardString = `wwwww
wwwww
bb-ww
bbbbb
bbbbb`

// Board 是一盘棋的全部可变状态
type Board struct {
	cells [NumSquares]PieceColor

	// lockRight[k]：k 上的棋子是向右平移过来的，下一步不能向左平移；lockLeft 对称
	lockRight [NumSquares]bool
	lockLeft  [NumSquares]bool

	whoseMove PieceColor
	gameOver  bool

	history   []snapshot
	listeners []listenerEntry
	nextID    int
}

// NewBoard 返回初始局面，白方先走
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear 回到初始局面，清空悔棋栈
func (b *Board) Clear() {
	if err := b.load(initialBoardString, White); err != nil {
		panic("qirkat: bad initial board: " + err.Error())
	}
	b.notify()
}

// Copy 复制局面（不带悔棋栈和监听者），给搜索用
func (b *Board) Copy() *Board {
	nb := &Board{}
	nb.copyState(b)
	return nb
}

// CopyFrom 把 src 的局面复制进来，清空自己的悔棋栈
func (b *Board) CopyFrom(src Reader) {
	b.copyState(src.Copy())
	b.notify()
}

func (b *Board) copyState(src *Board) {
	b.cells = src.cells
	b.lockRight = src.lockRight
	b.lockLeft = src.lockLeft
	b.whoseMove = src.whoseMove
	b.gameOver = src.gameOver
	b.history = nil
}

// Get 返回下标 k 上的内容；k 越界直接 panic
func (b *Board) Get(k Square) PieceColor {
	mustValid(k)
	return b.cells[k]
}

// GetAt 用列字母和行数字取格子
func (b *Board) GetAt(col, row byte) PieceColor {
	sq, ok := SquareOf(col, row)
	if !ok {
		panic("qirkat: bad square " + string([]byte{col, row}))
	}
	return b.cells[sq]
}

func (b *Board) WhoseMove() PieceColor { return b.whoseMove }

// GameOver 为真表示轮到的一方已经无棋可走
func (b *Board) GameOver() bool { return b.gameOver }

// Winner 只在 GameOver 时有意义
func (b *Board) Winner() PieceColor {
	if !b.gameOver {
		return Empty
	}
	return b.whoseMove.Opposite()
}

// Pieces 数某一方的棋子数
func (b *Board) Pieces(c PieceColor) int {
	n := 0
	for _, pc := range b.cells {
		if pc == c {
			n++
		}
	}
	return n
}

// HistoryLen 是还能悔几步
func (b *Board) HistoryLen() int { return len(b.history) }

// Equal 比较格子、走子方和终局标志（不比较方向锁和悔棋栈）
func (b *Board) Equal(o Reader) bool {
	if o == nil {
		return false
	}
	if b.whoseMove != o.WhoseMove() || b.gameOver != o.GameOver() {
		return false
	}
	for k := Square(0); k <= MaxIndex; k++ {
		if b.cells[k] != o.Get(k) {
			return false
		}
	}
	return true
}
