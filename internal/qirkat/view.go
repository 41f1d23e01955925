package qirkat

// Reader 是只读能力：查询、判合法、生成走法、导出文本
type Reader interface {
	Get(k Square) PieceColor
	GetAt(col, row byte) PieceColor
	WhoseMove() PieceColor
	GameOver() bool
	Winner() PieceColor
	Pieces(c PieceColor) int
	LegalMove(m *Move) bool
	CheckJump(m *Move, allowPartial bool) bool
	JumpPossible() bool
	JumpPossibleAt(k Square) bool
	Moves() []*Move
	Contents() string
	String() string
	Render(legend bool) string
	Equal(o Reader) bool
	Copy() *Board
}

// Mutator 是修改能力
type Mutator interface {
	Clear()
	SetContents(text string, next PieceColor) error
	CopyFrom(src Reader)
	MakeMove(m *Move) bool
	Undo()
}

var (
	_ Reader  = (*Board)(nil)
	_ Mutator = (*Board)(nil)
	_ Reader  = View{}
)

// View 是某个 Board 的只读视图，始终反映同一份活动状态。
// 生成走法时内部会临时改动再恢复，所以不能和修改并发使用。
type View struct {
	b *Board
}

// ConstantView 返回只读视图
func (b *Board) ConstantView() View { return View{b: b} }

func (v View) Get(k Square) PieceColor                   { return v.b.Get(k) }
func (v View) GetAt(col, row byte) PieceColor            { return v.b.GetAt(col, row) }
func (v View) WhoseMove() PieceColor                     { return v.b.WhoseMove() }
func (v View) GameOver() bool                            { return v.b.GameOver() }
func (v View) Winner() PieceColor                        { return v.b.Winner() }
func (v View) Pieces(c PieceColor) int                   { return v.b.Pieces(c) }
func (v View) LegalMove(m *Move) bool                    { return v.b.LegalMove(m) }
func (v View) CheckJump(m *Move, allowPartial bool) bool { return v.b.CheckJump(m, allowPartial) }
func (v View) JumpPossible() bool                        { return v.b.JumpPossible() }
func (v View) JumpPossibleAt(k Square) bool              { return v.b.JumpPossibleAt(k) }
func (v View) Moves() []*Move                            { return v.b.Moves() }
func (v View) Contents() string                          { return v.b.Contents() }
func (v View) String() string                            { return v.b.String() }
func (v View) Render(legend bool) string                 { return v.b.Render(legend) }
func (v View) Equal(o Reader) bool                       { return v.b.Equal(o) }
func (v View) Copy() *Board                              { return v.b.Copy() }
