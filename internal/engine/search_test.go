package engine

import (
	"testing"

	"qirkat/internal/qirkat"
)

func loadBoard(t *testing.T, text string, next qirkat.PieceColor) *qirkat.Board {
	t.Helper()
	b := qirkat.NewBoard()
	if err := b.SetContents(text, next); err != nil {
		t.Fatalf("set contents: %v", err)
	}
	return b
}

// playSome 按固定规则走 n 步，得到一些非初始局面
func playSome(b *qirkat.Board, n int) {
	for i := 0; i < n && !b.GameOver(); i++ {
		moves := b.Moves()
		b.MakeMove(moves[(i*5+3)%len(moves)])
	}
}

func TestEvaluateCountsWhite(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"empty", "----- ----- ----- ----- -----", 0},
		{"only black", "bbbbb ----- ----- ----- -----", 0},
		{"mixed", "w-b-w ----- --w-- b---b -w-b-", 4},
		{"initial", "wwwww wwwww bb-ww bbbbb bbbbb", 12},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			b := qirkat.NewBoard()
			if err := b.SetContents(tt.text, qirkat.White); err != nil {
				t.Fatalf("set contents: %v", err)
			}
			if got := Evaluate(b); got != tt.want {
				t.Fatalf("Evaluate = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChooseMoveForcedCapture(t *testing.T) {
	b := loadBoard(t, "w---- ----- --w-- --b-- -----", qirkat.Black)
	m := NewEngine().ChooseMove(b, qirkat.Black)
	if m == nil || m.String() != "c4-c2" {
		t.Fatalf("want forced capture c4-c2, got %v", m)
	}
}

func TestChooseMovePrefersLongerChain(t *testing.T) {
	// 黑方 c3 可以只吃 b3，也可以连吃 d3、e2
	text := "----- ----w -wbw- ----- -----"
	for depth := 1; depth <= 2; depth++ {
		b := loadBoard(t, text, qirkat.Black)
		got := moveStrs(b.Moves())
		if len(got) != 2 || got[0] != "c3-a3" || got[1] != "c3-e3-e1" {
			t.Fatalf("unexpected moves %v", got)
		}
		e := NewEngine().WithConfig(SearchConfig{MaxDepth: depth})
		res := e.Search(b, qirkat.Black)
		if res.Move == nil || res.Move.String() != "c3-e3-e1" {
			t.Fatalf("depth %d: want c3-e3-e1, got %v", depth, res.Move)
		}
		if res.Score != 1 {
			t.Fatalf("depth %d: score %d, want 1", depth, res.Score)
		}
	}
}

func TestSearchMatchesMinimax(t *testing.T) {
	for plies := 0; plies <= 12; plies += 3 {
		for depth := 1; depth <= 4; depth++ {
			b := qirkat.NewBoard()
			playSome(b, plies)
			if b.GameOver() {
				continue
			}
			side := b.WhoseMove()
			e := NewEngine().WithConfig(SearchConfig{MaxDepth: depth})
			res := e.Search(b, side)
			want := Minimax(b, depth, senseOf(side))
			if res.Score != want {
				t.Fatalf("plies %d depth %d: alpha-beta %d, minimax %d", plies, depth, res.Score, want)
			}
			if res.Depth != depth || res.Nodes <= 0 {
				t.Fatalf("bad stats %+v", res)
			}
		}
	}
}

func TestSearchPicksFirstBestMove(t *testing.T) {
	for plies := 0; plies <= 10; plies += 2 {
		b := qirkat.NewBoard()
		playSome(b, plies)
		if b.GameOver() {
			continue
		}
		const depth = 3
		side := b.WhoseMove()
		sense := senseOf(side)

		// 按生成顺序逐个算子局面的 minimax，取第一个达到最优值的着法
		var want *qirkat.Move
		best := 0
		for _, m := range b.Moves() {
			c := b.Copy()
			c.MakeMove(m)
			v := Minimax(c, depth-1, -sense)
			if want == nil || v*sense > best*sense {
				want, best = m, v
			}
		}

		got := NewEngine().WithConfig(SearchConfig{MaxDepth: depth}).ChooseMove(b, side)
		if !got.Equal(want) {
			t.Fatalf("plies %d: chose %v, first best is %v (value %d)", plies, got, want, best)
		}
	}
}

func TestSearchTieBreakFirstSeen(t *testing.T) {
	// 初始局面走一步谁也吃不到子，深度 1 时所有着法同分
	b := qirkat.NewBoard()
	m := NewEngine().WithConfig(SearchConfig{MaxDepth: 1}).ChooseMove(b, qirkat.White)
	if m == nil || m.String() != "b2-c3" {
		t.Fatalf("want first generated move b2-c3, got %v", m)
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	b := qirkat.NewBoard()
	playSome(b, 4)
	before := b.Copy()
	hist := b.HistoryLen()
	notified := 0
	cancel := b.Subscribe(func(qirkat.Snapshot) { notified++ })
	defer cancel()

	NewEngine().Search(b.ConstantView(), b.WhoseMove())

	if !b.Equal(before) || b.HistoryLen() != hist {
		t.Fatalf("search changed the board:\n%s\nwant\n%s", b, before)
	}
	if notified != 0 {
		t.Fatalf("search notified listeners %d times", notified)
	}
}

func TestChooseMoveNoMoves(t *testing.T) {
	b := loadBoard(t, "b---- ----- ----- ----- --w--", qirkat.White)
	if !b.GameOver() {
		t.Fatalf("white should have no moves")
	}
	res := NewEngine().Search(b, qirkat.White)
	if res.Move != nil {
		t.Fatalf("want nil move, got %v", res.Move)
	}
	if res.Score != 1 {
		t.Fatalf("want static score 1, got %d", res.Score)
	}
}

func TestWithConfigDefaults(t *testing.T) {
	e := NewEngine().WithConfig(SearchConfig{})
	if e.Config().MaxDepth != DefaultDepth {
		t.Fatalf("MaxDepth = %d", e.Config().MaxDepth)
	}
	if NewEngine().WithLogger(nil).log == nil {
		t.Fatalf("nil logger not replaced")
	}
}

func moveStrs(ms []*qirkat.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}
