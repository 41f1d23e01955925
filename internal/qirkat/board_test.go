package qirkat

import (
	"errors"
	"strings"
	"testing"
)

func setBoard(t *testing.T, text string, next PieceColor) *Board {
	t.Helper()
	b := NewBoard()
	if err := b.SetContents(text, next); err != nil {
		t.Fatalf("set contents: %v", err)
	}
	return b
}

func moveStrings(ms []*Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func TestInitialBoard(t *testing.T) {
	b := NewBoard()
	want := strings.Join([]string{
		"  b b b b b",
		"  b b b b b",
		"  b b - w w",
		"  w w w w w",
		"  w w w w w",
	}, "\n")
	if got := b.String(); got != want {
		t.Fatalf("initial board:\n%s\nwant:\n%s", got, want)
	}
	if b.WhoseMove() != White || b.GameOver() {
		t.Fatalf("white should move first, game not over")
	}
	if b.Contents() != "wwwwwwwwwwbb-wwbbbbbbbbbb" {
		t.Fatalf("contents %q", b.Contents())
	}
}

func TestRenderLegend(t *testing.T) {
	b := NewBoard()
	lines := strings.Split(b.Render(true), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 lines, got %d", len(lines))
	}
	if lines[0] != "5 b b b b b" || lines[2] != "3 b b - w w" || lines[5] != "  a b c d e" {
		t.Fatalf("unexpected legend rendering:\n%s", b.Render(true))
	}
}

func TestInitialMoves(t *testing.T) {
	b := NewBoard()
	got := strings.Join(moveStrings(b.Moves()), " ")
	want := "b2-c3 c2-c3 d2-c3 d3-c3"
	if got != want {
		t.Fatalf("initial moves: got %q want %q", got, want)
	}
}

func TestSetContentsRoundTrip(t *testing.T) {
	text := "w-w-w -b-b- --w-- b---b -w-b-"
	b := setBoard(t, text, Black)
	if b.Contents() != strings.ReplaceAll(text, " ", "") {
		t.Fatalf("contents %q", b.Contents())
	}
	if b.WhoseMove() != Black {
		t.Fatalf("whose move %v", b.WhoseMove())
	}
	if b.GetAt('c', '3') != White || b.Get(mustSquare("b2")) != Black {
		t.Fatalf("unexpected cell contents")
	}
}

func TestSetContentsInvalid(t *testing.T) {
	cases := []struct {
		name string
		text string
		next PieceColor
	}{
		{"short", strings.Repeat("-", 24), White},
		{"long", strings.Repeat("-", 26), White},
		{"bad char", strings.Repeat("-", 24) + "x", White},
		{"upper case", strings.Repeat("-", 24) + "W", White},
		{"no side", strings.Repeat("-", 25), Empty},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			before := b.Copy()
			err := b.SetContents(tt.text, tt.next)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("want ErrInvalidConfig, got %v", err)
			}
			if !b.Equal(before) {
				t.Fatalf("board mutated on failed SetContents")
			}
		})
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	b := NewBoard()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	b.Get(25)
}

func TestUndoEmptyPanics(t *testing.T) {
	b := NewBoard()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	b.Undo()
}

func TestSingleJump(t *testing.T) {
	b := setBoard(t, "----- ----- --w-- --b-- ----b", White)
	if !b.JumpPossible() {
		t.Fatalf("jump should be possible")
	}
	got := moveStrings(b.Moves())
	if len(got) != 1 || got[0] != "c3-c5" {
		t.Fatalf("moves %v", got)
	}
	if b.LegalMove(mv("c3", "d4")) {
		t.Fatalf("plain move allowed while capture exists")
	}
	m := b.Moves()[0]
	if !b.MakeMove(m) {
		t.Fatalf("make move failed")
	}
	if b.GetAt('c', '3') != Empty || b.GetAt('c', '4') != Empty || b.GetAt('c', '5') != White {
		t.Fatalf("capture not applied:\n%s", b)
	}
}

func TestMultiJumpChain(t *testing.T) {
	b := setBoard(t, "wb--b --b-- ----- ---b- -----", White)
	got := moveStrings(b.Moves())
	if len(got) != 1 || got[0] != "a1-c1-c3-e5" {
		t.Fatalf("moves %v", got)
	}
	if !b.MakeMove(MustParseMove("a1-c1-c3-e5")) {
		t.Fatalf("make move failed")
	}
	for _, s := range []string{"a1", "b1", "c1", "c2", "c3", "d4"} {
		if b.GetAt(s[0], s[1]) != Empty {
			t.Fatalf("%s should be empty:\n%s", s, b)
		}
	}
	if b.GetAt('e', '5') != White || b.Pieces(Black) != 1 {
		t.Fatalf("unexpected result:\n%s", b)
	}
	if b.HistoryLen() != 1 {
		t.Fatalf("chain should push one history entry, got %d", b.HistoryLen())
	}
	// 黑方只剩底线上的 e1，既不能走也不能吃
	if !b.GameOver() || b.Winner() != White {
		t.Fatalf("black should have no moves")
	}
	b.Undo()
	if b.Contents() != strings.ReplaceAll("wb--b --b-- ----- ---b- -----", " ", "") {
		t.Fatalf("undo did not restore: %q", b.Contents())
	}
	if b.GameOver() || b.WhoseMove() != White {
		t.Fatalf("undo did not restore side/game over")
	}
}

func TestBranchingJumps(t *testing.T) {
	b := setBoard(t, "----- ----- -bwb- b---- ----b", White)
	got := strings.Join(moveStrings(b.Moves()), " ")
	if got != "c3-a3-a5 c3-e3" {
		t.Fatalf("moves %q", got)
	}
	partial := mv("c3", "a3")
	if !b.LegalMove(partial) {
		t.Fatalf("partial chain should be legal")
	}
	if b.CheckJump(partial, false) {
		t.Fatalf("partial chain is not complete")
	}
	if !b.CheckJump(MustParseMove("c3-a3-a5"), false) {
		t.Fatalf("complete chain rejected")
	}
	if !b.CheckJump(nil, false) {
		t.Fatalf("nil jump should check")
	}
	if b.LegalMove(MustParseMove("c3-e3-c5")) {
		t.Fatalf("continuation over empty square accepted")
	}
	if !b.Equal(setBoard(t, "----- ----- -bwb- b---- ----b", White)) {
		t.Fatalf("probing changed the board")
	}
}

func TestMandatoryCapture(t *testing.T) {
	b := NewBoard()
	for ply := 0; ply < 30 && !b.GameOver(); ply++ {
		moves := b.Moves()
		jump := b.JumpPossible()
		for _, m := range moves {
			if m.IsJump() != jump {
				t.Fatalf("ply %d: jumpPossible=%v but got move %v", ply, jump, m)
			}
			if !b.LegalMove(m) {
				t.Fatalf("ply %d: generated move %v is not legal", ply, m)
			}
		}
		if !b.MakeMove(moves[len(moves)/2]) {
			t.Fatalf("ply %d: make move failed", ply)
		}
	}
}

func TestUndoRestoresEveryMove(t *testing.T) {
	b := NewBoard()
	for ply := 0; ply < 40 && !b.GameOver(); ply++ {
		moves := b.Moves()
		for _, m := range moves {
			before := b.Copy()
			if !b.MakeMove(m) {
				t.Fatalf("ply %d: %v rejected", ply, m)
			}
			b.Undo()
			if !b.Equal(before) || b.lockLeft != before.lockLeft || b.lockRight != before.lockRight {
				t.Fatalf("ply %d: undo of %v did not restore\n%s\nwant\n%s", ply, m, b, before)
			}
			back, err := ParseMove(m.String())
			if err != nil || !back.Equal(m) {
				t.Fatalf("ply %d: round trip of %v failed: %v", ply, m, err)
			}
		}
		if !b.MakeMove(moves[(ply*7)%len(moves)]) {
			t.Fatalf("ply %d: make move failed", ply)
		}
	}
}

func TestDirectionalLock(t *testing.T) {
	b := setBoard(t, "----- w---- ----- ----- ----b", White)
	if !b.MakeMove(mv("a2", "b2")) {
		t.Fatalf("a2-b2 rejected")
	}
	if !b.MakeMove(mv("e5", "e4")) {
		t.Fatalf("e5-e4 rejected")
	}
	if b.LegalMove(mv("b2", "a2")) {
		t.Fatalf("immediate reversal b2-a2 allowed")
	}
	for _, s := range []string{"b2-b3", "b2-c3", "b2-a3", "b2-c2"} {
		if !b.LegalMove(MustParseMove(s)) {
			t.Fatalf("%s should stay legal", s)
		}
	}
	for _, m := range b.Moves() {
		if m.String() == "b2-a2" {
			t.Fatalf("b2-a2 generated")
		}
	}

	// 竖着走一步之后锁解除
	if !b.MakeMove(mv("b2", "b3")) || !b.MakeMove(mv("e4", "e3")) {
		t.Fatalf("setup moves rejected")
	}
	if !b.LegalMove(mv("b3", "a3")) {
		t.Fatalf("lock should be cleared after a vertical move")
	}
}

func TestForwardOnly(t *testing.T) {
	b := setBoard(t, "----- ----- --w-- ----- b----", White)
	if b.LegalMove(mv("c3", "c2")) || b.LegalMove(mv("c3", "b2")) {
		t.Fatalf("white moved backwards")
	}
	if !b.LegalMove(mv("c3", "c4")) || !b.LegalMove(mv("c3", "b3")) {
		t.Fatalf("white forward/sideways rejected")
	}
	if b.LegalMove(mv("a5", "a4")) {
		t.Fatalf("moved the wrong side's piece")
	}
	if b.LegalMove(mv("c3", "c5")) {
		t.Fatalf("jump over empty square accepted")
	}
}

func TestOddSquaresHaveNoDiagonals(t *testing.T) {
	b := setBoard(t, "----- ----- ---w- ----- b----", White)
	if b.LegalMove(mv("d3", "e4")) || b.LegalMove(mv("d3", "c4")) {
		t.Fatalf("diagonal step from odd square accepted")
	}
	if !b.LegalMove(mv("d3", "d4")) {
		t.Fatalf("d3-d4 rejected")
	}
}

func TestGameOverDetection(t *testing.T) {
	// 白方只有第 5 行的棋子：不能走也不能吃
	b := setBoard(t, "b---- ----- ----- ----- --w--", White)
	if !b.GameOver() {
		t.Fatalf("white has no moves, game should be over")
	}
	if len(b.Moves()) != 0 || b.LegalMove(mv("c5", "d5")) {
		t.Fatalf("no moves allowed after game over")
	}

	// 白方吃掉黑方最后一子
	b = setBoard(t, "----- ----- --w-- --b-- -----", White)
	if b.GameOver() {
		t.Fatalf("game should not be over yet")
	}
	if !b.MakeMove(mv("c3", "c5")) {
		t.Fatalf("capture rejected")
	}
	if !b.GameOver() || b.Winner() != White {
		t.Fatalf("black has no pieces, game should be over")
	}
	b.Undo()
	if b.GameOver() {
		t.Fatalf("undo should clear game over")
	}
}

func TestMakeIllegalMoveIsNoop(t *testing.T) {
	b := NewBoard()
	before := b.Copy()
	if b.MakeMove(mv("a1", "a2")) {
		t.Fatalf("a1-a2 onto own piece accepted")
	}
	if b.MakeMove(nil) {
		t.Fatalf("nil move accepted")
	}
	if !b.Equal(before) || b.HistoryLen() != 0 {
		t.Fatalf("illegal move changed the board")
	}
}

func TestConstantView(t *testing.T) {
	b := NewBoard()
	v := b.ConstantView()
	var r Reader = v
	if _, ok := r.(Mutator); ok {
		t.Fatalf("view exposes mutators")
	}
	if !b.MakeMove(mv("c2", "c3")) {
		t.Fatalf("c2-c3 rejected")
	}
	if v.GetAt('c', '3') != White || v.WhoseMove() != Black {
		t.Fatalf("view does not track the live board")
	}
	if !v.Equal(b) || len(v.Moves()) != len(b.Moves()) {
		t.Fatalf("view disagrees with board")
	}
}

func TestSubscribe(t *testing.T) {
	b := NewBoard()
	var got []Snapshot
	cancel := b.Subscribe(func(s Snapshot) { got = append(got, s) })

	_ = b.Moves()
	_ = b.LegalMove(mv("c2", "c3"))
	if len(got) != 0 {
		t.Fatalf("queries must not notify")
	}
	b.MakeMove(mv("c2", "c3"))
	b.Undo()
	if len(got) != 2 {
		t.Fatalf("want 2 notifications, got %d", len(got))
	}
	if got[0].WhoseMove != Black || got[0].Plies != 1 || got[1].WhoseMove != White {
		t.Fatalf("unexpected snapshots %+v", got)
	}
	cancel()
	b.MakeMove(mv("c2", "c3"))
	if len(got) != 2 {
		t.Fatalf("cancelled listener still notified")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	c := b.Copy()
	c.MakeMove(mv("c2", "c3"))
	if b.GetAt('c', '3') != Empty {
		t.Fatalf("copy shares cells")
	}
	b.CopyFrom(c)
	if !b.Equal(c) || b.HistoryLen() != 0 {
		t.Fatalf("CopyFrom failed")
	}
}
