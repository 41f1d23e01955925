package qirkat

import (
	"fmt"
	"strings"
)

// Move 是一步走子 from -> to；连跳时 next 指向下一段。构造后不可修改。
type Move struct {
	from Square
	to   Square
	next *Move
}

// NewMove 构造单段走法。位移既不是一格也不是跳两格时返回 ErrInvalidMove。
func NewMove(from, to Square) (*Move, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: square out of range (%d, %d)", ErrInvalidMove, from, to)
	}
	if _, _, ok := directionOf(from, to); !ok {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidMove, from, to)
	}
	return &Move{from: from, to: to}, nil
}

// MustMove 同 NewMove，出错直接 panic（测试和常量局面用）
func MustMove(from, to Square) *Move {
	m, err := NewMove(from, to)
	if err != nil {
		panic(err)
	}
	return m
}

// Chain 生成一步新走法：起止格同 head，后续为 tail。tail.From()==head.To() 由调用方保证。
func Chain(head, tail *Move) *Move {
	return &Move{from: head.from, to: head.to, next: tail}
}

// Join 把若干单段走法串成一条连跳
func Join(legs ...*Move) *Move {
	var out *Move
	for i := len(legs) - 1; i >= 0; i-- {
		out = Chain(legs[i], out)
	}
	return out
}

func (m *Move) From() Square { return m.from }
func (m *Move) To() Square   { return m.to }

// Tail 是连跳的下一段，没有则为 nil
func (m *Move) Tail() *Move { return m.next }

// Legs 按顺序返回每一段（每段都不带 tail）
func (m *Move) Legs() []*Move {
	var out []*Move
	for leg := m; leg != nil; leg = leg.next {
		out = append(out, &Move{from: leg.from, to: leg.to})
	}
	return out
}

// Final 是整条走法最后落下的格子
func (m *Move) Final() Square {
	leg := m
	for leg.next != nil {
		leg = leg.next
	}
	return leg.to
}

// IsJump 看第一段：隔一格的直线位移才是吃子
func (m *Move) IsJump() bool {
	_, dist, ok := directionOf(m.from, m.to)
	return ok && dist == 2
}

// JumpedSquare 被吃掉的格子，即起止格的中点
func (m *Move) JumpedSquare() Square {
	if !m.IsJump() {
		panic(fmt.Sprintf("qirkat: %s-%s is not a jump", m.from, m.to))
	}
	return (m.from + m.to) / 2
}

func (m *Move) JumpedCol() byte { return m.JumpedSquare().Col() }
func (m *Move) JumpedRow() byte { return m.JumpedSquare().Row() }

// IsLeftMove 同一行向左平移一格
func (m *Move) IsLeftMove() bool {
	return m.from.row() == m.to.row() && m.to.col() == m.from.col()-1
}

// IsRightMove 同一行向右平移一格
func (m *Move) IsRightMove() bool {
	return m.from.row() == m.to.row() && m.to.col() == m.from.col()+1
}

// Equal 逐段比较坐标
func (m *Move) Equal(o *Move) bool {
	a, b := m, o
	for a != nil && b != nil {
		if a.from != b.from || a.to != b.to {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// String 形如 a3-a5-c3
func (m *Move) String() string {
	if m == nil {
		return "-"
	}
	var sb strings.Builder
	sb.WriteString(m.from.String())
	for leg := m; leg != nil; leg = leg.next {
		sb.WriteByte('-')
		sb.WriteString(leg.to.String())
	}
	return sb.String()
}

// ParseMove 是 String 的严格逆运算。多段时每一段都必须是跳吃。
func ParseMove(s string) (*Move, error) {
	tokens := strings.Split(s, "-")
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least two squares", ErrMalformedMove, s)
	}
	squares := make([]Square, len(tokens))
	for i, tok := range tokens {
		if len(tok) != 2 {
			return nil, fmt.Errorf("%w: bad square %q", ErrMalformedMove, tok)
		}
		sq, ok := SquareOf(tok[0], tok[1])
		if !ok {
			return nil, fmt.Errorf("%w: bad square %q", ErrMalformedMove, tok)
		}
		squares[i] = sq
	}
	legs := make([]*Move, 0, len(squares)-1)
	for i := 0; i+1 < len(squares); i++ {
		leg, err := NewMove(squares[i], squares[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMove, err)
		}
		if len(squares) > 2 && !leg.IsJump() {
			return nil, fmt.Errorf("%w: %s is not a jump", ErrMalformedMove, leg)
		}
		legs = append(legs, leg)
	}
	return Join(legs...), nil
}

// MustParseMove 解析失败属于调用方的错误，直接 panic
func MustParseMove(s string) *Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
