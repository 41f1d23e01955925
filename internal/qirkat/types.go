package qirkat

import "fmt"

type PieceColor int8

const (
	Empty PieceColor = iota
	White            // 先手，向上走（第 1 行 -> 第 5 行）
	Black            // 后手，向下走
)

// Opposite 返回对方颜色；Empty 没有对方，原样返回
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

func (c PieceColor) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Empty"
}

// Char 是棋盘文本里用的字符：w / b / -
func (c PieceColor) Char() byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	}
	return '-'
}

// ParseColor 接受 "white"/"w"/"black"/"b"（大小写不敏感）
func ParseColor(s string) (PieceColor, error) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, nil
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	}
	return Empty, fmt.Errorf("%w: bad player color %q", ErrInvalidConfig, s)
}

// Square 是线性下标：行优先，第 0 行在最下面
type Square int8

const (
	Side       = 5
	NumSquares = Side * Side
	MaxIndex   = NumSquares - 1

	NoSquare Square = -1
)

func squareAt(col, row int) Square { return Square(row*Side + col) }

func onBoard(col, row int) bool {
	return col >= 0 && col < Side && row >= 0 && row < Side
}

// SquareOf 把 'a'..'e'、'1'..'5' 映射成下标
func SquareOf(col, row byte) (Square, bool) {
	c, r := int(col)-'a', int(row)-'1'
	if !onBoard(c, r) {
		return NoSquare, false
	}
	return squareAt(c, r), true
}

func (s Square) Valid() bool { return s >= 0 && s <= MaxIndex }

func (s Square) col() int { return int(s) % Side }
func (s Square) row() int { return int(s) / Side }

// Col 返回列字母 'a'..'e'
func (s Square) Col() byte { return byte('a' + s.col()) }

// Row 返回行数字 '1'..'5'
func (s Square) Row() byte { return byte('1' + s.row()) }

func (s Square) String() string {
	if !s.Valid() {
		return "--"
	}
	return string([]byte{s.Col(), s.Row()})
}

func mustValid(s Square) {
	if !s.Valid() {
		panic(fmt.Sprintf("qirkat: square index %d out of range", s))
	}
}
