package qirkat

import (
	"fmt"
	"strings"
	"unicode"
)

// SetContents 按 text 摆棋：25 个 b/w/-（空白忽略），从第 1 行 a 列开始按行排列。
// 全部校验通过之后才修改棋盘；方向锁和悔棋栈清空，next 为下一手。
func (b *Board) SetContents(text string, next PieceColor) error {
	if err := b.load(text, next); err != nil {
		return err
	}
	b.notify()
	return nil
}

func (b *Board) load(text string, next PieceColor) error {
	if next != White && next != Black {
		return fmt.Errorf("%w: bad player color %v", ErrInvalidConfig, next)
	}
	cells, err := parseCells(text)
	if err != nil {
		return err
	}
	b.cells = cells
	b.lockRight = [NumSquares]bool{}
	b.lockLeft = [NumSquares]bool{}
	b.whoseMove = next
	b.history = nil
	b.gameOver = false
	b.gameOver = !b.anyMove()
	return nil
}

func parseCells(text string) ([NumSquares]PieceColor, error) {
	var cells [NumSquares]PieceColor
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if len(stripped) != NumSquares {
		return cells, fmt.Errorf("%w: want %d squares, got %d", ErrInvalidConfig, NumSquares, len(stripped))
	}
	for k := 0; k < NumSquares; k++ {
		switch stripped[k] {
		case '-':
			cells[k] = Empty
		case 'w':
			cells[k] = White
		case 'b':
			cells[k] = Black
		default:
			return cells, fmt.Errorf("%w: bad character %q at %d", ErrInvalidConfig, stripped[k], k)
		}
	}
	return cells, nil
}

// Contents 是 SetContents 能读回的 25 个字符
func (b *Board) Contents() string {
	buf := make([]byte, NumSquares)
	for k, pc := range b.cells {
		buf[k] = pc.Char()
	}
	return string(buf)
}

func (b *Board) String() string { return b.Render(false) }

// Render 从第 5 行往下逐行输出，末行不带换行。legend 为真时加上行号和列字母。
func (b *Board) Render(legend bool) string {
	var sb strings.Builder
	for r := Side - 1; r >= 0; r-- {
		if legend {
			sb.WriteByte(byte('1' + r))
		} else {
			sb.WriteByte(' ')
		}
		for c := 0; c < Side; c++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.cells[squareAt(c, r)].Char())
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
	}
	if legend {
		sb.WriteString("\n  a b c d e")
	}
	return sb.String()
}
