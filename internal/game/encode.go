// internal/game/encode.go
package game

import (
	"fmt"
	"strings"
)

// 形状字母：C 圆，S 方，T 三角，H 半圆
const shapeLetters = "CSTH"

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case HalfCircle:
		return "half-circle"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Letter returns the one-letter code of s.
func (s Shape) Letter() byte {
	if !s.Valid() {
		return '?'
	}
	return shapeLetters[s]
}

func (p Player) String() string {
	if p == First {
		return "first"
	}
	return "second"
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case FirstWon:
		return "first won"
	case SecondWon:
		return "second won"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// String 用 a1..d4 表示格子：列字母 + 行号（行 0 记作 1）
func (c Cell) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Cell(%d)", int(c))
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col(), c.Row()+1)
}

// String renders m as shape letter plus cell, e.g. "Tb3".
func (m Move) String() string {
	return string(m.Shape.Letter()) + m.Cell.String()
}

// ParseCell parses "a1".."d4".
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("bad cell %q", s)
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return 0, fmt.Errorf("bad cell %q", s)
	}
	return CellAt(row, col), nil
}

// ParseMove parses the String form of a move; the shape letter is case
// insensitive.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return Move{}, fmt.Errorf("bad move %q", s)
	}
	i := strings.IndexByte(shapeLetters, upper(s[0]))
	if i < 0 {
		return Move{}, fmt.Errorf("bad shape in move %q", s)
	}
	c, err := ParseCell(s[1:])
	if err != nil {
		return Move{}, fmt.Errorf("bad move %q: %w", s, err)
	}
	return Move{Cell: c, Shape: Shape(i)}, nil
}

// ParseMoves parses a comma separated move list such as "Ca1,Sb3".
func ParseMoves(s string) ([]Move, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var moves []Move
	for _, f := range strings.Split(s, ",") {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// String 打印棋盘：先手大写、后手小写、空格为 '.'，第 1 行在最上面
func (gs *GameState) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		fmt.Fprintf(&sb, "%d ", r+1)
		for c := 0; c < BoardSize; c++ {
			ch := byte('.')
			if pc, ok := gs.PieceAt(CellAt(r, c)); ok {
				ch = pc.Shape.Letter()
				if pc.Owner == Second {
					ch = ch - 'A' + 'a'
				}
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcd\n")
	fmt.Fprintf(&sb, "to move: %v, outcome: %v\n", gs.current, gs.outcome)
	return sb.String()
}
