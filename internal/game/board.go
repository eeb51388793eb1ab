package game

// Board geometry: a 4x4 grid, 12 lines (4 rows, 4 columns, 4 quadrants).
const (
	BoardSize = 4
	NumCells  = BoardSize * BoardSize
	NumLines  = 12
)

// Cell is a board square indexed row*4+col.
type Cell int8

// CellAt returns the cell at (row, col).
func CellAt(row, col int) Cell {
	return Cell(row*BoardSize + col)
}

func (c Cell) Row() int { return int(c) / BoardSize }
func (c Cell) Col() int { return int(c) % BoardSize }

// Valid reports whether c is on the board.
func (c Cell) Valid() bool {
	return c >= 0 && c < NumCells
}

// Shape is one of the four token types.
type Shape int8

const (
	Circle Shape = iota
	Square
	Triangle
	HalfCircle
	NumShapes
)

// noShape marks an empty slot in a line record.
const noShape Shape = -1

func (s Shape) Valid() bool {
	return s >= 0 && s < NumShapes
}

// Player is one of the two sides. First always opens.
type Player int8

const (
	First Player = iota
	Second
)

func Opponent(p Player) Player {
	if p == First {
		return Second
	}
	return First
}

// Piece is a placed token.
type Piece struct {
	Owner Player
	Shape Shape
}

// Line is an ordered group of four cells that must not contain a
// repeated shape of the opponent and wins when it holds all four shapes.
type Line [4]Cell

// lines holds the rows, then the columns, then the quadrants
// (top-left, top-right, bottom-left, bottom-right).
var lines [NumLines]Line

var (
	// cellLines[c] 是经过 c 的三条线（行、列、象限）
	cellLines [NumCells][3]int
	// cellSlot[c][i] 是 c 在 cellLines[c][i] 里的下标
	cellSlot [NumCells][3]int
	// peers[c] 是与 c 共线的其它 7 个格子
	peers [NumCells][]Cell
	// overlap[a][b] 是 a、b 共享的线数
	overlap [NumCells][NumCells]int8
)

func init() {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			lines[n][c] = CellAt(r, c)
		}
		n++
	}
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize; r++ {
			lines[n][r] = CellAt(r, c)
		}
		n++
	}
	for _, q := range [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		i := 0
		for r := q[0]; r < q[0]+2; r++ {
			for c := q[1]; c < q[1]+2; c++ {
				lines[n][i] = CellAt(r, c)
				i++
			}
		}
		n++
	}

	var seen [NumCells]int
	for li, line := range lines {
		for slot, c := range line {
			k := seen[c]
			cellLines[c][k] = li
			cellSlot[c][k] = slot
			seen[c]++
		}
	}

	for a := Cell(0); a < NumCells; a++ {
		for b := Cell(0); b < NumCells; b++ {
			var shared int8
			for _, la := range cellLines[a] {
				for _, lb := range cellLines[b] {
					if la == lb {
						shared++
					}
				}
			}
			overlap[a][b] = shared
			if a != b && shared > 0 {
				peers[a] = append(peers[a], b)
			}
		}
	}
}

// cellPeers returns the cells sharing at least one line with c.
func cellPeers(c Cell) []Cell {
	out := make([]Cell, len(peers[c]))
	copy(out, peers[c])
	return out
}

// sharedLines returns how many lines a and b have in common.
func sharedLines(a, b Cell) int {
	return int(overlap[a][b])
}
