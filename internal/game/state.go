package game

import (
	"errors"
	"fmt"
)

// Errors returned at the engine boundary. The search never triggers them.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("no move to undo")
	ErrGameDecided  = errors.New("game already decided")
)

// piecesPerShape is each player's starting supply of every shape.
const piecesPerShape = 2

// Outcome is the result of a game; Ongoing while nobody has won.
type Outcome int8

const (
	Ongoing Outcome = iota
	FirstWon
	SecondWon
	Draw
)

func wonBy(p Player) Outcome {
	if p == First {
		return FirstWon
	}
	return SecondWon
}

// Winner returns the winning player, ok=false for Ongoing and Draw.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case FirstWon:
		return First, true
	case SecondWon:
		return Second, true
	}
	return First, false
}

// GameState 是整局棋的完整状态：占位、库存、禁区、各线形状记录、历史和胜负。
// 所有表都是定长数组，搜索时在同一个实例上 apply / revert，不做拷贝。
type GameState struct {
	cells    [NumCells]Piece
	occupied [NumCells]bool
	// supply[p][s] 是 p 手里还剩几个 s
	supply [2][NumShapes]uint8
	// forbidden[p][s][c] 计数：对手有多少个 s 与 c 共线；>0 即禁止 p 在 c 放 s
	forbidden [2][NumShapes][NumCells]uint8
	// lineSlots[l][i] 是第 l 条线第 i 格上的形状，noShape 为空
	lineSlots [NumLines][4]Shape

	history []Move
	current Player
	outcome Outcome
	hash    uint64
}

// NewGameState returns the starting position with First to move.
func NewGameState() *GameState {
	gs := &GameState{
		history: make([]Move, 0, NumCells),
		current: First,
	}
	for p := range gs.supply {
		for s := range gs.supply[p] {
			gs.supply[p][s] = piecesPerShape
		}
	}
	for l := range gs.lineSlots {
		for i := range gs.lineSlots[l] {
			gs.lineSlots[l][i] = noShape
		}
	}
	return gs
}

// Reset 重置为开局
func (gs *GameState) Reset() {
	*gs = *NewGameState()
}

// clone returns a deep copy.
func (gs *GameState) clone() *GameState {
	cp := *gs
	cp.history = make([]Move, len(gs.history), NumCells)
	copy(cp.history, gs.history)
	return &cp
}

func (gs *GameState) CurrentPlayer() Player { return gs.current }
func (gs *GameState) Outcome() Outcome      { return gs.outcome }
func (gs *GameState) Hash() uint64          { return gs.hash }
func (gs *GameState) MoveCount() int        { return len(gs.history) }

// IsGameOver reports whether a player has won or the game is drawn.
func (gs *GameState) IsGameOver() bool {
	return gs.outcome != Ongoing
}

// History returns a copy of the moves played so far.
func (gs *GameState) History() []Move {
	out := make([]Move, len(gs.history))
	copy(out, gs.history)
	return out
}

// Supply returns how many tokens of shape s player p can still place.
func (gs *GameState) Supply(p Player, s Shape) int {
	return int(gs.supply[p][s])
}

// Forbidden reports whether p may not place s on c because the opponent
// has an s on a shared line.
func (gs *GameState) Forbidden(p Player, s Shape, c Cell) bool {
	return gs.forbidden[p][s][c] > 0
}

// PieceAt returns the token on c, ok=false if c is free.
func (gs *GameState) PieceAt(c Cell) (Piece, bool) {
	if !c.Valid() || !gs.occupied[c] {
		return Piece{}, false
	}
	return gs.cells[c], true
}

// Apply validates m for the player to move and plays it. When the move
// leaves the next player without a legal reply and nobody has won, the
// game is recorded as a draw.
func (gs *GameState) Apply(m Move) error {
	if gs.IsGameOver() {
		return ErrGameDecided
	}
	if err := gs.checkMove(m); err != nil {
		return err
	}
	gs.apply(m)
	gs.DeclareDraw()
	return nil
}

// UndoMove takes back the last move.
func (gs *GameState) UndoMove() error {
	if len(gs.history) == 0 {
		return ErrEmptyHistory
	}
	gs.revert()
	return nil
}

// DeclareDraw sets the outcome to Draw when the game is still open and the
// player to move has nothing to play. Nothing else is touched.
func (gs *GameState) DeclareDraw() bool {
	if gs.outcome != Ongoing || gs.hasLegalMove(gs.current) {
		return false
	}
	gs.outcome = Draw
	return true
}

func (gs *GameState) checkMove(m Move) error {
	p := gs.current
	switch {
	case !m.Cell.Valid():
		return fmt.Errorf("%w: cell %d off the board", ErrIllegalMove, m.Cell)
	case !m.Shape.Valid():
		return fmt.Errorf("%w: unknown shape %d", ErrIllegalMove, m.Shape)
	case gs.occupied[m.Cell]:
		return fmt.Errorf("%w: %v is occupied", ErrIllegalMove, m.Cell)
	case gs.supply[p][m.Shape] == 0:
		return fmt.Errorf("%w: %v has no %v left", ErrIllegalMove, p, m.Shape)
	case gs.forbidden[p][m.Shape][m.Cell] > 0:
		return fmt.Errorf("%w: opponent %v shares a line with %v", ErrIllegalMove, m.Shape, m.Cell)
	}
	return nil
}

// apply plays m without validation. Callers guarantee m came from LegalMoves.
func (gs *GameState) apply(m Move) {
	p := gs.current
	opp := Opponent(p)

	gs.cells[m.Cell] = Piece{Owner: p, Shape: m.Shape}
	gs.occupied[m.Cell] = true
	gs.supply[p][m.Shape]--
	for _, c := range peers[m.Cell] {
		gs.forbidden[opp][m.Shape][c]++
	}
	for i, l := range cellLines[m.Cell] {
		gs.lineSlots[l][cellSlot[m.Cell][i]] = m.Shape
	}
	gs.history = append(gs.history, m)
	gs.hash ^= pieceKey(m.Cell, p, m.Shape) ^ zobristSide

	if gs.GameIsWon() {
		gs.outcome = wonBy(p)
	}
	gs.current = opp
}

// revert 是 apply 的精确逆操作
func (gs *GameState) revert() {
	last := len(gs.history) - 1
	m := gs.history[last]
	gs.history = gs.history[:last]

	p := Opponent(gs.current)
	gs.current = p
	gs.outcome = Ongoing

	for i, l := range cellLines[m.Cell] {
		gs.lineSlots[l][cellSlot[m.Cell][i]] = noShape
	}
	gs.supply[p][m.Shape]++
	gs.cells[m.Cell] = Piece{}
	gs.occupied[m.Cell] = false
	opp := Opponent(p)
	for _, c := range peers[m.Cell] {
		gs.forbidden[opp][m.Shape][c]--
	}
	gs.hash ^= pieceKey(m.Cell, p, m.Shape) ^ zobristSide
}

// GameIsWon reports whether any line holds the four distinct shapes.
func (gs *GameState) GameIsWon() bool {
	const all = 1<<NumShapes - 1
	for l := range gs.lineSlots {
		var mask uint8
		for _, s := range gs.lineSlots[l] {
			if s == noShape {
				mask = 0
				break
			}
			mask |= 1 << s
		}
		if mask == all {
			return true
		}
	}
	return false
}
