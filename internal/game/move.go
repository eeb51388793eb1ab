package game

// Move places Shape on Cell for the player to move.
type Move struct {
	Cell  Cell
	Shape Shape
}

// LegalMoves lists the moves available to the player to move.
func (gs *GameState) LegalMoves() []Move {
	return gs.LegalMovesFor(gs.current)
}

// LegalMovesFor 枚举玩家 p 的所有合法落子：每种还有库存的形状 × (空格 − 禁区)。
// 顺序固定：先按形状，再按格子下标。
func (gs *GameState) LegalMovesFor(p Player) []Move {
	moves := make([]Move, 0, 32)
	for s := Shape(0); s < NumShapes; s++ {
		if gs.supply[p][s] == 0 {
			continue
		}
		for c := Cell(0); c < NumCells; c++ {
			if gs.occupied[c] || gs.forbidden[p][s][c] > 0 {
				continue
			}
			moves = append(moves, Move{Cell: c, Shape: s})
		}
	}
	return moves
}

// hasLegalMove is LegalMovesFor without the allocation.
func (gs *GameState) hasLegalMove(p Player) bool {
	for s := Shape(0); s < NumShapes; s++ {
		if gs.supply[p][s] == 0 {
			continue
		}
		for c := Cell(0); c < NumCells; c++ {
			if !gs.occupied[c] && gs.forbidden[p][s][c] == 0 {
				return true
			}
		}
	}
	return false
}

// IsLegal reports whether m can be played by the player to move.
func (gs *GameState) IsLegal(m Move) bool {
	return gs.checkMove(m) == nil
}
