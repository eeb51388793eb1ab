// internal/game/zobrist.go
package game

import "math/rand"

// ------------------------------------------------------------
//  Zobrist 随机键：每个 (格子, 玩家, 形状) 一个，外加“轮到后手”键
// ------------------------------------------------------------

// 固定种子：同一局面在不同进程里哈希一致
const zobristSeed = 0x5175616e74696b

var (
	zobristPiece [NumCells][2][NumShapes]uint64
	zobristSide  uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := range zobristPiece {
		for p := range zobristPiece[c] {
			for s := range zobristPiece[c][p] {
				zobristPiece[c][p][s] = r.Uint64()
			}
		}
	}
	zobristSide = r.Uint64()
}

// pieceKey 直接数组查表
func pieceKey(c Cell, p Player, s Shape) uint64 {
	return zobristPiece[c][p][s]
}

// hashState recomputes the hash from scratch; apply/revert keep gs.hash
// in sync incrementally.
func hashState(gs *GameState) uint64 {
	var h uint64
	for c := Cell(0); c < NumCells; c++ {
		if gs.occupied[c] {
			pc := gs.cells[c]
			h ^= pieceKey(c, pc.Owner, pc.Shape)
		}
	}
	if gs.current == Second {
		h ^= zobristSide
	}
	return h
}
