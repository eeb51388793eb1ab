// internal/game/symmetry_prune.go
package game

// signature 把候选格 c 相对历史的“共线指纹”压成一个整数：
// 按落子顺序，每一步记录已落格与 c 共享的线数（0..3，占 2 bit）。
// 历史最多 16 步，32 bit 足够；形状放在高位。
func (gs *GameState) signature(m Move) uint64 {
	var sig uint64
	for i, played := range gs.history {
		sig |= uint64(overlap[played.Cell][m.Cell]) << (2 * uint(i))
	}
	return sig | uint64(m.Shape)<<32
}

// ReduceMoves keeps one representative per (signature, shape) pair, the
// first one encountered, preserving order. Cells with equal signatures are
// treated as interchangeable for the rest of the game. That is a heuristic:
// equal signatures do not prove the positions are symmetric.
func ReduceMoves(gs *GameState, moves []Move) []Move {
	seen := make(map[uint64]struct{}, len(moves))
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		sig := gs.signature(m)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, m)
	}
	return out
}
