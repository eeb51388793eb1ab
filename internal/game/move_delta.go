package game

// withMove 在原盘上落子 m，执行 fn，然后无论 fn 怎么返回（包括 panic）都撤销 m。
// 搜索里所有试走都必须经过这里，保证每个 apply 恰好配一个 revert。
func (gs *GameState) withMove(m Move, fn func() int) int {
	gs.apply(m)
	defer gs.revert()
	return fn()
}
