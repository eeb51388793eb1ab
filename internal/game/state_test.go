// 文件：game/state_test.go
package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play 依次落子，任何一步非法都直接失败
func play(t *testing.T, gs *GameState, notation string) {
	t.Helper()
	moves, err := ParseMoves(notation)
	require.NoError(t, err)
	for _, m := range moves {
		require.NoError(t, gs.Apply(m), "move %v\n%v", m, gs)
	}
}

// checkInvariants 用逐格扫描的方式独立验证增量维护的各张表
func checkInvariants(t *testing.T, gs *GameState) {
	t.Helper()
	for _, p := range []Player{First, Second} {
		for s := Shape(0); s < NumShapes; s++ {
			placed := 0
			for c := Cell(0); c < NumCells; c++ {
				if pc, ok := gs.PieceAt(c); ok && pc == (Piece{Owner: p, Shape: s}) {
					placed++
				}
			}
			require.Equal(t, piecesPerShape, placed+gs.Supply(p, s), "%v %v", p, s)

			for c := Cell(0); c < NumCells; c++ {
				want := false
				for _, q := range cellPeers(c) {
					if pc, ok := gs.PieceAt(q); ok && pc.Owner == Opponent(p) && pc.Shape == s {
						want = true
					}
				}
				require.Equal(t, want, gs.Forbidden(p, s, c), "%v %v at %v", p, s, c)
			}
		}
	}

	legal := map[Move]bool{}
	for _, m := range gs.LegalMoves() {
		require.False(t, legal[m], "duplicate legal move %v", m)
		legal[m] = true
	}
	p := gs.CurrentPlayer()
	for s := Shape(0); s < NumShapes; s++ {
		for c := Cell(0); c < NumCells; c++ {
			_, occupied := gs.PieceAt(c)
			want := !occupied && gs.Supply(p, s) > 0 && !gs.Forbidden(p, s, c)
			require.Equal(t, want, legal[Move{Cell: c, Shape: s}], "%v %v", c, s)
		}
	}
	require.Equal(t, hashState(gs), gs.Hash())
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	assert.Equal(t, First, gs.CurrentPlayer())
	assert.Equal(t, Ongoing, gs.Outcome())
	assert.False(t, gs.IsGameOver())
	assert.Empty(t, gs.History())
	assert.Len(t, gs.LegalMoves(), NumCells*int(NumShapes))
	for c := Cell(0); c < NumCells; c++ {
		_, ok := gs.PieceAt(c)
		assert.False(t, ok)
	}
	for _, p := range []Player{First, Second} {
		for s := Shape(0); s < NumShapes; s++ {
			assert.Equal(t, 2, gs.Supply(p, s))
		}
	}
	checkInvariants(t, gs)
}

func TestLineTables(t *testing.T) {
	for c := Cell(0); c < NumCells; c++ {
		n := 0
		for _, l := range lines {
			for _, lc := range l {
				if lc == c {
					n++
				}
			}
		}
		assert.Equal(t, 3, n, "cell %v", c)
		assert.Len(t, cellPeers(c), 7, "cell %v", c)
		assert.Equal(t, 3, sharedLines(c, c))
	}
	assert.Equal(t, 2, sharedLines(CellAt(0, 0), CellAt(0, 1)))
	assert.Equal(t, 1, sharedLines(CellAt(0, 0), CellAt(1, 1)))
	assert.Equal(t, 0, sharedLines(CellAt(0, 0), CellAt(2, 2)))
}

func TestApplyForbidsOpponentShapeOnSharedLines(t *testing.T) {
	gs := NewGameState()
	require.NoError(t, gs.Apply(Move{Cell: CellAt(0, 0), Shape: Circle}))

	want := []Cell{
		CellAt(0, 1), CellAt(0, 2), CellAt(0, 3),
		CellAt(1, 0), CellAt(2, 0), CellAt(3, 0),
		CellAt(1, 1),
	}
	assert.ElementsMatch(t, want, cellPeers(CellAt(0, 0)))
	for _, c := range want {
		assert.True(t, gs.Forbidden(Second, Circle, c), "%v", c)
		assert.False(t, gs.IsLegal(Move{Cell: c, Shape: Circle}), "%v", c)
		assert.True(t, gs.IsLegal(Move{Cell: c, Shape: Square}), "%v", c)
	}
	assert.True(t, gs.IsLegal(Move{Cell: CellAt(2, 2), Shape: Circle}))
	// 自己的形状不限制自己
	for c := Cell(0); c < NumCells; c++ {
		assert.False(t, gs.Forbidden(First, Circle, c))
	}
	checkInvariants(t, gs)
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	gs := NewGameState()
	play(t, gs, "Ca1,Sd4,Ca3")

	cases := map[string]Move{
		"occupied":  {Cell: CellAt(0, 0), Shape: Square},
		"forbidden": {Cell: CellAt(3, 1), Shape: Circle},
		"off board": {Cell: 16, Shape: Square},
		"bad shape": {Cell: CellAt(1, 2), Shape: NumShapes},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			before := gs.clone()
			err := gs.Apply(m)
			require.ErrorIs(t, err, ErrIllegalMove)
			assert.Equal(t, before, gs)
		})
	}

	// 先手两个圆都用完了
	require.NoError(t, gs.Apply(Move{Cell: CellAt(1, 3), Shape: Triangle}))
	assert.Equal(t, 0, gs.Supply(First, Circle))
	for _, m := range gs.LegalMoves() {
		assert.NotEqual(t, Circle, m.Shape)
	}
	assert.ErrorIs(t, gs.Apply(Move{Cell: CellAt(2, 2), Shape: Circle}), ErrIllegalMove)
}

func TestWinByFourDistinctShapes(t *testing.T) {
	gs := NewGameState()
	play(t, gs, "Ca1,Sb1,Tc1")
	assert.False(t, gs.GameIsWon())
	assert.Equal(t, Ongoing, gs.Outcome())

	require.NoError(t, gs.Apply(Move{Cell: CellAt(0, 3), Shape: HalfCircle}))
	assert.True(t, gs.GameIsWon())
	assert.Equal(t, SecondWon, gs.Outcome())
	w, ok := gs.Outcome().Winner()
	assert.True(t, ok)
	assert.Equal(t, Second, w)
	// 胜负已分后轮次照常切换
	assert.Equal(t, First, gs.CurrentPlayer())

	assert.ErrorIs(t, gs.Apply(Move{Cell: CellAt(2, 2), Shape: Square}), ErrGameDecided)

	require.NoError(t, gs.UndoMove())
	assert.Equal(t, Ongoing, gs.Outcome())
	assert.Equal(t, Second, gs.CurrentPlayer())
}

func TestRepeatedShapeNeverWins(t *testing.T) {
	gs := NewGameState()
	// 第一行：C S C H，先手自己的圆可以重复
	play(t, gs, "Ca1,Sb1,Cc1,Hd1")
	assert.False(t, gs.GameIsWon())
	assert.Equal(t, Ongoing, gs.Outcome())
	checkInvariants(t, gs)
}

func TestQuadrantWin(t *testing.T) {
	gs := NewGameState()
	play(t, gs, "Cc3,Sd3,Tc4")
	require.NoError(t, gs.Apply(Move{Cell: CellAt(3, 3), Shape: HalfCircle}))
	assert.Equal(t, SecondWon, gs.Outcome())
}

func TestUndoMoveEmptyHistory(t *testing.T) {
	gs := NewGameState()
	assert.ErrorIs(t, gs.UndoMove(), ErrEmptyHistory)
	assert.Equal(t, NewGameState(), gs)
}

// TestApplyRevertRoundTrip 随机对局中每一步 apply 后 revert 都必须还原到完全相同的状态
func TestApplyRevertRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for game := 0; game < 200; game++ {
		gs := NewGameState()
		for !gs.IsGameOver() {
			checkInvariants(t, gs)
			moves := gs.LegalMoves()
			for _, m := range moves {
				before := gs.clone()
				require.NoError(t, gs.Apply(m))
				require.NoError(t, gs.UndoMove())
				require.Equal(t, before, gs, "apply/undo %v\n%v", m, before)
			}
			require.NoError(t, gs.Apply(moves[r.Intn(len(moves))]))
		}
		checkInvariants(t, gs)
	}
}

// fn 中途 panic 时 withMove 仍要把局面还原
func TestWithMoveRevertsOnPanic(t *testing.T) {
	gs := NewGameState()
	play(t, gs, "Ca1,Sd4,Tb2")
	before := gs.clone()

	m := gs.LegalMoves()[0]
	assert.PanicsWithValue(t, "boom", func() {
		gs.withMove(m, func() int {
			require.Equal(t, 4, gs.MoveCount())
			panic("boom")
		})
	})
	assert.Equal(t, before, gs)
	checkInvariants(t, gs)
}

func TestHashIndependentOfMoveOrder(t *testing.T) {
	a := NewGameState()
	play(t, a, "Ca1,Sd4,Tc3,Hb2")
	b := NewGameState()
	play(t, b, "Tc3,Hb2,Ca1,Sd4")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, NewGameState().Hash(), a.Hash())
}

// findDrawnGame 随机对弈直到出现“轮到的一方无子可下”的和棋
func findDrawnGame(t *testing.T) []Move {
	t.Helper()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		gs := NewGameState()
		for !gs.IsGameOver() {
			moves := gs.LegalMoves()
			require.NoError(t, gs.Apply(moves[r.Intn(len(moves))]))
		}
		if gs.Outcome() == Draw {
			assert.Empty(t, gs.LegalMoves())
			assert.False(t, gs.GameIsWon())
			return gs.History()
		}
	}
	t.Fatal("no drawn game found")
	return nil
}

func TestApplyDeclaresDrawWhenNextPlayerIsStuck(t *testing.T) {
	moves := findDrawnGame(t)

	gs := NewGameState()
	for _, m := range moves[:len(moves)-1] {
		require.NoError(t, gs.Apply(m))
	}
	require.Equal(t, Ongoing, gs.Outcome())
	require.NoError(t, gs.Apply(moves[len(moves)-1]))
	assert.Equal(t, Draw, gs.Outcome())
	assert.True(t, gs.IsGameOver())

	_, ok := gs.Outcome().Winner()
	assert.False(t, ok)

	require.NoError(t, gs.UndoMove())
	assert.Equal(t, Ongoing, gs.Outcome())
}
