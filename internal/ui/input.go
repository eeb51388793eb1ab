// File ui/input.go
package ui

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quantik_go/internal/game"
)

type rect struct {
	X, Y, W, H float32
}

func (r rect) contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= r.X && fx <= r.X+r.W && fy >= r.Y && fy <= r.Y+r.H
}

func (r rect) center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

var (
	bannerRect      = rect{100, 10, 350, 25}
	chooseBlackRect = rect{500, 10, 100, 30}
	chooseWhiteRect = rect{620, 10, 100, 30}
)

// fieldRect 返回棋盘格 c 在窗口里的位置
func fieldRect(c game.Cell) rect {
	return rect{X: float32(50 + c.Col()*100), Y: float32(50 + c.Row()*100), W: 95, H: 95}
}

// stashRect 返回库存第 slot 个位置：两列，每列从上到下 C S T H
func stashRect(slot int) rect {
	return rect{X: float32(600 + (slot/4)*60), Y: float32(100 + (slot%4)*60), W: 55, H: 55}
}

// stashSlot 是第 n 份 s 在库存里的位置
func stashSlot(s game.Shape, n int) int {
	return n*int(game.NumShapes) + int(s)
}

// cellAt 把点击坐标映射到棋盘格
func cellAt(x, y int) (game.Cell, bool) {
	for c := game.Cell(0); c < game.NumCells; c++ {
		if fieldRect(c).contains(x, y) {
			return c, true
		}
	}
	return 0, false
}

// shapeAt 把点击坐标映射到库存里的形状
func shapeAt(x, y int) (game.Shape, bool) {
	for slot := 0; slot < 2*int(game.NumShapes); slot++ {
		if stashRect(slot).contains(x, y) {
			return game.Shape(slot % int(game.NumShapes)), true
		}
	}
	return 0, false
}

// handleColorChoice 开局或终局时点颜色按钮开新局
func (gs *GameScreen) handleColorChoice() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	switch {
	case chooseWhiteRect.contains(mx, my):
		gs.newGame(game.First)
	case chooseBlackRect.contains(mx, my):
		gs.newGame(game.Second)
	}
}

// handleInput 先点库存里的形状，再点棋盘格子。非法操作只提示，不改棋局。
func (gs *GameScreen) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()

	if s, ok := shapeAt(mx, my); ok {
		if gs.state.Supply(gs.human, s) == 0 {
			gs.message = "no " + s.String() + " left"
			return
		}
		gs.selected = s
		gs.message = ""
		return
	}

	c, ok := cellAt(mx, my)
	if !ok {
		return
	}
	if gs.selected < 0 {
		gs.message = "pick a token first"
		return
	}
	move := game.Move{Cell: c, Shape: gs.selected}
	if err := gs.state.Apply(move); err != nil {
		if errors.Is(err, game.ErrIllegalMove) {
			gs.message = "can't place " + gs.selected.String() + " there"
		} else {
			gs.message = err.Error()
		}
		return
	}
	gs.addPlaceAnim(c)
	gs.selected = -1
	gs.message = ""
	gs.aiDelayUntil = time.Now().Add(aiDelay)
}
