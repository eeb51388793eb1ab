// File /ui/render.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"quantik_go/internal/game"
)

var (
	colBlackTokens = color.RGBA{15, 5, 5, 255}
	colWhiteTokens = color.RGBA{230, 240, 230, 255}
	colSelection   = color.RGBA{230, 240, 230, 255}
	colFields      = color.RGBA{60, 50, 55, 255}
	colText        = color.RGBA{0, 0, 0, 255}
	colBackground  = color.RGBA{30, 15, 35, 255}
	colStash       = color.RGBA{60, 30, 70, 255}
	colNotif       = color.RGBA{220, 110, 190, 255}
)

// 棋子尺寸（scale = 1 时）
const (
	circleRadius = 40
	squareLength = 60
	triangleHalf = 40
	triangleTall = 35
)

// whiteSubImage 是 DrawTriangles 的纯色源图
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// 先手执白
func playerColor(p game.Player) color.Color {
	if p == game.First {
		return colWhiteTokens
	}
	return colBlackTokens
}

// Draw 每帧渲染：背景、棋盘、棋子、库存、提示条
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	now := time.Now()
	screen.Fill(colBackground)

	for c := game.Cell(0); c < game.NumCells; c++ {
		r := fieldRect(c)
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, colFields, false)
		if pc, ok := gs.state.PieceAt(c); ok {
			cx, cy := r.center()
			drawToken(screen, pc.Shape, cx, cy, gs.tokenScale(c, now), playerColor(pc.Owner))
		}
	}

	if gs.stage == stagePlaying {
		gs.drawStash(screen)
	}
	gs.drawBanner(screen)
}

// drawStash 画人类手里剩下的棋子，选中的形状加框
func (gs *GameScreen) drawStash(dst *ebiten.Image) {
	clr := playerColor(gs.human)
	for s := game.Shape(0); s < game.NumShapes; s++ {
		for n := 0; n < 2; n++ {
			r := stashRect(stashSlot(s, n))
			vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, colStash, false)
			if gs.state.Supply(gs.human, s) > n {
				cx, cy := r.center()
				drawToken(dst, s, cx, cy, 0.55, clr)
			}
		}
	}
	if gs.selected >= 0 {
		r := stashRect(stashSlot(gs.selected, 0))
		vector.StrokeRect(dst, r.X, r.Y, r.W, r.H, 3, colSelection, false)
	}
}

func (gs *GameScreen) bannerText() string {
	if gs.stage == stageEntry {
		return "pick token color (white begins) ->"
	}
	if gs.state.IsGameOver() {
		w, ok := gs.state.Outcome().Winner()
		switch {
		case !ok:
			return "Draw! Pick color for new game"
		case w == gs.human:
			return "You Win! Pick color for new game"
		default:
			return "Computer Wins! Pick color for new game"
		}
	}
	if gs.message != "" {
		return gs.message
	}
	if gs.state.CurrentPlayer() != gs.human {
		return "computer's turn"
	}
	return "your turn (pick a token, then a field)"
}

func (gs *GameScreen) drawBanner(dst *ebiten.Image) {
	fillRect(dst, bannerRect, colNotif)
	gs.drawText(dst, gs.bannerText(), bannerRect)

	if gs.stage == stageEntry || gs.state.IsGameOver() {
		fillRect(dst, chooseBlackRect, colNotif)
		fillRect(dst, chooseWhiteRect, colNotif)
		gs.drawText(dst, "black", chooseBlackRect)
		gs.drawText(dst, "white", chooseWhiteRect)
	}
}

func fillRect(dst *ebiten.Image, r rect, clr color.Color) {
	vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, clr, false)
}

func (gs *GameScreen) drawText(dst *ebiten.Image, s string, r rect) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.X)+4, float64(r.Y)+6)
	op.ColorScale.ScaleWithColor(colText)
	text.Draw(dst, s, gs.face, op)
}

// drawToken 以 (cx, cy) 为中心画一个棋子
func drawToken(dst *ebiten.Image, s game.Shape, cx, cy, scale float32, clr color.Color) {
	switch s {
	case game.Circle:
		vector.DrawFilledCircle(dst, cx, cy, scale*circleRadius, clr, true)
	case game.Square:
		l := scale * squareLength
		vector.DrawFilledRect(dst, cx-l/2, cy-l/2, l, l, clr, true)
	case game.Triangle:
		var p vector.Path
		p.MoveTo(cx-scale*triangleHalf, cy+scale*triangleTall)
		p.LineTo(cx+scale*triangleHalf, cy+scale*triangleTall)
		p.LineTo(cx, cy-scale*triangleTall)
		p.Close()
		fillPath(dst, &p, clr)
	case game.HalfCircle:
		// 上半圆，圆心下移半个半径
		r := scale * circleRadius
		oy := cy + r/2
		var p vector.Path
		p.MoveTo(cx-r, oy)
		const segments = 24
		for i := 1; i <= segments; i++ {
			a := math.Pi + math.Pi*float64(i)/segments
			p.LineTo(cx+r*float32(math.Cos(a)), oy+r*float32(math.Sin(a)))
		}
		p.Close()
		fillPath(dst, &p, clr)
	}
}

// fillPath 用纯色填充闭合路径
func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
