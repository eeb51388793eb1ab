// internal/ui/animation.go
package ui

import (
	"time"

	"quantik_go/internal/game"
)

// placeDuration 是新落子“弹出”动画的时长
const placeDuration = 250 * time.Millisecond

// PlaceAnim 让刚落下的棋子从小放大到正常尺寸
type PlaceAnim struct {
	Coord game.Cell
	Start time.Time
}

// Scale 返回当前缩放比例，动画结束后为 1
func (a *PlaceAnim) Scale(now time.Time) float32 {
	t := float32(now.Sub(a.Start)) / float32(placeDuration)
	if t >= 1 {
		return 1
	}
	if t < 0 {
		t = 0
	}
	return 0.3 + 0.7*t
}

// Done 动画是否已播完
func (a *PlaceAnim) Done(now time.Time) bool {
	return now.Sub(a.Start) >= placeDuration
}

func (gs *GameScreen) addPlaceAnim(c game.Cell) {
	now := time.Now()
	alive := gs.anims[:0]
	for _, a := range gs.anims {
		if !a.Done(now) {
			alive = append(alive, a)
		}
	}
	gs.anims = append(alive, &PlaceAnim{Coord: c, Start: now})
}

// tokenScale 返回格子 c 上棋子的绘制比例
func (gs *GameScreen) tokenScale(c game.Cell, now time.Time) float32 {
	for _, a := range gs.anims {
		if a.Coord == c {
			return a.Scale(now)
		}
	}
	return 1
}
