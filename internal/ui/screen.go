// File /ui/screen.go
package ui

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"quantik_go/internal/game"
)

const (
	// 窗口尺寸
	WindowWidth  = 800
	WindowHeight = 500

	// AI 落子前的停顿，让人看清上一步
	aiDelay = 400 * time.Millisecond
)

type stage int

const (
	stageEntry stage = iota // 选颜色
	stagePlaying
)

// GameScreen 实现 ebiten.Game 接口：人类对电脑。
// 界面只通过 GameState / AI 的公开接口读写棋局。
type GameScreen struct {
	state  *game.GameState
	ai     *game.AI
	method game.Method
	human  game.Player
	stage  stage

	selected     game.Shape // 从库存里选中的形状，-1 为未选
	message      string     // 非法操作的提示，下一次有效操作时清掉
	aiDelayUntil time.Time
	anims        []*PlaceAnim

	face *text.GoXFace
}

// NewGameScreen 构造界面；method 是电脑使用的策略
func NewGameScreen(method game.Method, seed int64) *GameScreen {
	return &GameScreen{
		state:    game.NewGameState(),
		ai:       game.NewAI(seed),
		method:   method,
		selected: -1,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// newGame 开新局，human 是人类执的一方（先手 = 白）
func (gs *GameScreen) newGame(human game.Player) {
	gs.state = game.NewGameState()
	gs.human = human
	gs.stage = stagePlaying
	gs.selected = -1
	gs.message = ""
	gs.anims = nil
	gs.aiDelayUntil = time.Now().Add(aiDelay)
}

// Update 每帧更新：处理用户输入和 AI
func (gs *GameScreen) Update() error {
	if gs.stage == stageEntry || gs.state.IsGameOver() {
		gs.handleColorChoice()
		return nil
	}

	// AI 回合
	if gs.state.CurrentPlayer() != gs.human {
		if time.Now().Before(gs.aiDelayUntil) {
			return nil
		}
		move, ok, err := gs.ai.MakeMove(gs.state, gs.method)
		if err != nil {
			log.Printf("ai move: %v", err)
			return nil
		}
		if ok {
			gs.addPlaceAnim(move.Cell)
		}
		return nil
	}

	// 人类回合
	gs.handleInput()
	return nil
}

// Layout 定义窗口尺寸
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

var _ ebiten.Game = (*GameScreen)(nil)
