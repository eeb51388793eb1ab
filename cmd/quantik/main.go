package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"quantik_go/internal/game"
	"quantik_go/internal/ui"
)

func main() {
	method := flag.String("ai", string(game.MethodMinimax), "电脑策略：random 或 minimax")
	seed := flag.Int64("seed", time.Now().UnixNano(), "AI 随机种子")
	flag.Parse()

	m, err := game.ParseMethod(*method)
	if err != nil {
		log.Fatal(err)
	}

	screen := ui.NewGameScreen(m, *seed)
	ebiten.SetTPS(30) // 每秒逻辑更新次数限制为30
	ebiten.SetWindowSize(ui.WindowWidth, ui.WindowHeight)
	ebiten.SetWindowTitle("Quantik")

	if err := ebiten.RunGame(screen); err != nil {
		log.Fatal(err)
	}
}

// go build -ldflags="-s -w" -o quantik ./cmd/quantik
