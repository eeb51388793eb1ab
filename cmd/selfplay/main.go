package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"quantik_go/internal/game"
)

// result 是一局的统计
type result struct {
	outcome game.Outcome
	moves   int
	nodes   float64 // 先后手 minimax 访问的节点总数
	hash    uint64  // 终局局面
}

func main() {
	// ───── 参数 ─────
	numGames := flag.Int("n", 100, "对局数")
	firstMethod := flag.String("first", string(game.MethodMinimax), "先手策略：random 或 minimax")
	secondMethod := flag.String("second", string(game.MethodRandom), "后手策略：random 或 minimax")
	seed := flag.Int64("seed", time.Now().UnixNano(), "随机种子，第 i 局用 seed+i")
	opening := flag.String("opening", "", "固定开局，例如 Ca1,Sd4")
	workers := flag.Int("workers", runtime.NumCPU(), "并行对局数")
	flag.Parse()

	var methods [2]game.Method
	for i, s := range []string{*firstMethod, *secondMethod} {
		m, err := game.ParseMethod(s)
		if err != nil {
			log.Fatal(err)
		}
		methods[i] = m
	}
	openingMoves, err := game.ParseMoves(*opening)
	if err != nil {
		log.Fatalf("opening: %v", err)
	}
	// 先在空盘上验一遍开局，免得每个 worker 各报一次错
	if _, err := newGame(openingMoves); err != nil {
		log.Fatalf("opening: %v", err)
	}

	log.Printf("CPU=%d，启动 %d 个 worker，%s vs %s，共 %d 局",
		runtime.NumCPU(), *workers, methods[0], methods[1], *numGames)

	results := make([]result, *numGames)
	var done int
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	start := time.Now()
	for i := 0; i < *numGames; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			r, err := playOneGame(openingMoves, methods, *seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = r

			mu.Lock()
			done++
			if done%10 == 0 {
				log.Printf("进度 %d/%d", done, *numGames)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	report(results, methods, time.Since(start))
}

func newGame(opening []game.Move) (*game.GameState, error) {
	gs := game.NewGameState()
	for _, m := range opening {
		if err := gs.Apply(m); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

// playOneGame 下完一整局
func playOneGame(opening []game.Move, methods [2]game.Method, seed int64) (result, error) {
	gs, err := newGame(opening)
	if err != nil {
		return result{}, err
	}
	ai := game.NewAI(seed)

	var nodes uint64
	for !gs.IsGameOver() {
		_, ok, err := ai.MakeMove(gs, methods[gs.CurrentPlayer()])
		if err != nil {
			return result{}, err
		}
		if !ok {
			break
		}
		nodes += ai.Nodes()
	}
	return result{
		outcome: gs.Outcome(),
		moves:   gs.MoveCount(),
		nodes:   float64(nodes),
		hash:    gs.Hash(),
	}, nil
}

func report(results []result, methods [2]game.Method, elapsed time.Duration) {
	counts := map[game.Outcome]int{}
	lengths := make([]float64, len(results))
	nodes := make([]float64, len(results))
	finals := make(map[uint64]struct{}, len(results))
	for i, r := range results {
		counts[r.outcome]++
		lengths[i] = float64(r.moves)
		nodes[i] = r.nodes
		finals[r.hash] = struct{}{}
	}
	meanLen, stdLen := stat.MeanStdDev(lengths, nil)
	meanNodes, stdNodes := stat.MeanStdDev(nodes, nil)

	log.Printf("%d 局，用时 %v", len(results), elapsed.Round(time.Millisecond))
	log.Printf("先手(%s) 胜 %d，后手(%s) 胜 %d，和 %d",
		methods[0], counts[game.FirstWon], methods[1], counts[game.SecondWon], counts[game.Draw])
	log.Printf("步数 %.2f ± %.2f，每局搜索节点 %.0f ± %.0f，不同终局 %d",
		meanLen, stdLen, meanNodes, stdNodes, len(finals))
}
