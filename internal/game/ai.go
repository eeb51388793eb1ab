// game/ai.go
package game

import (
	"fmt"
	"math/rand"
)

// Method names an AI strategy.
type Method string

const (
	MethodRandom  Method = "random"
	MethodMinimax Method = "minimax"
)

// ParseMethod 把命令行/界面上的名字转成 Method
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodRandom, MethodMinimax:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown AI method %q (want %q or %q)", s, MethodRandom, MethodMinimax)
}

const (
	// searchDepth 是 α-β 的固定深度（从根着法之后算起）
	searchDepth = 5
	// openingMoves 之前的局面几乎等价，直接随机走
	openingMoves = 3

	winScore  = 1
	drawScore = 0
	lossScore = -1
)

// AI chooses moves for whoever is to move in the GameState it is handed.
// It owns its random source, so a fixed seed gives reproducible play.
type AI struct {
	rng   *rand.Rand
	nodes uint64
}

// NewAI returns an AI whose shuffles and random picks derive from seed.
func NewAI(seed int64) *AI {
	return &AI{rng: rand.New(rand.NewSource(seed))}
}

// Nodes 返回上一次搜索访问的节点数
func (ai *AI) Nodes() uint64 { return ai.nodes }

// MakeMove picks a move for the player to move with the given method and
// plays it. If that player has no legal move the game is declared a draw
// and ok is false.
func (ai *AI) MakeMove(gs *GameState, method Method) (Move, bool, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return Move{}, false, err
	}
	if gs.IsGameOver() {
		return Move{}, false, ErrGameDecided
	}
	if gs.DeclareDraw() {
		return Move{}, false, nil
	}

	var (
		m   Move
		err error
	)
	if method == MethodRandom {
		m, err = ai.RandomMove(gs)
	} else {
		m, err = ai.MinimaxMove(gs)
	}
	if err != nil {
		return Move{}, false, err
	}
	if err := gs.Apply(m); err != nil {
		return Move{}, false, fmt.Errorf("ai move %v: %w", m, err)
	}
	return m, true, nil
}

// checkSearchable 已分胜负或轮到的一方无子可下（和棋，只是还没记录）都不能再搜索
func checkSearchable(gs *GameState) error {
	if gs.IsGameOver() || !gs.hasLegalMove(gs.current) {
		return ErrGameDecided
	}
	return nil
}

// RandomMove samples uniformly from the legal moves without playing it.
func (ai *AI) RandomMove(gs *GameState) (Move, error) {
	if err := checkSearchable(gs); err != nil {
		return Move{}, err
	}
	ai.nodes = 0
	return ai.randomMove(gs), nil
}

func (ai *AI) randomMove(gs *GameState) Move {
	moves := gs.LegalMoves()
	return moves[ai.rng.Intn(len(moves))]
}

// candidates 生成、打乱并按签名去重
func (ai *AI) candidates(gs *GameState) []Move {
	moves := gs.LegalMoves()
	ai.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return ReduceMoves(gs, moves)
}

// MinimaxMove returns, without playing it, the best reduced candidate
// according to a depth limited alpha-beta search. The first few moves of a
// game are random.
func (ai *AI) MinimaxMove(gs *GameState) (Move, error) {
	if err := checkSearchable(gs); err != nil {
		return Move{}, err
	}
	ai.nodes = 0
	if gs.MoveCount() < openingMoves {
		return ai.randomMove(gs), nil
	}

	me := gs.current
	best := lossScore - 1
	var bestMove Move
	for _, m := range ai.candidates(gs) {
		score := gs.withMove(m, func() int {
			return ai.alphaBeta(gs, me, false, lossScore, winScore, 0)
		})
		if score >= winScore {
			return m, nil
		}
		// >= ：同分时取后来者
		if score >= best {
			best = score
			bestMove = m
		}
	}
	return bestMove, nil
}

// ------------------------------------------------------------
// α-β：只有 +1 / 0 / -1 三种值，深度截断视为和棋
// ------------------------------------------------------------
func (ai *AI) alphaBeta(gs *GameState, maxPlayer Player, maxTurn bool, alpha, beta, depth int) int {
	ai.nodes++

	// 先判胜负再判无子可下：赢棋同时让对手无子可下仍记 +1，而不是记和棋
	if w, ok := gs.outcome.Winner(); ok {
		if w == maxPlayer {
			return winScore
		}
		return lossScore
	}
	if !gs.hasLegalMove(gs.current) {
		return drawScore
	}
	if depth >= searchDepth {
		return drawScore
	}

	if maxTurn {
		// === MAX 节点 ===
		value := lossScore
		for _, m := range ai.candidates(gs) {
			score := gs.withMove(m, func() int {
				return ai.alphaBeta(gs, maxPlayer, false, alpha, beta, depth+1)
			})
			value = max(value, score)
			if value >= beta {
				break
			}
			alpha = max(alpha, value)
		}
		return value
	}

	// === MIN 节点 ===
	value := winScore
	for _, m := range ai.candidates(gs) {
		score := gs.withMove(m, func() int {
			return ai.alphaBeta(gs, maxPlayer, true, alpha, beta, depth+1)
		})
		value = min(value, score)
		if value <= alpha {
			break
		}
		beta = min(beta, value)
	}
	return value
}
