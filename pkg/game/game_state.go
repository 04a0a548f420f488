package game

import "log"

// GameState 一局游戏的全局数值状态
//
// 不是单例：由场景创建并显式传给需要它的系统。
type GameState struct {
	Score     int
	HighScore int
	Lives     int
	Round     int  // 已清空的编队数
	GameOver  bool
	NewRecord bool // 本局是否刷新过最高分

	startLives int
}

// NewGameState 创建新一局的状态
//
// 参数:
//   - lives: 初始生命数
//   - highScore: 已保存的最高分
func NewGameState(lives, highScore int) *GameState {
	gs := &GameState{HighScore: highScore, startLives: lives}
	gs.NewGame()
	return gs
}

// NewGame 重置分数、生命和回合，保留最高分
func (gs *GameState) NewGame() {
	gs.Score = 0
	gs.Lives = gs.startLives
	gs.Round = 0
	gs.GameOver = false
	gs.NewRecord = false
}

// AddScore 加分并同步最高分
// 返回本次加分是否刷新了最高分
func (gs *GameState) AddScore(points int) bool {
	if gs.GameOver || points <= 0 {
		return false
	}
	gs.Score += points
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		gs.NewRecord = true
		return true
	}
	return false
}

// LoseLife 扣除一条生命
// 返回是否因此结束游戏
func (gs *GameState) LoseLife() bool {
	if gs.GameOver {
		return true
	}
	gs.Lives--
	if gs.Lives <= 0 {
		gs.Lives = 0
		gs.EndGame()
	}
	return gs.GameOver
}

// EndGame 立即结束本局（生命耗尽或入侵者抵达底线）
func (gs *GameState) EndGame() {
	if gs.GameOver {
		return
	}
	gs.GameOver = true
	log.Printf("[GameState] Game over, score=%d high=%d", gs.Score, gs.HighScore)
}
