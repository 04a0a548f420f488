package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// SoundPlayer 播放音效
// game.SoundBank 实现此接口
type SoundPlayer interface {
	Play(s game.Sound)
}

// HighScoreStore 最高分存储
// game.ScoreManager 实现此接口
type HighScoreStore interface {
	Submit(score, round int) (bool, error)
}

// RoundSystem 游戏规则：每帧统一处理一次事件队列
//
// 负责计分、生命、玩家重生、游戏结束和重新开始。
// 其他系统只产生事件，不直接修改分数和生命。
type RoundSystem struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	gs        *game.GameState
	events    *game.EventQueue
	input     InputReader
	sounds    SoundPlayer
	scores    HighScoreStore
	formation *FormationSystem
	mystery   *MysteryShipSystem
	playerID  ecs.EntityID

	respawn    components.TimerComponent
	respawning bool
}

// RoundSystemConfig RoundSystem 的依赖
type RoundSystemConfig struct {
	EntityManager *ecs.EntityManager
	Config        *config.GameConfig
	GameState     *game.GameState
	Events        *game.EventQueue
	Input         InputReader
	Sounds        SoundPlayer    // 可为 nil
	Scores        HighScoreStore // 可为 nil
	Formation     *FormationSystem
	MysteryShip   *MysteryShipSystem
	PlayerID      ecs.EntityID
}

// NewRoundSystem 创建规则系统
func NewRoundSystem(c RoundSystemConfig) *RoundSystem {
	return &RoundSystem{
		em:        c.EntityManager,
		cfg:       c.Config,
		gs:        c.GameState,
		events:    c.Events,
		input:     c.Input,
		sounds:    c.Sounds,
		scores:    c.Scores,
		formation: c.Formation,
		mystery:   c.MysteryShip,
		playerID:  c.PlayerID,
		respawn: components.TimerComponent{
			Name:       "player_respawn",
			TargetTime: c.Config.Game.RespawnDelay,
		},
	}
}

// Update 处理本帧事件，推进重生计时，游戏结束后等待重新开始
func (s *RoundSystem) Update(deltaTime float64) {
	for _, e := range s.events.Drain() {
		s.handle(e)
	}

	if s.respawning && s.respawn.Tick(deltaTime) {
		s.respawning = false
		s.respawnPlayer()
	}

	if s.gs.GameOver && s.input.Read().Start {
		s.NewGame()
	}
}

func (s *RoundSystem) handle(e game.Event) {
	switch e.Kind {
	case game.EventLaserFired:
		s.play(game.SoundLaser)

	case game.EventLaserDestroyed:
		if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID); ok {
			if player.Laser == components.EntityRef(e.Entity) {
				player.LaserActive = false
			}
		}

	case game.EventInvaderKilled:
		s.gs.AddScore(e.Score)
		s.play(game.SoundInvaderKilled)

	case game.EventMysteryShipKilled:
		s.gs.AddScore(e.Score)
		s.play(game.SoundInvaderKilled)

	case game.EventMysteryShipSpawned:
		s.play(game.SoundMysteryShip)

	case game.EventBunkerEroded:
		s.play(game.SoundSplat)

	case game.EventBunkerOverrun:
		log.Printf("[RoundSystem] Bunker %d overrun by invaders", e.Entity)

	case game.EventPlayerKilled:
		s.play(game.SoundPlayerKilled)
		if s.gs.LoseLife() {
			s.gameOver()
		} else {
			s.respawn.Reset()
			s.respawning = true
		}

	case game.EventInvadersLanded:
		s.gs.EndGame()
		s.gameOver()

	case game.EventFormationCleared:
		s.gs.Round++
		s.resetBunkers()
		log.Printf("[RoundSystem] Formation cleared, round %d", s.gs.Round)
	}
}

func (s *RoundSystem) play(sound game.Sound) {
	if s.sounds != nil {
		s.sounds.Play(sound)
	}
}

// gameOver 停止编队并保存最高分
func (s *RoundSystem) gameOver() {
	s.respawning = false
	s.formation.Halt()
	killPlayer(s.em, s.playerID)
	s.SaveHighScore()
}

// SaveHighScore 提交本局分数
func (s *RoundSystem) SaveHighScore() {
	if s.scores == nil {
		return
	}
	if _, err := s.scores.Submit(s.gs.Score, s.gs.Round); err != nil {
		log.Printf("[RoundSystem] Failed to save high score: %v", err)
	}
}

// NewGame 重置分数、生命、编队、飞船和全部掩体
func (s *RoundSystem) NewGame() {
	s.gs.NewGame()
	s.events.Clear()
	s.respawning = false

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em) {
		s.em.DestroyEntity(id)
	}
	s.resetBunkers()

	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID); ok {
		player.LaserActive = false
		player.Laser = 0
	}

	s.formation.Reset()
	s.mystery.Reset()
	s.respawnPlayer()
	log.Printf("[RoundSystem] New game started, lives=%d", s.gs.Lives)
}

// resetBunkers 每个新回合开始时恢复全部掩体并重新参与碰撞
func (s *RoundSystem) resetBunkers() {
	for _, id := range ecs.GetEntitiesWith1[*components.BunkerComponent](s.em) {
		b, _ := ecs.GetComponent[*components.BunkerComponent](s.em, id)
		b.Surface.Reset()
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			col.Disabled = false
		}
	}
}

// respawnPlayer 玩家回到出生点
func (s *RoundSystem) respawnPlayer() {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return
	}
	player.Alive = true
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID); ok {
		pos.X = player.SpawnX
		pos.Y = s.cfg.Player.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, s.playerID); ok {
		col.Disabled = false
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, s.playerID); ok {
		sprite.Hidden = false
	}
}
