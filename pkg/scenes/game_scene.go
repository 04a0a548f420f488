package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// backgroundColor 屏幕底色
var backgroundColor = color.RGBA{R: 8, G: 8, B: 16, A: 255}

// GameSceneConfig GameScene 的依赖
type GameSceneConfig struct {
	ResourceManager *game.ResourceManager
	Config          *config.GameConfig
	Sounds          systems.SoundPlayer // 可为 nil（静音）
	Scores          *game.ScoreManager  // 可为 nil（不保存最高分）
	Input           systems.InputReader // 为 nil 时使用键盘
}

// GameScene represents the main gameplay screen.
// It owns the entity manager, the event queue and every gameplay system,
// and runs them in a fixed order once per tick.
type GameScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.GameConfig
	scores          *game.ScoreManager

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	events        *game.EventQueue

	playerSystem      *systems.PlayerSystem
	formationSystem   *systems.FormationSystem
	missileSystem     *systems.MissileSystem
	mysteryShipSystem *systems.MysteryShipSystem
	projectileSystem  *systems.ProjectileSystem
	physicsSystem     *systems.PhysicsSystem
	roundSystem       *systems.RoundSystem
	renderSystem      *systems.RenderSystem

	bunkers   []ecs.EntityID
	showDebug bool
}

// NewGameScene creates the gameplay scene and all of its entities.
//
// Returns an error if any sprite, the bunker template or the splat stencil
// cannot be loaded; a partially built world is never returned.
func NewGameScene(c GameSceneConfig) (*GameScene, error) {
	if c.ResourceManager == nil {
		return nil, fmt.Errorf("resource manager cannot be nil")
	}
	if c.Config == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	cfg := c.Config
	input := c.Input
	if input == nil {
		width, _ := cfg.World.ScreenSize()
		input = systems.KeyboardInput{ScreenWidth: width}
	}

	highScore := 0
	if c.Scores != nil {
		highScore = c.Scores.HighScore()
	}

	s := &GameScene{
		resourceManager: c.ResourceManager,
		cfg:             cfg,
		scores:          c.Scores,
		entityManager:   ecs.NewEntityManager(),
		gameState:       game.NewGameState(cfg.Game.Lives, highScore),
		events:          game.NewEventQueue(),
	}
	em := s.entityManager
	rm := s.resourceManager

	stencil, err := rm.LoadStencil(cfg.Splat.Stencil)
	if err != nil {
		return nil, fmt.Errorf("failed to load splat stencil: %w", err)
	}
	eroder, err := terrain.NewEroder(stencil)
	if err != nil {
		return nil, err
	}

	playerID, err := entities.NewPlayer(em, rm, cfg)
	if err != nil {
		return nil, err
	}
	formationID, err := entities.NewInvaderFormation(em, rm, cfg)
	if err != nil {
		return nil, err
	}
	shipID, err := entities.NewMysteryShip(em, rm, cfg)
	if err != nil {
		return nil, err
	}
	if s.bunkers, err = entities.NewBunkers(em, rm, cfg); err != nil {
		return nil, err
	}

	s.playerSystem = systems.NewPlayerSystem(em, rm, cfg, s.events, input, playerID)
	s.formationSystem = systems.NewFormationSystem(em, cfg, s.events, formationID)
	s.missileSystem = systems.NewMissileSystem(em, rm, cfg, formationID)
	s.mysteryShipSystem = systems.NewMysteryShipSystem(em, cfg, s.events, shipID)
	s.projectileSystem = systems.NewProjectileSystem(em, cfg, s.events)
	s.physicsSystem = systems.NewPhysicsSystem(em, eroder, s.events)

	var scores systems.HighScoreStore
	if c.Scores != nil {
		scores = c.Scores
	}
	s.roundSystem = systems.NewRoundSystem(systems.RoundSystemConfig{
		EntityManager: em,
		Config:        cfg,
		GameState:     s.gameState,
		Events:        s.events,
		Input:         input,
		Sounds:        c.Sounds,
		Scores:        scores,
		Formation:     s.formationSystem,
		MysteryShip:   s.mysteryShipSystem,
		PlayerID:      playerID,
	})
	s.renderSystem = systems.NewRenderSystem(em, cfg)

	log.Printf("[GameScene] Created %d entities (%d bunkers, stencil %dx%d)",
		em.Count(), len(s.bunkers), stencil.Width(), stencil.Height())
	return s, nil
}

// Update 按固定顺序推进所有系统
//
// 输入 → 编队 → 导弹 → 神秘飞船 → 投射物移动 → 碰撞 → 规则，最后统一删除实体。
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}

	s.playerSystem.Update(deltaTime)
	s.formationSystem.Update(deltaTime)
	s.missileSystem.Update(deltaTime)
	s.mysteryShipSystem.Update(deltaTime)
	s.projectileSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.roundSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制世界、HUD 和调试信息
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.renderSystem.DrawHUD(screen, s.gameState)
	s.drawDebug(screen)
}

// Close 退出前保存最高分
func (s *GameScene) Close() error {
	if s.scores == nil {
		return nil
	}
	if _, err := s.scores.Submit(s.gameState.Score, s.gameState.Round); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// GameState 返回本局状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}
