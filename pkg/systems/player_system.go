package systems

import (
	"log"
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// PlayerSystem 处理炮台移动和射击
// 同一时间只允许一发激光存在，激光消失后（EventLaserDestroyed）才能再次射击
type PlayerSystem struct {
	em       *ecs.EntityManager
	rm       entities.ResourceLoader
	cfg      *config.GameConfig
	events   *game.EventQueue
	input    InputReader
	playerID ecs.EntityID
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, rm entities.ResourceLoader, cfg *config.GameConfig,
	events *game.EventQueue, input InputReader, playerID ecs.EntityID) *PlayerSystem {
	return &PlayerSystem{
		em:       em,
		rm:       rm,
		cfg:      cfg,
		events:   events,
		input:    input,
		playerID: playerID,
	}
}

// Update 根据输入移动炮台并发射激光
func (s *PlayerSystem) Update(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok || !player.Alive {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}

	in := s.input.Read()
	if in.Left {
		pos.X -= s.cfg.Player.Speed * deltaTime
	} else if in.Right {
		pos.X += s.cfg.Player.Speed * deltaTime
	}
	limit := s.cfg.World.HalfWidth - s.cfg.Player.HalfWidth
	pos.X = math.Max(-limit, math.Min(limit, pos.X))

	if in.Fire {
		s.shoot(player, pos)
	}
}

func (s *PlayerSystem) shoot(player *components.PlayerComponent, pos *components.PositionComponent) {
	if player.LaserActive {
		return
	}
	id, err := entities.NewLaser(s.em, s.rm, s.cfg, pos.X, pos.Y)
	if err != nil {
		log.Printf("[PlayerSystem] Failed to create laser: %v", err)
		return
	}
	player.LaserActive = true
	player.Laser = components.EntityRef(id)
	s.events.Push(game.Event{Kind: game.EventLaserFired, Entity: id})
}
