package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// ProjectileSystem 移动激光和导弹，飞出屏幕后销毁
type ProjectileSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	events *game.EventQueue
}

// NewProjectileSystem 创建投射物系统
func NewProjectileSystem(em *ecs.EntityManager, cfg *config.GameConfig, events *game.EventQueue) *ProjectileSystem {
	return &ProjectileSystem{em: em, cfg: cfg, events: events}
}

// Update 按速度移动投射物
func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		if s.em.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if s.outOfWorld(pos) {
			destroyProjectile(s.em, s.events, id)
		}
	}
}

// outOfWorld 投射物完全离开可见区域
func (s *ProjectileSystem) outOfWorld(pos *components.PositionComponent) bool {
	const margin = 1.0
	return math.Abs(pos.Y) > s.cfg.World.HalfHeight+margin || math.Abs(pos.X) > s.cfg.World.HalfWidth+margin
}

// destroyProjectile 销毁投射物；激光消失时通知玩家可以再次射击
func destroyProjectile(em *ecs.EntityManager, events *game.EventQueue, id ecs.EntityID) {
	if em.IsMarkedForDestroy(id) {
		return
	}
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if !ok {
		return
	}
	em.DestroyEntity(id)
	if proj.Kind == components.ProjectileLaser {
		events.Push(game.Event{Kind: game.EventLaserDestroyed, Entity: id})
	}
}
