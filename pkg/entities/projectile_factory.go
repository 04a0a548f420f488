package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewLaser 创建玩家激光
// 激光从炮台位置发射，以恒定速度向上飞行
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - cfg: 游戏配置
//   - x, y: 发射点世界坐标
//
// 返回:
//   - ecs.EntityID: 激光实体ID
//   - error: 如果创建失败返回错误信息
func NewLaser(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	return newProjectile(em, rm, cfg.Laser, components.ProjectileLaser, x, y, 1,
		components.LayerLaser,
		components.LayerInvader|components.LayerMysteryShip|components.LayerBunker|components.LayerMissile)
}

// NewMissile 创建入侵者导弹，向下飞行
func NewMissile(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	return newProjectile(em, rm, cfg.Missile, components.ProjectileMissile, x, y, -1,
		components.LayerMissile,
		components.LayerPlayer|components.LayerBunker|components.LayerLaser)
}

func newProjectile(em *ecs.EntityManager, rm ResourceLoader, pc config.ProjectileConfig, kind components.ProjectileKind,
	x, y, dirY float64, layer, mask components.CollisionLayer) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource loader cannot be nil")
	}

	img, err := rm.LoadImage(pc.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s image: %w", kind, err)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: dirY * pc.Speed})
	ecs.AddComponent(em, id, &components.ProjectileComponent{Kind: kind})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frames: []*ebiten.Image{img},
		Width:  pc.HalfWidth * 2,
		Height: pc.HalfHeight * 2,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		HalfWidth:  pc.HalfWidth,
		HalfHeight: pc.HalfHeight,
		Layer:      layer,
		Mask:       mask,
	})
	return id, nil
}
