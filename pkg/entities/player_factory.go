package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewPlayer 创建玩家炮台实体
// 炮台位于屏幕底部中央，只能左右移动
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 资源加载失败时返回错误
func NewPlayer(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource loader cannot be nil")
	}

	img, err := rm.LoadImage(cfg.Player.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load player image: %w", err)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 0, Y: cfg.Player.Y})
	ecs.AddComponent(em, id, &components.PlayerComponent{Alive: true, SpawnX: 0})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frames: []*ebiten.Image{img},
		Width:  cfg.Player.HalfWidth * 2,
		Height: cfg.Player.HalfHeight * 2,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		HalfWidth:  cfg.Player.HalfWidth,
		HalfHeight: cfg.Player.HalfHeight,
		Layer:      components.LayerPlayer,
		Mask:       components.LayerMissile | components.LayerInvader,
	})
	return id, nil
}
