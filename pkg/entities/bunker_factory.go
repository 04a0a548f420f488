package entities

import (
	"fmt"
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/terrain"
)

// NewBunkers 创建一排可破坏掩体
//
// 所有掩体共享同一个只读模板缓冲，各自的 Surface 在激活时深拷贝，
// 互不影响。掩体沿 X 轴均匀分布。
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - cfg: 游戏配置
//
// 返回:
//   - []ecs.EntityID: 按从左到右顺序的掩体实体
//   - error: 模板缺失或为空时返回错误（此时不会创建任何实体）
func NewBunkers(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return nil, fmt.Errorf("resource loader cannot be nil")
	}

	bc := cfg.Bunkers
	if bc.Count == 0 {
		return nil, nil
	}

	template, err := rm.LoadPixelBuffer(bc.Template, bc.TextureWidth, bc.TextureHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to load bunker template: %w", err)
	}

	bounds := terrain.Bounds{HalfExtents: terrain.Vec2{X: bc.HalfWidth, Y: bc.HalfHeight}}
	slot := 2 * cfg.World.HalfWidth / float64(bc.Count)

	surfaces := make([]*terrain.Surface, bc.Count)
	for i := range surfaces {
		x := -cfg.World.HalfWidth + slot*(float64(i)+0.5)
		s, err := terrain.NewSurface(template, bounds, terrain.Transform{Position: terrain.Vec2{X: x, Y: bc.Y}})
		if err != nil {
			return nil, fmt.Errorf("bunker %d: %w", i, err)
		}
		s.Activate()
		surfaces[i] = s
	}

	ids := make([]ecs.EntityID, bc.Count)
	for i, s := range surfaces {
		pos := s.Transform().Position
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
		ecs.AddComponent(em, id, &components.BunkerComponent{Index: i, Surface: s})
		ecs.AddComponent(em, id, &components.CollisionComponent{
			HalfWidth:  bc.HalfWidth,
			HalfHeight: bc.HalfHeight,
			Layer:      components.LayerBunker,
			Mask:       components.LayerLaser | components.LayerMissile | components.LayerInvader,
		})
		ids[i] = id
	}

	log.Printf("[BunkerFactory] Created %d bunkers, texture %dx%d", bc.Count, template.Width, template.Height)
	return ids, nil
}
