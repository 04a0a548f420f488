package entities

import (
	"fmt"
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// MissileTimerName 编队导弹齐射计时器
const MissileTimerName = "missile_attack"

// NewInvaderFormation 创建入侵者编队
//
// 编队实体持有 FormationComponent 和导弹计时器；rows x columns 个入侵者
// 以编队原点为中心排成网格，第 0 行在最下方，每行使用各自的动画帧和得分。
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源加载器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 编队实体ID
//   - error: 资源加载失败时返回错误（此时不会创建任何实体）
func NewInvaderFormation(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource loader cannot be nil")
	}

	inv := cfg.Invaders
	rowFrames := make([][]*ebiten.Image, inv.Rows)
	for row := 0; row < inv.Rows; row++ {
		frames, err := loadFrames(rm, inv.RowSprites[row])
		if err != nil {
			return 0, fmt.Errorf("failed to load invader row %d frames: %w", row, err)
		}
		rowFrames[row] = frames
	}

	formation := &components.FormationComponent{
		OriginX:   0,
		OriginY:   inv.OriginY,
		InitialX:  0,
		InitialY:  inv.OriginY,
		Direction: 1,
		Total:     inv.Rows * inv.Columns,
		Members:   make([]components.EntityRef, 0, inv.Rows*inv.Columns),
	}

	// 网格以原点为中心
	width := inv.Spacing * float64(inv.Columns-1)
	height := inv.Spacing * float64(inv.Rows-1)
	offsetX, offsetY := -width/2, -height/2

	for row := 0; row < inv.Rows; row++ {
		for col := 0; col < inv.Columns; col++ {
			localX := offsetX + inv.Spacing*float64(col)
			localY := offsetY + inv.Spacing*float64(row)

			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.PositionComponent{
				X: formation.OriginX + localX,
				Y: formation.OriginY + localY,
			})
			ecs.AddComponent(em, id, &components.InvaderComponent{
				Row:    row,
				Column: col,
				LocalX: localX,
				LocalY: localY,
				Score:  inv.RowScores[row],
				Alive:  true,
			})
			ecs.AddComponent(em, id, &components.SpriteComponent{
				Frames:    rowFrames[row],
				FrameTime: inv.AnimationTime,
				Width:     inv.HalfWidth * 2,
				Height:    inv.HalfHeight * 2,
			})
			ecs.AddComponent(em, id, &components.CollisionComponent{
				HalfWidth:  inv.HalfWidth,
				HalfHeight: inv.HalfHeight,
				Layer:      components.LayerInvader,
				Mask:       components.LayerLaser | components.LayerPlayer | components.LayerBunker,
			})
			formation.Members = append(formation.Members, components.EntityRef(id))
		}
	}

	formationID := em.CreateEntity()
	ecs.AddComponent(em, formationID, formation)
	ecs.AddComponent(em, formationID, &components.TimerComponent{
		Name:       MissileTimerName,
		TargetTime: inv.MissileSpawnRate,
		Repeat:     true,
	})

	log.Printf("[InvaderFactory] Created formation %d with %dx%d invaders", formationID, inv.Rows, inv.Columns)
	return formationID, nil
}
