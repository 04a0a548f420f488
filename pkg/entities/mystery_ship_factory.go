package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// MysteryTimerName 神秘飞船出现周期计时器
const MysteryTimerName = "mystery_cycle"

// NewMysteryShip 创建神秘飞船
//
// 飞船初始隐藏在屏幕左侧外，cycleTime 秒后第一次出现。
// 隐藏点位于屏幕边缘外一个单位。
func NewMysteryShip(em *ecs.EntityManager, rm ResourceLoader, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rm == nil {
		return 0, fmt.Errorf("resource loader cannot be nil")
	}

	ms := cfg.MysteryShip
	img, err := rm.LoadImage(ms.Sprite)
	if err != nil {
		return 0, fmt.Errorf("failed to load mystery ship image: %w", err)
	}

	leftX := -cfg.World.HalfWidth - 1
	rightX := cfg.World.HalfWidth + 1

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: leftX, Y: ms.Y})
	ecs.AddComponent(em, id, &components.MysteryShipComponent{
		Direction: -1, // 第一次出现时翻转为向右
		Score:     ms.Score,
		LeftX:     leftX,
		RightX:    rightX,
	})
	ecs.AddComponent(em, id, &components.TimerComponent{
		Name:       MysteryTimerName,
		TargetTime: ms.CycleTime,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frames: []*ebiten.Image{img},
		Width:  ms.HalfWidth * 2,
		Height: ms.HalfHeight * 2,
		Hidden: true,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		HalfWidth:  ms.HalfWidth,
		HalfHeight: ms.HalfHeight,
		Layer:      components.LayerMysteryShip,
		Mask:       components.LayerLaser,
		Disabled:   true,
	})
	return id, nil
}
