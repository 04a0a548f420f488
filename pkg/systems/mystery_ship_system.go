package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// MysteryShipSystem 神秘飞船的出现、飞行和消失
//
// 飞船隐藏 cycleTime 秒后从上次终点的另一侧出现，横穿屏幕；
// 飞过对侧或被击中后再次隐藏并重新计时。
type MysteryShipSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	events *game.EventQueue
	shipID ecs.EntityID
}

// NewMysteryShipSystem 创建神秘飞船系统
func NewMysteryShipSystem(em *ecs.EntityManager, cfg *config.GameConfig, events *game.EventQueue, shipID ecs.EntityID) *MysteryShipSystem {
	return &MysteryShipSystem{em: em, cfg: cfg, events: events, shipID: shipID}
}

// Update 推进出现计时或移动飞船
func (s *MysteryShipSystem) Update(deltaTime float64) {
	ship, ok := ecs.GetComponent[*components.MysteryShipComponent](s.em, s.shipID)
	if !ok {
		return
	}

	if !ship.Spawned {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.shipID)
		if ok && timer.Tick(deltaTime) {
			s.spawn(ship)
		}
		return
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, s.shipID)
	pos.X += ship.Direction * s.cfg.MysteryShip.Speed * deltaTime
	if (ship.Direction > 0 && pos.X >= ship.RightX) || (ship.Direction < 0 && pos.X <= ship.LeftX) {
		despawnMysteryShip(s.em, s.shipID)
	}
}

func (s *MysteryShipSystem) spawn(ship *components.MysteryShipComponent) {
	ship.Direction = -ship.Direction
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, s.shipID)
	if ship.Direction > 0 {
		pos.X = ship.LeftX
	} else {
		pos.X = ship.RightX
	}
	ship.Spawned = true
	setShipVisible(s.em, s.shipID, true)
	s.events.Push(game.Event{Kind: game.EventMysteryShipSpawned, Entity: s.shipID})
}

// Reset 新游戏：飞船隐藏在左侧并重新计时，下一次向右出现
func (s *MysteryShipSystem) Reset() {
	ship, ok := ecs.GetComponent[*components.MysteryShipComponent](s.em, s.shipID)
	if !ok {
		return
	}
	ship.Direction = -1
	despawnMysteryShip(s.em, s.shipID)
}

// despawnMysteryShip 隐藏到飞行方向的终点并重新开始计时
func despawnMysteryShip(em *ecs.EntityManager, id ecs.EntityID) {
	ship, ok := ecs.GetComponent[*components.MysteryShipComponent](em, id)
	if !ok {
		return
	}
	ship.Spawned = false
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		if ship.Direction > 0 {
			pos.X = ship.RightX
		} else {
			pos.X = ship.LeftX
		}
	}
	setShipVisible(em, id, false)
	if timer, ok := ecs.GetComponent[*components.TimerComponent](em, id); ok {
		timer.Reset()
	}
}

func setShipVisible(em *ecs.EntityManager, id ecs.EntityID, visible bool) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Hidden = !visible
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Disabled = !visible
	}
}
