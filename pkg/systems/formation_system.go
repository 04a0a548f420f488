package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// FormationSystem 驱动入侵者编队
//
// 编队整体水平移动，速度由速度曲线按击毁比例计算；任一存活入侵者
// 接近屏幕边缘时反向并下移一行（最多 advances 次）。全部被消灭后
// 编队回到初始位置重新开始。
type FormationSystem struct {
	em          *ecs.EntityManager
	cfg         *config.GameConfig
	events      *game.EventQueue
	formationID ecs.EntityID
}

// NewFormationSystem 创建编队系统
func NewFormationSystem(em *ecs.EntityManager, cfg *config.GameConfig, events *game.EventQueue, formationID ecs.EntityID) *FormationSystem {
	return &FormationSystem{
		em:          em,
		cfg:         cfg,
		events:      events,
		formationID: formationID,
	}
}

// Formation 返回编队组件
func (s *FormationSystem) Formation() *components.FormationComponent {
	f, _ := ecs.GetComponent[*components.FormationComponent](s.em, s.formationID)
	return f
}

// Update 移动编队并播放入侵者动画
func (s *FormationSystem) Update(deltaTime float64) {
	f := s.Formation()
	if f == nil || f.Halted {
		return
	}

	if f.Killed >= f.Total {
		s.Reset()
		s.events.Push(game.Event{Kind: game.EventFormationCleared, Entity: s.formationID})
		return
	}

	speed := s.cfg.Invaders.SpeedCurve.Evaluate(f.KilledFraction())
	f.OriginX += f.Direction * speed * deltaTime
	s.layout(f)

	if s.reachedEdge(f) {
		s.advanceRow(f)
		s.layout(f)
	}

	for _, ref := range f.Members {
		inv, _ := ecs.GetComponent[*components.InvaderComponent](s.em, ecs.EntityID(ref))
		if inv == nil || !inv.Alive {
			continue
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, ecs.EntityID(ref)); ok {
			sprite.Advance(deltaTime)
		}
	}

	s.checkLanded(f)
}

// layout 按编队原点更新所有成员的世界坐标
func (s *FormationSystem) layout(f *components.FormationComponent) {
	for _, ref := range f.Members {
		id := ecs.EntityID(ref)
		inv, _ := ecs.GetComponent[*components.InvaderComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if inv == nil || pos == nil {
			continue
		}
		pos.X = f.OriginX + inv.LocalX
		pos.Y = f.OriginY + inv.LocalY
	}
}

// reachedEdge 沿当前方向最靠前的存活入侵者是否进入边缘区域
func (s *FormationSystem) reachedEdge(f *components.FormationComponent) bool {
	right := s.cfg.World.HalfWidth - s.cfg.Invaders.EdgeMargin
	left := -right
	for _, ref := range f.Members {
		id := ecs.EntityID(ref)
		inv, _ := ecs.GetComponent[*components.InvaderComponent](s.em, id)
		if inv == nil || !inv.Alive {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if f.Direction > 0 && pos.X >= right {
			return true
		}
		if f.Direction < 0 && pos.X <= left {
			return true
		}
	}
	return false
}

// advanceRow 反向，并在未达到上限时整体下移一行
func (s *FormationSystem) advanceRow(f *components.FormationComponent) {
	f.Direction = -f.Direction
	if f.RowsAdvanced < s.cfg.Invaders.Advances {
		f.RowsAdvanced++
		f.OriginY -= s.cfg.Invaders.RowStep
	}
}

// checkLanded 最低的存活入侵者抵达玩家所在行时发出一次事件
func (s *FormationSystem) checkLanded(f *components.FormationComponent) {
	if f.Landed {
		return
	}
	floor := s.cfg.Player.Y + s.cfg.Player.HalfHeight
	for _, ref := range f.Members {
		id := ecs.EntityID(ref)
		inv, _ := ecs.GetComponent[*components.InvaderComponent](s.em, id)
		if inv == nil || !inv.Alive {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.Y-s.cfg.Invaders.HalfHeight <= floor {
			f.Landed = true
			s.events.Push(game.Event{Kind: game.EventInvadersLanded, Entity: id})
			return
		}
	}
}

// Reset 所有入侵者复活，编队回到初始位置
func (s *FormationSystem) Reset() {
	f := s.Formation()
	if f == nil {
		return
	}
	f.Killed = 0
	f.Direction = 1
	f.RowsAdvanced = 0
	f.OriginX, f.OriginY = f.InitialX, f.InitialY
	f.Landed = false
	f.Halted = false

	for _, ref := range f.Members {
		id := ecs.EntityID(ref)
		if inv, ok := ecs.GetComponent[*components.InvaderComponent](s.em, id); ok {
			inv.Alive = true
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			col.Disabled = false
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			sprite.Hidden = false
			sprite.Frame = 0
			sprite.Elapsed = 0
		}
	}
	if timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.formationID); ok {
		timer.Reset()
	}
	s.layout(f)
	log.Printf("[FormationSystem] Formation reset")
}

// Halt 游戏结束：编队停止并隐藏
func (s *FormationSystem) Halt() {
	f := s.Formation()
	if f == nil {
		return
	}
	f.Halted = true
	for _, ref := range f.Members {
		id := ecs.EntityID(ref)
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			sprite.Hidden = true
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			col.Disabled = true
		}
	}
}

// killInvader 标记入侵者死亡并计入编队击毁数
// 返回入侵者得分；已经死亡时返回 false
func killInvader(em *ecs.EntityManager, id ecs.EntityID) (int, bool) {
	inv, ok := ecs.GetComponent[*components.InvaderComponent](em, id)
	if !ok || !inv.Alive {
		return 0, false
	}
	inv.Alive = false
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Disabled = true
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Hidden = true
	}
	for _, fid := range ecs.GetEntitiesWith1[*components.FormationComponent](em) {
		f, _ := ecs.GetComponent[*components.FormationComponent](em, fid)
		f.Killed++
	}
	return inv.Score, true
}
