package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
)

// MissileSystem 入侵者导弹齐射
//
// 每隔 missileSpawnRate 秒按成员顺序遍历存活入侵者，每个以 1/存活数 的
// 概率发射，第一个成功的发射后本轮结束。存活越多，单个入侵者越难开火。
type MissileSystem struct {
	em          *ecs.EntityManager
	rm          entities.ResourceLoader
	cfg         *config.GameConfig
	formationID ecs.EntityID
	random      func() float64
}

// NewMissileSystem 创建导弹系统
func NewMissileSystem(em *ecs.EntityManager, rm entities.ResourceLoader, cfg *config.GameConfig, formationID ecs.EntityID) *MissileSystem {
	return &MissileSystem{
		em:          em,
		rm:          rm,
		cfg:         cfg,
		formationID: formationID,
		random:      rand.Float64,
	}
}

// Update 推进齐射计时器
func (s *MissileSystem) Update(deltaTime float64) {
	f, ok := ecs.GetComponent[*components.FormationComponent](s.em, s.formationID)
	if !ok || f.Halted {
		return
	}
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, s.formationID)
	if !ok || !timer.Tick(deltaTime) {
		return
	}
	s.attack(f)
}

// attack 一轮齐射，返回发射导弹的入侵者
func (s *MissileSystem) attack(f *components.FormationComponent) (ecs.EntityID, bool) {
	alive := f.Alive()
	if alive <= 0 {
		return 0, false
	}
	chance := 1.0 / float64(alive)

	for _, ref := range f.Members {
		id := ecs.EntityID(ref)
		inv, _ := ecs.GetComponent[*components.InvaderComponent](s.em, id)
		if inv == nil || !inv.Alive {
			continue
		}
		if s.random() >= chance {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if _, err := entities.NewMissile(s.em, s.rm, s.cfg, pos.X, pos.Y); err != nil {
			log.Printf("[MissileSystem] Failed to create missile: %v", err)
			return 0, false
		}
		return id, true
	}
	return 0, false
}
