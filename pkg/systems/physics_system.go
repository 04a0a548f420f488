package systems

import (
	"log"
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/terrain"
)

// ContactKind 碰撞对的类型
// 由双方的碰撞分类直接决定，处理时不再查询对方挂了哪些组件
type ContactKind int

const (
	// ContactProjectileBunker 激光或导弹进入掩体边界，需要逐像素判定
	ContactProjectileBunker ContactKind = iota
	// ContactLaserInvader 激光击中入侵者
	ContactLaserInvader
	// ContactLaserMysteryShip 激光击中神秘飞船
	ContactLaserMysteryShip
	// ContactLaserMissile 激光与导弹相撞，双双销毁
	ContactLaserMissile
	// ContactPlayerHit 导弹或入侵者击中玩家
	ContactPlayerHit
	// ContactInvaderBunker 入侵者压到掩体
	ContactInvaderBunker
)

var contactKindNames = [...]string{
	"ProjectileBunker",
	"LaserInvader",
	"LaserMysteryShip",
	"LaserMissile",
	"PlayerHit",
	"InvaderBunker",
}

func (k ContactKind) String() string {
	if int(k) >= 0 && int(k) < len(contactKindNames) {
		return contactKindNames[k]
	}
	return "Unknown"
}

// Contact 一帧内检测到的一对重叠实体
//
// Source 是主动方（投射物或入侵者），Target 是被碰撞的一方。
type Contact struct {
	Kind   ContactKind
	Source ecs.EntityID
	Target ecs.EntityID
}

type layerPair struct{ src, dst components.CollisionLayer }

// contactRules 主动方分类 + 被碰撞方分类 → 碰撞类型
var contactRules = map[layerPair]ContactKind{
	{components.LayerLaser, components.LayerBunker}:      ContactProjectileBunker,
	{components.LayerMissile, components.LayerBunker}:    ContactProjectileBunker,
	{components.LayerLaser, components.LayerInvader}:     ContactLaserInvader,
	{components.LayerLaser, components.LayerMysteryShip}: ContactLaserMysteryShip,
	{components.LayerLaser, components.LayerMissile}:     ContactLaserMissile,
	{components.LayerMissile, components.LayerPlayer}:    ContactPlayerHit,
	{components.LayerInvader, components.LayerPlayer}:    ContactPlayerHit,
	{components.LayerInvader, components.LayerBunker}:    ContactInvaderBunker,
}

// classifyContact 根据双方分类得到碰撞类型，并把主动方放在 Source
// 返回 false 表示这对分类之间没有游戏规则（例如两个入侵者）
func classifyContact(a, b ecs.EntityID, la, lb components.CollisionLayer) (Contact, bool) {
	if kind, ok := contactRules[layerPair{la, lb}]; ok {
		return Contact{Kind: kind, Source: a, Target: b}, true
	}
	if kind, ok := contactRules[layerPair{lb, la}]; ok {
		return Contact{Kind: kind, Source: b, Target: a}, true
	}
	return Contact{}, false
}

// PhysicsSystem 碰撞检测与结算
//
// 先用 AABB 找出所有重叠对并转换为 Contact，再按实体 ID 顺序逐个结算。
// 投射物与掩体重叠时交给 Eroder 做逐像素判定：只有真正命中掩体的
// 不透明部分才会侵蚀掩体并销毁投射物，否则投射物继续穿过空洞。
type PhysicsSystem struct {
	em       *ecs.EntityManager
	eroder   *terrain.Eroder
	events   *game.EventQueue
	contacts []Contact
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - eroder: 共享的侵蚀器（持有溅射模板）
//   - events: 结算结果写入的事件队列
func NewPhysicsSystem(em *ecs.EntityManager, eroder *terrain.Eroder, events *game.EventQueue) *PhysicsSystem {
	return &PhysicsSystem{
		em:     em,
		eroder: eroder,
		events: events,
	}
}

// checkAABBCollision 检查两个以实体位置为中心的碰撞盒是否重叠
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {
	return math.Abs(pos1.X-pos2.X) <= col1.HalfWidth+col2.HalfWidth &&
		math.Abs(pos1.Y-pos2.Y) <= col1.HalfHeight+col2.HalfHeight
}

// Update 检测并结算本帧所有碰撞
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ps.contacts = ps.DetectContacts(ps.contacts[:0])
	for _, c := range ps.contacts {
		ps.resolve(c)
	}
}

// DetectContacts 找出所有重叠且分类允许碰撞的实体对，追加到 dst
func (ps *PhysicsSystem) DetectContacts(dst []Contact) []Contact {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](ps.em)
	for i := 0; i < len(ids); i++ {
		a := ids[i]
		if ps.em.IsMarkedForDestroy(a) {
			continue
		}
		posA, _ := ecs.GetComponent[*components.PositionComponent](ps.em, a)
		colA, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, a)
		for j := i + 1; j < len(ids); j++ {
			b := ids[j]
			if ps.em.IsMarkedForDestroy(b) {
				continue
			}
			colB, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, b)
			if !colA.Accepts(colB) {
				continue
			}
			posB, _ := ecs.GetComponent[*components.PositionComponent](ps.em, b)
			if !checkAABBCollision(posA, colA, posB, colB) {
				continue
			}
			if c, ok := classifyContact(a, b, colA.Layer, colB.Layer); ok {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// resolve 结算单个碰撞
// 同一帧内已被销毁或已死亡的实体不会再次参与结算
func (ps *PhysicsSystem) resolve(c Contact) {
	if ps.em.IsMarkedForDestroy(c.Source) || ps.em.IsMarkedForDestroy(c.Target) {
		return
	}

	switch c.Kind {
	case ContactProjectileBunker:
		ps.resolveProjectileBunker(c.Source, c.Target)

	case ContactLaserInvader:
		score, ok := killInvader(ps.em, c.Target)
		if !ok {
			return
		}
		destroyProjectile(ps.em, ps.events, c.Source)
		ps.events.Push(game.Event{Kind: game.EventInvaderKilled, Entity: c.Target, Score: score, Position: ps.position(c.Target)})

	case ContactLaserMysteryShip:
		ship, ok := ecs.GetComponent[*components.MysteryShipComponent](ps.em, c.Target)
		if !ok || !ship.Spawned {
			return
		}
		at := ps.position(c.Target)
		despawnMysteryShip(ps.em, c.Target)
		destroyProjectile(ps.em, ps.events, c.Source)
		ps.events.Push(game.Event{Kind: game.EventMysteryShipKilled, Entity: c.Target, Score: ship.Score, Position: at})

	case ContactLaserMissile:
		destroyProjectile(ps.em, ps.events, c.Source)
		destroyProjectile(ps.em, ps.events, c.Target)

	case ContactPlayerHit:
		if !killPlayer(ps.em, c.Target) {
			return
		}
		// 入侵者撞到玩家后保留，导弹则销毁
		destroyProjectile(ps.em, ps.events, c.Source)
		ps.events.Push(game.Event{Kind: game.EventPlayerKilled, Entity: c.Target, Position: ps.position(c.Target)})

	case ContactInvaderBunker:
		bunker, ok := ecs.GetComponent[*components.BunkerComponent](ps.em, c.Target)
		if !ok || !bunker.Surface.IsActive() {
			return
		}
		bunker.Surface.Deactivate()
		if col, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, c.Target); ok {
			col.Disabled = true
		}
		ps.events.Push(game.Event{Kind: game.EventBunkerOverrun, Entity: c.Target, Position: ps.position(c.Target)})
	}
}

// resolveProjectileBunker 投射物进入掩体边界
// 侵蚀成功才销毁投射物；落在已被打空的区域时投射物继续飞行
func (ps *PhysicsSystem) resolveProjectileBunker(projectile, bunkerID ecs.EntityID) {
	bunker, ok := ecs.GetComponent[*components.BunkerComponent](ps.em, bunkerID)
	if !ok {
		return
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, projectile)
	at := ps.position(projectile)

	if !ps.eroder.CheckCollision(bunker.Surface, col.HalfExtents(), at) {
		return
	}
	destroyProjectile(ps.em, ps.events, projectile)
	ps.events.Push(game.Event{Kind: game.EventBunkerEroded, Entity: bunkerID, Position: at})
	log.Printf("[PhysicsSystem] Bunker %d eroded at (%.2f, %.2f), revision %d",
		bunker.Index, at.X, at.Y, bunker.Surface.Revision())
}

func (ps *PhysicsSystem) position(id ecs.EntityID) terrain.Vec2 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, id)
	if !ok {
		return terrain.Vec2{}
	}
	return terrain.Vec2{X: pos.X, Y: pos.Y}
}

// killPlayer 玩家阵亡：隐藏并退出碰撞，等待 RoundSystem 重生
// 返回 false 表示玩家已经阵亡
func killPlayer(em *ecs.EntityManager, id ecs.EntityID) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok || !player.Alive {
		return false
	}
	player.Alive = false
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Disabled = true
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Hidden = true
	}
	return true
}
