package game

import (
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/terrain"
)

// EventKind 游戏事件类型
type EventKind int

const (
	// EventInvaderKilled 激光击中入侵者
	EventInvaderKilled EventKind = iota
	// EventMysteryShipKilled 激光击中神秘飞船
	EventMysteryShipKilled
	// EventPlayerKilled 玩家被导弹或入侵者击中
	EventPlayerKilled
	// EventLaserDestroyed 激光消失（命中或飞出屏幕），玩家可以再次射击
	EventLaserDestroyed
	// EventLaserFired 玩家射出激光
	EventLaserFired
	// EventBunkerEroded 抛射物侵蚀了掩体
	EventBunkerEroded
	// EventBunkerOverrun 入侵者压到掩体，掩体整体停用
	EventBunkerOverrun
	// EventInvadersLanded 入侵者抵达玩家所在行
	EventInvadersLanded
	// EventFormationCleared 编队全部被消灭
	EventFormationCleared
	// EventMysteryShipSpawned 神秘飞船出现
	EventMysteryShipSpawned
)

var eventKindNames = [...]string{
	"InvaderKilled",
	"MysteryShipKilled",
	"PlayerKilled",
	"LaserDestroyed",
	"LaserFired",
	"BunkerEroded",
	"BunkerOverrun",
	"InvadersLanded",
	"FormationCleared",
	"MysteryShipSpawned",
}

func (k EventKind) String() string {
	if int(k) >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Event 一次游戏事件
//
// Entity 是事件主体（被击毁的入侵者、被侵蚀的掩体等）；
// Score 只在击杀事件中有意义。
type Event struct {
	Kind     EventKind
	Entity   ecs.EntityID
	Score    int
	Position terrain.Vec2
}

// EventQueue 单帧事件队列
//
// 系统在 Update 中 Push，RoundSystem 每帧调用一次 Drain 统一处理，
// 处理顺序与发生顺序一致。
type EventQueue struct {
	events []Event
}

// NewEventQueue 创建空队列
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len 待处理事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain 取出全部事件并清空队列
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = make([]Event, 0, cap(out))
	if len(out) == 0 {
		return nil
	}
	return out
}

// Clear 丢弃全部事件（开始新局时使用）
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
