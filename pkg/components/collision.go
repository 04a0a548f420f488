package components

import "github.com/decker502/invaders/pkg/terrain"

// CollisionLayer 碰撞分类位
// 每个实体属于一个分类（Layer），并通过 Mask 声明会与哪些分类发生碰撞
type CollisionLayer uint32

const (
	LayerPlayer CollisionLayer = 1 << iota
	LayerLaser
	LayerMissile
	LayerInvader
	LayerBunker
	LayerMysteryShip
)

func (l CollisionLayer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerLaser:
		return "laser"
	case LayerMissile:
		return "missile"
	case LayerInvader:
		return "invader"
	case LayerBunker:
		return "bunker"
	case LayerMysteryShip:
		return "mystery"
	}
	return "mixed"
}

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心
type CollisionComponent struct {
	HalfWidth  float64        // 碰撞盒半宽（世界单位）
	HalfHeight float64        // 碰撞盒半高（世界单位）
	Layer      CollisionLayer // 自身分类
	Mask       CollisionLayer // 会与之碰撞的分类
	Disabled   bool           // 暂时退出碰撞（如玩家阵亡、掩体停用）
}

// HalfExtents 以向量形式返回半尺寸
func (c *CollisionComponent) HalfExtents() terrain.Vec2 {
	return terrain.Vec2{X: c.HalfWidth, Y: c.HalfHeight}
}

// Accepts 两个碰撞盒的分类/掩码是否允许碰撞（任意一方接受即可）
func (c *CollisionComponent) Accepts(other *CollisionComponent) bool {
	if c.Disabled || other.Disabled {
		return false
	}
	return c.Mask&other.Layer != 0 || other.Mask&c.Layer != 0
}
