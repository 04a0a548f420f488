package components

// ProjectileKind 投射物种类
type ProjectileKind int

const (
	// ProjectileLaser 玩家激光，向上飞行
	ProjectileLaser ProjectileKind = iota
	// ProjectileMissile 入侵者导弹，向下飞行
	ProjectileMissile
)

func (k ProjectileKind) String() string {
	if k == ProjectileLaser {
		return "laser"
	}
	return "missile"
}

// ProjectileComponent 投射物
type ProjectileComponent struct {
	Kind ProjectileKind
}
