package components

// PositionComponent 实体中心的世界坐标（Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（世界单位/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
