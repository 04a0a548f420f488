package components

// PlayerComponent 玩家炮台
type PlayerComponent struct {
	Alive       bool
	LaserActive bool      // 同一时间只允许一发激光
	Laser       EntityRef // 当前激光实体
	SpawnX      float64   // 重生时的 X 坐标
}
