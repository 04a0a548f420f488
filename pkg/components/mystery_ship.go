package components

// MysteryShipComponent 神秘飞船
// 周期性地从屏幕一侧飞到另一侧，每次出现方向交替
type MysteryShipComponent struct {
	Direction float64 // +1 向右，-1 向左
	Spawned   bool
	Score     int
	LeftX     float64 // 左侧隐藏点
	RightX    float64 // 右侧隐藏点
}
