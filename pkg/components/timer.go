package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如导弹齐射间隔、神秘飞船出现周期）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "missile_attack"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	Repeat      bool    // 完成后是否自动重新计时
}

// Tick 推进计时器，返回本次是否触发
//
// Repeat 为 true 时保留超出部分重新计时；否则停留在完成状态直到 Reset。
func (t *TimerComponent) Tick(deltaTime float64) bool {
	if t.IsReady && !t.Repeat {
		return false
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime < t.TargetTime {
		return false
	}
	if t.Repeat {
		t.CurrentTime -= t.TargetTime
	} else {
		t.IsReady = true
	}
	return true
}

// Reset 重新开始计时
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}
