package terrain

import "fmt"

// Eroder 侵蚀器
//
// 持有共享的只读溅射模板，负责把世界坐标的撞击点转换为表面上的侵蚀。
// 侵蚀器本身无状态，可被所有掩体共用。
type Eroder struct {
	stencil *Stencil
}

// NewEroder 创建侵蚀器
//
// 返回:
//   - error: 模板为 nil 时返回 ErrEmptyStencil（启动期致命错误）
func NewEroder(stencil *Stencil) (*Eroder, error) {
	if stencil == nil {
		return nil, fmt.Errorf("new eroder: %w", ErrEmptyStencil)
	}
	return &Eroder{stencil: stencil}, nil
}

// Stencil 返回侵蚀器使用的溅射模板
func (e *Eroder) Stencil() *Stencil {
	return e.stencil
}

// Splat 在撞击点处侵蚀表面
//
// 撞击点未命中实心纹素时直接返回 false，不修改缓冲。
// 否则把模板中心对齐到撞击纹素，将模板 alpha 乘入表面 alpha，返回 true。
func (e *Eroder) Splat(s *Surface, p Vec2) bool {
	px, py, ok := s.CheckPoint(p)
	if !ok {
		return false
	}

	startX := px - e.stencil.Width()/2
	startY := py - e.stencil.Height()/2
	s.Composite(e.stencil, startX, startY)
	return true
}

// SamplePoints 多点采样位置，按判定顺序排列：中心、下、上、左、右
//
// 角点不采样。
func (e *Eroder) SamplePoints(halfExtents, p Vec2) [5]Vec2 {
	return [5]Vec2{
		p,
		p.Add(Down.Scale(halfExtents.Y)),
		p.Add(Up.Scale(halfExtents.Y)),
		p.Add(Left.Scale(halfExtents.X)),
		p.Add(Right.Scale(halfExtents.X)),
	}
}

// CheckCollision 用投射物碰撞盒的五个采样点检测并侵蚀
//
// 第一个成功侵蚀的采样点即短路返回 true（逻辑或，从左到右求值）。
// 返回 true 表示投射物应被销毁。
//
// 参数:
//   - s: 被撞击的表面
//   - halfExtents: 投射物碰撞盒半尺寸
//   - p: 撞击点（世界坐标）
func (e *Eroder) CheckCollision(s *Surface, halfExtents, p Vec2) bool {
	if s == nil || !s.IsActive() {
		return false
	}
	for _, sample := range e.SamplePoints(halfExtents, p) {
		if e.Splat(s, sample) {
			return true
		}
	}
	return false
}
