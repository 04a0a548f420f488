package terrain

import (
	"fmt"
	"log"
)

// State 表面生命周期状态
type State int

const (
	// StateUninitialized 已构建但尚未激活（没有自己的缓冲）
	StateUninitialized State = iota
	// StateActive 参与碰撞，可被侵蚀
	StateActive
	// StateInactive 被入侵者碰到后整体停用，直到下一次 Reset
	StateInactive
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Surface 可破坏表面（一个掩体实例）
//
// 每个表面独占一份从共享模板深拷贝得到的像素缓冲；
// 几何参数（Transform、Bounds）和缓冲尺寸在创建后固定，只有 alpha 会变化。
type Surface struct {
	template  *PixelBuffer // 共享只读模板，不会被修改
	buffer    *PixelBuffer // 本实例独占的缓冲
	bounds    Bounds
	transform Transform
	state     State

	// revision 每次提交（侵蚀或重置）后递增一次，渲染层据此判断是否需要重新上传纹理
	revision uint64
}

// NewSurface 创建未激活的可破坏表面
//
// 参数:
//   - template: 共享模板缓冲（只读，不会被修改）
//   - bounds: 局部坐标系下的碰撞矩形
//   - transform: 世界变换
//
// 返回:
//   - *Surface: 处于 StateUninitialized 的表面，需调用 Activate
//   - error: 模板为空或边界尺寸非正时返回错误
func NewSurface(template *PixelBuffer, bounds Bounds, transform Transform) (*Surface, error) {
	if template.Empty() {
		return nil, fmt.Errorf("new surface: %w", ErrEmptyTemplate)
	}
	if !(bounds.HalfExtents.X > 0 && bounds.HalfExtents.Y > 0) {
		return nil, fmt.Errorf("new surface: %w (half extents %.3f x %.3f)",
			ErrInvalidBounds, bounds.HalfExtents.X, bounds.HalfExtents.Y)
	}
	return &Surface{
		template:  template,
		bounds:    bounds,
		transform: transform,
		state:     StateUninitialized,
	}, nil
}

// Activate 首次激活：从模板深拷贝缓冲并进入 StateActive
// 已激活过的表面再次调用等价于 Reset
func (s *Surface) Activate() {
	s.Reset()
}

// Reset 恢复为模板的全新拷贝并重新参与碰撞
//
// 结果与首次激活逐位一致；总是成功。
func (s *Surface) Reset() {
	s.buffer = s.template.Clone()
	s.state = StateActive
	s.revision++
}

// Deactivate 整体停用（入侵者压到掩体所在行），直到下一次 Reset
func (s *Surface) Deactivate() {
	if s.state != StateActive {
		return
	}
	s.state = StateInactive
	log.Printf("[Surface] Deactivated at (%.2f, %.2f)", s.transform.Position.X, s.transform.Position.Y)
}

// IsActive 是否参与碰撞
func (s *Surface) IsActive() bool {
	return s.state == StateActive
}

// State 当前生命周期状态
func (s *Surface) State() State {
	return s.state
}

// Revision 提交计数，每次侵蚀或重置后递增
func (s *Surface) Revision() uint64 {
	return s.revision
}

// Buffer 当前缓冲（只读视图，调用方不得修改）；未激活时为 nil
func (s *Surface) Buffer() *PixelBuffer {
	return s.buffer
}

// Dimensions 缓冲的像素尺寸
func (s *Surface) Dimensions() (int, int) {
	return s.template.Width, s.template.Height
}

// Bounds 局部碰撞矩形
func (s *Surface) Bounds() Bounds {
	return s.bounds
}

// Transform 世界变换
func (s *Surface) Transform() Transform {
	return s.transform
}

// WorldToTexel 世界坐标 → 纹素坐标
//
// 结果可能落在缓冲之外，表示该点不在表面上；调用方在索引前必须做边界检查。
func (s *Surface) WorldToTexel(p Vec2) (int, int) {
	local := s.transform.InverseTransformPoint(p)
	w, h := s.Dimensions()
	return localToTexel(local, s.bounds, w, h)
}

// CheckPoint 变换并检测占用
//
// 返回:
//   - px, py: 纹素坐标（可能越界）
//   - ok: 纹素在缓冲内且 alpha > 0 时为 true
func (s *Surface) CheckPoint(p Vec2) (px, py int, ok bool) {
	px, py = s.WorldToTexel(p)
	if s.state != StateActive {
		return px, py, false
	}
	if !s.buffer.InBounds(px, py) {
		return px, py, false
	}
	return px, py, s.buffer.AlphaAt(px, py) > 0
}

// IsOccupied 世界坐标点是否落在仍然"实心"的纹素上
func (s *Surface) IsOccupied(p Vec2) bool {
	_, _, ok := s.CheckPoint(p)
	return ok
}

// Composite 以 (startX, startY) 为左下角，把模板 alpha 乘到表面 alpha 上
//
// 迭代范围预先裁剪到表面矩形内，越界部分直接跳过（边缘的局部溅射）。
// RGB 不变。修改完成后统一提交一次（revision 递增）。
//
// 返回:
//   - int: 实际写入的纹素数量
func (s *Surface) Composite(st *Stencil, startX, startY int) int {
	if s.state != StateActive || st == nil {
		return 0
	}
	buf := s.buffer

	// 裁剪模板坐标范围 [x0,x1)×[y0,y1)，使 startX+x、startY+y 落在缓冲内
	x0, x1 := clipRange(startX, st.Width(), buf.Width)
	y0, y1 := clipRange(startY, st.Height(), buf.Height)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	written := 0
	for y := y0; y < y1; y++ {
		row := (startY + y) * buf.Width
		for x := x0; x < x1; x++ {
			i := row + startX + x
			buf.Pix[i].A *= st.AlphaAt(x, y)
			written++
		}
	}

	s.revision++
	return written
}

// clipRange 计算模板在单轴上可写入的区间 [lo,hi)
// start: 模板起点在表面中的坐标; n: 模板长度; limit: 表面长度
func clipRange(start, n, limit int) (int, int) {
	lo, hi := 0, n
	if start < 0 {
		lo = -start
	}
	if start+n > limit {
		hi = limit - start
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
