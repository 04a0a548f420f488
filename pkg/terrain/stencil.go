package terrain

import "fmt"

// Stencil 溅射模板（splat）
//
// 只读的 alpha 模板，在加载时构建一次，之后可被任意数量的调用方共享，
// 包括多个 goroutine 并发读取，无需加锁。
type Stencil struct {
	buf *PixelBuffer
}

// NewStencil 从像素缓冲构建溅射模板
//
// 传入的缓冲会被深拷贝，调用方之后对其的修改不影响模板。
//
// 返回:
//   - *Stencil: 模板实例
//   - error: 缓冲为空时返回 ErrEmptyStencil
func NewStencil(buf *PixelBuffer) (*Stencil, error) {
	if buf.Empty() {
		return nil, fmt.Errorf("new stencil: %w", ErrEmptyStencil)
	}
	return &Stencil{buf: buf.Clone()}, nil
}

// Width 模板宽度（纹素）
func (s *Stencil) Width() int { return s.buf.Width }

// Height 模板高度（纹素）
func (s *Stencil) Height() int { return s.buf.Height }

// AlphaAt 读取模板纹素的 alpha；越界返回 0
func (s *Stencil) AlphaAt(x, y int) float32 {
	return s.buf.AlphaAt(x, y)
}
