package terrain

import "testing"

// newFilledBuffer 创建所有纹素 alpha 相同的缓冲（RGB 为白色）
func newFilledBuffer(w, h int, alpha float32) *PixelBuffer {
	buf := NewPixelBuffer(w, h)
	for i := range buf.Pix {
		buf.Pix[i] = Texel{R: 1, G: 1, B: 1, A: alpha}
	}
	return buf
}

// newTestSurface 创建以原点为中心、每个纹素 1 个世界单位的已激活表面
func newTestSurface(t *testing.T, template *PixelBuffer) *Surface {
	t.Helper()
	s, err := NewSurface(template, Bounds{
		HalfExtents: Vec2{X: float64(template.Width) / 2, Y: float64(template.Height) / 2},
	}, Transform{})
	if err != nil {
		t.Fatalf("NewSurface() error: %v", err)
	}
	s.Activate()
	return s
}

// texelCenter 返回 newTestSurface 表面上纹素 (x,y) 中心的世界坐标
func texelCenter(s *Surface, x, y int) Vec2 {
	w, h := s.Dimensions()
	return Vec2{X: float64(x) - float64(w)/2 + 0.5, Y: float64(y) - float64(h)/2 + 0.5}
}

func newTestStencil(t *testing.T, buf *PixelBuffer) *Stencil {
	t.Helper()
	st, err := NewStencil(buf)
	if err != nil {
		t.Fatalf("NewStencil() error: %v", err)
	}
	return st
}

func newTestEroder(t *testing.T, buf *PixelBuffer) *Eroder {
	t.Helper()
	e, err := NewEroder(newTestStencil(t, buf))
	if err != nil {
		t.Fatalf("NewEroder() error: %v", err)
	}
	return e
}
