package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/terrain"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

// setupTestAssets 注册测试用的资源文件系统
//
// template.png 为 4x2：上行全不透明，下行左半透明右半不透明。
func setupTestAssets(t *testing.T) {
	t.Helper()

	tpl := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		tpl.SetNRGBA(x, 0, color.NRGBA{R: 255, A: 255})
		a := uint8(0)
		if x >= 2 {
			a = 255
		}
		tpl.SetNRGBA(x, 1, color.NRGBA{G: 255, A: a})
	}

	splat := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	splat.SetNRGBA(0, 0, color.NRGBA{A: 255})

	assets := fstest.MapFS{
		"assets/images/template.png": {Data: encodePNG(t, tpl)},
		"assets/images/splat.png":    {Data: encodePNG(t, splat)},
		"assets/images/broken.png":   {Data: []byte("not a png")},
	}
	embedded.Init(assets, fstest.MapFS{})
}

func TestLoadPixelBufferNative(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	buf, err := rm.LoadPixelBuffer("assets/images/template.png", 0, 0)
	if err != nil {
		t.Fatalf("LoadPixelBuffer() error: %v", err)
	}
	if buf.Width != 4 || buf.Height != 2 {
		t.Fatalf("size = %dx%d, want 4x2", buf.Width, buf.Height)
	}
	if buf.Filter != terrain.FilterNearest || buf.Wrap != terrain.WrapClamp {
		t.Errorf("sampling = %v/%v, want nearest/clamp", buf.Filter, buf.Wrap)
	}

	// 图像最后一行是纹素第 0 行（左下角原点）
	tests := []struct {
		name  string
		x, y  int
		alpha float32
	}{
		{"左下透明", 0, 0, 0},
		{"右下不透明", 3, 0, 1},
		{"左上不透明", 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buf.AlphaAt(tt.x, tt.y); got != tt.alpha {
				t.Errorf("AlphaAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.alpha)
			}
		})
	}

	again, err := rm.LoadPixelBuffer("assets/images/template.png", 0, 0)
	if err != nil {
		t.Fatalf("second LoadPixelBuffer() error: %v", err)
	}
	if again != buf {
		t.Error("second load should return the cached buffer")
	}
}

func TestLoadPixelBufferResampled(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	buf, err := rm.LoadPixelBuffer("assets/images/template.png", 8, 4)
	if err != nil {
		t.Fatalf("LoadPixelBuffer() error: %v", err)
	}
	if buf.Width != 8 || buf.Height != 4 {
		t.Fatalf("size = %dx%d, want 8x4", buf.Width, buf.Height)
	}
	// 最近邻放大两倍后边缘保持锐利
	if a := buf.AlphaAt(3, 0); a != 0 {
		t.Errorf("AlphaAt(3,0) = %v, want 0", a)
	}
	if a := buf.AlphaAt(4, 0); a != 1 {
		t.Errorf("AlphaAt(4,0) = %v, want 1", a)
	}
	if a := buf.AlphaAt(0, 3); a != 1 {
		t.Errorf("AlphaAt(0,3) = %v, want 1", a)
	}
}

func TestLoadPixelBufferErrors(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	tests := []struct {
		name string
		path string
	}{
		{"文件不存在", "assets/images/missing.png"},
		{"无法解码", "assets/images/broken.png"},
		{"未知前缀", "images/template.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rm.LoadPixelBuffer(tt.path, 0, 0); err == nil {
				t.Errorf("LoadPixelBuffer(%q) should fail", tt.path)
			}
		})
	}
}

func TestLoadStencil(t *testing.T) {
	setupTestAssets(t)
	rm := NewResourceManager()

	st, err := rm.LoadStencil("assets/images/splat.png")
	if err != nil {
		t.Fatalf("LoadStencil() error: %v", err)
	}
	if st.Width() != 3 || st.Height() != 3 {
		t.Errorf("stencil size = %dx%d, want 3x3", st.Width(), st.Height())
	}
	// 图像左上角 → 纹素 (0, 2)
	if a := st.AlphaAt(0, 2); a != 1 {
		t.Errorf("AlphaAt(0,2) = %v, want 1", a)
	}
	if a := st.AlphaAt(1, 1); a != 0 {
		t.Errorf("AlphaAt(1,1) = %v, want 0", a)
	}

	if _, err := rm.LoadStencil("assets/images/missing.png"); err == nil {
		t.Error("LoadStencil() of missing file should fail")
	}
}

func TestEmptyTemplateRejected(t *testing.T) {
	// 空模板由 terrain 报告 ErrEmptyTemplate
	buf := NewPixelBufferFromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	_, err := terrain.NewSurface(buf, terrain.Bounds{HalfExtents: terrain.Vec2{X: 1, Y: 1}}, terrain.Transform{})
	if !errors.Is(err, terrain.ErrEmptyTemplate) {
		t.Errorf("NewSurface(empty) error = %v, want ErrEmptyTemplate", err)
	}
}
