package terrain

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixelBufferFromImage_FlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	// 图像顶行红色，底行半透明蓝色
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 2, color.NRGBA{B: 255, A: 128})

	buf := NewPixelBufferFromImage(img)
	if buf.Width != 2 || buf.Height != 3 {
		t.Fatalf("size = %dx%d, want 2x3", buf.Width, buf.Height)
	}

	top := buf.At(0, 2)
	if top.R != 1 || top.A != 1 {
		t.Errorf("image top-left should map to texel (0,2), got %+v", top)
	}
	bottom := buf.At(1, 0)
	if bottom.B != 1 || bottom.A != float32(128)/255 {
		t.Errorf("image bottom-right should map to texel (1,0), got %+v", bottom)
	}
	if buf.AlphaAt(0, 0) != 0 {
		t.Error("untouched pixel should be transparent")
	}
}

func TestPixelBuffer_ToNRGBARoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 100), B: 7, A: uint8(50 + x*60 + y)})
		}
	}

	out := NewPixelBufferFromImage(img).ToNRGBA()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got, want := out.NRGBAAt(x, y), img.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixelBuffer_RGBAPremultiplied(t *testing.T) {
	buf := NewPixelBuffer(1, 2)
	buf.Set(0, 0, Texel{R: 1, G: 1, B: 1, A: 0.5}) // 底行
	buf.Set(0, 1, Texel{R: 1, A: 1})              // 顶行

	got := buf.RGBA(nil)
	want := []byte{
		255, 0, 0, 255, // 顶行先输出
		128, 128, 128, 128,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RGBA() = %v, want %v", got, want)
		}
	}

	// 复用已有切片
	reused := buf.RGBA(got[:0])
	if &reused[0] != &got[0] {
		t.Error("RGBA should reuse a large enough destination slice")
	}
}

func TestPixelBuffer_CloneIsDeep(t *testing.T) {
	buf := newFilledBuffer(2, 2, 1)
	buf.Filter = FilterLinear
	c := buf.Clone()
	c.Set(0, 0, Texel{})

	if buf.AlphaAt(0, 0) != 1 {
		t.Error("Clone must not share storage")
	}
	if c.Filter != FilterLinear {
		t.Error("Clone must keep sampling properties")
	}
	if buf.Hash() == c.Hash() {
		t.Error("different contents should hash differently")
	}
}
