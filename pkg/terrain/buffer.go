package terrain

import (
	"encoding/binary"
	"hash/fnv"
	"image"
	"image/color"
	"math"
)

// FilterMode 纹理采样过滤方式（渲染时使用，侵蚀不关心）
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// WrapMode 纹理环绕方式（渲染时使用，侵蚀不关心）
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
)

// Texel 单个纹素，四个通道均在 [0,1]
type Texel struct {
	R, G, B, A float32
}

// PixelBuffer 可破坏表面与模板使用的像素缓冲
//
// 坐标约定：纹素 (0,0) 位于左下角，Y 向上增长，与世界坐标一致。
// 图像资源（第 0 行在顶部）在导入和导出时做垂直翻转。
//
// 尺寸创建后不可变；侵蚀只修改 A 通道。
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []Texel // 行优先，Pix[y*Width+x]

	// 采样属性，克隆时原样保留
	Filter FilterMode
	Wrap   WrapMode
}

// NewPixelBuffer 创建指定尺寸的全透明缓冲
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Texel, width*height),
	}
}

// NewPixelBufferFromImage 从图像构建像素缓冲
//
// 颜色按非预乘 RGBA 读取，行序翻转为左下角原点。
func NewPixelBufferFromImage(img image.Image) *PixelBuffer {
	if img == nil {
		return NewPixelBuffer(0, 0)
	}
	b := img.Bounds()
	buf := NewPixelBuffer(b.Dx(), b.Dy())
	for y := 0; y < buf.Height; y++ {
		// 图像第 y 行 → 纹素第 (Height-1-y) 行
		row := buf.Height - 1 - y
		for x := 0; x < buf.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			buf.Pix[row*buf.Width+x] = Texel{
				R: float32(c.R) / 255,
				G: float32(c.G) / 255,
				B: float32(c.B) / 255,
				A: float32(c.A) / 255,
			}
		}
	}
	return buf
}

// Empty 缓冲是否没有任何纹素
func (b *PixelBuffer) Empty() bool {
	return b == nil || b.Width <= 0 || b.Height <= 0 || len(b.Pix) < b.Width*b.Height
}

// InBounds 纹素坐标是否位于 [0,Width)×[0,Height)
func (b *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// At 读取纹素；越界返回全透明
func (b *PixelBuffer) At(x, y int) Texel {
	if !b.InBounds(x, y) {
		return Texel{}
	}
	return b.Pix[y*b.Width+x]
}

// AlphaAt 读取 alpha；越界返回 0
func (b *PixelBuffer) AlphaAt(x, y int) float32 {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.Pix[y*b.Width+x].A
}

// Set 写入纹素；越界时忽略
func (b *PixelBuffer) Set(x, y int, t Texel) {
	if !b.InBounds(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = t
}

// Clone 深拷贝，包括采样属性
func (b *PixelBuffer) Clone() *PixelBuffer {
	c := &PixelBuffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]Texel, len(b.Pix)),
		Filter: b.Filter,
		Wrap:   b.Wrap,
	}
	copy(c.Pix, b.Pix)
	return c
}

// Hash 对尺寸和所有纹素做 FNV-1a 哈希，用于比较缓冲是否逐位一致
func (b *PixelBuffer) Hash() uint64 {
	h := fnv.New64a()
	var scratch [16]byte
	binary.LittleEndian.PutUint32(scratch[0:], uint32(b.Width))
	binary.LittleEndian.PutUint32(scratch[4:], uint32(b.Height))
	h.Write(scratch[:8])
	for _, t := range b.Pix {
		binary.LittleEndian.PutUint32(scratch[0:], math.Float32bits(t.R))
		binary.LittleEndian.PutUint32(scratch[4:], math.Float32bits(t.G))
		binary.LittleEndian.PutUint32(scratch[8:], math.Float32bits(t.B))
		binary.LittleEndian.PutUint32(scratch[12:], math.Float32bits(t.A))
		h.Write(scratch[:])
	}
	return h.Sum64()
}

// RGBA 导出预乘 alpha 的 RGBA 字节（第 0 行在顶部），可直接用于 ebiten.Image.WritePixels
//
// dst 容量足够时复用，避免每次提交都分配。
func (b *PixelBuffer) RGBA(dst []byte) []byte {
	n := 4 * b.Width * b.Height
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	i := 0
	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			t := b.Pix[y*b.Width+x]
			dst[i+0] = toByte(t.R * t.A)
			dst[i+1] = toByte(t.G * t.A)
			dst[i+2] = toByte(t.B * t.A)
			dst[i+3] = toByte(t.A)
			i += 4
		}
	}
	return dst
}

// ToNRGBA 导出为标准库图像（非预乘，第 0 行在顶部）
func (b *PixelBuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		row := b.Height - 1 - y
		for x := 0; x < b.Width; x++ {
			t := b.Pix[row*b.Width+x]
			img.SetNRGBA(x, y, color.NRGBA{R: toByte(t.R), G: toByte(t.G), B: toByte(t.B), A: toByte(t.A)})
		}
	}
	return img
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
