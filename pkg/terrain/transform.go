package terrain

import "math"

// Vec2 二维向量（世界坐标，Y 轴向上）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 向量缩放
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// 方向常量，与碰撞采样顺序一一对应
var (
	Up    = Vec2{X: 0, Y: 1}
	Down  = Vec2{X: 0, Y: -1}
	Left  = Vec2{X: -1, Y: 0}
	Right = Vec2{X: 1, Y: 0}
)

// Transform 物体的世界变换（平移 + 旋转）
//
// 游戏中掩体不会旋转，但坐标变换必须支持一般情况。
type Transform struct {
	Position Vec2    // 物体中心的世界坐标
	Rotation float64 // 逆时针旋转角（弧度）
}

// InverseTransformPoint 将世界坐标点变换到物体局部坐标系
//
// 先减去平移，再施加 -Rotation 的旋转。
func (t Transform) InverseTransformPoint(p Vec2) Vec2 {
	d := p.Sub(t.Position)
	if t.Rotation == 0 {
		return d
	}
	sin, cos := math.Sincos(-t.Rotation)
	return Vec2{
		X: d.X*cos - d.Y*sin,
		Y: d.X*sin + d.Y*cos,
	}
}

// TransformPoint 将局部坐标点变换到世界坐标系（InverseTransformPoint 的逆）
func (t Transform) TransformPoint(p Vec2) Vec2 {
	if t.Rotation == 0 {
		return p.Add(t.Position)
	}
	sin, cos := math.Sincos(t.Rotation)
	return Vec2{
		X: p.X*cos - p.Y*sin + t.Position.X,
		Y: p.X*sin + p.Y*cos + t.Position.Y,
	}
}

// Bounds 局部坐标系下的轴对齐矩形（中心 + 半尺寸）
type Bounds struct {
	Center      Vec2
	HalfExtents Vec2
}

// Size 矩形的完整尺寸
func (b Bounds) Size() Vec2 {
	return b.HalfExtents.Scale(2)
}

// localToTexel 局部坐标 → 纹素坐标
//
// 步骤：
//  1. 以 Bounds.Center 为参照
//  2. 加上半尺寸，把原点从中心移到左下角
//  3. 除以尺寸得到 UV（不钳制，超出 [0,1] 表示"不在表面上"）
//  4. 乘以像素尺寸并向下取整
func localToTexel(local Vec2, b Bounds, width, height int) (int, int) {
	size := b.Size()
	corner := local.Sub(b.Center).Add(b.HalfExtents)

	u := corner.X / size.X
	v := corner.Y / size.Y

	return uvToTexel(u, width), uvToTexel(v, height)
}

// uvToTexel 单轴 UV → 纹素索引
// UV 超出 [0,1)（包括 NaN）时返回 -1，避免浮点转整数溢出
func uvToTexel(uv float64, n int) int {
	if !(uv >= 0 && uv < 1) {
		return -1
	}
	return int(math.Floor(uv * float64(n)))
}
