package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
//
// Frames 多于一帧时按 FrameTime 循环播放（入侵者的两帧动画）。
// Width/Height 为绘制尺寸（世界单位），图像按此缩放。
type SpriteComponent struct {
	Frames    []*ebiten.Image
	Frame     int     // 当前帧索引
	FrameTime float64 // 每帧持续时间（秒），0 表示不播放
	Elapsed   float64 // 当前帧已持续时间（秒）
	Width     float64
	Height    float64
	Hidden    bool
}

// Image 当前帧图像；没有帧时返回 nil
func (s *SpriteComponent) Image() *ebiten.Image {
	if len(s.Frames) == 0 {
		return nil
	}
	return s.Frames[s.Frame%len(s.Frames)]
}

// Advance 推进动画，返回是否切换了帧
func (s *SpriteComponent) Advance(deltaTime float64) bool {
	if s.FrameTime <= 0 || len(s.Frames) < 2 {
		return false
	}
	s.Elapsed += deltaTime
	if s.Elapsed < s.FrameTime {
		return false
	}
	s.Elapsed -= s.FrameTime
	s.Frame++
	if s.Frame >= len(s.Frames) {
		s.Frame = 0
	}
	return true
}
