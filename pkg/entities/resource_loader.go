package entities

import (
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceLoader 工厂函数需要的资源加载能力
// game.ResourceManager 实现此接口；测试中可以替换为内存实现
type ResourceLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
	LoadPixelBuffer(path string, width, height int) (*terrain.PixelBuffer, error)
}

// loadFrames 按顺序加载一组动画帧
func loadFrames(rm ResourceLoader, paths []string) ([]*ebiten.Image, error) {
	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := rm.LoadImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}
