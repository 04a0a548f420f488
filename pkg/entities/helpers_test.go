package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeLoader 内存资源加载器
// missing 中的路径加载失败
type fakeLoader struct {
	missing map[string]bool
	loaded  []string
}

func newFakeLoader(missing ...string) *fakeLoader {
	l := &fakeLoader{missing: make(map[string]bool)}
	for _, m := range missing {
		l.missing[m] = true
	}
	return l
}

func (l *fakeLoader) LoadImage(path string) (*ebiten.Image, error) {
	if l.missing[path] {
		return nil, fmt.Errorf("missing %s", path)
	}
	l.loaded = append(l.loaded, path)
	return ebiten.NewImage(2, 2), nil
}

func (l *fakeLoader) LoadPixelBuffer(path string, width, height int) (*terrain.PixelBuffer, error) {
	if l.missing[path] {
		return nil, fmt.Errorf("missing %s", path)
	}
	if width == 0 || height == 0 {
		width, height = 22, 16
	}
	buf := terrain.NewPixelBuffer(width, height)
	for i := range buf.Pix {
		buf.Pix[i] = terrain.Texel{R: 0.1, G: 1, B: 0.1, A: 1}
	}
	return buf, nil
}

func testConfig() *config.GameConfig {
	return config.DefaultGameConfig()
}
