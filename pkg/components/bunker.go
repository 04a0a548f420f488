package components

import (
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
)

// BunkerComponent 可破坏掩体
//
// Surface 是掩体独占的可破坏表面；Texture 是渲染用的 GPU 纹理，
// 只有当 Surface.Revision() 与 CommittedRevision 不一致时才整体重新上传一次。
type BunkerComponent struct {
	Index             int
	Surface           *terrain.Surface
	Texture           *ebiten.Image
	CommittedRevision uint64
	pixels            []byte // 上传用的复用缓冲
}

// NeedsCommit 纹理是否落后于表面
func (b *BunkerComponent) NeedsCommit() bool {
	return b.Texture == nil || b.Surface.Revision() != b.CommittedRevision
}

// Commit 把表面缓冲整体写入纹理（每次变化只写一次，不逐像素上传）
func (b *BunkerComponent) Commit() {
	buf := b.Surface.Buffer()
	if buf == nil {
		return
	}
	if b.Texture == nil {
		b.Texture = ebiten.NewImage(buf.Width, buf.Height)
	}
	b.pixels = buf.RGBA(b.pixels)
	b.Texture.WritePixels(b.pixels)
	b.CommittedRevision = b.Surface.Revision()
}
