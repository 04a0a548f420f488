package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCollisionComponent_Accepts(t *testing.T) {
	laser := &CollisionComponent{Layer: LayerLaser, Mask: LayerInvader | LayerBunker | LayerMysteryShip | LayerMissile}
	missile := &CollisionComponent{Layer: LayerMissile, Mask: LayerPlayer | LayerBunker | LayerLaser}
	bunker := &CollisionComponent{Layer: LayerBunker, Mask: LayerInvader}
	invader := &CollisionComponent{Layer: LayerInvader, Mask: LayerLaser | LayerBunker | LayerPlayer}
	player := &CollisionComponent{Layer: LayerPlayer, Mask: LayerMissile | LayerInvader}

	tests := []struct {
		name string
		a, b *CollisionComponent
		want bool
	}{
		{"激光-入侵者", laser, invader, true},
		{"激光-掩体", laser, bunker, true},
		{"导弹-掩体（掩体掩码不含导弹，仍由导弹一方接受）", missile, bunker, true},
		{"导弹-入侵者", missile, invader, false},
		{"激光-玩家", laser, player, false},
		{"入侵者-掩体", invader, bunker, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Accepts(tt.b); got != tt.want {
				t.Errorf("Accepts() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Accepts(tt.a); got != tt.want {
				t.Errorf("Accepts() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionComponent_Disabled(t *testing.T) {
	a := &CollisionComponent{Layer: LayerLaser, Mask: LayerInvader}
	b := &CollisionComponent{Layer: LayerInvader, Mask: LayerLaser, Disabled: true}

	if a.Accepts(b) {
		t.Error("disabled collider should not collide")
	}
}

func TestSpriteComponent_Advance(t *testing.T) {
	sprite := &SpriteComponent{Frames: make([]*ebiten.Image, 2), FrameTime: 1.0}

	if sprite.Advance(0.5) {
		t.Error("frame should not switch before FrameTime")
	}
	if !sprite.Advance(0.5) || sprite.Frame != 1 {
		t.Errorf("frame should switch to 1, got %d", sprite.Frame)
	}
	if !sprite.Advance(1.0) || sprite.Frame != 0 {
		t.Errorf("frame should wrap to 0, got %d", sprite.Frame)
	}

	still := &SpriteComponent{Frames: make([]*ebiten.Image, 1), FrameTime: 1.0}
	if still.Advance(10) {
		t.Error("single-frame sprite should never switch")
	}
}
