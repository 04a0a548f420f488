package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugBoundsColor = color.RGBA{R: 255, G: 255, B: 0, A: 160}

// drawDebug 绘制掩体边界和表面状态（F3 切换）
func (s *GameScene) drawDebug(screen *ebiten.Image) {
	if !s.showDebug {
		return
	}

	ppu := s.cfg.World.PixelsPerUnit
	msg := fmt.Sprintf("entities: %d  events: %d\n", s.entityManager.Count(), s.events.Len())
	for _, id := range s.bunkers {
		b, ok := ecs.GetComponent[*components.BunkerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		x, y := s.renderSystem.WorldToScreen(pos.X-col.HalfWidth, pos.Y+col.HalfHeight)
		vector.StrokeRect(screen, float32(x), float32(y),
			float32(col.HalfWidth*2*ppu), float32(col.HalfHeight*2*ppu), 1, debugBoundsColor, false)

		msg += fmt.Sprintf("bunker %d: %s rev=%d\n", b.Index, b.Surface.State(), b.Surface.Revision())
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 40)
}
