package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem 绘制掩体、精灵和 HUD
//
// 世界坐标 Y 轴向上、原点在屏幕中心；屏幕坐标 Y 轴向下、原点在左上角。
// 掩体纹理只在表面版本号变化时整体重新上传一次。
type RenderSystem struct {
	em   *ecs.EntityManager
	cfg  *config.GameConfig
	face text.Face

	hudColor      color.Color
	gameOverColor color.Color
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.GameConfig) *RenderSystem {
	return &RenderSystem{
		em:            em,
		cfg:           cfg,
		face:          text.NewGoXFace(basicfont.Face7x13),
		hudColor:      color.White,
		gameOverColor: color.RGBA{R: 255, G: 64, B: 64, A: 255},
	}
}

// WorldToScreen 世界坐标 → 屏幕像素坐标
func (s *RenderSystem) WorldToScreen(x, y float64) (float64, float64) {
	w := s.cfg.World
	return (x + w.HalfWidth) * w.PixelsPerUnit, (w.HalfHeight - y) * w.PixelsPerUnit
}

// Draw 绘制游戏世界
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBunkers(screen)
	s.drawSprites(screen)
}

// CommitBunkers 把有变化的掩体表面上传到纹理
// 返回本次上传的掩体数量
func (s *RenderSystem) CommitBunkers() int {
	committed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BunkerComponent](s.em) {
		b, _ := ecs.GetComponent[*components.BunkerComponent](s.em, id)
		if b.Surface.IsActive() && b.NeedsCommit() {
			b.Commit()
			committed++
		}
	}
	return committed
}

func (s *RenderSystem) drawBunkers(screen *ebiten.Image) {
	s.CommitBunkers()

	ppu := s.cfg.World.PixelsPerUnit
	for _, id := range ecs.GetEntitiesWith1[*components.BunkerComponent](s.em) {
		b, _ := ecs.GetComponent[*components.BunkerComponent](s.em, id)
		if !b.Surface.IsActive() || b.Texture == nil {
			continue
		}

		bounds := b.Surface.Bounds()
		tf := b.Surface.Transform()
		size := bounds.Size()
		tw, th := b.Texture.Bounds().Dx(), b.Texture.Bounds().Dy()
		center := tf.TransformPoint(bounds.Center)
		cx, cy := s.WorldToScreen(center.X, center.Y)

		op := &ebiten.DrawImageOptions{}
		op.Filter = bunkerFilter(b.Surface.Buffer().Filter)
		op.GeoM.Translate(-float64(tw)/2, -float64(th)/2)
		op.GeoM.Scale(size.X*ppu/float64(tw), size.Y*ppu/float64(th))
		// 屏幕 Y 轴向下，逆时针角度取反
		op.GeoM.Rotate(-tf.Rotation)
		op.GeoM.Translate(cx, cy)
		screen.DrawImage(b.Texture, op)
	}
}

// bunkerFilter 表面缓冲的采样方式 → ebiten 过滤器
func bunkerFilter(mode terrain.FilterMode) ebiten.Filter {
	if mode == terrain.FilterLinear {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

func (s *RenderSystem) drawSprites(screen *ebiten.Image) {
	ppu := s.cfg.World.PixelsPerUnit
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)
		if sprite.Hidden {
			continue
		}
		img := sprite.Image()
		if img == nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		x, y := s.WorldToScreen(pos.X-sprite.Width/2, pos.Y+sprite.Height/2)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sprite.Width*ppu/float64(iw), sprite.Height*ppu/float64(ih))
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}
}

// DrawHUD 绘制分数、最高分、生命和游戏结束提示
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, gs *game.GameState) {
	sw, sh := s.cfg.World.ScreenSize()

	s.drawText(screen, fmt.Sprintf("SCORE %s", FormatScore(gs.Score)), 8, 4, s.hudColor)
	s.drawText(screen, fmt.Sprintf("HI %s", FormatScore(gs.HighScore)), float64(sw)/2-40, 4, s.hudColor)
	s.drawText(screen, fmt.Sprintf("LIVES %d", gs.Lives), float64(sw)-72, float64(sh)-20, s.hudColor)

	if gs.GameOver {
		s.drawText(screen, "GAME OVER", float64(sw)/2-32, float64(sh)/2-16, s.gameOverColor)
		s.drawText(screen, "PRESS ENTER", float64(sw)/2-39, float64(sh)/2+4, s.hudColor)
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, str, s.face, op)
}

// FormatScore 分数左侧补零到四位
func FormatScore(score int) string {
	return fmt.Sprintf("%04d", score)
}
