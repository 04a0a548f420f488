// erosion_viewer 在终端中查看并交互式侵蚀掩体表面
//
// 用法:
//
//	go run ./cmd/erosion_viewer
//	go run ./cmd/erosion_viewer -root . -template assets/images/bunker.png -stencil assets/images/splat.png
//
// 鼠标左键: 以激光碰撞盒在点击处做多点采样侵蚀
// s: 切换单点溅射 / 多点采样
// r: 重置表面
// q / Esc: 退出
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/terrain"
	"github.com/gdamore/tcell/v2"
)

// 每个纹素占两列，终端字符大致呈 1:2
const cellsPerTexel = 2

// shades 按 alpha 从低到高
var shades = []rune{' ', '░', '▒', '▓', '█'}

type viewer struct {
	screen  tcell.Screen
	surface *terrain.Surface
	eroder  *terrain.Eroder
	laser   terrain.Vec2 // 激光碰撞盒半尺寸

	multiSample bool
	status      string
	hits        int
}

func main() {
	var (
		root         string
		templatePath string
		stencilPath  string
	)
	flag.StringVar(&root, "root", ".", "Project root containing assets/ and data/")
	flag.StringVar(&templatePath, "template", "", "Bunker template image (default: from data/game.yaml)")
	flag.StringVar(&stencilPath, "stencil", "", "Splat stencil image (default: from data/game.yaml)")
	flag.Parse()

	dir := os.DirFS(root)
	embedded.Init(dir, dir)

	cfg, err := config.LoadGameConfig(filepath.Join(root, config.GameConfigPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Using default config: %v\n", err)
		cfg = config.DefaultGameConfig()
	}
	if templatePath == "" {
		templatePath = cfg.Bunkers.Template
	}
	if stencilPath == "" {
		stencilPath = cfg.Splat.Stencil
	}

	v, err := newViewer(cfg, templatePath, stencilPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v.screen = screen
	v.run()
}

func newViewer(cfg *config.GameConfig, templatePath, stencilPath string) (*viewer, error) {
	template, err := loadBuffer(templatePath)
	if err != nil {
		return nil, err
	}
	stencilBuf, err := loadBuffer(stencilPath)
	if err != nil {
		return nil, err
	}
	stencil, err := terrain.NewStencil(stencilBuf)
	if err != nil {
		return nil, fmt.Errorf("stencil %s: %w", stencilPath, err)
	}
	eroder, err := terrain.NewEroder(stencil)
	if err != nil {
		return nil, err
	}

	bounds := terrain.Bounds{HalfExtents: terrain.Vec2{X: cfg.Bunkers.HalfWidth, Y: cfg.Bunkers.HalfHeight}}
	surface, err := terrain.NewSurface(template, bounds, terrain.Transform{})
	if err != nil {
		return nil, err
	}
	surface.Activate()

	return &viewer{
		surface:     surface,
		eroder:      eroder,
		laser:       terrain.Vec2{X: cfg.Laser.HalfWidth, Y: cfg.Laser.HalfHeight},
		multiSample: true,
		status: fmt.Sprintf("template %s (%dx%d), stencil %s (%dx%d)",
			templatePath, template.Width, template.Height, stencilPath, stencil.Width(), stencil.Height()),
	}, nil
}

// loadBuffer 解码图像为点采样缓冲（与游戏内加载方式一致）
func loadBuffer(path string) (*terrain.PixelBuffer, error) {
	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	buf := terrain.NewPixelBufferFromImage(img)
	buf.Filter = terrain.FilterNearest
	buf.Wrap = terrain.WrapClamp
	return buf, nil
}

func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
			if ev.Key() == tcell.KeyRune {
				switch ev.Rune() {
				case 'r':
					v.surface.Reset()
					v.hits = 0
					v.status = "surface reset"
				case 's':
					v.multiSample = !v.multiSample
				}
			}

		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				v.click(x, y)
			}

		case *tcell.EventResize:
			v.screen.Sync()

		case nil:
			return
		}
		v.draw()
	}
}

// origin 表面左上角所在的屏幕格
func (v *viewer) origin() (int, int) {
	sw, sh := v.screen.Size()
	w, h := v.surface.Dimensions()
	return (sw - w*cellsPerTexel) / 2, (sh - h) / 2
}

// cellToWorld 屏幕格 → 对应纹素中心的世界坐标
func (v *viewer) cellToWorld(x, y int) terrain.Vec2 {
	ox, oy := v.origin()
	w, h := v.surface.Dimensions()
	tx := float64((x-ox)/cellsPerTexel) + 0.5
	ty := float64(h-1-(y-oy)) + 0.5

	b := v.surface.Bounds()
	size := b.Size()
	local := terrain.Vec2{
		X: tx/float64(w)*size.X - b.HalfExtents.X,
		Y: ty/float64(h)*size.Y - b.HalfExtents.Y,
	}
	return v.surface.Transform().TransformPoint(local.Add(b.Center))
}

func (v *viewer) click(x, y int) {
	p := v.cellToWorld(x, y)
	px, py := v.surface.WorldToTexel(p)

	var hit bool
	if v.multiSample {
		hit = v.eroder.CheckCollision(v.surface, v.laser, p)
	} else {
		hit = v.eroder.Splat(v.surface, p)
	}
	if hit {
		v.hits++
		v.status = fmt.Sprintf("hit texel (%d,%d) world (%.3f,%.3f)", px, py, p.X, p.Y)
	} else {
		v.status = fmt.Sprintf("miss texel (%d,%d): projectile passes through", px, py)
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	ox, oy := v.origin()
	buf := v.surface.Buffer()

	for y := 0; y < buf.Height; y++ {
		row := oy + (buf.Height - 1 - y)
		for x := 0; x < buf.Width; x++ {
			t := buf.At(x, y)
			shade := shades[int(t.A*float32(len(shades)-1)+0.5)]
			fg := tcell.NewRGBColor(int32(t.R*255), int32(t.G*255), int32(t.B*255))
			style := tcell.StyleDefault.Foreground(fg)
			for c := 0; c < cellsPerTexel; c++ {
				v.screen.SetContent(ox+x*cellsPerTexel+c, row, shade, nil, style)
			}
		}
	}

	mode := "multi-sample"
	if !v.multiSample {
		mode = "single splat"
	}
	header := fmt.Sprintf("%s | %s | hits %d | rev %d | hash %016x",
		mode, v.surface.State(), v.hits, v.surface.Revision(), buf.Hash())
	v.drawText(0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.drawText(0, 1, v.status, tcell.StyleDefault)
	_, sh := v.screen.Size()
	v.drawText(0, sh-1, "click: erode  s: sample mode  r: reset  q: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	v.screen.Show()
}

func (v *viewer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
