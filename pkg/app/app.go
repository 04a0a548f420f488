// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 存档目录名
const AppName = "invaders"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Mute 关闭音效
	Mute bool
	// ConfigPath 从磁盘加载游戏配置（调参用），为空则使用内嵌的 data/game.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameConfig   *config.GameConfig
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	sounds, err := game.NewSoundBank(audioContext)
	if err != nil {
		return nil, fmt.Errorf("音效初始化失败: %w", err)
	}
	sounds.SetEnabled(!cfg.Mute)

	// 最高分存档；存档目录不可用时只在内存中记录
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] 存档不可用，最高分不会保存: %v", err)
		gdataManager = nil
	}
	scores := game.NewScoreManager(gdataManager)

	// 创建资源管理器
	resourceManager := game.NewResourceManager()

	gameScene, err := scenes.NewGameScene(scenes.GameSceneConfig{
		ResourceManager: resourceManager,
		Config:          gameConfig,
		Sounds:          sounds,
		Scores:          scores,
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)
	log.Printf("[App] Game scene ready, high score %d", scores.HighScore())

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 读取磁盘或内嵌的游戏配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载游戏配置: %s", path)
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(config.GameConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(config.TPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	// 最近邻缩放保持像素边缘清晰
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.World.ScreenSize()
}

// WindowSize 返回初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.gameConfig.World.ScreenSize()
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高分
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
