package main

import (
	"flag"
	"log"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	muteFlag    = flag.Bool("mute", false, "Disable sound effects")
	configFlag  = flag.String("config", "", "Load game config from disk instead of the embedded data/game.yaml")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Mute:       *muteFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.TPS)

	if err := runAndClose(func() error { return ebiten.RunGame(gameApp) }, gameApp.GetSceneManager().Close); err != nil {
		log.Fatal(err)
	}
}

// runAndClose 运行游戏循环，无论是否出错都先关闭场景（保存最高分）再返回
func runAndClose(run func() error, closeScene func()) error {
	defer closeScene()
	return run()
}
