// check_assets 检查 data/game.yaml 引用的所有图片资源
//
// 对每个资源输出 MD5、文件大小和解码后的尺寸；掩体模板和溅射模板
// 额外检查是否含有不透明像素。任何资源缺失或无法解码时以状态码 1 退出。
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/terrain"
)

func main() {
	root := flag.String("root", ".", "Project root containing assets/ and data/")
	flag.Parse()

	dir := os.DirFS(*root)
	embedded.Init(dir, dir)

	cfg, err := config.LoadGameConfig(filepath.Join(*root, config.GameConfigPath))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range referencedAssets(cfg) {
		if err := checkImage(path); err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
		}
	}

	for _, path := range []string{cfg.Bunkers.Template, cfg.Splat.Stencil} {
		if err := checkTerrainBuffer(path); err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("%d asset(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("All assets OK")
}

// referencedAssets 配置中出现的全部资源路径（去重、排序）
func referencedAssets(cfg *config.GameConfig) []string {
	set := map[string]bool{
		cfg.Player.Sprite:      true,
		cfg.Laser.Sprite:       true,
		cfg.Missile.Sprite:     true,
		cfg.MysteryShip.Sprite: true,
		cfg.Bunkers.Template:   true,
		cfg.Splat.Stencil:      true,
	}
	for _, frames := range cfg.Invaders.RowSprites {
		for _, f := range frames {
			set[f] = true
		}
	}

	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func checkImage(path string) error {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return err
	}
	file, err := embedded.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Printf("%-40s %s %4dx%-4d %6d bytes  MD5 %x\n", path, format, cfg.Width, cfg.Height, len(data), md5.Sum(data))
	return nil
}

func checkTerrainBuffer(path string) error {
	file, err := embedded.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return err
	}
	buf := terrain.NewPixelBufferFromImage(img)
	if buf.Empty() {
		return terrain.ErrEmptyTemplate
	}

	opaque := 0
	for _, t := range buf.Pix {
		if t.A > 0 {
			opaque++
		}
	}
	if opaque == 0 {
		return fmt.Errorf("no opaque texels")
	}
	fmt.Printf("%-40s %d/%d opaque texels, hash %016x\n", path, opaque, len(buf.Pix), buf.Hash())
	return nil
}
