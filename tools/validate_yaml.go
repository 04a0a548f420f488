package main

import (
	"fmt"
	"os"

	"github.com/decker502/invaders/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	path := config.GameConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 先检查 YAML 语法和顶层分组
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确\n")

	known := []string{"world", "player", "laser", "missile", "invaders", "mysteryShip", "bunkers", "splat", "game"}
	missing := 0
	for _, key := range known {
		if _, ok := raw[key]; !ok {
			fmt.Printf("⚠️  缺少分组 %s，将使用默认值\n", key)
			missing++
		}
	}
	for key := range raw {
		if !contains(known, key) {
			fmt.Printf("⚠️  未知分组 %s，将被忽略\n", key)
		}
	}

	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		fmt.Printf("❌ 配置校验失败: %v\n", err)
		os.Exit(1)
	}

	w, h := cfg.World.ScreenSize()
	fmt.Printf("✅ 屏幕尺寸: %dx%d\n", w, h)
	fmt.Printf("✅ 入侵者: %d 行 x %d 列\n", cfg.Invaders.Rows, cfg.Invaders.Columns)
	fmt.Printf("✅ 掩体: %d 个\n", cfg.Bunkers.Count)
	if missing == 0 {
		fmt.Printf("✅ 所有分组都已配置\n")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
