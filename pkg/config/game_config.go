package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏参数配置
//
// 所有长度单位为世界单位（Y 轴向上，原点在屏幕中心），速度单位为世界单位/秒。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Laser       ProjectileConfig  `yaml:"laser"`
	Missile     ProjectileConfig  `yaml:"missile"`
	Invaders    InvadersConfig    `yaml:"invaders"`
	MysteryShip MysteryShipConfig `yaml:"mysteryShip"`
	Bunkers     BunkersConfig     `yaml:"bunkers"`
	Splat       SplatConfig       `yaml:"splat"`
	Game        RulesConfig       `yaml:"game"`
}

// WorldConfig 世界尺寸与屏幕映射
type WorldConfig struct {
	HalfWidth     float64 `yaml:"halfWidth"`
	HalfHeight    float64 `yaml:"halfHeight"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"` // 每个世界单位对应的屏幕像素
}

// ScreenSize 逻辑屏幕尺寸（像素）
func (w WorldConfig) ScreenSize() (int, int) {
	return int(2 * w.HalfWidth * w.PixelsPerUnit), int(2 * w.HalfHeight * w.PixelsPerUnit)
}

// BoxConfig 碰撞盒半尺寸
type BoxConfig struct {
	HalfWidth  float64 `yaml:"halfWidth"`
	HalfHeight float64 `yaml:"halfHeight"`
}

// PlayerConfig 玩家炮台
type PlayerConfig struct {
	BoxConfig `yaml:",inline"`
	Y         float64 `yaml:"y"`
	Speed     float64 `yaml:"speed"`
	Sprite    string  `yaml:"sprite"`
}

// ProjectileConfig 激光或导弹
type ProjectileConfig struct {
	BoxConfig `yaml:",inline"`
	Speed     float64 `yaml:"speed"`
	Sprite    string  `yaml:"sprite"`
}

// InvadersConfig 入侵者编队
type InvadersConfig struct {
	BoxConfig        `yaml:",inline"`
	Rows             int        `yaml:"rows"`
	Columns          int        `yaml:"columns"`
	Spacing          float64    `yaml:"spacing"`          // 相邻入侵者中心距
	OriginY          float64    `yaml:"originY"`          // 编队中心的初始 Y
	Advances         int        `yaml:"advances"`         // 最多下移的行数
	RowStep          float64    `yaml:"rowStep"`          // 每次下移的距离
	EdgeMargin       float64    `yaml:"edgeMargin"`       // 距屏幕边缘多近时折返
	AnimationTime    float64    `yaml:"animationTime"`    // 两帧动画切换间隔（秒）
	MissileSpawnRate float64    `yaml:"missileSpawnRate"` // 导弹齐射间隔（秒）
	RowScores        []int      `yaml:"rowScores"`        // 每行得分，自下而上
	RowSprites       [][]string `yaml:"rowSprites"`       // 每行动画帧，自下而上
	SpeedCurve       SpeedCurve `yaml:"speedCurve"`       // 击毁比例 → 移动速度
}

// MysteryShipConfig 神秘飞船
type MysteryShipConfig struct {
	BoxConfig `yaml:",inline"`
	Y         float64 `yaml:"y"`
	Speed     float64 `yaml:"speed"`
	CycleTime float64 `yaml:"cycleTime"` // 两次出现之间的间隔（秒）
	Score     int     `yaml:"score"`
	Sprite    string  `yaml:"sprite"`
}

// BunkersConfig 可破坏掩体
type BunkersConfig struct {
	BoxConfig     `yaml:",inline"`
	Count         int     `yaml:"count"`
	Y             float64 `yaml:"y"`
	Template      string  `yaml:"template"`      // 掩体模板图像
	TextureWidth  int     `yaml:"textureWidth"`  // 可破坏表面分辨率，0 表示使用图像原始尺寸
	TextureHeight int     `yaml:"textureHeight"`
}

// SplatConfig 溅射模板
type SplatConfig struct {
	Stencil string `yaml:"stencil"`
}

// RulesConfig 游戏规则
type RulesConfig struct {
	Lives        int     `yaml:"lives"`
	RespawnDelay float64 `yaml:"respawnDelay"` // 玩家阵亡后重生延迟（秒）
}

// CurveKey 曲线关键帧
type CurveKey struct {
	T     float64 `yaml:"t"`
	Value float64 `yaml:"value"`
}

// SpeedCurve 分段线性曲线
// 关键帧按 T 升序；T 超出首尾关键帧时取端点值
type SpeedCurve []CurveKey

// Evaluate 计算曲线在 t 处的值
func (c SpeedCurve) Evaluate(t float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if t <= c[0].T {
		return c[0].Value
	}
	last := c[len(c)-1]
	if t >= last.T {
		return last.Value
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].T > t })
	a, b := c[i-1], c[i]
	if b.T == a.T {
		return b.Value
	}
	k := (t - a.T) / (b.T - a.T)
	return a.Value + (b.Value-a.Value)*k
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
// 未出现在 YAML 中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.World.HalfWidth <= 0 || c.World.HalfHeight <= 0 || c.World.PixelsPerUnit <= 0 {
		return fmt.Errorf("world size must be positive, got %.1fx%.1f @ %.1f ppu",
			c.World.HalfWidth, c.World.HalfHeight, c.World.PixelsPerUnit)
	}

	boxes := map[string]BoxConfig{
		"player":      c.Player.BoxConfig,
		"laser":       c.Laser.BoxConfig,
		"missile":     c.Missile.BoxConfig,
		"invaders":    c.Invaders.BoxConfig,
		"mysteryShip": c.MysteryShip.BoxConfig,
		"bunkers":     c.Bunkers.BoxConfig,
	}
	for name, box := range boxes {
		if box.HalfWidth <= 0 || box.HalfHeight <= 0 {
			return fmt.Errorf("%s collider must be positive, got %.3fx%.3f", name, box.HalfWidth, box.HalfHeight)
		}
	}

	inv := c.Invaders
	if inv.Rows <= 0 || inv.Columns <= 0 {
		return fmt.Errorf("invader grid must be at least 1x1, got %dx%d", inv.Rows, inv.Columns)
	}
	if len(inv.RowScores) != inv.Rows {
		return fmt.Errorf("invaders.rowScores has %d entries, want %d (one per row)", len(inv.RowScores), inv.Rows)
	}
	if len(inv.RowSprites) != inv.Rows {
		return fmt.Errorf("invaders.rowSprites has %d entries, want %d (one per row)", len(inv.RowSprites), inv.Rows)
	}
	for i, frames := range inv.RowSprites {
		if len(frames) == 0 {
			return fmt.Errorf("invaders.rowSprites[%d] has no frames", i)
		}
	}
	if len(inv.SpeedCurve) == 0 {
		return fmt.Errorf("invaders.speedCurve must have at least one key")
	}
	for i := 1; i < len(inv.SpeedCurve); i++ {
		if inv.SpeedCurve[i].T < inv.SpeedCurve[i-1].T {
			return fmt.Errorf("invaders.speedCurve keys must be sorted by t (key %d)", i)
		}
	}
	if inv.MissileSpawnRate <= 0 {
		return fmt.Errorf("invaders.missileSpawnRate must be positive, got %.2f", inv.MissileSpawnRate)
	}

	if c.Bunkers.Count < 0 {
		return fmt.Errorf("bunkers.count must be >= 0, got %d", c.Bunkers.Count)
	}
	if c.Bunkers.TextureWidth < 0 || c.Bunkers.TextureHeight < 0 {
		return fmt.Errorf("bunkers texture size must be >= 0, got %dx%d", c.Bunkers.TextureWidth, c.Bunkers.TextureHeight)
	}
	if c.Bunkers.Count > 0 && c.Bunkers.Template == "" {
		return fmt.Errorf("bunkers.template is required")
	}
	if c.Bunkers.Count > 0 && c.Splat.Stencil == "" {
		return fmt.Errorf("splat.stencil is required")
	}

	if c.Game.Lives <= 0 {
		return fmt.Errorf("game.lives must be positive, got %d", c.Game.Lives)
	}
	if c.Game.RespawnDelay < 0 {
		return fmt.Errorf("game.respawnDelay must be >= 0, got %.2f", c.Game.RespawnDelay)
	}

	return nil
}
