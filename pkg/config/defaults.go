package config

// DefaultGameConfig 返回默认游戏配置（与 data/game.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{HalfWidth: 14, HalfHeight: 16, PixelsPerUnit: 24},
		Player: PlayerConfig{
			BoxConfig: BoxConfig{HalfWidth: 0.8, HalfHeight: 0.4},
			Y:         -13,
			Speed:     5,
			Sprite:    "assets/images/player.png",
		},
		Laser: ProjectileConfig{
			BoxConfig: BoxConfig{HalfWidth: 0.0625, HalfHeight: 0.25},
			Speed:     20,
			Sprite:    "assets/images/laser.png",
		},
		Missile: ProjectileConfig{
			BoxConfig: BoxConfig{HalfWidth: 0.125, HalfHeight: 0.3},
			Speed:     10,
			Sprite:    "assets/images/missile.png",
		},
		Invaders: InvadersConfig{
			BoxConfig:        BoxConfig{HalfWidth: 0.6, HalfHeight: 0.45},
			Rows:             5,
			Columns:          11,
			Spacing:          2,
			OriginY:          6,
			Advances:         10,
			RowStep:          1,
			EdgeMargin:       1,
			AnimationTime:    1,
			MissileSpawnRate: 1,
			RowScores:        []int{10, 10, 20, 20, 30},
			RowSprites: [][]string{
				{"assets/images/invader_c1.png", "assets/images/invader_c2.png"},
				{"assets/images/invader_c1.png", "assets/images/invader_c2.png"},
				{"assets/images/invader_b1.png", "assets/images/invader_b2.png"},
				{"assets/images/invader_b1.png", "assets/images/invader_b2.png"},
				{"assets/images/invader_a1.png", "assets/images/invader_a2.png"},
			},
			SpeedCurve: SpeedCurve{{T: 0, Value: 1}, {T: 0.5, Value: 3}, {T: 1, Value: 12}},
		},
		MysteryShip: MysteryShipConfig{
			BoxConfig: BoxConfig{HalfWidth: 1.2, HalfHeight: 0.5},
			Y:         13.5,
			Speed:     5,
			CycleTime: 30,
			Score:     300,
			Sprite:    "assets/images/mystery_ship.png",
		},
		Bunkers: BunkersConfig{
			BoxConfig: BoxConfig{HalfWidth: 1.5, HalfHeight: 1.125},
			Count:     4,
			Y:         -9,
			Template:  "assets/images/bunker.png",
		},
		Splat: SplatConfig{Stencil: "assets/images/splat.png"},
		Game:  RulesConfig{Lives: 3, RespawnDelay: 1},
	}
}
