package config

// GameWindowTitle 窗口标题
const GameWindowTitle = "Space Invaders"

// GameConfigPath 内嵌游戏配置路径
const GameConfigPath = "data/game.yaml"

// TPS 逻辑帧率（每秒 tick 数）
const TPS = 60
