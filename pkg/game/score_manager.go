package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreRecord 持久化的最高分记录
type HighScoreRecord struct {
	Score int `yaml:"score"`
	Round int `yaml:"round"` // 创造记录时已清空的编队数
}

// ScoreManager 最高分管理器
// 负责最高分的加载、保存和内存缓存
type ScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	record       HighScoreRecord
}

// 存储路径常量
const (
	scoresObject      = "scores"
	highScoreProperty = "high"
)

// NewScoreManager 创建最高分管理器并尝试加载已保存的记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，只在内存中保留最高分）
//
// 返回：
//   - *ScoreManager: 管理器实例（加载失败时最高分为 0）
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[ScoreManager] Warning: Failed to load high score: %v (starting from 0)", err)
	}
	return sm
}

// Load 从 gdata 加载最高分
//
// 返回：
//   - error: 读取或反序列化失败时返回错误，此时最高分重置为 0
func (sm *ScoreManager) Load() error {
	sm.record = HighScoreRecord{}
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(scoresObject, highScoreProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var record HighScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	sm.record = record
	log.Printf("[ScoreManager] High score loaded: %d", record.Score)
	return nil
}

// HighScore 当前最高分
func (sm *ScoreManager) HighScore() int {
	return sm.record.Score
}

// Record 当前最高分记录
func (sm *ScoreManager) Record() HighScoreRecord {
	return sm.record
}

// Submit 提交一局的分数，超过最高分时写入存储
//
// 返回：
//   - bool: 是否刷新了最高分
//   - error: 保存失败时返回错误（内存中的最高分仍会更新）
func (sm *ScoreManager) Submit(score, round int) (bool, error) {
	if score <= sm.record.Score {
		return false, nil
	}
	sm.record = HighScoreRecord{Score: score, Round: round}

	if sm.gdataManager == nil {
		return true, nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return true, fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoresObject, highScoreProperty, data); err != nil {
		return true, fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[ScoreManager] New high score saved: %d", score)
	return true, nil
}
