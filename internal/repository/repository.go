// Package repository 持久化抽象：花园数据的键值式存取
// 引擎不直接碰这里，只有协调层（garden.Store）会调用
package repository

import (
	"errors"
	"time"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
)

var ErrNotFound = errors.New("record not found")

// DefaultMaxSlots 初始培养槽位数
const DefaultMaxSlots = 3

type PlantRepository interface {
	ListPlants() ([]models.Plant, error)
	GetPlant(id string) (models.Plant, error)
	// SavePlant 新增或覆盖
	SavePlant(p models.Plant) error
	// SavePlants 批量保存，实现方要保证原子性：
	// 会话结算涉及多株植物，不能出现一半成功一半失败
	SavePlants(ps []models.Plant) error
	DeletePlant(id string) error
}

type SessionRepository interface {
	ListSessions() ([]models.FocusSession, error)
	// GetActiveSession 没有活跃会话时返回 (nil, nil)
	GetActiveSession() (*models.FocusSession, error)
	SaveSession(s models.FocusSession) error
	// SetActiveSession 传 nil 表示清除活跃会话指针
	SetActiveSession(s *models.FocusSession) error
}

type SeedRepository interface {
	ListSeeds() ([]models.Seed, error)
	AddSeed(s models.Seed) error
	RemoveSeed(id string) error
}

type SettingsRepository interface {
	GetMaxSlots() (int, error)
	SetMaxSlots(n int) error
	GetFreeGachaCount() (int, error)
	SetFreeGachaCount(n int) error
	GetGachaLastReset() (time.Time, error)
	SetGachaLastReset(t time.Time) error
}

// Repository 四块拼一起，garden.Store 拿到的就是这个
type Repository interface {
	PlantRepository
	SessionRepository
	SeedRepository
	SettingsRepository
}
