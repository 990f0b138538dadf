package repository

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
)

// 设置表里用到的 key（沿用客户端存储的命名）
const (
	keyActiveSession  = "active-session"
	keyMaxSlots       = "max-slots"
	keyGachaFreeCount = "gacha-free-count"
	keyGachaLastReset = "gacha-last-reset"
)

// GormRepository 基于 Postgres 的仓储实现
type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository { return &GormRepository{db: db} }

func (r *GormRepository) ListPlants() ([]models.Plant, error) {
	var ps []models.Plant
	err := r.db.Order("slot_index ASC").Find(&ps).Error
	return ps, err
}

func (r *GormRepository) GetPlant(id string) (models.Plant, error) {
	var p models.Plant
	err := r.db.Take(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Plant{}, ErrNotFound
	}
	return p, err
}

func (r *GormRepository) SavePlant(p models.Plant) error {
	return r.db.Save(&p).Error
}

// SavePlants 一个事务里写完，要么全成要么全不成
func (r *GormRepository) SavePlants(ps []models.Plant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range ps {
			if err := tx.Save(&ps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepository) DeletePlant(id string) error {
	return r.db.Delete(&models.Plant{}, "id = ?", id).Error
}

func (r *GormRepository) ListSessions() ([]models.FocusSession, error) {
	var ss []models.FocusSession
	err := r.db.Order("started_at DESC").Find(&ss).Error
	return ss, err
}

func (r *GormRepository) GetActiveSession() (*models.FocusSession, error) {
	id, err := r.getSetting(keyActiveSession)
	if err != nil || id == "" {
		return nil, err
	}
	var s models.FocusSession
	if err := r.db.Take(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 指针悬空就当没有，别让整个花园打不开
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormRepository) SaveSession(s models.FocusSession) error {
	return r.db.Save(&s).Error
}

func (r *GormRepository) SetActiveSession(s *models.FocusSession) error {
	id := ""
	if s != nil {
		id = s.ID
	}
	return r.setSetting(keyActiveSession, id)
}

func (r *GormRepository) ListSeeds() ([]models.Seed, error) {
	var seeds []models.Seed
	err := r.db.Order("obtained_at ASC").Find(&seeds).Error
	return seeds, err
}

func (r *GormRepository) AddSeed(s models.Seed) error {
	return r.db.Create(&s).Error
}

func (r *GormRepository) RemoveSeed(id string) error {
	return r.db.Delete(&models.Seed{}, "id = ?", id).Error
}

func (r *GormRepository) GetMaxSlots() (int, error) {
	return r.getSettingInt(keyMaxSlots, DefaultMaxSlots)
}

func (r *GormRepository) SetMaxSlots(n int) error {
	return r.setSetting(keyMaxSlots, strconv.Itoa(n))
}

func (r *GormRepository) GetFreeGachaCount() (int, error) {
	return r.getSettingInt(keyGachaFreeCount, 0)
}

func (r *GormRepository) SetFreeGachaCount(n int) error {
	return r.setSetting(keyGachaFreeCount, strconv.Itoa(n))
}

func (r *GormRepository) GetGachaLastReset() (time.Time, error) {
	ms, err := r.getSettingInt(keyGachaLastReset, 0)
	if err != nil {
		return time.Time{}, err
	}
	if ms == 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(int64(ms)), nil
}

func (r *GormRepository) SetGachaLastReset(t time.Time) error {
	return r.setSetting(keyGachaLastReset, strconv.FormatInt(t.UnixMilli(), 10))
}

func (r *GormRepository) getSetting(key string) (string, error) {
	var s models.Setting
	err := r.db.Take(&s, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return s.Value, err
}

func (r *GormRepository) getSettingInt(key string, def int) (int, error) {
	v, err := r.getSetting(key)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func (r *GormRepository) setSetting(key, value string) error {
	return r.db.Save(&models.Setting{Key: key, Value: value}).Error
}
