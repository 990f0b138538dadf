package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/config"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
)

// InitGorm 初始化 GORM 连接并自动迁移
// AutoMigrate 只会加表加列，不会删字段
func InitGorm(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	// Plant：植物；FocusSession：专注会话；Seed：种子；Setting：键值设置
	if err := db.AutoMigrate(
		&models.Plant{},
		&models.FocusSession{},
		&models.Seed{},
		&models.Setting{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
