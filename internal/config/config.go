package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string // 运行环境：dev 或 prod
	Addr      string // 服务绑定地址，例如 :3002
	JWTSecret string // JWT 签名密钥（游客身份用）
	// Postgres 数据库配置
	PGUser string
	PGPass string
	PGDB   string
	PGHost string
	PGPort string
}

// Load 从 .env 文件和环境变量读取配置
// 优先级：环境变量 > .env 文件 > 默认值
func Load() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		Env:       get("ENV", "dev"),
		Addr:      get("ADDR", ":3002"),
		JWTSecret: get("JWT_SECRET", "dev-guest-secret"),
		PGUser:    get("PGUSER", "app"),
		PGPass:    get("PGPASSWORD", "app"),
		PGDB:      get("PGDATABASE", "gardendb"),
		PGHost:    get("PGHOST", "localhost"),
		PGPort:    get("PGPORT", "5432"),
	}
	return c, nil
}

// DSN GORM 的 PostgreSQL 驱动数据源格式
// sslmode=disable 只用于开发环境
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Shanghai",
		c.PGHost, c.PGUser, c.PGPass, c.PGDB, c.PGPort,
	)
}

// get 读环境变量，为空就给默认值
func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
