package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/config"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/database"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/garden"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/handlers"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/pkg/logger"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/pkg/middleware"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/repository"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/pkg/util"
)

func main() {
	cfg, _ := config.Load()
	log := logger.Init(cfg.Env)
	gin.SetMode(gin.ReleaseMode)

	// 初始化数据库连接并跑迁移
	gormDB, err := database.InitGorm(cfg)
	if err != nil {
		log.Fatal("db init error", "error", err)
	}

	// 组合根：仓储 + 随机源 + 协调层，所有状态都挂在 store 上，没有全局单例
	repo := repository.NewGorm(gormDB)
	store := garden.NewStore(repo, rng.Default(), log)
	g := handlers.NewGarden(store)

	r := gin.New()
	r.Use(gin.Recovery())         // 捕获 panic 返回 500
	r.Use(util.Cors())            // 跨域支持
	r.Use(middleware.RateLimit()) // 限流

	// 健康检查
	r.GET("/api/v1/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "ts": time.Now().Unix()})
	})

	// 游客登录
	r.POST("/guest-login", handlers.GuestLogin(cfg))

	api := r.Group("/api/v1", middleware.JWTAuth(cfg.JWTSecret))

	// 植物与养护
	api.GET("/plants", g.ListPlants)
	api.POST("/plants", g.PlantSeed) // 种下种子
	api.GET("/plants/:id", g.GetPlant)
	api.DELETE("/plants/:id", g.DeletePlant)
	api.POST("/plants/:id/water", g.WaterPlant)
	api.POST("/plants/:id/fertilize", g.FertilizePlant)
	api.POST("/plants/:id/cure", g.CurePlant)

	// 专注会话
	api.POST("/sessions/start", g.StartSession)
	api.POST("/sessions/interrupt", g.InterruptSession)
	api.GET("/sessions/current", g.CurrentSession)
	api.GET("/sessions", g.ListSessions)
	api.GET("/sessions/results", g.LastResults)
	api.POST("/sessions/results/clear", g.ClearResults)

	// 抽卡与种子
	api.POST("/gacha/draw", g.DrawGacha)
	api.GET("/gacha/status", g.GachaStatus)
	api.GET("/seeds", g.ListSeeds)
	api.GET("/species", g.ListSpecies)

	// 轮询器：秒级查会话到点，分钟级结算衰减
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go garden.NewPoller(store).Run(ctx)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	go func() {
		log.Info("listen on", "addr", cfg.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
