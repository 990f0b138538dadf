// Package session 专注会话状态机
//
// 纯引擎：时间和随机源都从参数传入，完成/中断只产出新值，落库由上层负责
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rules"
)

var (
	// ErrNotActive 对非 active 会话做 complete/interrupt，属于调用顺序错误，
	// 和养护那边的用户输入错误不是一类，上层要当 bug 处理
	ErrNotActive = errors.New("session is not active")

	// ErrBadMinutes 时长不在 10/25/45/60 四档里
	ErrBadMinutes = errors.New("invalid session minutes")
)

// Start 新建会话，直接就是 active 状态
func Start(minutes models.SessionMinutes, now time.Time) (models.FocusSession, error) {
	if !minutes.Valid() {
		return models.FocusSession{}, ErrBadMinutes
	}
	return models.FocusSession{
		ID:        uuid.NewString(),
		Minutes:   minutes,
		Status:    models.StatusActive,
		StartedAt: now,
	}, nil
}

// Elapsed 已经过去多久
func Elapsed(s models.FocusSession, now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt)
}

// IsCompleted 是否到点了；非 active 一律 false，保证结算不会跑两次
func IsCompleted(s models.FocusSession, now time.Time) bool {
	if s.Status != models.StatusActive {
		return false
	}
	return Elapsed(s, now) >= s.Minutes.Duration()
}

// Progress 进度 0.0-1.0
func Progress(s models.FocusSession, now time.Time) float64 {
	if s.Status != models.StatusActive || s.StartedAt.IsZero() {
		return 0
	}
	p := float64(Elapsed(s, now)) / float64(s.Minutes.Duration())
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Remaining 剩余时间，非 active 为 0
func Remaining(s models.FocusSession, now time.Time) time.Duration {
	if s.Status != models.StatusActive || s.StartedAt.IsZero() {
		return 0
	}
	r := s.Minutes.Duration() - Elapsed(s, now)
	if r < 0 {
		return 0
	}
	return r
}

// Complete 完成会话，给每株植物结算 GP 和突变
//
// 基础 GP 按检测时刻的实际经过时间算（轮询有延迟，名义时长反而不准），
// 抽选次数按名义档位给。每株独立：先乘养护系数取整，再跑突变抽选
func Complete(s models.FocusSession, plants []models.Plant, now time.Time, r rng.RNG) (models.FocusSession, []models.PlantSessionResult, error) {
	if s.Status != models.StatusActive {
		return s, nil, ErrNotActive
	}

	baseGP := rules.GrowthPoints(Elapsed(s, now))

	results := make([]models.PlantSessionResult, 0, len(plants))
	for _, p := range plants {
		mult := careMultiplier(p)
		earned := int(float64(baseGP) * mult)
		results = append(results, models.PlantSessionResult{
			PlantID:     p.ID,
			EarnedGP:    earned,
			NewMutation: rules.RollMutation(p, s.Minutes, r),
		})
	}

	ended := now
	s.Status = models.StatusCompleted
	s.EndedAt = &ended
	return s, results, nil
}

// Interrupt 中断会话，所有植物一律 0 GP、无突变
// 中断就没收全部进度是刻意设计（早期版本按比例给过，后来撤了），不是漏算
func Interrupt(s models.FocusSession, plants []models.Plant, now time.Time) (models.FocusSession, []models.PlantSessionResult, error) {
	if s.Status != models.StatusActive {
		return s, nil, ErrNotActive
	}

	results := make([]models.PlantSessionResult, 0, len(plants))
	for _, p := range plants {
		results = append(results, models.PlantSessionResult{PlantID: p.ID})
	}

	ended := now
	s.Status = models.StatusInterrupted
	s.EndedAt = &ended
	return s, results, nil
}

// ApplyResults 把结算结果套到植物上，没有对应结果的植物原样返回
func ApplyResults(plants []models.Plant, results []models.PlantSessionResult, now time.Time) []models.Plant {
	byID := make(map[string]models.PlantSessionResult, len(results))
	for _, r := range results {
		byID[r.PlantID] = r
	}

	out := make([]models.Plant, 0, len(plants))
	for _, p := range plants {
		res, ok := byID[p.ID]
		if !ok {
			out = append(out, p)
			continue
		}
		p.GrowthPoints += res.EarnedGP
		p.UpdatedAt = now
		if res.NewMutation != "" {
			p = rules.AddMutation(p, res.NewMutation, now)
		}
		out = append(out, p)
	}
	return out
}

// careMultiplier 照顾得不好 GP 打折，多个减益相乘
func careMultiplier(p models.Plant) float64 {
	if p.IsDead {
		return 0
	}

	mult := 1.0

	if p.WaterLevel < 30 {
		mult *= 0.3
	} else if p.WaterLevel < 50 {
		mult *= 0.7
	}

	if p.NutritionLevel < 20 {
		mult *= 0.3
	} else if p.NutritionLevel < 40 {
		mult *= 0.7
	}

	if p.HasDisease() {
		mult *= 0.5
	}

	if p.Health < 30 {
		mult *= 0.2
	} else if p.Health < 60 {
		mult *= 0.6
	}

	return mult
}
