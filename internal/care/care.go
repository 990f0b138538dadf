// Package care 养护与衰减引擎：把植物的水分/营养/健康沿真实时间向前推演
package care

import (
	"errors"
	"time"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
)

var (
	ErrPlantDead   = errors.New("plant is dead")
	ErrNotDiseased = errors.New("plant has no disease")
)

const (
	// 每小时衰减量
	waterDecayPerHour     = 3.0
	nutritionDecayPerHour = 1.0

	// 低于阈值开始扣健康
	waterLowThreshold     = 30.0
	nutritionLowThreshold = 20.0

	// 水分过高会有烂根风险
	waterHighThreshold = 90.0

	healthCriticalThreshold = 20.0

	// 每小时染病概率
	diseaseChancePerHour = 0.01
	rootRotChancePerHour = 0.05

	// 单次养护动作的回复量
	waterRestoreAmount     = 40.0
	nutritionRestoreAmount = 50.0
	cureHealthRestore      = 30.0
)

// ApplyTimeDecay 把植物状态从 LastCareCheckAt 推演到 now，死株不处理
//
// 步骤要按顺序执行：同一次结算里，前面算出的水分会影响后面的扣血，
// 刚染上的病也会马上开始吃持续掉血
func ApplyTimeDecay(p models.Plant, now time.Time, r rng.RNG) models.Plant {
	if p.IsDead {
		return p
	}

	elapsedHours := now.Sub(p.LastCareCheckAt).Hours()

	water := floor0(p.WaterLevel - waterDecayPerHour*elapsedHours)
	nutrition := floor0(p.NutritionLevel - nutritionDecayPerHour*elapsedHours)
	health := p.Health
	disease := p.Disease

	// 缺水扣血，缺得越狠扣得越多
	if water < waterLowThreshold {
		health = floor0(health - (waterLowThreshold-water)*0.1*elapsedHours)
	}

	// 缺营养扣血
	if nutrition < nutritionLowThreshold {
		health = floor0(health - (nutritionLowThreshold-nutrition)*0.05*elapsedHours)
	}

	// 浇太多水，没病的情况下有概率烂根
	if water > waterHighThreshold && disease == models.DiseaseNone {
		if r.Float64() < rootRotChancePerHour*elapsedHours {
			disease = models.DiseaseRootRot
			health = floor0(health - 20)
		}
	}

	// 没病且还活着，小概率随机染病（再消耗一个随机值选病种）
	if disease == models.DiseaseNone && health > 0 {
		if r.Float64() < diseaseChancePerHour*elapsedHours {
			idx := int(r.Float64() * float64(len(models.RandomDiseaseTypes)))
			disease = models.RandomDiseaseTypes[idx]
			health = floor0(health - 15)
		}
	}

	// 带病持续掉血，包括这一轮刚染上的
	if disease != models.DiseaseNone {
		health = floor0(health - 5*elapsedHours)
	}

	p.WaterLevel = cap100(water)
	p.NutritionLevel = cap100(nutrition)
	p.Health = cap100(health)
	p.Disease = disease
	p.IsDead = health <= 0
	p.LastCareCheckAt = now
	p.UpdatedAt = now
	return p
}

// WaterPlant 浇水，死株拒绝
func WaterPlant(p models.Plant, now time.Time) (models.Plant, error) {
	if p.IsDead {
		return p, ErrPlantDead
	}
	p.WaterLevel = cap100(p.WaterLevel + waterRestoreAmount)
	t := now
	p.LastWateredAt = &t
	p.UpdatedAt = now
	return p, nil
}

// FertilizePlant 施肥，死株拒绝
func FertilizePlant(p models.Plant, now time.Time) (models.Plant, error) {
	if p.IsDead {
		return p, ErrPlantDead
	}
	p.NutritionLevel = cap100(p.NutritionLevel + nutritionRestoreAmount)
	t := now
	p.LastFertilizedAt = &t
	p.UpdatedAt = now
	return p, nil
}

// CurePlant 治病，死株或没病都拒绝
func CurePlant(p models.Plant, now time.Time) (models.Plant, error) {
	if p.IsDead {
		return p, ErrPlantDead
	}
	if !p.HasDisease() {
		return p, ErrNotDiseased
	}
	p.Health = cap100(p.Health + cureHealthRestore)
	p.Disease = models.DiseaseNone
	p.UpdatedAt = now
	return p, nil
}

// Condition 植物状态标签，给客户端直接展示
type Condition string

const (
	ConditionDead         Condition = "dead"
	ConditionDiseased     Condition = "diseased"
	ConditionCritical     Condition = "critical"
	ConditionThirsty      Condition = "thirsty"
	ConditionMalnourished Condition = "malnourished"
	ConditionWeak         Condition = "weak"
	ConditionOK           Condition = "ok"
	ConditionHealthy      Condition = "healthy"
)

// PlantCondition 按优先级判定状态标签，每株只有一个
func PlantCondition(p models.Plant) Condition {
	switch {
	case p.IsDead:
		return ConditionDead
	case p.HasDisease():
		return ConditionDiseased
	case p.Health < healthCriticalThreshold:
		return ConditionCritical
	case p.WaterLevel < waterLowThreshold:
		return ConditionThirsty
	case p.NutritionLevel < nutritionLowThreshold:
		return ConditionMalnourished
	case p.Health < 50:
		return ConditionWeak
	case p.Health < 80:
		return ConditionOK
	default:
		return ConditionHealthy
	}
}

// NeedsWater 水分低于 50 就该浇了
func NeedsWater(p models.Plant) bool {
	return !p.IsDead && p.WaterLevel < 50
}

// NeedsFertilizer 营养低于 30 该施肥
func NeedsFertilizer(p models.Plant) bool {
	return !p.IsDead && p.NutritionLevel < 30
}

// NeedsCure 生病了就该治
func NeedsCure(p models.Plant) bool {
	return !p.IsDead && p.HasDisease()
}

// DefaultCareState 新种下植物的初始养护状态
func DefaultCareState(now time.Time) models.CareState {
	return models.CareState{
		WaterLevel:      70,
		NutritionLevel:  70,
		Health:          100,
		Disease:         models.DiseaseNone,
		LastCareCheckAt: now,
		IsDead:          false,
	}
}

func floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func cap100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
