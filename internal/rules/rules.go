// Package rules 成长与突变的纯规则函数，不做任何 IO
package rules

import (
	"time"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
)

const (
	// FullGrowthGP 完全长成需要的 GP
	FullGrowthGP = 120

	// 每满 10 分钟积 1 GP
	gpBlock = 10 * time.Minute

	// 单次抽选命中概率 0.5%
	mutationChance = 0.005
)

// rollsTable 名义时长 -> 抽选次数
var rollsTable = map[models.SessionMinutes]int{
	models.Minutes10: 1,
	models.Minutes25: 2,
	models.Minutes45: 3,
	models.Minutes60: 4,
}

// GrowthPoints 经过时间换算成获得的 GP，不满 10 分钟的部分舍去
// 注意这里传的是实际经过时间，中断场景不能传名义时长
func GrowthPoints(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / gpBlock)
}

// GrowthPercentage 成长度百分比（0-100，封顶）
func GrowthPercentage(gp int) float64 {
	p := float64(gp) / FullGrowthGP * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// IsFullyGrown 是否完全长成
func IsFullyGrown(gp int) bool {
	return gp >= FullGrowthGP
}

// RollsForSession 该档位给几次抽选机会（按名义时长，不看实际经过时间）
func RollsForSession(m models.SessionMinutes) int {
	return rollsTable[m]
}

// RollMutation 跑突变抽选，返回新获得的变异 ID，没抽中返回空串
//
// 规则：
//   - 最多 RollsForSession(m) 次独立抽选，每次消耗一个随机值
//   - 第一次命中后再消耗一个随机值选变异种类，之后立刻结束（剩余次数作废）
//   - 抽中已持有的变异时直接返回空串，这次命中浪费掉，不重抽
//
// 随机值的消耗顺序和数量是约定好的，测试依赖它，不能改
func RollMutation(p models.Plant, m models.SessionMinutes, r rng.RNG) models.MutationID {
	rolls := RollsForSession(m)
	for i := 0; i < rolls; i++ {
		if r.Float64() >= mutationChance {
			continue
		}
		// 命中，抽一个变异种类
		idx := int(r.Float64() * float64(len(models.AllMutationIDs)))
		mutation := models.AllMutationIDs[idx]
		if p.Mutations.Contains(mutation) {
			return ""
		}
		return mutation
	}
	return ""
}

// AddMutation 给植物加变异；已持有时原样返回（值相等，调用方靠这个判断 no-op）
func AddMutation(p models.Plant, id models.MutationID, now time.Time) models.Plant {
	if p.Mutations.Contains(id) {
		return p
	}
	next := make(models.MutationList, 0, len(p.Mutations)+1)
	next = append(next, p.Mutations...)
	next = append(next, id)
	p.Mutations = next
	p.UpdatedAt = now
	return p
}
