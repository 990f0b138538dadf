// Package gacha 抽卡引擎：稀有度加权抽取 + 同稀有度内均匀选种
package gacha

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
)

// FreeDrawsPerDay 每天免费抽卡次数
const FreeDrawsPerDay = 5

var ErrNoSpeciesForRarity = errors.New("no species for rarity")

// RollRarityFree 免费池：common 85% / rare 13% / epic 2%
func RollRarityFree(r rng.RNG) models.Rarity {
	roll := r.Float64()
	if roll < 0.85 {
		return models.RarityCommon
	}
	if roll < 0.98 {
		return models.RarityRare
	}
	return models.RarityEpic
}

// RollRarityPaid 付费池：common 70% / rare 25% / epic 5%
func RollRarityPaid(r rng.RNG) models.Rarity {
	roll := r.Float64()
	if roll < 0.70 {
		return models.RarityCommon
	}
	if roll < 0.95 {
		return models.RarityRare
	}
	return models.RarityEpic
}

// SelectSpecies 在该稀有度里均匀抽一个种
func SelectSpecies(rarity models.Rarity, r rng.RNG) (string, error) {
	candidates := models.SpeciesByRarity(rarity)
	if len(candidates) == 0 {
		return "", ErrNoSpeciesForRarity
	}
	idx := int(r.Float64() * float64(len(candidates)))
	return candidates[idx].ID, nil
}

// Draw 抽一次，产出一颗种子
func Draw(free bool, r rng.RNG, now time.Time) (models.Seed, error) {
	var rarity models.Rarity
	if free {
		rarity = RollRarityFree(r)
	} else {
		rarity = RollRarityPaid(r)
	}

	speciesID, err := SelectSpecies(rarity, r)
	if err != nil {
		return models.Seed{}, err
	}

	return models.Seed{
		ID:         uuid.NewString(),
		SpeciesID:  speciesID,
		ObtainedAt: now,
	}, nil
}

// FreeRemaining 今天还剩几次免费抽卡；跨天自动回满
func FreeRemaining(lastReset time.Time, used int, now time.Time) int {
	if !sameDay(lastReset, now) {
		return FreeDrawsPerDay
	}
	rest := FreeDrawsPerDay - used
	if rest < 0 {
		return 0
	}
	return rest
}

// ShouldResetFree 是不是该重置免费次数了
func ShouldResetFree(lastReset, now time.Time) bool {
	return !sameDay(lastReset, now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
