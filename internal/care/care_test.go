package care_test

import (
	"math"
	"testing"
	"time"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/care"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
)

var t0 = time.UnixMilli(1_700_000_000_000)

func healthyPlant() models.Plant {
	return models.Plant{
		ID:        "p1",
		SpeciesID: "pothos",
		CareState: care.DefaultCareState(t0),
		PlantedAt: t0,
		UpdatedAt: t0,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApplyTimeDecay_OneQuietHour(t *testing.T) {
	p := healthyPlant()
	now := t0.Add(time.Hour)

	got := care.ApplyTimeDecay(p, now, rng.Fixed(0.99))

	if !almostEqual(got.WaterLevel, 67) {
		t.Errorf("water = %v, want 67", got.WaterLevel)
	}
	if !almostEqual(got.NutritionLevel, 69) {
		t.Errorf("nutrition = %v, want 69", got.NutritionLevel)
	}
	if !almostEqual(got.Health, 100) {
		t.Errorf("health = %v, want 100 (no threshold crossed)", got.Health)
	}
	if got.HasDisease() || got.IsDead {
		t.Error("plant should stay healthy")
	}
	if !got.LastCareCheckAt.Equal(now) {
		t.Error("LastCareCheckAt not advanced")
	}
}

func TestApplyTimeDecay_DeadPlantUntouched(t *testing.T) {
	p := healthyPlant()
	p.IsDead = true
	p.Health = 0

	got := care.ApplyTimeDecay(p, t0.Add(48*time.Hour), rng.Fixed(0.0))
	if !got.LastCareCheckAt.Equal(t0) {
		t.Error("dead plant must not be processed")
	}
	if got.WaterLevel != p.WaterLevel {
		t.Error("dead plant state must not change")
	}
}

func TestApplyTimeDecay_LowWaterHurts(t *testing.T) {
	p := healthyPlant()
	p.WaterLevel = 30
	now := t0.Add(time.Hour)

	got := care.ApplyTimeDecay(p, now, rng.Fixed(0.99))

	// 水 30-3=27，缺口 3，扣 3*0.1*1=0.3
	if !almostEqual(got.WaterLevel, 27) {
		t.Errorf("water = %v, want 27", got.WaterLevel)
	}
	if !almostEqual(got.Health, 99.7) {
		t.Errorf("health = %v, want 99.7", got.Health)
	}
}

func TestApplyTimeDecay_LowNutritionHurts(t *testing.T) {
	p := healthyPlant()
	p.NutritionLevel = 20
	now := t0.Add(time.Hour)

	got := care.ApplyTimeDecay(p, now, rng.Fixed(0.99))

	// 营养 20-1=19，缺口 1，扣 1*0.05=0.05
	if !almostEqual(got.NutritionLevel, 19) {
		t.Errorf("nutrition = %v, want 19", got.NutritionLevel)
	}
	if !almostEqual(got.Health, 99.95) {
		t.Errorf("health = %v, want 99.95", got.Health)
	}
}

func TestApplyTimeDecay_RootRot(t *testing.T) {
	p := healthyPlant()
	p.WaterLevel = 95
	now := t0.Add(time.Hour)

	// 衰减后水 92 > 90，第一个随机值 0.0 < 0.05 -> 烂根
	// 染病扣 20，再吃 5/小时的持续掉血
	got := care.ApplyTimeDecay(p, now, rng.NewSequence(0.0))

	if got.Disease != models.DiseaseRootRot {
		t.Errorf("disease = %q, want root_rot", got.Disease)
	}
	if !almostEqual(got.Health, 75) {
		t.Errorf("health = %v, want 75 (100-20-5)", got.Health)
	}
}

func TestApplyTimeDecay_RandomDisease(t *testing.T) {
	p := healthyPlant()
	now := t0.Add(time.Hour)

	// 水 67 不超标，不走烂根分支；第一个值 0.005 < 0.01 染病，
	// 第二个值 0.5*3 -> 下标 1 = fungus；扣 15 再扣 5
	got := care.ApplyTimeDecay(p, now, rng.NewSequence(0.005, 0.5))

	if got.Disease != models.DiseaseFungus {
		t.Errorf("disease = %q, want fungus", got.Disease)
	}
	if !almostEqual(got.Health, 80) {
		t.Errorf("health = %v, want 80", got.Health)
	}
}

func TestApplyTimeDecay_DiseaseAttrition(t *testing.T) {
	p := healthyPlant()
	p.Disease = models.DiseasePest
	now := t0.Add(2 * time.Hour)

	// 已带病：不再抽染病，持续掉血 5*2=10
	r := rng.NewSequence(0.0)
	got := care.ApplyTimeDecay(p, now, r)

	if !almostEqual(got.Health, 90) {
		t.Errorf("health = %v, want 90", got.Health)
	}
	if r.Consumed() != 0 {
		t.Errorf("diseased plant must not draw rng, consumed %d", r.Consumed())
	}
}

func TestApplyTimeDecay_DeathAtZeroHealth(t *testing.T) {
	p := healthyPlant()
	p.Disease = models.DiseasePest
	p.Health = 8
	now := t0.Add(2 * time.Hour)

	got := care.ApplyTimeDecay(p, now, rng.Fixed(0.99))

	if !got.IsDead {
		t.Error("plant should be dead")
	}
	if got.Health != 0 {
		t.Errorf("health = %v, want 0 (floored)", got.Health)
	}
}

func TestWaterPlant(t *testing.T) {
	p := healthyPlant()
	now := t0.Add(time.Minute)

	got, err := care.WaterPlant(p, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.WaterLevel != 100 {
		t.Errorf("water = %v, want 100 (70+40 capped)", got.WaterLevel)
	}
	if got.LastWateredAt == nil || !got.LastWateredAt.Equal(now) {
		t.Error("LastWateredAt not set")
	}
}

func TestWaterPlant_DeadRejected(t *testing.T) {
	p := healthyPlant()
	p.IsDead = true
	if _, err := care.WaterPlant(p, t0); err != care.ErrPlantDead {
		t.Fatalf("expected ErrPlantDead, got %v", err)
	}
}

func TestFertilizePlant(t *testing.T) {
	p := healthyPlant()
	p.NutritionLevel = 30

	got, err := care.FertilizePlant(p, t0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NutritionLevel != 80 {
		t.Errorf("nutrition = %v, want 80", got.NutritionLevel)
	}
	if got.LastFertilizedAt == nil {
		t.Error("LastFertilizedAt not set")
	}
}

func TestFertilizePlant_DeadRejected(t *testing.T) {
	p := healthyPlant()
	p.IsDead = true
	if _, err := care.FertilizePlant(p, t0); err != care.ErrPlantDead {
		t.Fatalf("expected ErrPlantDead, got %v", err)
	}
}

func TestCurePlant(t *testing.T) {
	p := healthyPlant()
	p.Disease = models.DiseaseFungus
	p.Health = 50

	got, err := care.CurePlant(p, t0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Health != 80 {
		t.Errorf("health = %v, want 80", got.Health)
	}
	if got.HasDisease() {
		t.Error("disease not cleared")
	}
}

func TestCurePlant_Rejections(t *testing.T) {
	p := healthyPlant()
	if _, err := care.CurePlant(p, t0); err != care.ErrNotDiseased {
		t.Fatalf("expected ErrNotDiseased, got %v", err)
	}

	p.IsDead = true
	p.Disease = models.DiseasePest
	if _, err := care.CurePlant(p, t0); err != care.ErrPlantDead {
		t.Fatalf("expected ErrPlantDead, got %v", err)
	}
}

func TestPlantCondition_Priority(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*models.Plant)
		want care.Condition
	}{
		{"dead wins over everything", func(p *models.Plant) {
			p.IsDead = true
			p.Disease = models.DiseasePest
			p.Health = 0
		}, care.ConditionDead},
		{"disease before critical", func(p *models.Plant) {
			p.Disease = models.DiseasePest
			p.Health = 10
		}, care.ConditionDiseased},
		{"critical before thirsty", func(p *models.Plant) {
			p.Health = 10
			p.WaterLevel = 5
		}, care.ConditionCritical},
		{"thirsty", func(p *models.Plant) { p.WaterLevel = 20 }, care.ConditionThirsty},
		{"malnourished", func(p *models.Plant) { p.NutritionLevel = 10 }, care.ConditionMalnourished},
		{"weak", func(p *models.Plant) { p.Health = 40 }, care.ConditionWeak},
		{"ok", func(p *models.Plant) { p.Health = 70 }, care.ConditionOK},
		{"healthy", func(p *models.Plant) {}, care.ConditionHealthy},
	}
	for _, c := range cases {
		p := healthyPlant()
		c.mod(&p)
		if got := care.PlantCondition(p); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestNeedsPredicates(t *testing.T) {
	p := healthyPlant()
	p.WaterLevel = 40
	p.NutritionLevel = 20
	p.Disease = models.DiseasePest

	if !care.NeedsWater(p) || !care.NeedsFertilizer(p) || !care.NeedsCure(p) {
		t.Error("all needs should be true")
	}

	p.IsDead = true
	if care.NeedsWater(p) || care.NeedsFertilizer(p) || care.NeedsCure(p) {
		t.Error("dead plant needs nothing")
	}
}

func TestDefaultCareState(t *testing.T) {
	cs := care.DefaultCareState(t0)
	if cs.WaterLevel != 70 || cs.NutritionLevel != 70 || cs.Health != 100 {
		t.Errorf("unexpected defaults: %+v", cs)
	}
	if cs.HasDisease() || cs.IsDead {
		t.Error("new plant should be clean")
	}
	if !cs.LastCareCheckAt.Equal(t0) {
		t.Error("LastCareCheckAt should start at now")
	}
}
