package garden_test

import (
	"testing"
	"time"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/garden"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/pkg/logger"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/repository"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// newStore 固定时钟 + 固定随机源（0.99 永远抽不中任何概率事件）
func newStore(t *testing.T, r rng.RNG) (*garden.Store, *repository.Memory, *time.Time) {
	t.Helper()
	repo := repository.NewMemory()
	s := garden.NewStore(repo, r, logger.Init("test"))
	now := t0
	s.Clock = func() time.Time { return now }
	return s, repo, &now
}

func plantSeed(t *testing.T, s *garden.Store, repo *repository.Memory, slot int) models.Plant {
	t.Helper()
	seed := models.Seed{ID: "seed-" + string(rune('a'+slot)), SpeciesID: "pothos", ObtainedAt: t0}
	if err := repo.AddSeed(seed); err != nil {
		t.Fatal(err)
	}
	p, err := s.PlantSeed(seed.ID, slot, nil)
	if err != nil {
		t.Fatalf("plant seed: %v", err)
	}
	return p
}

func TestPlantSeed(t *testing.T) {
	s, repo, _ := newStore(t, rng.Fixed(0.99))

	p := plantSeed(t, s, repo, 0)
	if p.SpeciesID != "pothos" || p.SlotIndex != 0 {
		t.Errorf("unexpected plant: %+v", p)
	}
	if p.WaterLevel != 70 || p.Health != 100 {
		t.Errorf("care state not initialized: %+v", p.CareState)
	}

	// 种子要被消耗
	seeds, _ := s.Seeds()
	if len(seeds) != 0 {
		t.Errorf("seed not consumed, %d left", len(seeds))
	}
}

func TestPlantSeed_Rejections(t *testing.T) {
	s, repo, _ := newStore(t, rng.Fixed(0.99))

	if _, err := s.PlantSeed("ghost", 0, nil); err != garden.ErrSeedNotFound {
		t.Errorf("expected ErrSeedNotFound, got %v", err)
	}

	repo.AddSeed(models.Seed{ID: "s1", SpeciesID: "mint", ObtainedAt: t0})
	if _, err := s.PlantSeed("s1", 3, nil); err != garden.ErrSlotOutOfRange {
		t.Errorf("expected ErrSlotOutOfRange, got %v", err)
	}
	if _, err := s.PlantSeed("s1", -1, nil); err != garden.ErrSlotOutOfRange {
		t.Errorf("expected ErrSlotOutOfRange, got %v", err)
	}

	plantSeed(t, s, repo, 0)
	if _, err := s.PlantSeed("s1", 0, nil); err != garden.ErrSlotOccupied {
		t.Errorf("expected ErrSlotOccupied, got %v", err)
	}

	// 被拒绝的种子不能被消耗
	seeds, _ := s.Seeds()
	if len(seeds) != 1 {
		t.Errorf("rejected plant must keep the seed, %d left", len(seeds))
	}
}

func TestDeletePlant(t *testing.T) {
	s, repo, _ := newStore(t, rng.Fixed(0.99))
	p := plantSeed(t, s, repo, 0)

	if err := s.DeletePlant(p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.DeletePlant(p.ID); err != garden.ErrPlantNotFound {
		t.Errorf("expected ErrPlantNotFound, got %v", err)
	}
}

func TestWaterPlant_SettlesDecayFirst(t *testing.T) {
	s, repo, now := newStore(t, rng.Fixed(0.99))
	p := plantSeed(t, s, repo, 0)

	// 一小时后浇水：先扣 3 再加 40，封顶 100
	*now = t0.Add(time.Hour)
	got, err := s.WaterPlant(p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.WaterLevel != 100 {
		t.Errorf("water = %v, want 100", got.WaterLevel)
	}
	if !got.LastCareCheckAt.Equal(*now) {
		t.Error("decay not settled before the action")
	}

	saved, _ := s.Plant(p.ID)
	if saved.WaterLevel != 100 {
		t.Error("watered state not persisted")
	}
}

func TestCurePlant_RejectionDoesNotSave(t *testing.T) {
	s, repo, now := newStore(t, rng.Fixed(0.99))
	p := plantSeed(t, s, repo, 0)

	*now = t0.Add(time.Hour)
	if _, err := s.CurePlant(p.ID); err == nil {
		t.Fatal("curing a healthy plant must fail")
	}

	// 动作被拒时连衰减也不落库
	saved, _ := s.Plant(p.ID)
	if !saved.LastCareCheckAt.Equal(t0) {
		t.Error("rejected action must not persist anything")
	}
}

func TestTickDecay(t *testing.T) {
	s, repo, now := newStore(t, rng.Fixed(0.99))
	p1 := plantSeed(t, s, repo, 0)
	p2 := plantSeed(t, s, repo, 1)

	*now = t0.Add(time.Hour)
	if err := s.TickDecay(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{p1.ID, p2.ID} {
		saved, _ := s.Plant(id)
		if saved.WaterLevel != 67 {
			t.Errorf("plant %s water = %v, want 67", id, saved.WaterLevel)
		}
	}
}

func TestStartSession(t *testing.T) {
	s, repo, _ := newStore(t, rng.Fixed(0.99))

	if _, err := s.StartSession(models.Minutes10); err != garden.ErrNoPlants {
		t.Fatalf("expected ErrNoPlants, got %v", err)
	}

	plantSeed(t, s, repo, 0)
	sess, err := s.StartSession(models.Minutes10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Status != models.StatusActive {
		t.Errorf("status = %q", sess.Status)
	}

	cur, _ := s.CurrentSession()
	if cur == nil || cur.ID != sess.ID {
		t.Error("active session not stored")
	}

	if _, err := s.StartSession(models.Minutes25); err != garden.ErrSessionInProgress {
		t.Errorf("expected ErrSessionInProgress, got %v", err)
	}
}

func TestCheckCompletion(t *testing.T) {
	s, repo, now := newStore(t, rng.Fixed(0.99))
	p := plantSeed(t, s, repo, 0)
	s.StartSession(models.Minutes10)

	// 还没到点
	*now = t0.Add(9 * time.Minute)
	if _, done, err := s.CheckCompletion(); err != nil || done {
		t.Fatalf("premature settle: done=%v err=%v", done, err)
	}

	// 到点结算：满养护 10 分钟 = 1 GP
	*now = t0.Add(10 * time.Minute)
	results, done, err := s.CheckCompletion()
	if err != nil || !done {
		t.Fatalf("settle failed: done=%v err=%v", done, err)
	}
	if len(results) != 1 || results[0].EarnedGP != 1 {
		t.Errorf("unexpected results: %+v", results)
	}

	saved, _ := s.Plant(p.ID)
	if saved.GrowthPoints != 1 {
		t.Errorf("gp = %d, want 1", saved.GrowthPoints)
	}
	cur, _ := s.CurrentSession()
	if cur != nil {
		t.Error("active session must be cleared")
	}
	if got := s.LastResults(); len(got) != 1 {
		t.Error("last results not kept")
	}

	// 二次轮询必须幂等，不能重复发 GP
	if _, done, _ := s.CheckCompletion(); done {
		t.Error("second poll must be a no-op")
	}
	saved, _ = s.Plant(p.ID)
	if saved.GrowthPoints != 1 {
		t.Errorf("gp double-settled: %d", saved.GrowthPoints)
	}

	s.ClearResults()
	if got := s.LastResults(); got != nil {
		t.Error("results not cleared")
	}
}

func TestInterruptSession(t *testing.T) {
	s, repo, now := newStore(t, rng.Fixed(0.99))
	p := plantSeed(t, s, repo, 0)

	if _, err := s.InterruptSession(); err != garden.ErrNoActiveSession {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	s.StartSession(models.Minutes25)
	*now = t0.Add(20 * time.Minute)

	results, err := s.InterruptSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].EarnedGP != 0 {
		t.Errorf("interrupt must forfeit GP: %+v", results)
	}

	saved, _ := s.Plant(p.ID)
	if saved.GrowthPoints != 0 {
		t.Errorf("gp = %d, want 0", saved.GrowthPoints)
	}
	cur, _ := s.CurrentSession()
	if cur != nil {
		t.Error("active session must be cleared")
	}

	sessions, _ := s.Sessions()
	if len(sessions) != 1 || sessions[0].Status != models.StatusInterrupted {
		t.Errorf("unexpected history: %+v", sessions)
	}
}

func TestDrawGacha_FreeQuota(t *testing.T) {
	s, _, now := newStore(t, rng.Fixed(0.0)) // 永远 common 第一个

	for i := 0; i < 5; i++ {
		if _, err := s.DrawGacha(true); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
	}
	if _, err := s.DrawGacha(true); err != garden.ErrNoFreeDraws {
		t.Fatalf("expected ErrNoFreeDraws, got %v", err)
	}

	// 付费不受限
	if _, err := s.DrawGacha(false); err != nil {
		t.Fatalf("paid draw: %v", err)
	}

	remaining, err := s.FreeGachaRemaining()
	if err != nil || remaining != 0 {
		t.Fatalf("remaining = %d err=%v", remaining, err)
	}

	// 跨天回满
	*now = t0.Add(24 * time.Hour)
	remaining, _ = s.FreeGachaRemaining()
	if remaining != 5 {
		t.Errorf("next day remaining = %d, want 5", remaining)
	}
	if _, err := s.DrawGacha(true); err != nil {
		t.Errorf("next day draw: %v", err)
	}

	seeds, _ := s.Seeds()
	if len(seeds) != 7 {
		t.Errorf("seed count = %d, want 7", len(seeds))
	}
}
