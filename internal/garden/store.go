// Package garden 协调层：加载/保存实体，驱动各个纯引擎
//
// 引擎全是纯函数，所有落库和"同一时间只有一个活跃会话"的约束都在这里管；
// 单写者模型，内部一把锁串行化读-改-写
package garden

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/care"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/gacha"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/pkg/logger"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/repository"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rng"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/session"
)

var (
	ErrNoPlants          = errors.New("no plants growing")
	ErrSessionInProgress = errors.New("a session is already active")
	ErrNoActiveSession   = errors.New("no active session")
	ErrSeedNotFound      = errors.New("seed not found")
	ErrPlantNotFound     = errors.New("plant not found")
	ErrSlotOccupied      = errors.New("slot already occupied")
	ErrSlotOutOfRange    = errors.New("slot index out of range")
	ErrNoFreeDraws       = errors.New("no free gacha draws left today")
)

// Store 花园的应用状态容器，组合根持有一个实例
type Store struct {
	mu   sync.Mutex
	repo repository.Repository
	rng  rng.RNG
	log  *logger.Logger

	// Clock 取当前时间，测试里替换掉
	Clock func() time.Time

	// 上一次会话结束的结算结果，给结果页拉取
	lastResults []models.PlantSessionResult
}

func NewStore(repo repository.Repository, r rng.RNG, log *logger.Logger) *Store {
	return &Store{
		repo:  repo,
		rng:   r,
		log:   log,
		Clock: time.Now,
	}
}

// Plants 当前培养中的全部植物
func (s *Store) Plants() ([]models.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListPlants()
}

// Plant 按 ID 查单株
func (s *Store) Plant(id string) (models.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.repo.GetPlant(id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Plant{}, ErrPlantNotFound
	}
	return p, err
}

// PlantSeed 把种子种进空槽位，消耗种子
func (s *Store) PlantSeed(seedID string, slotIndex int, nickname *string) (models.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	seeds, err := s.repo.ListSeeds()
	if err != nil {
		return models.Plant{}, err
	}
	var seed *models.Seed
	for i := range seeds {
		if seeds[i].ID == seedID {
			seed = &seeds[i]
			break
		}
	}
	if seed == nil {
		return models.Plant{}, ErrSeedNotFound
	}

	maxSlots, err := s.repo.GetMaxSlots()
	if err != nil {
		return models.Plant{}, err
	}
	if slotIndex < 0 || slotIndex >= maxSlots {
		return models.Plant{}, ErrSlotOutOfRange
	}

	plants, err := s.repo.ListPlants()
	if err != nil {
		return models.Plant{}, err
	}
	for _, p := range plants {
		// 枯死的植物在移除前仍占着槽位
		if p.SlotIndex == slotIndex {
			return models.Plant{}, ErrSlotOccupied
		}
	}

	plant := models.Plant{
		ID:        uuid.NewString(),
		SpeciesID: seed.SpeciesID,
		SlotIndex: slotIndex,
		Nickname:  nickname,
		Mutations: models.MutationList{},
		CareState: care.DefaultCareState(now),
		PlantedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.SavePlant(plant); err != nil {
		return models.Plant{}, err
	}
	if err := s.repo.RemoveSeed(seed.ID); err != nil {
		return models.Plant{}, err
	}

	s.log.Info("planted seed", "species", seed.SpeciesID, "slot", slotIndex)
	return plant, nil
}

// DeletePlant 把植物从花园移除（枯死的也要手动移，死亡本身不删档）
func (s *Store) DeletePlant(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.repo.GetPlant(id); errors.Is(err, repository.ErrNotFound) {
		return ErrPlantNotFound
	} else if err != nil {
		return err
	}
	return s.repo.DeletePlant(id)
}

// careAction 读-衰减-动作-写；动作被拒绝时什么都不保存
func (s *Store) careAction(id string, action func(models.Plant, time.Time) (models.Plant, error)) (models.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	p, err := s.repo.GetPlant(id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Plant{}, ErrPlantNotFound
	} else if err != nil {
		return models.Plant{}, err
	}

	// 动作前先把衰减结算到当前时刻，不然刚浇的水又被旧账扣掉
	p = care.ApplyTimeDecay(p, now, s.rng)

	p, err = action(p, now)
	if err != nil {
		return models.Plant{}, err
	}

	if err := s.repo.SavePlant(p); err != nil {
		return models.Plant{}, err
	}
	return p, nil
}

// WaterPlant 浇水
func (s *Store) WaterPlant(id string) (models.Plant, error) {
	return s.careAction(id, care.WaterPlant)
}

// FertilizePlant 施肥
func (s *Store) FertilizePlant(id string) (models.Plant, error) {
	return s.careAction(id, care.FertilizePlant)
}

// CurePlant 治病
func (s *Store) CurePlant(id string) (models.Plant, error) {
	return s.careAction(id, care.CurePlant)
}

// TickDecay 给所有植物结算一次时间衰减，轮询器定期调用
func (s *Store) TickDecay() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	plants, err := s.repo.ListPlants()
	if err != nil {
		return err
	}
	if len(plants) == 0 {
		return nil
	}

	updated := make([]models.Plant, 0, len(plants))
	for _, p := range plants {
		next := care.ApplyTimeDecay(p, now, s.rng)
		if next.IsDead && !p.IsDead {
			s.log.Info("plant died", "plant_id", p.ID, "species", p.SpeciesID)
		}
		updated = append(updated, next)
	}
	// 批量一次写入，见 repository.SavePlants 的原子性要求
	return s.repo.SavePlants(updated)
}

// StartSession 开一个新的专注会话，覆盖当前所有植物
func (s *Store) StartSession(minutes models.SessionMinutes) (models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	active, err := s.repo.GetActiveSession()
	if err != nil {
		return models.FocusSession{}, err
	}
	if active != nil && active.Status == models.StatusActive {
		return models.FocusSession{}, ErrSessionInProgress
	}

	plants, err := s.repo.ListPlants()
	if err != nil {
		return models.FocusSession{}, err
	}
	if len(plants) == 0 {
		return models.FocusSession{}, ErrNoPlants
	}

	sess, err := session.Start(minutes, now)
	if err != nil {
		return models.FocusSession{}, err
	}

	if err := s.repo.SaveSession(sess); err != nil {
		return models.FocusSession{}, err
	}
	if err := s.repo.SetActiveSession(&sess); err != nil {
		return models.FocusSession{}, err
	}

	s.log.Info("session started", "minutes", int(minutes))
	return sess, nil
}

// CurrentSession 活跃会话，没有则为 nil
func (s *Store) CurrentSession() (*models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.GetActiveSession()
}

// CheckCompletion 轮询入口：到点了就结算会话
// 没有活跃会话、或者还没到点，都安静返回 (nil, false, nil)；
// 结算用的是检测时刻的真实时间，不是名义到点时间
func (s *Store) CheckCompletion() ([]models.PlantSessionResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	active, err := s.repo.GetActiveSession()
	if err != nil {
		return nil, false, err
	}
	if active == nil || !session.IsCompleted(*active, now) {
		return nil, false, nil
	}

	return s.settle(*active, now, true)
}

// InterruptSession 用户主动中断，全部植物零结算
func (s *Store) InterruptSession() ([]models.PlantSessionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	active, err := s.repo.GetActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil || active.Status != models.StatusActive {
		return nil, ErrNoActiveSession
	}

	results, _, err := s.settle(*active, now, false)
	return results, err
}

// settle 会话收尾的公共路径，调用方必须已持锁
func (s *Store) settle(sess models.FocusSession, now time.Time, completed bool) ([]models.PlantSessionResult, bool, error) {
	plants, err := s.repo.ListPlants()
	if err != nil {
		return nil, false, err
	}

	var (
		ended   models.FocusSession
		results []models.PlantSessionResult
	)
	if completed {
		ended, results, err = session.Complete(sess, plants, now, s.rng)
	} else {
		ended, results, err = session.Interrupt(sess, plants, now)
	}
	if err != nil {
		return nil, false, err
	}

	updated := session.ApplyResults(plants, results, now)

	if err := s.repo.SaveSession(ended); err != nil {
		return nil, false, err
	}
	if err := s.repo.SetActiveSession(nil); err != nil {
		return nil, false, err
	}
	// 多株植物一次事务写入，避免结算写一半
	if err := s.repo.SavePlants(updated); err != nil {
		return nil, false, err
	}

	s.lastResults = results
	s.log.Info("session settled", "status", string(ended.Status), "plants", len(results))
	return results, true, nil
}

// LastResults 上一次会话的结算结果（结果弹窗用，取完可以 Clear）
func (s *Store) LastResults() []models.PlantSessionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResults
}

// ClearResults 结果页关掉后清空
func (s *Store) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResults = nil
}

// Sessions 历史会话列表
func (s *Store) Sessions() ([]models.FocusSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListSessions()
}

// Seeds 种子库存
func (s *Store) Seeds() ([]models.Seed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListSeeds()
}

// MaxSlots 当前槽位上限
func (s *Store) MaxSlots() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.GetMaxSlots()
}

// DrawGacha 抽一次卡，free 为真时消耗当日免费次数
func (s *Store) DrawGacha(free bool) (models.Seed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Clock()

	if free {
		remaining, err := s.freeRemaining(now)
		if err != nil {
			return models.Seed{}, err
		}
		if remaining <= 0 {
			return models.Seed{}, ErrNoFreeDraws
		}
	}

	seed, err := gacha.Draw(free, s.rng, now)
	if err != nil {
		return models.Seed{}, err
	}
	if err := s.repo.AddSeed(seed); err != nil {
		return models.Seed{}, err
	}

	if free {
		used, err := s.repo.GetFreeGachaCount()
		if err != nil {
			return models.Seed{}, err
		}
		if err := s.repo.SetFreeGachaCount(used + 1); err != nil {
			return models.Seed{}, err
		}
	}

	s.log.Info("gacha draw", "free", free, "species", seed.SpeciesID)
	return seed, nil
}

// FreeGachaRemaining 今天还能免费抽几次
func (s *Store) FreeGachaRemaining() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freeRemaining(s.Clock())
}

// freeRemaining 跨天先把计数清零再算，调用方必须已持锁
func (s *Store) freeRemaining(now time.Time) (int, error) {
	lastReset, err := s.repo.GetGachaLastReset()
	if err != nil {
		return 0, err
	}
	if gacha.ShouldResetFree(lastReset, now) {
		if err := s.repo.SetFreeGachaCount(0); err != nil {
			return 0, err
		}
		if err := s.repo.SetGachaLastReset(now); err != nil {
			return 0, err
		}
		return gacha.FreeDrawsPerDay, nil
	}
	used, err := s.repo.GetFreeGachaCount()
	if err != nil {
		return 0, err
	}
	return gacha.FreeRemaining(lastReset, used, now), nil
}
