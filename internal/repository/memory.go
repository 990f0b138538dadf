package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
)

// Memory 内存仓储，测试用；接口行为和 GormRepository 保持一致
type Memory struct {
	mu sync.Mutex

	plants   map[string]models.Plant
	sessions map[string]models.FocusSession
	seeds    map[string]models.Seed

	activeSessionID string
	maxSlots        int
	freeGachaCount  int
	gachaLastReset  time.Time
}

func NewMemory() *Memory {
	return &Memory{
		plants:   map[string]models.Plant{},
		sessions: map[string]models.FocusSession{},
		seeds:    map[string]models.Seed{},
		maxSlots: DefaultMaxSlots,
	}
}

func (m *Memory) ListPlants() ([]models.Plant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Plant, 0, len(m.plants))
	for _, p := range m.plants {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotIndex < out[j].SlotIndex })
	return out, nil
}

func (m *Memory) GetPlant(id string) (models.Plant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plants[id]
	if !ok {
		return models.Plant{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) SavePlant(p models.Plant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plants[p.ID] = p
	return nil
}

func (m *Memory) SavePlants(ps []models.Plant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range ps {
		m.plants[p.ID] = p
	}
	return nil
}

func (m *Memory) DeletePlant(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.plants, id)
	return nil
}

func (m *Memory) ListSessions() ([]models.FocusSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.FocusSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (m *Memory) GetActiveSession() (*models.FocusSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeSessionID == "" {
		return nil, nil
	}
	s, ok := m.sessions[m.activeSessionID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *Memory) SaveSession(s models.FocusSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *Memory) SetActiveSession(s *models.FocusSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == nil {
		m.activeSessionID = ""
	} else {
		m.activeSessionID = s.ID
	}
	return nil
}

func (m *Memory) ListSeeds() ([]models.Seed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Seed, 0, len(m.seeds))
	for _, s := range m.seeds {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ObtainedAt.Before(out[j].ObtainedAt) })
	return out, nil
}

func (m *Memory) AddSeed(s models.Seed) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeds[s.ID] = s
	return nil
}

func (m *Memory) RemoveSeed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seeds, id)
	return nil
}

func (m *Memory) GetMaxSlots() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxSlots, nil
}

func (m *Memory) SetMaxSlots(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxSlots = n
	return nil
}

func (m *Memory) GetFreeGachaCount() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.freeGachaCount, nil
}

func (m *Memory) SetFreeGachaCount(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.freeGachaCount = n
	return nil
}

func (m *Memory) GetGachaLastReset() (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gachaLastReset, nil
}

func (m *Memory) SetGachaLastReset(t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gachaLastReset = t
	return nil
}
