package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fairychess/internal/engine"
	"fairychess/internal/fairy"
)

var ErrNotFound = errors.New("game not found")

// Manager 内存里的对局表，本地跑给人玩足够了。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	// 新对局的默认设置
	Level     engine.Difficulty
	TimeLimit time.Duration
}

func NewManager() *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		Level: engine.Medium,
	}
}

// NewGame 按变体名开局，名字为空时用标准国际象棋。fen 非空时从该局面开始。
func (m *Manager) NewGame(variant, fen string, level engine.Difficulty) (*GameState, error) {
	if variant == "" {
		variant = "standard"
	}
	v, err := fairy.LookupVariant(variant)
	if err != nil {
		return nil, err
	}
	var g *fairy.Game
	if fen == "" {
		g, err = fairy.NewGameFromVariant(v)
	} else {
		g, err = fairy.ParsePosition(v, fen)
	}
	if err != nil {
		return nil, err
	}

	opp := engine.NewOpponent(level, time.Now().UnixNano())
	opp.TimeLimit = m.TimeLimit

	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		Variant:   v.Name,
		Game:      g,
		Opponent:  opp,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
}

// IDs 按创建时间排序。
func (m *Manager) IDs() []string {
	m.mu.RLock()
	states := make([]*GameState, 0, len(m.games))
	for _, s := range m.games {
		states = append(states, s)
	}
	m.mu.RUnlock()

	sort.Slice(states, func(i, j int) bool { return states[i].CreatedAt.Before(states[j].CreatedAt) })
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = s.ID
	}
	return ids
}

// Prune 删掉超过 maxAge 没动过的对局，返回删除数量。
func (m *Manager) Prune(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.games {
		s.mu.Lock()
		stale := s.UpdatedAt.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(m.games, id)
			n++
		}
	}
	return n
}
