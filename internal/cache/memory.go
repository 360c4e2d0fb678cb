package cache

import (
	"context"
	"sync"

	"github.com/fsdevblog/groph-cart/internal/domain"
)

// MemoryStore хранит данные корзины в памяти процесса. Время жизни ключей не учитывается.
type MemoryStore struct {
	mu         sync.RWMutex
	snapshots  map[int64]domain.BalanceSnapshot
	useCredits map[int64]bool
	carts      map[int64]map[string]domain.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots:  make(map[int64]domain.BalanceSnapshot),
		useCredits: make(map[int64]bool),
		carts:      make(map[int64]map[string]domain.CartItem),
	}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*domain.BalanceSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot, ok := m.snapshots[userID]
	if !ok {
		return nil, nil //nolint:nilnil
	}
	return &snapshot, nil
}

// Set и Refresh не заменяют снимок более старым (по LastEntryID), как и скрипты RedisStore.
func (m *MemoryStore) Set(_ context.Context, snapshot domain.BalanceSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.snapshots[snapshot.UserID]; ok && current.LastEntryID > snapshot.LastEntryID {
		return nil
	}
	m.snapshots[snapshot.UserID] = snapshot
	return nil
}

func (m *MemoryStore) Refresh(_ context.Context, snapshot domain.BalanceSnapshot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.snapshots[snapshot.UserID]
	if !ok || current.LastEntryID > snapshot.LastEntryID {
		return false, nil
	}
	m.snapshots[snapshot.UserID] = snapshot
	return true, nil
}

func (m *MemoryStore) GetUseCredit(_ context.Context, userID int64) (*bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	useCredit, ok := m.useCredits[userID]
	if !ok {
		return nil, nil //nolint:nilnil
	}
	return &useCredit, nil
}

func (m *MemoryStore) SaveUseCredit(_ context.Context, userID int64, useCredit bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.useCredits[userID] = useCredit
	return nil
}

func (m *MemoryStore) Items(_ context.Context, userID int64) ([]domain.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]domain.CartItem, 0, len(m.carts[userID]))
	for _, item := range m.carts[userID] {
		items = append(items, item)
	}
	sortItems(items)
	return items, nil
}

func (m *MemoryStore) Put(_ context.Context, userID int64, item domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		cart = make(map[string]domain.CartItem)
		m.carts[userID] = cart
	}
	cart[item.Key()] = item
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID int64, itemKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[userID][itemKey]; !ok {
		return false, nil
	}
	delete(m.carts[userID], itemKey)
	return true, nil
}

func (m *MemoryStore) Clear(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}
