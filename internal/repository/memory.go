package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/RoGogDBD/menucat/internal/models"
)

// MemStorage реализует MenuStore в памяти. Используется как запасное
// хранилище при запуске без базы данных и в тестах.
type MemStorage struct {
	items  map[int64]*models.MenuItem
	nextID int64
	mu     sync.RWMutex
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		items:  make(map[int64]*models.MenuItem),
		nextID: 1,
	}
}

func (s *MemStorage) Insert(_ context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	stored.ItemID = s.nextID
	s.nextID++
	s.items[stored.ItemID] = &stored

	out := stored
	return &out, nil
}

func (s *MemStorage) GetByID(_ context.Context, id int64) (*models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, ErrNotFound
	}
	out := *item
	return &out, nil
}

func (s *MemStorage) GetAll(_ context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(*models.MenuItem) bool { return true }), nil
}

func (s *MemStorage) Update(_ context.Context, id int64, upd *models.MenuItemUpdate) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return nil, ErrNotFound
	}
	upd.Apply(item)
	out := *item
	return &out, nil
}

func (s *MemStorage) SetAvailability(_ context.Context, id int64, available bool) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return nil, ErrNotFound
	}
	item.IsAvailable = available
	out := *item
	return &out, nil
}

func (s *MemStorage) FilterByCategory(_ context.Context, category string) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.snapshot(func(it *models.MenuItem) bool {
		return strings.EqualFold(it.Category, category)
	})
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *MemStorage) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// snapshot возвращает копии записей, отсортированные по id.
// Вызывается под блокировкой.
func (s *MemStorage) snapshot(keep func(*models.MenuItem) bool) []models.MenuItem {
	var items []models.MenuItem
	for _, item := range s.items {
		if keep(item) {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items
}
