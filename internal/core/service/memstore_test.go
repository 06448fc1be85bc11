package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

// memSweetStore is an in-memory SweetRepository and StockRepository. Each
// method holds the lock for its whole body, mirroring a single-document
// atomic update in the real store.
type memSweetStore struct {
	mu     sync.Mutex
	sweets map[string]*domain.Sweet
	seq    int
	err    error // if set, every call returns it
}

func newMemSweetStore() *memSweetStore {
	return &memSweetStore{sweets: make(map[string]*domain.Sweet)}
}

func cloneSweet(s *domain.Sweet) *domain.Sweet {
	clone := *s
	return &clone
}

func (m *memSweetStore) seed(name string, price float64, qty int) *domain.Sweet {
	s, err := m.Create(context.Background(), &domain.Sweet{Name: name, Category: "Indian", Price: price, Quantity: qty})
	if err != nil {
		panic(err)
	}
	return s
}

func (m *memSweetStore) Create(_ context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, existing := range m.sweets {
		if existing.Name == s.Name {
			return nil, domain.ErrSweetExists
		}
	}
	m.seq++
	clone := cloneSweet(s)
	clone.ID = fmt.Sprintf("s%03d", m.seq)
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = clone.CreatedAt.AddDate(2000, 0, m.seq)
	}
	m.sweets[clone.ID] = clone
	return cloneSweet(clone), nil
}

func (m *memSweetStore) FindByID(_ context.Context, id string) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	return cloneSweet(s), nil
}

func (m *memSweetStore) ExistsByName(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.sweets {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSweetStore) List(_ context.Context, f domain.SweetFilter) ([]*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Sweet{}
	for _, s := range m.sweets {
		if f.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Category != "" && !strings.Contains(strings.ToLower(s.Category), strings.ToLower(f.Category)) {
			continue
		}
		if f.MinPrice != nil && s.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && s.Price > *f.MaxPrice {
			continue
		}
		out = append(out, cloneSweet(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memSweetStore) Update(_ context.Context, id string, p domain.SweetPatch) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	return cloneSweet(s), nil
}

func (m *memSweetStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.sweets[id]; !ok {
		return domain.ErrSweetNotFound
	}
	delete(m.sweets, id)
	return nil
}

func (m *memSweetStore) Decrement(_ context.Context, id string, amount int) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sweets[id]
	if !ok || s.Quantity < amount {
		return nil, domain.ErrInsufficientStockOrNotFound
	}
	s.Quantity -= amount
	return cloneSweet(s), nil
}

func (m *memSweetStore) Increment(_ context.Context, id string, amount int) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	s.Quantity += amount
	return cloneSweet(s), nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	movements []domain.StockMovement
}

func (p *recordingPublisher) Publish(m domain.StockMovement) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movements = append(p.movements, m)
}
