package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

// memUsers is an in-memory UserRepository keyed by id.
type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*domain.User{}} }

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone, nil
}

func (m *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	m.seq++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", m.seq)
	m.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (m *memUsers) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

// memSweets implements SweetRepository and StockRepository with one lock per
// call, which gives the same atomicity as a single document update.
type memSweets struct {
	mu     sync.Mutex
	sweets map[string]*domain.Sweet
	order  map[string]int
	seq    int
}

func newMemSweets() *memSweets {
	return &memSweets{sweets: map[string]*domain.Sweet{}, order: map[string]int{}}
}

var _ ports.SweetRepository = (*memSweets)(nil)
var _ ports.StockRepository = (*memSweets)(nil)

func (m *memSweets) Create(_ context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sweets {
		if existing.Name == s.Name {
			return nil, domain.ErrSweetExists
		}
	}
	m.seq++
	clone := *s
	clone.ID = fmt.Sprintf("s%d", m.seq)
	m.sweets[clone.ID] = &clone
	m.order[clone.ID] = m.seq
	out := clone
	return &out, nil
}

func (m *memSweets) FindByID(_ context.Context, id string) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	out := *s
	return &out, nil
}

func (m *memSweets) ExistsByName(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sweets {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSweets) List(_ context.Context, f domain.SweetFilter) ([]*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return m.order[out[i].ID] > m.order[out[j].ID] })
	return out, nil
}

func (m *memSweets) Update(_ context.Context, id string, p domain.SweetPatch) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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
	out := *s
	return &out, nil
}

func (m *memSweets) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sweets[id]; !ok {
		return domain.ErrSweetNotFound
	}
	delete(m.sweets, id)
	return nil
}

func (m *memSweets) Decrement(_ context.Context, id string, amount int) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sweets[id]
	if !ok || s.Quantity < amount {
		return nil, domain.ErrInsufficientStockOrNotFound
	}
	s.Quantity -= amount
	out := *s
	return &out, nil
}

func (m *memSweets) Increment(_ context.Context, id string, amount int) (*domain.Sweet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	s.Quantity += amount
	out := *s
	return &out, nil
}

// memMovements is a MovementRepository; the synchronous publisher below
// writes straight into it so tests need no background worker.
type memMovements struct {
	mu   sync.Mutex
	list []*domain.StockMovement
}

func (m *memMovements) Insert(_ context.Context, mv *domain.StockMovement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv.ID = fmt.Sprintf("m%d", len(m.list)+1)
	clone := *mv
	m.list = append(m.list, &clone)
	return nil
}

func (m *memMovements) ListBySweet(_ context.Context, sweetID string, limit int) ([]*domain.StockMovement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.StockMovement{}
	for i := len(m.list) - 1; i >= 0 && len(out) < limit; i-- {
		if m.list[i].SweetID == sweetID {
			clone := *m.list[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

type syncPublisher struct {
	svc ports.MovementService
}

func (p syncPublisher) Publish(m domain.StockMovement) {
	_ = p.svc.Record(context.Background(), m)
}
