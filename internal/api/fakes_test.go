package api

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

// In-memory port implementations for exercising the whole HTTP pipeline.

type memUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (m *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}

func (m *memUsers) UpdateName(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("update user %s: no document", id)
	}
	u.Name = name
	m.users[id] = u
	return nil
}

type memUniversities struct {
	univs map[string]*domain.University
}

func (m *memUniversities) FindByID(_ context.Context, id string) (*domain.University, error) {
	u, ok := m.univs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUniversities) List(_ context.Context) ([]*domain.University, error) {
	out := make([]*domain.University, 0, len(m.univs))
	for _, u := range m.univs {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUniversities) Upsert(_ context.Context, u *domain.University) error {
	m.univs[u.ID] = u
	return nil
}

type memExperiences struct {
	mu    sync.Mutex
	items map[string]domain.Experience
	seq   int
}

func (m *memExperiences) Create(_ context.Context, e *domain.Experience) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("%024x", m.seq)
	stored := *e
	stored.ID = id
	m.items[id] = stored
	return id, nil
}

func (m *memExperiences) FindByID(_ context.Context, id string) (*domain.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (m *memExperiences) List(_ context.Context, f ports.ExperienceFilter) ([]*domain.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*domain.Experience{}
	for _, e := range m.items {
		if e.UnivID != f.UnivID || (f.Company != "" && e.Company != f.Company) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memExperiences) Update(_ context.Context, e *domain.Experience) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	m.items[e.ID] = *e
	return nil
}

func (m *memExperiences) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type memCredentials struct {
	secrets map[string]string
}

func (m *memCredentials) Secrets(context.Context) (map[string]string, error) {
	return m.secrets, nil
}

func (m *memCredentials) PutSecret(_ context.Context, key, secret string) error {
	m.secrets[key] = secret
	return nil
}

type memAccounts struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
}

func (m *memAccounts) Create(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[a.ID] = *a
	return nil
}

func (m *memAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (m *memAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *memAccounts) UpdateDisplayName(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.DisplayName = name
	m.accounts[id] = a
	return nil
}

func (m *memAccounts) SetClaims(_ context.Context, id string, claims map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Claims = claims
	m.accounts[id] = a
	return nil
}

func (m *memAccounts) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}

type memTokens struct {
	mu   sync.Mutex
	uids map[string]string
}

func (m *memTokens) Remember(_ context.Context, id, uid string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uids[id] = uid
	return nil
}

func (m *memTokens) Consume(_ context.Context, id string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uid, ok := m.uids[id]
	delete(m.uids, id)
	return uid, ok, nil
}
