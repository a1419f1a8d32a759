package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/campusxp/experience-api/internal/core/domain"
	"github.com/campusxp/experience-api/internal/core/ports"
)

// --- users ---

type stubUserRepo struct {
	users     map[string]*domain.User
	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) UpdateName(_ context.Context, id, name string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return errors.New("no document matched")
	}
	u.Name = name
	return nil
}

// --- universities ---

type stubUnivRepo struct {
	univs   map[string]*domain.University
	listErr error
}

func newStubUnivRepo(univs ...*domain.University) *stubUnivRepo {
	r := &stubUnivRepo{univs: make(map[string]*domain.University)}
	for _, u := range univs {
		r.univs[u.ID] = u
	}
	return r
}

func (r *stubUnivRepo) FindByID(_ context.Context, id string) (*domain.University, error) {
	u, ok := r.univs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *stubUnivRepo) List(_ context.Context) ([]*domain.University, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.University, 0, len(r.univs))
	for _, u := range r.univs {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUnivRepo) Upsert(_ context.Context, u *domain.University) error {
	r.univs[u.ID] = u
	return nil
}

// --- identity ---

type stubIdentity struct {
	accounts   map[string]string // uid -> display name
	emails     map[string]string // email -> uid
	claims     map[string]map[string]string
	next       int
	failOn     string
	exchangeFn func(token string) (*domain.Session, error)
}

func newStubIdentity() *stubIdentity {
	return &stubIdentity{
		accounts: make(map[string]string),
		emails:   make(map[string]string),
		claims:   make(map[string]map[string]string),
	}
}

func (s *stubIdentity) fail(op string) error {
	if s.failOn == op {
		return fmt.Errorf("%s: provider unavailable", op)
	}
	return nil
}

func (s *stubIdentity) CreateAccount(_ context.Context, email, password, displayName string) (string, error) {
	if err := s.fail("create"); err != nil {
		return "", err
	}
	s.next++
	uid := fmt.Sprintf("uid-%d", s.next)
	s.accounts[uid] = displayName
	s.emails[email] = uid
	return uid, nil
}

func (s *stubIdentity) UpdateDisplayName(_ context.Context, uid, displayName string) error {
	if err := s.fail("rename"); err != nil {
		return err
	}
	s.accounts[uid] = displayName
	return nil
}

func (s *stubIdentity) SetCustomClaims(_ context.Context, uid string, claims map[string]string) error {
	if err := s.fail("claims"); err != nil {
		return err
	}
	s.claims[uid] = claims
	return nil
}

func (s *stubIdentity) CreateLoginToken(_ context.Context, uid string) (string, error) {
	if err := s.fail("token"); err != nil {
		return "", err
	}
	return "token-for-" + uid, nil
}

func (s *stubIdentity) LookupByEmail(_ context.Context, email string) (*domain.Account, error) {
	if err := s.fail("lookup"); err != nil {
		return nil, err
	}
	uid, ok := s.emails[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.Account{ID: uid, Email: email, DisplayName: s.accounts[uid]}, nil
}

func (s *stubIdentity) ExchangeLoginToken(_ context.Context, token string) (*domain.Session, error) {
	return s.exchangeFn(token)
}

// --- experiences ---

type stubExperienceRepo struct {
	items   map[string]*domain.Experience
	next    int
	filters []ports.ExperienceFilter
	deleted []string
}

func newStubExperienceRepo() *stubExperienceRepo {
	return &stubExperienceRepo{items: make(map[string]*domain.Experience)}
}

func (r *stubExperienceRepo) Create(_ context.Context, exp *domain.Experience) (string, error) {
	r.next++
	id := fmt.Sprintf("exp-%d", r.next)
	clone := *exp
	clone.ID = id
	r.items[id] = &clone
	return id, nil
}

func (r *stubExperienceRepo) FindByID(_ context.Context, id string) (*domain.Experience, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubExperienceRepo) List(_ context.Context, f ports.ExperienceFilter) ([]*domain.Experience, error) {
	r.filters = append(r.filters, f)
	var out []*domain.Experience
	for _, e := range r.items {
		if e.UnivID != f.UnivID {
			continue
		}
		if f.Company != "" && e.Company != f.Company {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubExperienceRepo) Update(_ context.Context, exp *domain.Experience) error {
	if _, ok := r.items[exp.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *exp
	r.items[exp.ID] = &clone
	return nil
}

func (r *stubExperienceRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.items, id)
	return nil
}
