// Package testutil holds in-memory repository implementations used by tests
// across packages.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"portfolio_api/internal/model"

	"github.com/google/uuid"
)

// ErrStoreDown is returned by every Store method once Fail has been called.
var ErrStoreDown = errors.New("store unavailable")

// Store keeps users, projects, experience entries and messages in memory and
// satisfies every repository interface through its accessor methods.
type Store struct {
	mu         sync.Mutex
	users      []model.User
	projects   []model.Project
	experience []model.ExperienceEntry
	messages   []model.Message
	failing    bool
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// SetClock replaces the time source used for message timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Fail makes every subsequent call return ErrStoreDown.
func (s *Store) Fail() {
	s.mu.Lock()
	s.failing = true
	s.mu.Unlock()
}

func (s *Store) Users() *UserRepo            { return &UserRepo{s} }
func (s *Store) Projects() *ProjectRepo      { return &ProjectRepo{s} }
func (s *Store) Experience() *ExperienceRepo { return &ExperienceRepo{s} }
func (s *Store) Messages() *MessageRepo      { return &MessageRepo{s} }

func (s *Store) lock() error {
	s.mu.Lock()
	if s.failing {
		s.mu.Unlock()
		return ErrStoreDown
	}
	return nil
}

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *model.User) (bool, error) {
	if err := r.s.lock(); err != nil {
		return false, err
	}
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return false, nil
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = r.s.now()
	r.s.users = append(r.s.users, *user)
	return true, nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored users.
func (r *UserRepo) Count() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.users)
}

type ProjectRepo struct{ s *Store }

func (r *ProjectRepo) Create(_ context.Context, p *model.Project) error {
	if err := r.s.lock(); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	p.ID = uuid.NewString()
	r.s.projects = append(r.s.projects, *p)
	return nil
}

func (r *ProjectRepo) FindAll(_ context.Context) ([]model.Project, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return append([]model.Project{}, r.s.projects...), nil
}

func (r *ProjectRepo) Delete(_ context.Context, id string) error {
	if err := r.s.lock(); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	for i, p := range r.s.projects {
		if p.ID == id {
			r.s.projects = append(r.s.projects[:i], r.s.projects[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProjectRepo) Count(_ context.Context) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	return int64(len(r.s.projects)), nil
}

type ExperienceRepo struct{ s *Store }

func (r *ExperienceRepo) Create(_ context.Context, e *model.ExperienceEntry) error {
	if err := r.s.lock(); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	e.ID = uuid.NewString()
	r.s.experience = append(r.s.experience, *e)
	return nil
}

func (r *ExperienceRepo) FindAll(_ context.Context) ([]model.ExperienceEntry, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()
	return append([]model.ExperienceEntry{}, r.s.experience...), nil
}

func (r *ExperienceRepo) Delete(_ context.Context, id string) error {
	if err := r.s.lock(); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	for i, e := range r.s.experience {
		if e.ID == id {
			r.s.experience = append(r.s.experience[:i], r.s.experience[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ExperienceRepo) Count(_ context.Context) (int64, error) {
	if err := r.s.lock(); err != nil {
		return 0, err
	}
	defer r.s.mu.Unlock()
	return int64(len(r.s.experience)), nil
}

type MessageRepo struct{ s *Store }

func (r *MessageRepo) Create(_ context.Context, m *model.Message) error {
	if err := r.s.lock(); err != nil {
		return err
	}
	defer r.s.mu.Unlock()

	m.ID = uuid.NewString()
	m.CreatedAt = r.s.now()
	r.s.messages = append(r.s.messages, *m)
	return nil
}

func (r *MessageRepo) FindAll(_ context.Context) ([]model.Message, error) {
	if err := r.s.lock(); err != nil {
		return nil, err
	}
	defer r.s.mu.Unlock()

	out := append([]model.Message{}, r.s.messages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
