package service

import (
	"context"
	"errors"
	"sync"

	"zumpfinanc/internal/models"
	"zumpfinanc/internal/repository"
)

// fakeEntryRepo is an in-memory EntryRepository that records calls.
type fakeEntryRepo struct {
	entries   map[uint]models.Entry
	nextID    uint
	saveCalls int
	delCalls  int
	err       error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uint]models.Entry)}
}

func (r *fakeEntryRepo) Save(_ context.Context, e *models.Entry) error {
	r.saveCalls++
	if r.err != nil {
		return r.err
	}
	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	} else if _, ok := r.entries[e.ID]; !ok {
		return repository.ErrNotFound
	}
	r.entries[e.ID] = *e
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, e *models.Entry) error {
	r.delCalls++
	delete(r.entries, e.ID)
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id uint) (*models.Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEntryRepo) FindAll(_ context.Context, f repository.EntryFilter) ([]models.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Entry
	for id := uint(1); id <= r.nextID; id++ {
		e, ok := r.entries[id]
		if !ok {
			continue
		}
		if f.Description != nil && e.Description != *f.Description ||
			f.Month != nil && e.Month != *f.Month ||
			f.Year != nil && e.Year != *f.Year ||
			f.UserID != nil && e.UserID != *f.UserID ||
			f.Type != nil && e.Type != *f.Type ||
			f.Status != nil && e.Status != *f.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository without a unique index, so the
// service-level email check is the only guard.
type fakeUserRepo struct {
	mu          sync.Mutex
	users       map[uint]models.User
	nextID      uint
	createCalls int
	uniqueIndex bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.uniqueIndex {
		for _, existing := range r.users {
			if existing.Email == u.Email {
				return repository.ErrDuplicateKey
			}
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

// plainHasher keeps tests fast; it is not a real hash.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) {
	if p == "" {
		return "", errors.New("password is empty")
	}
	return "h:" + p, nil
}

func (plainHasher) Check(p, stored string) bool { return "h:"+p == stored }
