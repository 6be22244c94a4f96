package memory

import (
	"context"
	"sync"
	"time"

	"invtrack/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	seq   int
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]user.User),
	}
}

func (r *UserRepository) Save(ctx context.Context, login, passwordHash, role string) (int, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[login]
	if !ok {
		r.seq++
		u = user.User{ID: r.seq, Login: login, CreatedAt: time.Now().UTC()}
	}
	u.Password = passwordHash
	u.Role = role
	r.users[login] = u

	return u.ID, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (user.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[login]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
