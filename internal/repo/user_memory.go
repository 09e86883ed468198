package repo

import (
	"errors"
	"sync"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
}

var ErrUserNotFound = errors.New("user not found")

// InMemoryUserRepository holds the operators configured at startup.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == u.Username {
			return models.User{}, errors.New("unique constraint violation: username already exists")
		}
	}

	u.ID = len(r.users) + 1
	r.users = append(r.users, u)
	return u, nil
}
