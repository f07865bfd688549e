package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/user-registry/internal/domain"
	"github.com/spec-kit/user-registry/pkg/util/errorutil"
)

// UserRepository defines storage access for registry users.
// Implementations hand out copies; stored records change only through the repository.
type UserRepository interface {
	NextID() string
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, bool)
	UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (domain.UserStatus, bool)
	List(ctx context.Context) []domain.User
	Count(ctx context.Context) int
	CountByStatus(ctx context.Context) map[domain.UserStatus]int
	Clear(ctx context.Context)
}

type inMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
	now   func() time.Time
}

// NewInMemoryUserRepository returns a process-scoped store that keeps insertion order.
func NewInMemoryUserRepository() UserRepository {
	return &inMemoryUserRepository{
		users: make(map[string]*domain.User),
		now:   time.Now,
	}
}

func (r *inMemoryUserRepository) NextID() string {
	return uuid.NewString()
}

// Create stores a copy of user, assigning ID and timestamps when unset.
func (r *inMemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = r.NextID()
	}
	if _, exists := r.users[user.ID]; exists {
		return errorutil.NewConflict("user id already registered", map[string]any{"user_id": user.ID})
	}

	now := r.now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = user.CreatedAt

	stored := *user
	r.users[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *inMemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.users[id]
	if !ok {
		return nil, false
	}
	user := *stored
	return &user, true
}

// UpdateStatus sets the status and returns the previous one.
func (r *inMemoryUserRepository) UpdateStatus(_ context.Context, id string, status domain.UserStatus) (domain.UserStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[id]
	if !ok {
		return "", false
	}
	previous := stored.Status
	if previous != status {
		stored.Status = status
		stored.UpdatedAt = r.now()
	}
	return previous, true
}

func (r *inMemoryUserRepository) List(_ context.Context) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, *r.users[id])
	}
	return users
}

func (r *inMemoryUserRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *inMemoryUserRepository) CountByStatus(_ context.Context) map[domain.UserStatus]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[domain.UserStatus]int{
		domain.UserStatusActive:   0,
		domain.UserStatusInactive: 0,
	}
	for _, user := range r.users {
		counts[user.Status]++
	}
	return counts
}

func (r *inMemoryUserRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*domain.User)
	r.order = nil
}
