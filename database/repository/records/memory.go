package recordsRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"nepwork/models"

	"github.com/google/uuid"
)

// MemoryActivityRepo keeps activities in process. Used in tests and when
// ACTIVITY_STORE=memory.
type MemoryActivityRepo struct {
	mu    sync.RWMutex
	items []models.Activity
}

func NewMemoryActivityRepo() *MemoryActivityRepo {
	return &MemoryActivityRepo{}
}

func (r *MemoryActivityRepo) Create(_ context.Context, activity models.Activity) (string, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	r.mu.Lock()
	r.items = append(r.items, activity)
	r.mu.Unlock()
	return activity.ID, nil
}

func (r *MemoryActivityRepo) GetByID(_ context.Context, id string) (*models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			a := r.items[i]
			return &a, nil
		}
	}
	return nil, ErrActivityNotFound
}

func (r *MemoryActivityRepo) Recent(_ context.Context, email string, limit int) ([]models.Activity, error) {
	r.mu.RLock()
	out := []models.Activity{}
	for _, a := range r.items {
		if a.Email == email {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryActivityRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrActivityNotFound
}
