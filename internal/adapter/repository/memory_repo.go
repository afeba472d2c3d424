package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"cv-builder/internal/domain"
	"cv-builder/pkg/apperror"

	"github.com/google/uuid"
)

// MemoryCVRepo is the in-process store used when no database is configured.
// Documents are stored as encoded JSON so callers never share memory with
// the store.
type MemoryCVRepo struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]map[string][]byte
}

func NewMemoryCVRepo() *MemoryCVRepo {
	return &MemoryCVRepo{docs: map[uuid.UUID]map[string][]byte{}}
}

func (r *MemoryCVRepo) Create(_ context.Context, ownerID uuid.UUID, cv *domain.CV) error {
	doc, err := json.Marshal(cv)
	if err != nil {
		return apperror.NewInternal("failed to encode cv", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := r.docs[ownerID]
	if owned == nil {
		owned = map[string][]byte{}
		r.docs[ownerID] = owned
	}
	if _, exists := owned[cv.ID]; exists {
		return apperror.NewInvalidInput("CV already exists", cv.ID, nil)
	}
	owned[cv.ID] = doc
	return nil
}

func (r *MemoryCVRepo) Get(_ context.Context, ownerID uuid.UUID, id string) (*domain.CV, error) {
	r.mu.RLock()
	doc, ok := r.docs[ownerID][id]
	r.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFound("CV", id)
	}
	return decodeCV(doc)
}

func (r *MemoryCVRepo) List(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.CV, error) {
	r.mu.RLock()
	all := make([]*domain.CV, 0, len(r.docs[ownerID]))
	for _, doc := range r.docs[ownerID] {
		cv, err := decodeCV(doc)
		if err != nil {
			r.mu.RUnlock()
			return nil, err
		}
		all = append(all, cv)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].LastUpdated.Time, all[j].LastUpdated.Time
		if !a.Equal(b) {
			return a.After(b)
		}
		return all[i].ID < all[j].ID
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []*domain.CV{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryCVRepo) Update(_ context.Context, ownerID uuid.UUID, cv *domain.CV) error {
	doc, err := json.Marshal(cv)
	if err != nil {
		return apperror.NewInternal("failed to encode cv", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[ownerID][cv.ID]; !ok {
		return apperror.NewNotFound("CV", cv.ID)
	}
	r.docs[ownerID][cv.ID] = doc
	return nil
}

func (r *MemoryCVRepo) Delete(_ context.Context, ownerID uuid.UUID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[ownerID][id]; !ok {
		return apperror.NewNotFound("CV", id)
	}
	delete(r.docs[ownerID], id)
	return nil
}
