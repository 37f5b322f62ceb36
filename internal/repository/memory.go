package repository

import (
	"context"
	"slices"
	"sync"

	"activities-signup/internal/model"
)

// MemoryRepo хранит каталог кружков в памяти процесса.
// Порядок кружков и участников сохраняется; все операции сериализуются мьютексом.
type MemoryRepo struct {
	mu         sync.RWMutex
	activities model.Catalog
}

// NewMemoryRepo создаёт репозиторий с копией переданного каталога.
func NewMemoryRepo(seed model.Catalog) *MemoryRepo {
	return &MemoryRepo{activities: cloneCatalog(seed)}
}

// ListActivities возвращает снимок каталога, который можно свободно изменять.
func (r *MemoryRepo) ListActivities(_ context.Context) (model.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneCatalog(r.activities), nil
}

// AddParticipant записывает email на кружок.
// Возвращает ErrActivityNotFound, ErrAlreadySignedUp или ErrActivityFull.
func (r *MemoryRepo) AddParticipant(_ context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(activityName)
	if i < 0 {
		return ErrActivityNotFound
	}

	a := &r.activities[i]
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if a.SpotsLeft() <= 0 {
		return ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant удаляет email из списка участников кружка.
// Возвращает ErrActivityNotFound или ErrParticipantNotFound.
func (r *MemoryRepo) RemoveParticipant(_ context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(activityName)
	if i < 0 {
		return ErrActivityNotFound
	}

	a := &r.activities[i]
	j := slices.Index(a.Participants, email)
	if j < 0 {
		return ErrParticipantNotFound
	}

	a.Participants = slices.Delete(a.Participants, j, j+1)
	return nil
}

func (r *MemoryRepo) indexOf(name string) int {
	return slices.IndexFunc(r.activities, func(a model.NamedActivity) bool {
		return a.Name == name
	})
}

func cloneCatalog(c model.Catalog) model.Catalog {
	out := make(model.Catalog, 0, len(c))
	for _, a := range c {
		a.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
		out = append(out, a)
	}
	return out
}
