// Package mocks содержит testify-моки интерфейсов сервисного слоя.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"activities-signup/internal/model"
)

// ActivityRepository — мок service.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

// ListActivities реализует service.ActivityRepository.
func (m *ActivityRepository) ListActivities(ctx context.Context) (model.Catalog, error) {
	args := m.Called(ctx)
	var catalog model.Catalog
	if v := args.Get(0); v != nil {
		catalog = v.(model.Catalog)
	}
	return catalog, args.Error(1)
}

// AddParticipant реализует service.ActivityRepository.
func (m *ActivityRepository) AddParticipant(ctx context.Context, activityName, email string) error {
	args := m.Called(ctx, activityName, email)
	return args.Error(0)
}

// RemoveParticipant реализует service.ActivityRepository.
func (m *ActivityRepository) RemoveParticipant(ctx context.Context, activityName, email string) error {
	args := m.Called(ctx, activityName, email)
	return args.Error(0)
}
