// Package service содержит бизнес-логику каталога кружков и записи учеников.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"activities-signup/internal/model"
	"activities-signup/internal/repository"
)

// Сообщения, которые клиент показывает пользователю как есть.
const (
	msgActivityNotFound    = "Activity not found"
	msgAlreadySignedUp     = "Student already signed up for this activity"
	msgActivityFull        = "Activity is full"
	msgParticipantNotFound = "Participant not found in this activity"
	msgEmailRequired       = "email is required"
)

// ActivityRepository описывает контракт хранилища каталога для бизнес-слоя.
type ActivityRepository interface {
	ListActivities(ctx context.Context) (model.Catalog, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
}

// ActivityService отдаёт каталог и управляет записью учеников на кружки.
type ActivityService struct {
	repo ActivityRepository
}

// NewActivityService создаёт сервис поверх репозитория.
func NewActivityService(repo ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// ListActivities возвращает каталог в порядке хранения.
func (s *ActivityService) ListActivities(ctx context.Context) (model.Catalog, error) {
	catalog, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list activities", err)
	}
	return catalog, nil
}

// Signup записывает ученика на кружок и возвращает сообщение для пользователя.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrValidation(msgEmailRequired)
	}

	err := s.repo.AddParticipant(ctx, activityName, email)
	switch {
	case err == nil:
		return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
	case errors.Is(err, repository.ErrActivityNotFound):
		return "", ErrNotFound(msgActivityNotFound)
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return "", ErrDomain("ALREADY_SIGNED_UP", msgAlreadySignedUp)
	case errors.Is(err, repository.ErrActivityFull):
		return "", ErrDomain("ACTIVITY_FULL", msgActivityFull)
	default:
		return "", ErrInternal("failed to sign up", err)
	}
}

// RemoveParticipant отписывает ученика от кружка и возвращает сообщение для пользователя.
func (s *ActivityService) RemoveParticipant(ctx context.Context, activityName, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrValidation(msgEmailRequired)
	}

	err := s.repo.RemoveParticipant(ctx, activityName, email)
	switch {
	case err == nil:
		return fmt.Sprintf("Removed %s from %s", email, activityName), nil
	case errors.Is(err, repository.ErrActivityNotFound):
		return "", ErrNotFound(msgActivityNotFound)
	case errors.Is(err, repository.ErrParticipantNotFound):
		return "", ErrNotFound(msgParticipantNotFound)
	default:
		return "", ErrInternal("failed to remove participant", err)
	}
}
