package services

import (
	"context"

	"github.com/google/uuid"

	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create returns the record it built in memory, so every field must match
// what was persisted, defaults included.
func (s *TaskService) Create(ctx context.Context, title, description string) (*model.Task, error) {
	now := model.Now()
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List clamps pagination before delegating: page is at least 1, perPage
// falls back to 20 and is capped at 100.
func (s *TaskService) List(ctx context.Context, filter repository.ListFilter) (*model.TaskPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	return s.repo.List(ctx, filter)
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id string, fields repository.UpdateFields) (*model.Task, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) (*model.Task, error) {
	return s.repo.SetCompleted(ctx, id, completed)
}

func (s *TaskService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
