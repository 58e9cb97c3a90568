package services

import (
	"context"

	"github.com/axellelanca/minicrud/internal/models"
	"github.com/axellelanca/minicrud/internal/repository"
)

// TaskService implements the to-do list operations.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a TaskService over taskRepo.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// Create inserts a task and returns it with the id assigned by the store.
func (s *TaskService) Create(ctx context.Context, title string, completed bool) (*models.Task, error) {
	task := &models.Task{Title: title, Completed: completed}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns all tasks in store order.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.List(ctx)
}

// Get returns the task with id or ErrNotFound.
func (s *TaskService) Get(ctx context.Context, id int64) (*models.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// Update replaces both fields of an existing task. The returned task is built
// from the inputs, not read back from the store.
func (s *TaskService) Update(ctx context.Context, id int64, title string, completed bool) (*models.Task, error) {
	if _, err := s.taskRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	task := &models.Task{ID: id, Title: title, Completed: completed}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes an existing task.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if _, err := s.taskRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}
