package repository

import (
	"context"
	"errors"
	"fmt"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/models"
	"gorm.io/gorm"
)

// TaskRepository defines data access for the tasks table.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	List(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
}

// GormTaskRepository implements TaskRepository with GORM.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a repository over db.
func NewTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts task; the store assigns task.ID.
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	// Select keeps an explicit completed=false instead of skipping the zero value.
	if err := r.db.WithContext(ctx).Select("Title", "Completed").Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// List returns all tasks in store order.
func (r *GormTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns the task with id or ErrNotFound.
func (r *GormTaskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// Update replaces title and completed of the row with task.ID.
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{"title": task.Title, "completed": task.Completed})
	if res.Error != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return customerrors.ErrNotFound
	}
	return nil
}

// Delete removes the row with id.
func (r *GormTaskRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return customerrors.ErrNotFound
	}
	return nil
}
