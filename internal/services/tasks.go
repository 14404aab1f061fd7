package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo-list/internal/models"
	"todo-list/internal/repositories"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// TaskService owns creation, listing, and status toggling of tasks, always
// scoped to the authenticated owner.
type TaskService interface {
	AddTask(ctx context.Context, ownerID uuid.UUID, description string, dueAt time.Time, category models.Category) (*models.Task, error)
	// ToggleStatus flips the completed flag. It fails with ErrNotFound for an
	// unknown id and ErrForbidden when the actor does not own the task.
	ToggleStatus(ctx context.Context, actorID, taskID uuid.UUID) (*models.Task, error)
	TasksForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
}

type TaskServiceImpl struct {
	tasks *repositories.TaskRepository
}

func NewTaskService(tasks *repositories.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{tasks: tasks}
}

func (s *TaskServiceImpl) AddTask(ctx context.Context, ownerID uuid.UUID, description string, dueAt time.Time, category models.Category) (*models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if dueAt.IsZero() {
		return nil, &ValidationError{Field: "due_at", Reason: "must be set"}
	}
	if !category.Valid() {
		return nil, &ValidationError{Field: "category", Reason: "must be one of " + joinCategories()}
	}

	count, err := s.tasks.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:                uuid.Must(uuid.NewV4()),
		OwnerID:           ownerID,
		OwnerTaskSequence: int(count) + 1,
		Description:       description,
		DueAt:             dueAt,
		Category:          category,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskServiceImpl) ToggleStatus(ctx context.Context, actorID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if task.OwnerID != actorID {
		return nil, ErrForbidden
	}

	task.Completed = !task.Completed
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskServiceImpl) TasksForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func joinCategories() string {
	var names []string
	for _, c := range models.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
