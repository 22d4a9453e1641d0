package repo

import (
	"context"
	"errors"

	"github.com/BuzzLyutic/tasks-api/internal/model"
)

var ErrorNotFound = errors.New("not found")

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}
