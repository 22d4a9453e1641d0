package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/BuzzLyutic/tasks-api/internal/model"
)

var _ TaskRepository = (*MemoryTaskRepo)(nil)

// MemoryTaskRepo хранит задачи в памяти процесса в порядке вставки.
// Идентификаторы выдаются последовательно с 1 и не переиспользуются.
type MemoryTaskRepo struct {
	mu     sync.RWMutex
	tasks  []model.Task
	nextID int64
	now    func() time.Time
}

func NewMemoryTaskRepo() *MemoryTaskRepo { // Конструктор
	return &MemoryTaskRepo{
		tasks:  make([]model.Task, 0),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryTaskRepo) List(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

func (r *MemoryTaskRepo) Create(ctx context.Context, title string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.timestamp()
	t := model.Task{
		ID:        r.nextID,
		Title:     strings.TrimSpace(title),
		Done:      false,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	r.nextID++
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *MemoryTaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i], nil
	}
	return model.Task{}, ErrorNotFound
}

func (r *MemoryTaskRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}

	t := r.tasks[i]
	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	t.UpdatedAt = r.timestamp()

	r.tasks[i] = t
	return t, nil
}

func (r *MemoryTaskRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrorNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

// Reset очищает хранилище и сбрасывает счетчик идентификаторов.
// Нужен только для изоляции тестов, наружу через HTTP не выставляется.
func (r *MemoryTaskRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make([]model.Task, 0)
	r.nextID = 1
}

// indexOf вызывается под блокировкой
func (r *MemoryTaskRepo) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// JSON отдает время с точностью до миллисекунд, храним так же,
// чтобы значения после сериализации совпадали с хранимыми.
func (r *MemoryTaskRepo) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}
