package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BuzzLyutic/tasks-api/internal/model"
	"github.com/BuzzLyutic/tasks-api/internal/repo"
)

const MinTitleLength = 2

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Create(ctx context.Context, title string) (model.Task, error) {
	title, err := s.validateTitle(title) // Валидация заголовка
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(ctx, title)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	if patch.Empty() {
		return model.Task{}, ErrEmptyPatch
	}

	if patch.Title != nil {
		title, err := s.validateTitle(*patch.Title)
		if err != nil {
			return model.Task{}, err
		}
		patch.Title = &title
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validateTitle возвращает обрезанный заголовок. Одно правило для создания и обновления.
func (s *TaskService) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return "", ErrInvalidTitle
	}
	return title, nil
}
