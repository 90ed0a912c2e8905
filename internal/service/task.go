package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/BuzzLyutic/todo-auth-api/internal/model"
	"github.com/BuzzLyutic/todo-auth-api/internal/repo"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrInvalidDate = errors.New("invalid date format")
)

// Форматы дат, принимаемые в due_date. RFC3339, без зоны, просто дата
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.TaskCreate) (model.Task, error) {
	t := model.Task{
		Title:       strings.TrimSpace(req.Title),
		Category:    req.Category,
		Description: req.Description,
		UserID:      ownerID,
	}

	if t.Title == "" { // Задача без названия не создается
		return t, ErrValidation
	}
	if t.Category == "" {
		t.Category = "General"
	}

	if req.DueDate != "" {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return t, err
		}
		t.DueDate = &due
	}

	return s.repo.Create(ctx, t)
}

func (s *TaskService) List(ctx context.Context, ownerID int64) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update меняет только присланные поля. Неприсланные остаются как были
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, req model.TaskUpdate) (model.Task, error) {
	t, err := s.repo.Get(ctx, ownerID, taskID)
	if err != nil {
		return t, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return t, ErrValidation
		}
		t.Title = title
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Description != nil {
		t.Description = *req.Description
	}

	// due_date: ключ отсутствует - не трогаем, null или "" - сбрасываем,
	// строка - парсим заново
	if req.DueDate != nil {
		raw := bytes.TrimSpace(req.DueDate)
		if string(raw) == "null" {
			t.DueDate = nil
		} else {
			var value string
			if err := json.Unmarshal(raw, &value); err != nil {
				return t, ErrInvalidDate
			}
			if value == "" {
				t.DueDate = nil
			} else {
				due, err := parseDueDate(value)
				if err != nil {
					return t, err
				}
				t.DueDate = &due
			}
		}
	}

	return s.repo.Update(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	return s.repo.Delete(ctx, ownerID, taskID)
}

func (s *TaskService) Stats(ctx context.Context, ownerID int64) (repo.Stats, error) {
	return s.repo.StatsByOwner(ctx, ownerID)
}

func parseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if due, err := time.Parse(layout, value); err == nil {
			return due, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
